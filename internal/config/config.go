package config

import (
	"os"

	"github.com/san-kum/axesim/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 1.0
)

type Config struct {
	Model      string          `yaml:"model"`
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	Seed       int64           `yaml:"seed"`
	InitState  InitStateConfig `yaml:"init_state"`
	Axe        AxeConfig       `yaml:"axe"`
}

type InitStateConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Theta float64 `yaml:"theta"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
	Omega float64 `yaml:"omega"`
}

type AxeConfig struct {
	Mass     float64 `yaml:"mass"`
	Gravity  float64 `yaml:"gravity"`
	BelowCOG float64 `yaml:"below_cog"`
	AboveCOG float64 `yaml:"above_cog"`
}

func DefaultConfig() *Config {
	throw := physics.DefaultThrow()
	return &Config{
		Model:      "axe",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState: InitStateConfig{
			X:     throw.X,
			Y:     throw.Y,
			Theta: throw.Theta,
			VX:    throw.VX,
			VY:    throw.VY,
			Omega: throw.Omega,
		},
		Axe: AxeConfig{
			Mass:     physics.DefaultMass,
			Gravity:  physics.DefaultGravity,
			BelowCOG: physics.DefaultBelowCOG,
			AboveCOG: physics.DefaultAboveCOG,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) GetInitState() []float64 {
	s := physics.AxeState{
		X:     c.InitState.X,
		Y:     c.InitState.Y,
		Theta: c.InitState.Theta,
		VX:    c.InitState.VX,
		VY:    c.InitState.VY,
		Omega: c.InitState.Omega,
	}
	if c.Model == "projectile" {
		return []float64{s.X, s.Y, s.VX, s.VY}
	}
	return s.Vector()
}

// BuildAxe constructs the axe model with this config's parameters.
func (c *Config) BuildAxe() *physics.Axe {
	a := physics.NewAxe()
	if c.Axe.Mass > 0 {
		a.Mass = c.Axe.Mass
	}
	if c.Axe.Gravity > 0 {
		a.Gravity = c.Axe.Gravity
	}
	if c.Axe.BelowCOG > 0 {
		a.BelowCOG = c.Axe.BelowCOG
	}
	if c.Axe.AboveCOG > 0 {
		a.AboveCOG = c.Axe.AboveCOG
	}
	return a
}
