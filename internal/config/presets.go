package config

var Presets = map[string]map[string]*Config{
	"axe": {
		// The reference throw: one second of flight, just under a full
		// back rotation, released from shoulder height.
		"classic": {
			Model: "axe", Integrator: "rk4", Dt: 0.01, Duration: 1.0,
			InitState: InitStateConfig{X: 0, Y: 2, Theta: 2, VX: 8, VY: 4, Omega: -7},
		},
		"lob": {
			Model: "axe", Integrator: "rk4", Dt: 0.01, Duration: 1.6,
			InitState: InitStateConfig{X: 0, Y: 1.8, Theta: 1.6, VX: 4, VY: 7, Omega: -4},
		},
		"fast_spin": {
			Model: "axe", Integrator: "rk4", Dt: 0.005, Duration: 1.0,
			InitState: InitStateConfig{X: 0, Y: 2, Theta: 2, VX: 8, VY: 4, Omega: -20},
		},
		"no_spin": {
			Model: "axe", Integrator: "rk4", Dt: 0.01, Duration: 1.0,
			InitState: InitStateConfig{X: 0, Y: 2, Theta: 2, VX: 8, VY: 4, Omega: 0},
		},
		"drop": {
			Model: "axe", Integrator: "rk4", Dt: 0.01, Duration: 0.6,
			InitState: InitStateConfig{X: 0, Y: 2, Theta: 2, VX: 0, VY: 0, Omega: -7},
		},
	},
	"projectile": {
		"classic": {
			Model: "projectile", Integrator: "rk4", Dt: 0.01, Duration: 1.0,
			InitState: InitStateConfig{X: 0, Y: 2, VX: 8, VY: 4},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
