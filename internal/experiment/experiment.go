package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/axesim/internal/dynamo"
)

type Config struct {
	Model      string
	Integrator string
	InitState  []float64
	Dt         float64
	Duration   float64
	Seed       int64
}

type Experiment struct {
	cfg       Config
	simulator *dynamo.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(dyn dynamo.System, integrator dynamo.Integrator, metrics []dynamo.Metric) error {
	e.simulator = dynamo.New(dyn, integrator)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	x0 := make(dynamo.State, len(e.cfg.InitState))
	copy(x0, e.cfg.InitState)

	simCfg := dynamo.DefaultConfig()
	simCfg.Dt = e.cfg.Dt
	simCfg.Duration = e.cfg.Duration
	simCfg.Seed = e.cfg.Seed

	return e.simulator.Run(ctx, x0, simCfg)
}

// GetSimulator returns the underlying simulator for adding observers.
func (e *Experiment) GetSimulator() *dynamo.Simulator {
	return e.simulator
}
