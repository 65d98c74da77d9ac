package experiment

import (
	"fmt"

	"github.com/san-kum/axesim/internal/dynamo"
	"github.com/san-kum/axesim/internal/integrators"
	"github.com/san-kum/axesim/internal/metrics"
	"github.com/san-kum/axesim/internal/physics"
)

type Registry struct {
	models      map[string]func() dynamo.System
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func() dynamo.System),
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.models["axe"] = func() dynamo.System { return physics.NewAxe() }
	r.models["projectile"] = func() dynamo.System { return physics.NewProjectile() }

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() dynamo.Integrator { return integrators.NewRK45() }

	return r
}

func (r *Registry) GetModel(name string) (dynamo.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics returns the flight summary metrics for a model.
func (r *Registry) DefaultMetrics(dyn dynamo.System) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewApex(),
		metrics.NewRange(),
		metrics.NewRotations(),
		metrics.NewEnergyDrift(dyn),
	}
}
