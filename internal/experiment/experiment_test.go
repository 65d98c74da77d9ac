package experiment

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/axesim/internal/physics"
)

func TestRegistryModels(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"axe", "projectile"} {
		if _, err := r.GetModel(name); err != nil {
			t.Errorf("model %s not registered: %v", name, err)
		}
	}

	if _, err := r.GetModel("boomerang"); err == nil {
		t.Error("expected error for unknown model")
	}

	if len(r.ListModels()) != 2 {
		t.Errorf("expected 2 models, got %d", len(r.ListModels()))
	}
}

func TestRegistryIntegrators(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"euler", "rk4", "rk45"} {
		if _, err := r.GetIntegrator(name); err != nil {
			t.Errorf("integrator %s not registered: %v", name, err)
		}
	}

	if _, err := r.GetIntegrator("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestExperimentRun(t *testing.T) {
	r := NewRegistry()

	dyn, err := r.GetModel("axe")
	if err != nil {
		t.Fatal(err)
	}
	integ, err := r.GetIntegrator("rk4")
	if err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		Model:      "axe",
		Integrator: "rk4",
		InitState:  physics.DefaultThrow().Vector(),
		Dt:         0.01,
		Duration:   1.0,
	}

	exp := New(cfg)
	if err := exp.Setup(dyn, integ, r.DefaultMetrics(dyn)); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 101 {
		t.Errorf("expected 101 samples, got %d", len(result.States))
	}

	// The default throw peaks where vy crosses zero: y = 2 + 4^2/(2*9.8).
	wantApex := 2 + 16/(2*9.8)
	if apex := result.Metrics["apex_height"]; math.Abs(apex-wantApex) > 0.01 {
		t.Errorf("expected apex ~%.3f, got %.3f", wantApex, apex)
	}
	if rng := result.Metrics["range"]; math.Abs(rng-8) > 1e-6 {
		t.Errorf("expected range 8, got %f", rng)
	}
	if rot := result.Metrics["rotations"]; math.Abs(rot-7/(2*math.Pi)) > 1e-6 {
		t.Errorf("expected %.4f rotations, got %f", 7/(2*math.Pi), rot)
	}
}

func TestExperimentRunWithoutSetup(t *testing.T) {
	exp := New(Config{})
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
}
