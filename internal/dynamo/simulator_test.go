package dynamo

import (
	"context"
	"math"
	"testing"
)

// Exponential decay dx/dt = -x.
type testDynamics struct{}

func (d *testDynamics) Derive(x State, t float64) State {
	return State{-x[0]}
}

func (d *testDynamics) StateDim() int { return 1 }

type testIntegrator struct{}

func (i *testIntegrator) Step(dyn System, x State, t float64, dt float64) State {
	dx := dyn.Derive(x, t)
	return State{x[0] + dt*dx[0]}
}

func TestSimulatorRun(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	cfg := DefaultConfig()
	cfg.Dt = 0.1
	cfg.Duration = 1.0

	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if result.Times[0] != 0 {
		t.Errorf("first sample should be at t=0, got %f", result.Times[0])
	}
	if result.States[0][0] != 1.0 {
		t.Errorf("first row should be the initial state, got %f", result.States[0][0])
	}

	final := result.Final()[0]
	expected := math.Exp(-1.0)
	if math.Abs(final-expected) > 0.2 {
		t.Errorf("expected final state ~%.4f, got %.4f", expected, final)
	}
}

func TestSimulatorZeroDuration(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	cfg := DefaultConfig()
	cfg.Duration = 0

	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("zero duration should be valid: %v", err)
	}

	if len(result.States) != 1 {
		t.Errorf("expected just the initial row, got %d rows", len(result.States))
	}
	if result.States[0][0] != 1.0 {
		t.Errorf("expected initial state back, got %f", result.States[0][0])
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
		{"adaptive without tolerance", Config{Dt: 0.1, Duration: 1.0, Adaptive: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(context.Background(), State{1.0}, tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulatorDimensionMismatch(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	cfg := DefaultConfig()
	_, err := sim.Run(context.Background(), State{1.0, 2.0}, cfg)
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestSimulatorCancellation(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	result, err := sim.Run(ctx, State{1.0}, cfg)
	if err == nil {
		t.Fatal("expected context error")
	}
	if result == nil || len(result.States) != 1 {
		t.Error("partial result should still contain the initial row")
	}
}

type testMetric struct {
	count int
	sum   float64
}

func (m *testMetric) Name() string               { return "test" }
func (m *testMetric) Observe(x State, t float64) { m.count++; m.sum += x[0] }
func (m *testMetric) Value() float64             { return m.sum }
func (m *testMetric) Reset()                     { m.count = 0; m.sum = 0 }

func TestSimulatorMetrics(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	metric := &testMetric{}
	sim.AddMetric(metric)

	cfg := DefaultConfig()
	cfg.Dt = 0.1
	cfg.Duration = 1.0

	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}

	// Initial sample plus one per step.
	if metric.count != 11 {
		t.Errorf("expected 11 observations, got %d", metric.count)
	}
}

func TestRunWithCallback(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	cfg := DefaultConfig()
	cfg.Dt = 0.1
	cfg.Duration = 1.0

	steps := 0
	err := sim.RunWithCallback(context.Background(), State{1.0}, cfg, func(x State, t float64) bool {
		steps++
		return steps < 5
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if steps != 5 {
		t.Errorf("callback should have stopped the run at 5 steps, got %d", steps)
	}
}
