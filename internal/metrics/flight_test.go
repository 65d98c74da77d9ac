package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/axesim/internal/dynamo"
)

func TestApex(t *testing.T) {
	a := NewApex()

	a.Observe(dynamo.State{0, 2, 0, 0, 0, 0}, 0)
	a.Observe(dynamo.State{1, 2.8, 0, 0, 0, 0}, 0.1)
	a.Observe(dynamo.State{2, 2.5, 0, 0, 0, 0}, 0.2)

	if got := a.Value(); got != 2.8 {
		t.Errorf("expected apex 2.8, got %f", got)
	}

	a.Reset()
	if a.Value() != 0 {
		t.Error("reset should clear apex")
	}
}

func TestApexNegativeHeights(t *testing.T) {
	a := NewApex()

	// First sample counts even when all heights are negative.
	a.Observe(dynamo.State{0, -3}, 0)
	a.Observe(dynamo.State{0, -5}, 0.1)

	if got := a.Value(); got != -3 {
		t.Errorf("expected apex -3, got %f", got)
	}
}

func TestRange(t *testing.T) {
	r := NewRange()

	r.Observe(dynamo.State{1, 0}, 0)
	r.Observe(dynamo.State{5, 0}, 0.5)
	r.Observe(dynamo.State{9, 0}, 1.0)

	if got := r.Value(); got != 8 {
		t.Errorf("expected range 8, got %f", got)
	}
}

func TestRotations(t *testing.T) {
	r := NewRotations()

	r.Observe(dynamo.State{0, 0, 2}, 0)
	r.Observe(dynamo.State{0, 0, 2 - 7}, 1.0)

	want := 7.0 / (2 * math.Pi)
	if got := r.Value(); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %f rotations, got %f", want, got)
	}
}

type constEnergy struct{ e float64 }

func (c *constEnergy) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{0} }
func (c *constEnergy) StateDim() int                                 { return 1 }
func (c *constEnergy) Energy(x dynamo.State) float64                 { return c.e + x[0] }

func TestEnergyDrift(t *testing.T) {
	sys := &constEnergy{e: 100}
	m := NewEnergyDrift(sys)

	m.Observe(dynamo.State{0}, 0)
	m.Observe(dynamo.State{1}, 0.5)

	if got := m.Value(); got <= 0 {
		t.Errorf("expected positive drift, got %f", got)
	}

	m.Reset()
	m.Observe(dynamo.State{0}, 0)
	m.Observe(dynamo.State{0}, 1)
	if got := m.Value(); got != 0 {
		t.Errorf("constant energy should show zero drift, got %f", got)
	}
}
