package metrics

import (
	"math"

	"github.com/san-kum/axesim/internal/dynamo"
)

// Apex tracks the highest COG altitude seen during a run.
type Apex struct {
	name    string
	max     float64
	samples int
}

func NewApex() *Apex {
	return &Apex{name: "apex_height"}
}

func (a *Apex) Name() string { return a.name }

func (a *Apex) Observe(x dynamo.State, t float64) {
	if len(x) < 2 {
		return
	}
	if a.samples == 0 || x[1] > a.max {
		a.max = x[1]
	}
	a.samples++
}

func (a *Apex) Value() float64 { return a.max }

func (a *Apex) Reset() {
	a.max = 0
	a.samples = 0
}

// Range tracks the horizontal distance covered from the first sample.
type Range struct {
	name    string
	startX  float64
	lastX   float64
	samples int
}

func NewRange() *Range {
	return &Range{name: "range"}
}

func (r *Range) Name() string { return r.name }

func (r *Range) Observe(x dynamo.State, t float64) {
	if len(x) < 1 {
		return
	}
	if r.samples == 0 {
		r.startX = x[0]
	}
	r.lastX = x[0]
	r.samples++
}

func (r *Range) Value() float64 { return r.lastX - r.startX }

func (r *Range) Reset() {
	r.startX = 0
	r.lastX = 0
	r.samples = 0
}

// Rotations counts full turns completed, from the net orientation change.
type Rotations struct {
	name       string
	startTheta float64
	lastTheta  float64
	samples    int
}

func NewRotations() *Rotations {
	return &Rotations{name: "rotations"}
}

func (r *Rotations) Name() string { return r.name }

func (r *Rotations) Observe(x dynamo.State, t float64) {
	if len(x) < 3 {
		return
	}
	if r.samples == 0 {
		r.startTheta = x[2]
	}
	r.lastTheta = x[2]
	r.samples++
}

func (r *Rotations) Value() float64 {
	return math.Abs(r.lastTheta-r.startTheta) / (2 * math.Pi)
}

func (r *Rotations) Reset() {
	r.startTheta = 0
	r.lastTheta = 0
	r.samples = 0
}
