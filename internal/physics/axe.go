package physics

import (
	"fmt"

	"github.com/san-kum/axesim/internal/dynamo"
	"github.com/san-kum/axesim/internal/geometry"
)

const (
	DefaultGravity      = 9.8
	DefaultMass         = 1.5
	DefaultHandleLength = 0.7
	DefaultBelowCOG     = 0.6
	DefaultAboveCOG     = 0.1
)

// Axe is a thrown axe in free flight. With drag and air torque ignored, the
// only force is gravity at the center of gravity, so horizontal velocity and
// spin stay constant and the COG follows a parabola.
type Axe struct {
	Mass    float64
	Gravity float64

	// Handle geometry relative to the COG. BelowCOG + AboveCOG is the
	// handle length; AboveCOG doubles as the blade half-width.
	BelowCOG float64
	AboveCOG float64
}

func NewAxe() *Axe {
	return &Axe{
		Mass:     DefaultMass,
		Gravity:  DefaultGravity,
		BelowCOG: DefaultBelowCOG,
		AboveCOG: DefaultAboveCOG,
	}
}

func (a *Axe) StateDim() int { return 6 }

// HandleLength is the butt-to-head distance.
func (a *Axe) HandleLength() float64 { return a.BelowCOG + a.AboveCOG }

// Derive returns (vx, vy, omega, 0, -g, 0): velocities pass through and the
// only acceleration is constant gravity. Time is unused (the system is
// time-invariant).
func (a *Axe) Derive(x dynamo.State, t float64) dynamo.State {
	vx, vy, omega := x[3], x[4], x[5]
	return dynamo.State{vx, vy, omega, 0, -a.Gravity, 0}
}

// Pose places the axe geometry for the given state.
func (a *Axe) Pose(x dynamo.State) geometry.Pose {
	return geometry.AxePose(geometry.Vec2{X: x[0], Y: x[1]}, x[2], a.BelowCOG, a.AboveCOG)
}

// Inertia approximates the handle as a thin rod rotating about the COG.
func (a *Axe) Inertia() float64 {
	l := a.HandleLength()
	return a.Mass * l * l / 12.0
}

func (a *Axe) Energy(x dynamo.State) float64 {
	y, vx, vy, omega := x[1], x[3], x[4], x[5]
	ke := 0.5 * a.Mass * (vx*vx + vy*vy)
	keRot := 0.5 * a.Inertia() * omega * omega
	pe := a.Mass * a.Gravity * y
	return ke + keRot + pe
}

func (a *Axe) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      a.Mass,
		"gravity":   a.Gravity,
		"below_cog": a.BelowCOG,
		"above_cog": a.AboveCOG,
	}
}

func (a *Axe) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		a.Mass = value
	case "gravity":
		a.Gravity = value
	case "below_cog":
		a.BelowCOG = value
	case "above_cog":
		a.AboveCOG = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
