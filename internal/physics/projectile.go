package physics

import (
	"fmt"

	"github.com/san-kum/axesim/internal/dynamo"
)

// Projectile is a point mass under gravity with optional linear drag,
// state (x, y, vx, vy). With zero drag its COG path matches the axe's, so
// comparison runs isolate what drag would change about a throw.
type Projectile struct {
	Mass      float64
	Gravity   float64
	DragCoeff float64
}

func NewProjectile() *Projectile {
	return &Projectile{
		Mass:      DefaultMass,
		Gravity:   DefaultGravity,
		DragCoeff: 0.1,
	}
}

func (p *Projectile) StateDim() int { return 4 }

func (p *Projectile) Derive(x dynamo.State, t float64) dynamo.State {
	vx, vy := x[2], x[3]
	ax := -p.DragCoeff * vx / p.Mass
	ay := -p.Gravity - p.DragCoeff*vy/p.Mass
	return dynamo.State{vx, vy, ax, ay}
}

func (p *Projectile) Energy(x dynamo.State) float64 {
	y, vx, vy := x[1], x[2], x[3]
	return 0.5*p.Mass*(vx*vx+vy*vy) + p.Mass*p.Gravity*y
}

func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":    p.Mass,
		"gravity": p.Gravity,
		"drag":    p.DragCoeff,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	case "gravity":
		p.Gravity = value
	case "drag":
		p.DragCoeff = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
