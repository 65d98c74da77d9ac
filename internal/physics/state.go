package physics

import "github.com/san-kum/axesim/internal/dynamo"

// AxeState is the named-field view of the six-component state vector. The
// integrator works on flat vectors; construction and inspection go through
// this struct so field order mistakes cannot compile.
type AxeState struct {
	X     float64 // horizontal position (m)
	Y     float64 // height (m)
	Theta float64 // orientation (rad)
	VX    float64 // horizontal velocity (m/s)
	VY    float64 // vertical velocity (m/s)
	Omega float64 // angular velocity (rad/s)
}

// DefaultThrow is the reference throw: released at 2 m height, moving at
// (8, 4) m/s with orientation 2 rad and spin -7 rad/s.
func DefaultThrow() AxeState {
	return AxeState{X: 0, Y: 2, Theta: 2, VX: 8, VY: 4, Omega: -7}
}

func (s AxeState) Vector() dynamo.State {
	return dynamo.State{s.X, s.Y, s.Theta, s.VX, s.VY, s.Omega}
}

func AxeStateFrom(x dynamo.State) AxeState {
	return AxeState{X: x[0], Y: x[1], Theta: x[2], VX: x[3], VY: x[4], Omega: x[5]}
}
