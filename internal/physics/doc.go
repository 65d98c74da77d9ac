// Package physics provides the flight models for simulation.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution:
//
//   - [Axe]: thrown axe in free flight, a planar rigid body under gravity
//   - [Projectile]: point mass under gravity, for comparison runs
//
// Both models implement [dynamo.Configurable] for runtime parameter
// adjustment and [dynamo.Hamiltonian] for energy calculation.
//
// # Energy Conservation
//
// Free flight conserves total mechanical energy, so energy drift measures
// integrator error directly:
//
//	var dyn dynamo.System = physics.NewAxe()
//	if h, ok := dyn.(dynamo.Hamiltonian); ok {
//	    energy := h.Energy(state)
//	}
package physics
