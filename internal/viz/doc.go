// Package viz provides terminal-based visualization of the axe's flight.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live animation of the handle, blade, and COG trail
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	Tab   - Cycle tunable parameters
//	↑/↓   - Adjust selected parameter
//	[]/   - Time travel (rewind/forward)
//	?     - Show help overlay
package viz
