// Package viz is the terminal backend for the orrery.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: the viewer, one simulation tick chain plus one chain per open inspector
//   - [Scene]: projects a [sim.Frame] onto a [Canvas] and resolves pointer picks
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - [RenderSphere]: shaded, optionally textured sphere for the inspector
//
// # Key Bindings
//
//	Space - Pause/Resume
//	+/-   - Speed by 0.1 day per tick
//	f/F   - Cycle focus
//	x/y   - Rotate camera, [ ] zoom
//	1-9   - Inspect the n-th body (Sun is 1)
//	Tab   - Cycle open inspectors, Esc closes the front one
//	T     - Cycle colour themes
//	?     - Full help
package viz
