// Package detail keeps the per-body inspector views. Each view rotates on its
// own tick independently of the simulation clock, so inspectors keep turning
// while playback is paused.
package detail
