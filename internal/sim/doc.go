// Package sim is the time-stepped core of the viewer.
//
// One [Engine.Tick] runs, in order and to completion:
//
//  1. [Clock.Advance] (no-op while paused)
//  2. an ephemeris query per focused body
//  3. [TrailBuffer.Push] for each sampled body (skipped while paused)
//  4. [SceneBound] over the current positions
//  5. [FrameBuilder.Build]
//
// Everything mutable lives on an explicit [State] that the [Clock] and the
// [Playback] controller share by pointer. Picks on rendered markers resolve
// through [PickDispatcher] to an [Opener].
//
// # Thread Safety
//
// Nothing here locks. The caller drives Tick, Dispatch and the Playback
// methods from a single event loop.
package sim
