// Package confetti renders a full-screen confetti effect for [Ebitengine].
//
// The effect is driven by a [Simulator] that owns a set of falling pieces,
// advances them once per frame, and removes them when they leave the
// viewport or fade out. Every piece is backed by a [Node] attached to a
// [Surface], the isolated container the renderers draw from.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	c := confetti.New(confetti.Options{})
//	c.SetAttribute("particles", "80")
//	c.SetAttribute("fading", "")
//	c.Connect()
//	confetti.Run(c, confetti.RunConfig{Title: "Party", Width: 800, Height: 600})
//
// For full control, implement [ebiten.Game] yourself and call
// [Confetti.Update] and [Confetti.Draw] directly.
//
// # Attributes
//
// Configuration mirrors a custom element: "particles" sets the target count
// (default 60), the presence of "fading" makes pieces fade as they fall, and
// "color1" through "color6" (with "color" as an alias of "color1") override
// the six color classes. Attributes can be changed at any time and are
// re-read by the running simulation.
//
// # Events
//
// When the number of pieces left on screen reaches round(particles/1.25)
// during a removal, a single [EventFading] event is sent to the configured
// [EventSink].
//
// # Testing
//
// Frames, viewport size, randomness and events are all injected through
// [Options], so tests can step a [StepClock] by hand and get reproducible
// pieces from a seeded source.
//
// [Ebitengine]: https://ebitengine.org
package confetti
