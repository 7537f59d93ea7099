// Package reel is a scene-node animation timeline engine.
//
// Reel drives time-based transform changes (rotation, scaling,
// translation), instantaneous scripted actions (visibility and
// inheritance toggles, user callbacks), and eased scalar tweens on
// hierarchical scene nodes, scheduled and played back through
// timelines with variable rate, reverse playback, and repeat cycles.
//
// Reel renders nothing and parses nothing: it is a single-threaded,
// per-frame state advancer that pushes deltas out through the [Node]
// boundary. Pair it with any renderer; the examples use [Ebitengine].
//
// # Definitions and playback
//
// An [Animation] is a reusable definition: motions with local time
// windows plus edge-triggered actions. Definitions are built with the
// Add mutators and then attached to a [Timeline]:
//
//	spin := reel.NewAnimation("spin")
//	spin.AddRotation(math.Pi, reel.Sigmoid, 0, 2.0)
//	spin.AddAction(reel.ActionHide, 1.5)
//
//	tl := reel.NewTimeline("hero-spin", heroNode)
//	tl.Attach(spin, 0)
//	tl.Start()
//
// Attaching copies the definition, so many timelines can play the
// same animation independently and playback never mutates the shared
// definition. [AttachableAnimation.Revert] restores an attachment
// from its definition, discarding progress.
//
// Each frame, the application (or a [Manager]) elapses every live
// timeline:
//
//	tl.Elapse(dt) // dt in seconds
//
// Motions apply deltas, never absolute values, so timeline playback
// composes with other systems moving the same node.
//
// # Groups, rates, cycles
//
// An [AnimationGroup] bundles animations at relative offsets so a
// whole sequence attaches as a unit. Timelines support a global
// playback rate, counted or unlimited repeat cycles, and
// [Timeline.Revert], which plays everything back to zero, running
// each action's opposite path on the way.
//
// # Curves
//
// Motion amounts ease through the built-in [Curve] families (Linear,
// Cubic, Exponential, Logarithmic, Sigmoid, Sinh, Tanh) or any
// [CurveFunc]. [FromEase] adapts the [gween] easing catalog:
//
//	anim.AddRotationFunc(math.Pi, reel.FromEase(ease.OutBounce), 0, 1.0)
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package reel
