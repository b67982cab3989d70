// Package layeranim replays a declarative UI framework's animations on a
// custom-drawn layer, so the layer moves with the same timing the framework
// would have used natively.
//
// The framework hands over an animation descriptor (often only as its
// printed description), a destination value and a transaction. layeranim
// parses the descriptor, translates it into an engine animation (a damped
// spring or a duration plus a cubic-bezier timing curve), and installs it on
// a [Layer] property, replacing whatever was running there.
//
// # Quick start
//
//	scene := layeranim.NewScene()
//	view := layeranim.NewView("ball", layeranim.Rect{Width: 240, Height: 480}, layeranim.DefaultStyle())
//	scene.AddView(view)
//
//	view.Update(1, layeranim.DefaultAnimation())
//	// or, from the framework's description string:
//	if err := view.UpdateDescription(1, "FluidSpringAnimation(response: 0.5, dampingFraction: 0.7, blendDuration: 0.0)"); err != nil {
//		log.Fatal(err)
//	}
//
//	// every frame:
//	scene.Pointer(x, y, pressed)
//	scene.Update(1.0 / 60)
//	ball := view.BallRect()
//
// The render package runs a scene with [Ebitengine]; the term package runs
// one in a terminal with [tcell].
//
// # Descriptors
//
// A [Descriptor] is one of [Default], [FluidSpring], [ExplicitSpring] or
// [Bezier]. [TextParser] recognizes their printed forms; anything else is a
// [*ParseError] and must abort the state change. Structured constructors
// ([Linear], [EaseInOut], [Spring], [InterpolatingSpring], ...) skip the
// text entirely.
//
// # Translation
//
// [Translator] maps descriptors to a [SpringAnimation] or a
// [BasicAnimation]. Response/damping-fraction springs become physical
// coefficients with
//
//	ω = 2π / response
//	stiffness = ω² · mass
//	damping = dampingFraction · 2 · √(stiffness · mass)
//
// Bezier curves are matched exactly against the four named engine curves;
// anything else runs as a reconstructed custom curve and is reported as an
// [*UnsupportedCurveWarning].
//
// # Layers and transactions
//
// A [Layer] keeps a model value and at most one [Transition] per property.
// [Layer.PresentationValue] reads the value on screen. Changes made through
// a [Transaction] ([Layer.Batch]) become visible together. [Install] and
// [CommitPresentation] work on anything that satisfies [Animatable].
//
// Layers are single-threaded: drive every call from the thread that ticks
// and draws them.
//
// # Gestures
//
// A [View] owns a [TapRecognizer]. A tap commits the presented value and
// cancels the transition; a double tap toggles between 0 and 1 using the
// view's animation.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
package layeranim
