package layeranim

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// EngineAnimation is the engine-ready form of a Descriptor: either a
// SpringAnimation or a BasicAnimation.
type EngineAnimation interface {
	isEngineAnimation()
}

// SpringAnimation is a damped harmonic oscillator driving a property from
// its from-value to its to-value. InitialVelocity is expressed in units of
// the total distance per second, positive toward the destination.
type SpringAnimation struct {
	Mass            float64
	Stiffness       float64
	Damping         float64
	InitialVelocity float64
}

// BasicAnimation interpolates over a fixed duration along a timing curve.
type BasicAnimation struct {
	Duration float64
	Curve    CurveShape
}

func (SpringAnimation) isEngineAnimation() {}
func (BasicAnimation) isEngineAnimation()  {}

// NewSpringAnimation returns a spring with the engine defaults.
func NewSpringAnimation() SpringAnimation {
	return SpringAnimation{Mass: 1, Stiffness: 100, Damping: 10}
}

// ApplyResponse sets Stiffness and Damping from a response/damping-fraction
// pair, keeping the current Mass. Stiffness is computed first because
// Damping depends on it.
func (s *SpringAnimation) ApplyResponse(response, dampingFraction float64) {
	omegaN := 2 * math.Pi / response
	s.Stiffness = omegaN * omegaN * s.Mass
	s.Damping = dampingFraction * 2 * math.Sqrt(s.Stiffness*s.Mass)
}

func (s SpringAnimation) finite() bool {
	for _, f := range [...]float64{s.Mass, s.Stiffness, s.Damping, s.InitialVelocity} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// AngularFrequency returns the undamped angular frequency sqrt(k/m).
func (s SpringAnimation) AngularFrequency() float64 {
	if s.Mass <= 0 || s.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio returns c / (2*sqrt(k*m)).
func (s SpringAnimation) DampingRatio() float64 {
	crit := 2 * math.Sqrt(s.Stiffness*s.Mass)
	if crit <= 0 || math.IsNaN(crit) {
		return 0
	}
	return s.Damping / crit
}

// solverRatio is DampingRatio with near-critical values snapped to 1; the
// over-damped solution divides by sqrt(ratio²-1).
func (s SpringAnimation) solverRatio() float64 {
	r := s.DampingRatio()
	if math.Abs(r-1) < 1e-9 {
		return 1
	}
	return r
}

const (
	settleTolerance     = 0.001
	settleFPS           = 60
	maxSettlingDuration = 3600.0
)

// SettlingDuration returns how long a unit step response takes to come to
// rest: the first 60 Hz frame at which both the distance from the
// destination and the velocity are below 0.001. The result is capped at an
// hour; a spring that cannot move settles immediately.
func (s SpringAnimation) SettlingDuration() float64 {
	omega := s.AngularFrequency()
	if omega == 0 {
		return 0
	}
	dt := harmonica.FPS(settleFPS)
	step := harmonica.NewSpring(dt, omega, s.solverRatio())
	pos, vel := 0.0, s.InitialVelocity
	maxFrames := int(maxSettlingDuration / dt)
	for frame := 1; frame <= maxFrames; frame++ {
		pos, vel = step.Update(pos, vel, 1)
		if math.Abs(pos-1) < settleTolerance && math.Abs(vel) < settleTolerance {
			return float64(frame) * dt
		}
	}
	return maxSettlingDuration
}

// sample returns the spring's position and velocity after elapsed seconds of
// travel from from toward to. The spring is solved in closed form for the
// whole interval, so the result does not depend on frame timing.
func (s SpringAnimation) sample(elapsed, from, to float64) (pos, vel float64) {
	v0 := s.InitialVelocity * (to - from)
	if elapsed <= 0 {
		return from, v0
	}
	sp := harmonica.NewSpring(elapsed, s.AngularFrequency(), s.solverRatio())
	return sp.Update(from, v0, to)
}

// Translator converts descriptors to engine animations.
type Translator struct {
	// Platform selects what the Default descriptor resolves to.
	Platform Platform
	// Warn receives non-fatal diagnostics such as *UnsupportedCurveWarning.
	// Nil logs them to stderr.
	Warn func(error)
}

// Translate converts d into an EngineAnimation. A nil descriptor means "no
// animation" and yields nil. So does a fluid spring with a non-positive
// response, which is infinitely stiff and reaches its destination at once.
func (t *Translator) Translate(d Descriptor) EngineAnimation {
	switch d := d.(type) {
	case nil:
		return nil
	case Default:
		if t.Platform.SupportsSpringDefault() {
			s := NewSpringAnimation()
			s.ApplyResponse(0.55, 1)
			return s
		}
		return BasicAnimation{Duration: DefaultDuration, Curve: Named(CurveEaseInOut)}
	case FluidSpring:
		if d.Response <= 0 {
			return nil
		}
		s := NewSpringAnimation()
		s.ApplyResponse(d.Response, d.DampingFraction)
		if !s.finite() {
			return nil
		}
		return s
	case ExplicitSpring:
		return SpringAnimation{
			Mass:            d.Mass,
			Stiffness:       d.Stiffness,
			Damping:         d.Damping,
			InitialVelocity: d.InitialVelocity,
		}
	case Bezier:
		shape := ClassifyCurve(d.Curve)
		if shape.Kind == CurveCustom {
			t.warn(&UnsupportedCurveWarning{Curve: d.Curve})
		}
		return BasicAnimation{Duration: d.Duration, Curve: shape}
	default:
		panic(fmt.Sprintf("layeranim: unsupported descriptor type %T", d))
	}
}

func (t *Translator) warn(err error) {
	if t.Warn != nil {
		t.Warn(err)
		return
	}
	logWarning(err)
}

// Translate converts d with a zero Translator (latest platform, warnings
// logged).
func Translate(d Descriptor) EngineAnimation {
	var t Translator
	return t.Translate(d)
}
