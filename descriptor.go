package layeranim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDuration is the duration the UI framework uses for curve animations
// created without an explicit duration.
const DefaultDuration = 0.35

// Descriptor is a parsed, immutable animation description. It is one of
// Default, FluidSpring, ExplicitSpring or Bezier.
//
// String returns the framework's textual form of the descriptor, which
// TextParser accepts back.
type Descriptor interface {
	fmt.Stringer
	isDescriptor()
}

// Default is the framework's default animation. What it resolves to depends
// on the target platform; see Translator.
type Default struct{}

// FluidSpring is a spring described by its perceptual response (seconds per
// oscillation) and damping fraction (1 is critically damped).
type FluidSpring struct {
	Response        float64
	DampingFraction float64
	// BlendDuration is parsed and carried but not used by the translator.
	BlendDuration float64
}

// ExplicitSpring is a spring described by its physical coefficients.
type ExplicitSpring struct {
	Mass            float64
	Stiffness       float64
	Damping         float64
	InitialVelocity float64
}

// Bezier is a duration plus a cubic timing curve.
type Bezier struct {
	Duration float64
	Curve    CubicSolver
}

func (Default) isDescriptor()        {}
func (FluidSpring) isDescriptor()    {}
func (ExplicitSpring) isDescriptor() {}
func (Bezier) isDescriptor()         {}

func (Default) String() string { return defaultDescription }

func (d FluidSpring) String() string {
	return fmt.Sprintf("FluidSpringAnimation(response: %s, dampingFraction: %s, blendDuration: %s)",
		formatFloat(d.Response), formatFloat(d.DampingFraction), formatFloat(d.BlendDuration))
}

func (d ExplicitSpring) String() string {
	return fmt.Sprintf("SpringAnimation(mass: %s, stiffness: %s, damping: %s, initialVelocity: SwiftUI._Velocity<Swift.Double>(valuePerSecond: %s))",
		formatFloat(d.Mass), formatFloat(d.Stiffness), formatFloat(d.Damping), formatFloat(d.InitialVelocity))
}

func (d Bezier) String() string {
	return fmt.Sprintf("BezierAnimation(duration: %s, curve: (extension in SwiftUI):%s)",
		formatFloat(d.Duration), d.Curve)
}

// CubicSolver holds the polynomial coefficients of a unit cubic bezier curve:
//
//	x(t) = ((ax*t + bx)*t + cx)*t
//	y(t) = ((ay*t + by)*t + cy)*t
type CubicSolver struct {
	AX, BX, CX float64
	AY, BY, CY float64
}

// CubicSolverFromControlPoints computes the coefficients for the curve with
// control points (0,0), (x1,y1), (x2,y2), (1,1), using the same arithmetic as
// the UI framework so the results compare equal to its printed constants.
func CubicSolverFromControlPoints(x1, y1, x2, y2 float64) CubicSolver {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	return CubicSolver{
		AX: 1 - cx - bx, BX: bx, CX: cx,
		AY: 1 - cy - by, BY: by, CY: cy,
	}
}

// ControlPoints inverts the polynomial form back to the two inner control
// points. Exact for solvers built by CubicSolverFromControlPoints up to
// floating-point rounding.
func (c CubicSolver) ControlPoints() (x1, y1, x2, y2 float64) {
	x1 = c.CX / 3
	y1 = c.CY / 3
	x2 = (c.BX + 2*c.CX) / 3
	y2 = (c.BY + 2*c.CY) / 3
	return x1, y1, x2, y2
}

func (c CubicSolver) String() string {
	return fmt.Sprintf("SwiftUI.UnitCurve.CubicSolver(ax: %s, bx: %s, cx: %s, ay: %s, by: %s, cy: %s)",
		formatFloat(c.AX), formatFloat(c.BX), formatFloat(c.CX),
		formatFloat(c.AY), formatFloat(c.BY), formatFloat(c.CY))
}

// --- Constructors ---

// DefaultAnimation returns the platform default animation descriptor.
func DefaultAnimation() Descriptor { return Default{} }

// Linear returns a linear curve animation. A non-positive duration selects
// DefaultDuration.
func Linear(duration float64) Descriptor {
	return Bezier{Duration: orDefaultDuration(duration), Curve: linearSolver}
}

// EaseIn returns an ease-in curve animation.
func EaseIn(duration float64) Descriptor {
	return Bezier{Duration: orDefaultDuration(duration), Curve: easeInSolver}
}

// EaseOut returns an ease-out curve animation.
func EaseOut(duration float64) Descriptor {
	return Bezier{Duration: orDefaultDuration(duration), Curve: easeOutSolver}
}

// EaseInOut returns an ease-in-out curve animation.
func EaseInOut(duration float64) Descriptor {
	return Bezier{Duration: orDefaultDuration(duration), Curve: easeInOutSolver}
}

// TimingCurve returns a curve animation through the given control points.
func TimingCurve(x1, y1, x2, y2, duration float64) Descriptor {
	return Bezier{Duration: orDefaultDuration(duration), Curve: CubicSolverFromControlPoints(x1, y1, x2, y2)}
}

// Spring returns a response/damping-fraction spring.
func Spring(response, dampingFraction, blendDuration float64) Descriptor {
	return FluidSpring{Response: response, DampingFraction: dampingFraction, BlendDuration: blendDuration}
}

// Bouncy returns the framework's bouncy spring: half a second response with
// a damping fraction of 0.7.
func Bouncy() Descriptor {
	return FluidSpring{Response: 0.5, DampingFraction: 0.7}
}

// InterpolatingSpring returns a spring with explicit physical coefficients.
func InterpolatingSpring(mass, stiffness, damping, initialVelocity float64) Descriptor {
	return ExplicitSpring{Mass: mass, Stiffness: stiffness, Damping: damping, InitialVelocity: initialVelocity}
}

func orDefaultDuration(d float64) float64 {
	if d <= 0 {
		return DefaultDuration
	}
	return d
}

// formatFloat prints f the way the framework describes a Double: the
// shortest round-trip form, always with a fractional part or exponent.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	var s string
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s = strconv.FormatFloat(f, 'e', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
