package layeranim

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// CurveKind names an engine timing function.
type CurveKind uint8

const (
	CurveLinear CurveKind = iota
	CurveEaseIn
	CurveEaseOut
	CurveEaseInOut
	CurveCustom
)

// String returns the engine name of the timing function.
func (k CurveKind) String() string {
	switch k {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "easeIn"
	case CurveEaseOut:
		return "easeOut"
	case CurveEaseInOut:
		return "easeInEaseOut"
	case CurveCustom:
		return "custom"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// CurveShape is a classified timing curve. Solver is only meaningful for
// CurveCustom.
type CurveShape struct {
	Kind   CurveKind
	Solver CubicSolver
}

// Named returns the shape for a named timing function.
func Named(kind CurveKind) CurveShape {
	return CurveShape{Kind: kind}
}

// ControlPoints returns the inner control points of the engine timing
// function. Named curves use the engine's fixed points; custom curves are
// reconstructed from their coefficients.
func (s CurveShape) ControlPoints() (x1, y1, x2, y2 float64) {
	switch s.Kind {
	case CurveLinear:
		return 0, 0, 1, 1
	case CurveEaseIn:
		return 0.42, 0, 1, 1
	case CurveEaseOut:
		return 0, 0, 0.58, 1
	case CurveEaseInOut:
		return 0.42, 0, 0.58, 1
	default:
		return s.Solver.ControlPoints()
	}
}

// Ease returns the gween easing function for this curve.
func (s CurveShape) Ease() ease.TweenFunc {
	if s.Kind == CurveLinear {
		return ease.Linear
	}
	curve := CubicBezier(s.ControlPoints())
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(curve(float64(t)/float64(d)))
	}
}

// Solvers as the UI framework computes them from its control points.
var (
	linearSolver    = CubicSolverFromControlPoints(0, 0, 1, 1)
	easeInSolver    = CubicSolverFromControlPoints(0.42, 0, 1, 1)
	easeOutSolver   = CubicSolverFromControlPoints(0, 0, 0.58, 1)
	easeInOutSolver = CubicSolverFromControlPoints(0.42, 0, 0.58, 1)
)

type namedSolver struct {
	kind    CurveKind
	solvers [2]CubicSolver
}

// namedSolvers is checked in order. Each named curve accepts the computed
// coefficients and their rounded decimal spelling.
var namedSolvers = []namedSolver{
	{CurveLinear, [2]CubicSolver{linearSolver, {-2, 3, 0, -2, 3, 0}}},
	{CurveEaseInOut, [2]CubicSolver{easeInOutSolver, {0.52, -0.78, 1.26, -2, 3, 0}}},
	{CurveEaseOut, [2]CubicSolver{easeOutSolver, {-0.74, 1.74, 0, -2, 3, 0}}},
	{CurveEaseIn, [2]CubicSolver{easeInSolver, {-0.74, 0.48, 1.26, -2, 3, 0}}},
}

// ClassifyCurve maps cubic coefficients to a named curve by exact equality.
// Anything else, including tiny perturbations, is CurveCustom.
func ClassifyCurve(c CubicSolver) CurveShape {
	for _, n := range namedSolvers {
		if c == n.solvers[0] || c == n.solvers[1] {
			return CurveShape{Kind: n.kind}
		}
	}
	return CurveShape{Kind: CurveCustom, Solver: c}
}

// UnsupportedCurveWarning reports a curve that matched no named timing
// function. The animation still runs with a reconstructed custom curve.
type UnsupportedCurveWarning struct {
	Curve CubicSolver
}

func (w *UnsupportedCurveWarning) Error() string {
	return fmt.Sprintf("layeranim: custom bezier curve may not match the framework exactly: %s", w.Curve)
}

// CubicBezier returns an easing function for the curve through (0,0),
// (x1,y1), (x2,y2), (1,1), matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
