package layeranim

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const defaultDescription = "DefaultAnimation()"

// ErrUnsupportedDescription is matched by every *ParseError.
var ErrUnsupportedDescription = errors.New("unsupported animation description")

// ParseError reports an animation description that matched none of the
// known shapes. Callers must not substitute a guess.
type ParseError struct {
	Description string
	Err         error // underlying numeric error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("layeranim: parse %q: %v", e.Description, e.Err)
	}
	return fmt.Sprintf("layeranim: %v: %q", ErrUnsupportedDescription, e.Description)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUnsupportedDescription, e.Err}
	}
	return []error{ErrUnsupportedDescription}
}

// Parser turns an opaque framework animation handle into a Descriptor.
type Parser interface {
	Parse(description string) (Descriptor, error)
}

// TextParser parses the framework's printed description of an animation.
type TextParser struct{}

const (
	ufloat = `\d+(?:\.\d+(?:e[-+]?\d+)?|e[-+]?\d+)`
	sfloat = `-?` + ufloat
)

var (
	fluidSpringRE = regexp.MustCompile(`^FluidSpringAnimation\(response: (?P<response>` + ufloat +
		`), dampingFraction: (?P<dampingFraction>` + ufloat +
		`), blendDuration: (?P<blendDuration>` + ufloat + `)\)$`)

	springRE = regexp.MustCompile(`^SpringAnimation\(mass: (?P<mass>` + sfloat +
		`), stiffness: (?P<stiffness>` + sfloat +
		`), damping: (?P<damping>` + sfloat +
		`), initialVelocity: SwiftUI\._Velocity<Swift\.Double>\(valuePerSecond: (?P<initialVelocity>` + sfloat + `)\)\)$`)

	bezierRE = regexp.MustCompile(`^BezierAnimation\(duration: (?P<duration>` + ufloat +
		`), curve: \(extension in SwiftUI\):SwiftUI\.UnitCurve\.CubicSolver\(` +
		`ax: (?P<ax>` + sfloat + `), bx: (?P<bx>` + sfloat + `), cx: (?P<cx>` + sfloat +
		`), ay: (?P<ay>` + sfloat + `), by: (?P<by>` + sfloat + `), cy: (?P<cy>` + sfloat + `)\)\)$`)
)

// Parse implements Parser. Shapes are tried in priority order: default,
// fluid spring, explicit spring, bezier.
func (TextParser) Parse(description string) (Descriptor, error) {
	if description == defaultDescription {
		return Default{}, nil
	}
	if m := fluidSpringRE.FindStringSubmatch(description); m != nil {
		v, err := parseFloats(m[1:])
		if err != nil {
			return nil, &ParseError{Description: description, Err: err}
		}
		return FluidSpring{Response: v[0], DampingFraction: v[1], BlendDuration: v[2]}, nil
	}
	if m := springRE.FindStringSubmatch(description); m != nil {
		v, err := parseFloats(m[1:])
		if err != nil {
			return nil, &ParseError{Description: description, Err: err}
		}
		return ExplicitSpring{Mass: v[0], Stiffness: v[1], Damping: v[2], InitialVelocity: v[3]}, nil
	}
	if m := bezierRE.FindStringSubmatch(description); m != nil {
		v, err := parseFloats(m[1:])
		if err != nil {
			return nil, &ParseError{Description: description, Err: err}
		}
		return Bezier{
			Duration: v[0],
			Curve:    CubicSolver{AX: v[1], BX: v[2], CX: v[3], AY: v[4], BY: v[5], CY: v[6]},
		}, nil
	}
	return nil, &ParseError{Description: description}
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Parse parses description with the default TextParser.
func Parse(description string) (Descriptor, error) {
	return TextParser{}.Parse(description)
}

// MustParse is like Parse but panics on an unrecognized description.
func MustParse(description string) Descriptor {
	d, err := Parse(description)
	if err != nil {
		panic(err)
	}
	return d
}
