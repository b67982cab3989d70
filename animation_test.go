package layeranim

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func translateQuiet(t *testing.T, tr *Translator, d Descriptor) (EngineAnimation, []error) {
	t.Helper()
	var warnings []error
	tr.Warn = func(err error) { warnings = append(warnings, err) }
	return tr.Translate(d), warnings
}

func TestTranslateFluidSpring(t *testing.T) {
	anim, warnings := translateQuiet(t, &Translator{}, Spring(14, 43, 0))
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	s, ok := anim.(SpringAnimation)
	if !ok {
		t.Fatalf("Translate = %T, want SpringAnimation", anim)
	}
	if s.Mass != 1 {
		t.Errorf("Mass = %v, want 1", s.Mass)
	}
	if !almostEqual(s.Stiffness, 0.20142049798141545, 1e-12) {
		t.Errorf("Stiffness = %v, want 0.20142049798141545", s.Stiffness)
	}
	if !almostEqual(s.Damping, 38.59670974410317, 1e-9) {
		t.Errorf("Damping = %v, want 38.59670974410317", s.Damping)
	}
}

func TestTranslateFluidSpringZeroResponseSnaps(t *testing.T) {
	for _, d := range []Descriptor{
		MustParse("FluidSpringAnimation(response: 0.0, dampingFraction: 1.0, blendDuration: 0.0)"),
		Spring(-1, 1, 0),
		Spring(1e-300, 1, 0),
	} {
		if anim, _ := translateQuiet(t, &Translator{}, d); anim != nil {
			t.Errorf("Translate(%v) = %+v, want nil", d, anim)
		}
	}
}

func TestTranslateFluidSpringFromText(t *testing.T) {
	d := MustParse("FluidSpringAnimation(response: 14.0, dampingFraction: 43.0, blendDuration: 0.0)")
	s := Translate(d).(SpringAnimation)
	if !almostEqual(s.Stiffness, 0.20142049798141545, 1e-12) || !almostEqual(s.Damping, 38.59670974410317, 1e-9) {
		t.Errorf("Translate = %+v", s)
	}
}

func TestTranslateExplicitSpring(t *testing.T) {
	d := InterpolatingSpring(2, 300, 12.5, -1.5)
	got := Translate(d)
	want := SpringAnimation{Mass: 2, Stiffness: 300, Damping: 12.5, InitialVelocity: -1.5}
	// Damping is forwarded; an older fixture expected it dropped.
	if got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
}

func TestTranslateDefault(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		spring   bool
	}{
		{"latest", Platform{}, true},
		{"ios 17", Platform{OS: "ios", Version: "17.0"}, true},
		{"ios 16", Platform{OS: "ios", Version: "16.4"}, false},
		{"macos 13", Platform{OS: "macos", Version: "13.6.1"}, false},
		{"macos 14", Platform{OS: "macos", Version: "14.0"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim, _ := translateQuiet(t, &Translator{Platform: tt.platform}, DefaultAnimation())
			if !tt.spring {
				want := BasicAnimation{Duration: DefaultDuration, Curve: Named(CurveEaseInOut)}
				if anim != want {
					t.Errorf("Translate = %+v, want %+v", anim, want)
				}
				return
			}
			s, ok := anim.(SpringAnimation)
			if !ok {
				t.Fatalf("Translate = %T, want SpringAnimation", anim)
			}
			omega := 2 * math.Pi / 0.55
			if !almostEqual(s.Stiffness, omega*omega, 1e-9) {
				t.Errorf("Stiffness = %v, want %v", s.Stiffness, omega*omega)
			}
			if !almostEqual(s.DampingRatio(), 1, 1e-12) {
				t.Errorf("DampingRatio = %v, want 1", s.DampingRatio())
			}
		})
	}
}

func TestTranslateBezier(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want CurveKind
		warn bool
	}{
		{"linear", Linear(1), CurveLinear, false},
		{"easeIn", EaseIn(0.5), CurveEaseIn, false},
		{"easeOut", EaseOut(0.5), CurveEaseOut, false},
		{"easeInOut", EaseInOut(0), CurveEaseInOut, false},
		{"custom", TimingCurve(0.17, 0.67, 0.96, -0.01, 2), CurveCustom, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim, warnings := translateQuiet(t, &Translator{}, tt.d)
			b, ok := anim.(BasicAnimation)
			if !ok {
				t.Fatalf("Translate = %T, want BasicAnimation", anim)
			}
			if b.Duration != tt.d.(Bezier).Duration {
				t.Errorf("Duration = %v, want %v", b.Duration, tt.d.(Bezier).Duration)
			}
			if b.Curve.Kind != tt.want {
				t.Errorf("Curve = %v, want %v", b.Curve.Kind, tt.want)
			}
			if tt.warn != (len(warnings) == 1) {
				t.Fatalf("warnings = %v, want warn=%v", warnings, tt.warn)
			}
			if tt.warn {
				var w *UnsupportedCurveWarning
				if !errors.As(warnings[0], &w) {
					t.Errorf("warning %v is not *UnsupportedCurveWarning", warnings[0])
				}
			}
		})
	}
}

func TestTranslateNil(t *testing.T) {
	if anim := Translate(nil); anim != nil {
		t.Errorf("Translate(nil) = %v, want nil", anim)
	}
}

func TestApplyResponseKeepsMass(t *testing.T) {
	s := SpringAnimation{Mass: 2}
	s.ApplyResponse(1, 0.5)
	omega := 2 * math.Pi
	if !almostEqual(s.Stiffness, omega*omega*2, 1e-9) {
		t.Errorf("Stiffness = %v", s.Stiffness)
	}
	if !almostEqual(s.DampingRatio(), 0.5, 1e-12) {
		t.Errorf("DampingRatio = %v, want 0.5", s.DampingRatio())
	}
	if !almostEqual(s.AngularFrequency(), omega, 1e-12) {
		t.Errorf("AngularFrequency = %v, want %v", s.AngularFrequency(), omega)
	}
}

func TestSettlingDuration(t *testing.T) {
	critical := Translate(Spring(0.55, 1, 0)).(SpringAnimation)
	bouncy := Translate(Bouncy()).(SpringAnimation)

	for _, s := range []SpringAnimation{critical, bouncy} {
		d := s.SettlingDuration()
		if d <= 0 || d > 5 {
			t.Fatalf("SettlingDuration(%+v) = %v", s, d)
		}
		frames := d * settleFPS
		if !almostEqual(frames, math.Round(frames), 1e-6) {
			t.Errorf("SettlingDuration = %v, not a whole number of frames", d)
		}
		pos, _ := s.sample(d, 0, 1)
		if math.Abs(pos-1) > 0.01 {
			t.Errorf("position at settle = %v, want ~1", pos)
		}
	}

	if d := (SpringAnimation{Mass: 1}).SettlingDuration(); d != 0 {
		t.Errorf("zero stiffness settles in %v, want 0", d)
	}
}

func TestSpringSampleStartsAtFrom(t *testing.T) {
	s := Translate(Bouncy()).(SpringAnimation)
	pos, vel := s.sample(0, 0.25, 1)
	if pos != 0.25 || vel != 0 {
		t.Errorf("sample(0) = %v, %v, want 0.25, 0", pos, vel)
	}
	pos, _ = s.sample(0.1, 0.25, 1)
	if pos <= 0.25 || pos >= 1 {
		t.Errorf("sample(0.1) = %v, want between from and to", pos)
	}
}

func TestTranslatePanicsOnForeignDescriptor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Translate(foreignDescriptor{})
}

type foreignDescriptor struct{ Default }
