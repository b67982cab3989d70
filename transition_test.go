package layeranim

import (
	"math"
	"testing"
)

func TestTransitionLinearSample(t *testing.T) {
	tr := NewTransition(ValueKey, 0, 1, BasicAnimation{Duration: 1, Curve: Named(CurveLinear)})
	tests := []struct {
		elapsed  float64
		want     float64
		finished bool
	}{
		{-1, 0, false},
		{0, 0, false},
		{0.25, 0.25, false},
		{0.5, 0.5, false},
		{1, 1, true},
		{2, 1, true},
	}
	for _, tt := range tests {
		got, finished := tr.Sample(tt.elapsed)
		if math.Abs(got-tt.want) > 1e-6 || finished != tt.finished {
			t.Errorf("Sample(%v) = %v, %v, want %v, %v", tt.elapsed, got, finished, tt.want, tt.finished)
		}
	}
}

func TestTransitionReverseDirection(t *testing.T) {
	tr := NewTransition(ValueKey, 1, 0, BasicAnimation{Duration: 2, Curve: Named(CurveLinear)})
	if got, _ := tr.Sample(0.5); math.Abs(got-0.75) > 1e-6 {
		t.Errorf("Sample(0.5) = %v, want 0.75", got)
	}
}

func TestTransitionBasicStartsAtFromExactly(t *testing.T) {
	for _, c := range []CurveKind{CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut} {
		tr := NewTransition(ValueKey, 0.1, 0.7, BasicAnimation{Duration: 1, Curve: Named(c)})
		if got, _ := tr.Sample(0); got != 0.1 {
			t.Errorf("%v: Sample(0) = %v, want exactly 0.1", c, got)
		}
	}
	tr := NewTransition(ValueKey, 0.1, 0.7, BasicAnimation{Duration: 1, Curve: Named(CurveLinear)})
	if got, _ := tr.Sample(0.5); math.Abs(got-0.4) > 1e-7 {
		t.Errorf("Sample(0.5) = %v, want 0.4", got)
	}
}

func TestTransitionSpringDuration(t *testing.T) {
	s := Translate(Spring(0.55, 1, 0)).(SpringAnimation)
	tr := NewTransition(ValueKey, 0, 1, s)
	if tr.Duration != s.SettlingDuration() {
		t.Errorf("Duration = %v, want %v", tr.Duration, s.SettlingDuration())
	}
	mid, finished := tr.Sample(tr.Duration / 4)
	if finished || mid <= 0 || mid >= 1 {
		t.Errorf("Sample(quarter) = %v, %v", mid, finished)
	}
	if end, finished := tr.Sample(tr.Duration); end != 1 || !finished {
		t.Errorf("Sample(Duration) = %v, %v, want exactly 1, true", end, finished)
	}
}

func TestNewTransitionPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewTransition(ValueKey, 0, 1, nil)
}

func TestTransitionStatusString(t *testing.T) {
	if StatusIdle.String() != "idle" || StatusAnimating.String() != "animating" {
		t.Errorf("status strings = %q, %q", StatusIdle, StatusAnimating)
	}
	if got := TransitionStatus(7).String(); got != "TransitionStatus(7)" {
		t.Errorf("unknown status = %q", got)
	}
}
