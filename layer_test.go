package layeranim

import (
	"math"
	"testing"
)

type recordingSink struct {
	events []TransitionEvent
}

func (r *recordingSink) EmitEvent(e TransitionEvent) {
	r.events = append(r.events, e)
}

func (r *recordingSink) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func equalTypes(a, b []EventType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func linearOneSecond() EngineAnimation {
	return BasicAnimation{Duration: 1, Curve: Named(CurveLinear)}
}

func installLinear(l *Layer, from, to float64) {
	_ = l.Batch(func(tx *Transaction) error {
		Install(tx, ValueKey, from, to, linearOneSecond())
		return nil
	})
}

func TestLayerPresentationFollowsTransition(t *testing.T) {
	l := NewLayer("ball", Rect{Width: 10, Height: 10})
	installLinear(l, 0, 1)

	if got := l.ModelValue(ValueKey); got != 1 {
		t.Errorf("model = %v, want 1", got)
	}
	if got := l.PresentationValue(ValueKey); got != 0 {
		t.Errorf("presentation at start = %v, want 0", got)
	}
	l.Tick(0.5)
	if got := l.PresentationValue(ValueKey); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("presentation at 0.5s = %v, want 0.5", got)
	}
	if l.Status(ValueKey) != StatusAnimating {
		t.Errorf("status = %v, want animating", l.Status(ValueKey))
	}
}

func TestLayerTransitionCompletes(t *testing.T) {
	sink := &recordingSink{}
	l := NewLayer("ball", Rect{})
	l.sink = sink
	installLinear(l, 0, 1)

	l.Tick(0.5)
	l.Tick(0.5)

	if l.IsAnimating(ValueKey) {
		t.Fatal("transition should be retired after its duration")
	}
	if got := l.PresentationValue(ValueKey); got != 1 {
		t.Errorf("presentation = %v, want 1", got)
	}
	want := []EventType{EventTransitionInstalled, EventTransitionCompleted}
	if !equalTypes(sink.types(), want) {
		t.Errorf("events = %v, want %v", sink.types(), want)
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	l := NewLayer("ball", Rect{})
	l.sink = sink

	installLinear(l, 0, 1)
	installLinear(l, 0, 1)

	if n := l.NumTransitions(); n != 1 {
		t.Fatalf("NumTransitions = %d, want 1", n)
	}
	if got := l.ModelValue(ValueKey); got != 1 {
		t.Errorf("model = %v, want 1", got)
	}
	want := []EventType{EventTransitionInstalled, EventTransitionRemoved, EventTransitionInstalled}
	if !equalTypes(sink.types(), want) {
		t.Errorf("events = %v, want %v", sink.types(), want)
	}
}

func TestInstallNilSnaps(t *testing.T) {
	l := NewLayer("ball", Rect{})
	installLinear(l, 0, 1)
	l.Tick(0.25)

	var tr *Transition
	_ = l.Batch(func(tx *Transaction) error {
		tr = Install(tx, ValueKey, tx.PresentationValue(ValueKey), 0.3, nil)
		return nil
	})
	if tr != nil {
		t.Errorf("Install(nil) returned %v, want nil", tr)
	}
	if l.IsAnimating(ValueKey) {
		t.Error("snap should remove the running transition")
	}
	if got := l.PresentationValue(ValueKey); got != 0.3 {
		t.Errorf("presentation = %v, want 0.3", got)
	}
	if !l.NeedsDisplay() {
		t.Error("snap should mark the layer for display")
	}
}

func TestInstallRetargetStartsFromPresentation(t *testing.T) {
	l := NewLayer("ball", Rect{})
	installLinear(l, 0, 1)
	l.Tick(0.5)

	_ = l.Batch(func(tx *Transaction) error {
		Install(tx, ValueKey, tx.PresentationValue(ValueKey), 0, linearOneSecond())
		return nil
	})
	tr := l.Transition(ValueKey)
	if tr == nil {
		t.Fatal("no transition installed")
	}
	if math.Abs(tr.From-0.5) > 1e-6 || tr.To != 0 {
		t.Errorf("transition = %v -> %v, want 0.5 -> 0", tr.From, tr.To)
	}
	if tr.BeginTime() != 0.5 {
		t.Errorf("BeginTime = %v, want 0.5", tr.BeginTime())
	}
	if got := l.PresentationValue(ValueKey); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("presentation right after retarget = %v, want 0.5", got)
	}
}

func TestCommitPresentationMidFlight(t *testing.T) {
	l := NewLayer("ball", Rect{})
	installLinear(l, 0, 1)
	l.Tick(0.5)

	value, interrupted := CommitPresentation(l, ValueKey)
	if !interrupted {
		t.Fatal("expected an interrupted transition")
	}
	if math.Abs(value-0.5) > 1e-6 {
		t.Errorf("committed = %v, want 0.5", value)
	}
	if l.IsAnimating(ValueKey) {
		t.Error("transition should be removed")
	}
	if got := l.ModelValue(ValueKey); got != value {
		t.Errorf("model = %v, want %v", got, value)
	}
	l.Tick(1)
	if got := l.PresentationValue(ValueKey); got != value {
		t.Errorf("presentation drifted to %v after commit", got)
	}
}

func TestCommitPresentationIdleIsNoop(t *testing.T) {
	sink := &recordingSink{}
	l := NewLayer("ball", Rect{})
	l.SetModelValue(ValueKey, 0.7)
	l.sink = sink

	value, interrupted := CommitPresentation(l, ValueKey)
	if interrupted || value != 0.7 {
		t.Errorf("CommitPresentation = %v, %v, want 0.7, false", value, interrupted)
	}
	if len(sink.events) != 0 {
		t.Errorf("unexpected events %v", sink.types())
	}
}

func TestToggleTarget(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 1},
		{0.3, 1},
		{0.5, 1},
		{0.51, 0},
		{0.8, 0},
		{1, 0},
	}
	for _, tt := range tests {
		if got := ToggleTarget(tt.in); got != tt.want {
			t.Errorf("ToggleTarget(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLayerDisplay(t *testing.T) {
	l := NewLayer("ball", Rect{})
	calls := 0
	if !l.Display(func(*Layer) { calls++ }) {
		t.Fatal("new layer should need display")
	}
	if l.Display(func(*Layer) { calls++ }) {
		t.Error("Display should clear the flag")
	}
	l.SetNeedsDisplay()
	l.Display(func(*Layer) { calls++ })
	if calls != 2 {
		t.Errorf("draw calls = %d, want 2", calls)
	}
}

func TestLayerDispose(t *testing.T) {
	sink := &recordingSink{}
	l := NewLayer("ball", Rect{})
	l.sink = sink
	installLinear(l, 0, 1)

	l.Dispose()
	if !l.IsDisposed() || l.IsAnimating(ValueKey) {
		t.Fatal("dispose should remove transitions")
	}
	installLinear(l, 1, 0)
	if l.IsAnimating(ValueKey) || l.ModelValue(ValueKey) != 1 {
		t.Error("disposed layer should ignore mutations")
	}
	want := []EventType{EventTransitionInstalled, EventTransitionRemoved}
	if !equalTypes(sink.types(), want) {
		t.Errorf("events = %v, want %v", sink.types(), want)
	}
	if l.Display(nil) {
		t.Error("disposed layer should not display")
	}
}

func TestLayerIDsAreUnique(t *testing.T) {
	a := NewLayer("a", Rect{})
	b := NewLayer("b", Rect{})
	if a.ID == b.ID {
		t.Errorf("duplicate layer ID %d", a.ID)
	}
}
