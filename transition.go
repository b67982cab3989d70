package layeranim

import (
	"fmt"

	"github.com/tanema/gween"
)

// TransitionStatus is the state of a property's transition slot.
//
//	           install
//	Idle ───────────────► Animating
//	  ▲                       │
//	  └───────────────────────┘
//	  completion, removal or replacement
type TransitionStatus uint8

const (
	// StatusIdle means no transition is installed for the property.
	StatusIdle TransitionStatus = iota
	// StatusAnimating means a transition is installed and running.
	StatusAnimating
)

// String returns a human-readable representation of the status.
func (s TransitionStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAnimating:
		return "animating"
	default:
		return fmt.Sprintf("TransitionStatus(%d)", int(s))
	}
}

// Transition binds one EngineAnimation to one property over [From, To].
// Transitions are installed with Layer.AddTransition (directly or through a
// Transaction) and start at the layer time they are installed.
type Transition struct {
	Key       string
	From      float64
	To        float64
	Animation EngineAnimation
	// Duration is the total run time in seconds. Springs use their settling
	// duration because the engine does not extend springs on its own.
	Duration float64

	beginTime float64
	// tween runs over unit progress; values are interpolated in float64.
	tween *gween.Tween
}

// NewTransition creates a transition for key from from to to using anim.
// Panics if anim is nil.
func NewTransition(key string, from, to float64, anim EngineAnimation) *Transition {
	t := &Transition{Key: key, From: from, To: to, Animation: anim}
	switch a := anim.(type) {
	case SpringAnimation:
		t.Duration = a.SettlingDuration()
	case BasicAnimation:
		t.Duration = a.Duration
		t.tween = gween.New(0, 1, float32(a.Duration), a.Curve.Ease())
	default:
		panic(fmt.Sprintf("layeranim: unsupported engine animation %T", anim))
	}
	return t
}

// BeginTime returns the layer time at which the transition was installed.
func (t *Transition) BeginTime() float64 {
	return t.beginTime
}

// Sample returns the interpolated value after elapsed seconds and whether
// the transition has finished. A finished transition reports To exactly.
func (t *Transition) Sample(elapsed float64) (value float64, finished bool) {
	if elapsed >= t.Duration {
		return t.To, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	switch a := t.Animation.(type) {
	case SpringAnimation:
		pos, _ := a.sample(elapsed, t.From, t.To)
		return pos, false
	default:
		progress, _ := t.tween.Set(float32(elapsed))
		return t.From + (t.To-t.From)*float64(progress), false
	}
}
