package layeranim

import "math"

// --- Constants ---

const (
	defaultTapSlop           = 10.0 // pixels a pointer may travel and still tap
	defaultDoubleTapInterval = 0.3  // seconds between the taps of a double tap
)

// TapContext carries tap event data. Count is 1 for a single tap and 2 for
// the second tap of a double tap.
type TapContext struct {
	X, Y  float64
	Time  float64
	Count int
}

// TapRecognizer turns a pointer's press/release stream into discrete taps
// and double taps. Every tap fires OnTap; a tap that completes a double tap
// also fires OnDoubleTap afterwards.
//
// Feed it with Pointer once per frame (level-triggered) or on every pointer
// change; repeated presses while already down are treated as movement.
type TapRecognizer struct {
	// Slop is how far, in pixels, a pointer may move during a tap and
	// between the taps of a double tap.
	Slop float64
	// DoubleTapInterval is the longest gap, in seconds, between two taps
	// that still counts as a double tap.
	DoubleTapInterval float64

	OnTap       func(TapContext)
	OnDoubleTap func(TapContext)

	down      bool
	cancelled bool
	startX    float64
	startY    float64

	hasLast  bool
	lastTime float64
	lastX    float64
	lastY    float64
}

// NewTapRecognizer creates a recognizer with the default slop and interval.
func NewTapRecognizer() *TapRecognizer {
	return &TapRecognizer{
		Slop:              defaultTapSlop,
		DoubleTapInterval: defaultDoubleTapInterval,
	}
}

// Pointer reports the pointer position and button state at time now
// (seconds, monotonic).
func (r *TapRecognizer) Pointer(x, y float64, pressed bool, now float64) {
	if pressed {
		if !r.down {
			r.down = true
			r.cancelled = false
			r.startX, r.startY = x, y
			return
		}
		if dist(x, y, r.startX, r.startY) > r.Slop {
			r.cancelled = true
		}
		return
	}

	if !r.down {
		return
	}
	r.down = false
	if r.cancelled || dist(x, y, r.startX, r.startY) > r.Slop {
		return
	}

	ctx := TapContext{X: x, Y: y, Time: now, Count: 1}
	if r.hasLast && now-r.lastTime <= r.DoubleTapInterval &&
		dist(x, y, r.lastX, r.lastY) <= r.Slop {
		ctx.Count = 2
	}

	if r.OnTap != nil {
		r.OnTap(ctx)
	}
	if ctx.Count == 2 {
		r.hasLast = false
		if r.OnDoubleTap != nil {
			r.OnDoubleTap(ctx)
		}
		return
	}
	r.hasLast = true
	r.lastTime, r.lastX, r.lastY = now, x, y
}

// Cancel abandons a press in progress and forgets the previous tap.
func (r *TapRecognizer) Cancel() {
	r.down = false
	r.cancelled = false
	r.hasLast = false
}

// Pressed reports whether a press is in progress.
func (r *TapRecognizer) Pressed() bool {
	return r.down
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
