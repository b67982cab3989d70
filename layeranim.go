package layeranim

// ValueKey is the property key every View installs its transitions under.
const ValueKey = "value"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies a kind of transition or gesture event.
type EventType uint8

const (
	EventTransitionInstalled EventType = iota // a transition was added under a key
	EventTransitionRemoved                    // a transition was removed before finishing
	EventTransitionCompleted                  // a transition ran to its full duration
	EventValueCommitted                       // a tap committed the presented value
	EventValueToggled                         // a double tap toggled the committed value
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventTransitionInstalled:
		return "installed"
	case EventTransitionRemoved:
		return "removed"
	case EventTransitionCompleted:
		return "completed"
	case EventValueCommitted:
		return "committed"
	case EventValueToggled:
		return "toggled"
	default:
		return "unknown"
	}
}

// TransitionEvent carries event data for an EventSink.
type TransitionEvent struct {
	Type    EventType
	LayerID uint32
	Key     string
	// From and To are the interpolation endpoints for transition events and
	// the old and new committed values for gesture events.
	From float64
	To   float64
	// Time is the layer clock, in seconds, when the event happened.
	Time float64
}

// EventSink is the interface for optional event forwarding (e.g. to an ECS).
type EventSink interface {
	EmitEvent(event TransitionEvent)
}
