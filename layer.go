package layeranim

import (
	"maps"
	"slices"
)

// Animatable is the capability set the installer and interruption resolver
// need from a drawable. *Layer applies changes immediately; *Transaction
// stages them until Commit.
type Animatable interface {
	ModelValue(key string) float64
	PresentationValue(key string) float64
	SetModelValue(key string, v float64)
	IsAnimating(key string) bool
	AddTransition(key string, t *Transition)
	RemoveTransition(key string)
	SetNeedsDisplay()
}

// layerIDCounter is a plain counter (no atomic: layers are owned by one thread).
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// Layer is a drawable that paints itself purely from its property values.
// It owns its model values and at most one Transition per property key.
//
// A Layer is not safe for concurrent use. All calls must come from the
// thread that drives Tick and draws the layer.
type Layer struct {
	ID     uint32
	Name   string
	Bounds Rect

	values      map[string]float64
	transitions map[string]*Transition
	now         float64

	needsDisplay bool
	disposed     bool

	sink  EventSink
	debug bool
}

// NewLayer creates a layer with the given name and bounds.
func NewLayer(name string, bounds Rect) *Layer {
	return &Layer{
		ID:           nextLayerID(),
		Name:         name,
		Bounds:       bounds,
		values:       make(map[string]float64),
		transitions:  make(map[string]*Transition),
		needsDisplay: true,
	}
}

// Time returns the layer clock in seconds.
func (l *Layer) Time() float64 {
	return l.now
}

// ModelValue returns the committed value for key (zero if never set).
func (l *Layer) ModelValue(key string) float64 {
	return l.values[key]
}

// SetModelValue sets the committed value for key and marks the layer for
// display. Any running transition keeps running.
func (l *Layer) SetModelValue(key string, v float64) {
	if l.disposed {
		return
	}
	l.values[key] = v
	l.needsDisplay = true
}

// PresentationValue returns the value currently on screen for key: the
// running transition's interpolated value, or the model value when idle.
func (l *Layer) PresentationValue(key string) float64 {
	if t, ok := l.transitions[key]; ok {
		v, _ := t.Sample(l.now - t.beginTime)
		return v
	}
	return l.values[key]
}

// IsAnimating reports whether a transition is installed for key.
func (l *Layer) IsAnimating(key string) bool {
	_, ok := l.transitions[key]
	return ok
}

// Status returns the state of key's transition slot.
func (l *Layer) Status(key string) TransitionStatus {
	if l.IsAnimating(key) {
		return StatusAnimating
	}
	return StatusIdle
}

// Transition returns the transition installed for key, or nil.
func (l *Layer) Transition(key string) *Transition {
	return l.transitions[key]
}

// NumTransitions returns the number of installed transitions.
func (l *Layer) NumTransitions() int {
	return len(l.transitions)
}

// AddTransition installs t under key, replacing any transition already
// there. The transition starts at the current layer time.
func (l *Layer) AddTransition(key string, t *Transition) {
	if l.disposed || t == nil {
		return
	}
	l.RemoveTransition(key)
	t.Key = key
	t.beginTime = l.now
	l.transitions[key] = t
	l.needsDisplay = true
	l.emit(EventTransitionInstalled, key, t.From, t.To)
}

// RemoveTransition removes the transition installed under key, if any.
func (l *Layer) RemoveTransition(key string) {
	t, ok := l.transitions[key]
	if !ok {
		return
	}
	delete(l.transitions, key)
	l.needsDisplay = true
	l.emit(EventTransitionRemoved, key, t.From, t.To)
}

// Tick advances the layer clock by dt seconds and retires transitions that
// have run their full duration.
func (l *Layer) Tick(dt float64) {
	if l.disposed {
		return
	}
	l.now += dt
	if len(l.transitions) == 0 {
		return
	}
	for _, key := range slices.Sorted(maps.Keys(l.transitions)) {
		t := l.transitions[key]
		if _, finished := t.Sample(l.now - t.beginTime); finished {
			delete(l.transitions, key)
			l.emit(EventTransitionCompleted, key, t.From, t.To)
		}
	}
	// Running or just-finished transitions change what is on screen.
	l.needsDisplay = true
}

// SetNeedsDisplay marks the layer for redraw.
func (l *Layer) SetNeedsDisplay() {
	l.needsDisplay = true
}

// NeedsDisplay reports whether the layer must be redrawn.
func (l *Layer) NeedsDisplay() bool {
	return l.needsDisplay
}

// Display calls draw if the layer needs display and clears the flag.
// Reports whether draw was called.
func (l *Layer) Display(draw func(*Layer)) bool {
	if !l.needsDisplay || l.disposed {
		return false
	}
	l.needsDisplay = false
	if draw != nil {
		draw(l)
	}
	return true
}

// Begin opens a transaction on the layer.
func (l *Layer) Begin() *Transaction {
	return &Transaction{layer: l}
}

// Batch runs fn inside a transaction. The transaction is committed on every
// exit path, including when fn returns an error or panics.
func (l *Layer) Batch(fn func(tx *Transaction) error) error {
	tx := l.Begin()
	defer tx.Commit()
	return fn(tx)
}

// Dispose removes all transitions and marks the layer as disposed. Further
// mutations are ignored.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	for _, key := range slices.Sorted(maps.Keys(l.transitions)) {
		l.RemoveTransition(key)
	}
	l.disposed = true
	l.sink = nil
}

// IsDisposed returns true if this layer has been disposed.
func (l *Layer) IsDisposed() bool {
	return l.disposed
}

func (l *Layer) emit(typ EventType, key string, from, to float64) {
	event := TransitionEvent{Type: typ, LayerID: l.ID, Key: key, From: from, To: to, Time: l.now}
	if l.debug {
		debugLogEvent(l.Name, event)
	}
	if l.sink != nil {
		l.sink.EmitEvent(event)
	}
}
