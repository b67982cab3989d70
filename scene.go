package layeranim

// Scene is the top-level object that owns the views, the clock, pointer
// routing and event forwarding. Platform adapters call Pointer with the
// live pointer state and Update once per frame.
type Scene struct {
	views []*View
	sink  EventSink
	debug bool
	now   float64

	captured    *View
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	err         error
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddView appends v to the scene. Later views are hit-tested first.
func (s *Scene) AddView(v *View) {
	v.Layer.sink = s.sink
	v.Layer.debug = s.debug
	s.views = append(s.views, v)
}

// RemoveView detaches v from the scene. The view's layer is not disposed.
func (s *Scene) RemoveView(v *View) {
	for i, c := range s.views {
		if c == v {
			copy(s.views[i:], s.views[i+1:])
			s.views[len(s.views)-1] = nil
			s.views = s.views[:len(s.views)-1]
			break
		}
	}
	if s.captured == v {
		s.captured = nil
	}
	v.Layer.sink = nil
	v.Layer.debug = false
}

// Views returns the view list. The returned slice MUST NOT be mutated.
func (s *Scene) Views() []*View {
	return s.views
}

// View returns the first view whose layer has the given name, or nil.
func (s *Scene) View(name string) *View {
	for _, v := range s.views {
		if v.Layer.Name == name {
			return v
		}
	}
	return nil
}

// Time returns the scene clock in seconds.
func (s *Scene) Time() float64 {
	return s.now
}

// Update advances the clock and every layer by dt seconds, then runs the
// attached script and one queued synthetic pointer event.
func (s *Scene) Update(dt float64) {
	s.now += dt
	for _, v := range s.views {
		v.Layer.Tick(dt)
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
}

// Pointer reports the live pointer state in scene coordinates. It is
// ignored while synthetic events are queued.
func (s *Scene) Pointer(x, y float64, pressed bool) {
	if len(s.injectQueue) > 0 {
		return
	}
	s.processPointer(x, y, pressed)
}

// processPointer routes a pointer sample to the view that captured the
// press, or on press to the topmost view under the pointer.
func (s *Scene) processPointer(x, y float64, pressed bool) {
	if s.captured == nil {
		if !pressed {
			return
		}
		s.captured = s.hitTest(x, y)
		if s.captured == nil {
			return
		}
	}
	v := s.captured
	v.Gestures.Pointer(x, y, pressed, s.now)
	if !pressed {
		s.captured = nil
	}
}

func (s *Scene) hitTest(x, y float64) *View {
	for i := len(s.views) - 1; i >= 0; i-- {
		v := s.views[i]
		if v.Layer.IsDisposed() || v.Gestures == nil {
			continue
		}
		if v.Layer.Bounds.Contains(x, y) {
			return v
		}
	}
	return nil
}

// SetEventSink sets the optional event bridge for every current and future
// view.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
	for _, v := range s.views {
		v.Layer.sink = sink
	}
}

// SetDebugMode enables or disables debug mode. When enabled, every
// transition and gesture event is logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	for _, v := range s.views {
		v.Layer.debug = enabled
	}
}

// Err returns the first error reported by the attached test script.
func (s *Scene) Err() error {
	return s.err
}
