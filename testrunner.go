package layeranim

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action    string   `json:"action"`
	View      string   `json:"view,omitempty"`
	X         float64  `json:"x,omitempty"`
	Y         float64  `json:"y,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Animation string   `json:"animation,omitempty"`
	Frames    int      `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected taps, state changes and waits across frames
// for automated playback. Attach to a Scene via SetTestRunner.
//
// Supported actions:
//
//	{"action": "tap", "x": 10, "y": 20}           tap at a point
//	{"action": "tap", "view": "ball"}             tap the center of a view
//	{"action": "doubletap", "view": "ball"}       double tap
//	{"action": "animate", "view": "ball", "value": 1, "animation": "DefaultAnimation()"}
//	{"action": "wait", "frames": 30}
//
// An animate step without "animation" snaps. An unrecognized animation
// stops the script and is reported by Scene.Err.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "doubletap", "wait":
		case "animate":
			if st.Value == nil {
				return nil, fmt.Errorf("parse test script: step %d: animate needs a value", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if err := r.run(s, st); err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("test script step %d (%s): %w", r.cursor-1, st.Action, err)
		}
		r.done = true
		return
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) run(s *Scene, st testStep) error {
	switch st.Action {
	case "tap", "doubletap":
		x, y := st.X, st.Y
		if st.View != "" {
			v := s.View(st.View)
			if v == nil {
				return fmt.Errorf("no view named %q", st.View)
			}
			b := v.Layer.Bounds
			x, y = b.X+b.Width/2, b.Y+b.Height/2
		}
		if st.Action == "tap" {
			s.InjectTap(x, y)
		} else {
			s.InjectDoubleTap(x, y)
		}
	case "animate":
		v := s.View(st.View)
		if v == nil {
			return fmt.Errorf("no view named %q", st.View)
		}
		if st.Animation == "" {
			v.Update(*st.Value, nil)
			return nil
		}
		return v.UpdateDescription(*st.Value, st.Animation)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	return nil
}
