package layeranim

import "fmt"

// Style controls how a View paints its layer. It is passed in at
// construction; there are no process-wide style tables.
type Style struct {
	Diameter   float64
	BallColor  Color
	FrameColor Color
	FrameWidth float64
}

// DefaultStyle returns a red 20px ball inside a 2px blue frame.
func DefaultStyle() Style {
	return Style{
		Diameter:   20,
		BallColor:  Color{R: 1, A: 1},
		FrameColor: Color{B: 1, A: 1},
		FrameWidth: 2,
	}
}

// View binds a committed state value to a Layer. State changes arrive with
// an animation descriptor (the UI framework's transaction animation) and are
// installed on the layer's ValueKey property. Taps interrupt the running
// transition; double taps toggle the state between 0 and 1.
type View struct {
	Layer      *Layer
	Style      Style
	Parser     Parser
	Translator *Translator
	// Animation is used for double-tap toggles. Nil snaps.
	Animation Descriptor
	Gestures  *TapRecognizer

	value float64
}

// NewView creates a view with its own layer and tap recognizer wired to
// HandleTap and HandleDoubleTap.
func NewView(name string, bounds Rect, style Style) *View {
	v := &View{
		Layer:      NewLayer(name, bounds),
		Style:      style,
		Parser:     TextParser{},
		Translator: &Translator{},
		Animation:  DefaultAnimation(),
		Gestures:   NewTapRecognizer(),
	}
	v.Gestures.OnTap = func(TapContext) { v.HandleTap() }
	v.Gestures.OnDoubleTap = func(TapContext) { v.HandleDoubleTap() }
	return v
}

// Value returns the committed state value.
func (v *View) Value() float64 {
	return v.value
}

// Update commits value and animates the layer toward it with anim, starting
// from whatever is on screen. A nil anim snaps.
func (v *View) Update(value float64, anim Descriptor) {
	v.value = value
	engine := v.Translator.Translate(anim)
	tx := v.Layer.Begin()
	Install(tx, ValueKey, tx.PresentationValue(ValueKey), value, engine)
	tx.Commit()
}

// UpdateDescription is Update with an animation given in the framework's
// textual form. An unrecognized description aborts the update and leaves
// the view untouched.
func (v *View) UpdateDescription(value float64, description string) error {
	d, err := v.Parser.Parse(description)
	if err != nil {
		return fmt.Errorf("update %q: %w", v.Layer.Name, err)
	}
	v.Update(value, d)
	return nil
}

// HandleTap commits the on-screen value and cancels any running transition.
func (v *View) HandleTap() {
	old := v.value
	value, _ := CommitPresentation(v.Layer, ValueKey)
	v.value = value
	v.Layer.emit(EventValueCommitted, ValueKey, old, value)
}

// HandleDoubleTap toggles the state to 0 or 1, animated with v.Animation.
func (v *View) HandleDoubleTap() {
	old := v.value
	target := ToggleTarget(v.Layer.PresentationValue(ValueKey))
	v.Update(target, v.Animation)
	v.Layer.emit(EventValueToggled, ValueKey, old, target)
}

// BallRect returns the ball's bounding box for the current presentation
// value: horizontally centered, travelling from the top of the bounds at 0
// to the bottom at 1.
func (v *View) BallRect() Rect {
	b := v.Layer.Bounds
	d := v.Style.Diameter
	p := v.Layer.PresentationValue(ValueKey)
	return Rect{
		X:      b.X + (b.Width-d)/2,
		Y:      b.Y + (b.Height-d)*p,
		Width:  d,
		Height: d,
	}
}

// Preset is a named animation for toggling a view.
type Preset struct {
	Name      string
	Animation Descriptor
}

// DefaultPresets returns the toggle animations the demos offer, in order.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "no animation", Animation: nil},
		{Name: "default animation", Animation: DefaultAnimation()},
		{Name: "bouncy", Animation: Bouncy()},
		{Name: "ease in out", Animation: EaseInOut(0)},
		{Name: "custom curve", Animation: TimingCurve(0.17, 0.67, 0.96, -0.01, 0)},
	}
}

// ToggleValue returns the state a toggle button moves to: 0.2 from the
// upper half, 0.8 otherwise.
func ToggleValue(value float64) float64 {
	if value > 0.5 {
		return 0.2
	}
	return 0.8
}

// Toggle flips the committed state with ToggleValue, animated with anim.
func (v *View) Toggle(anim Descriptor) {
	v.Update(ToggleValue(v.value), anim)
}
