// Package term runs a layeranim scene in a terminal with tcell.
//
// The scene's first view fills the terminal above a one-line status bar.
// Coordinates are cells. Keys: t taps the view, d double taps it, 1-9 apply
// the toggle presets, q or Esc quits. Mouse clicks tap and double tap too.
package term

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/layeranim"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	cellTapSlop   = 1.0
)

// Config configures an App.
type Config struct {
	// Presets are bound to the keys 1-9, in order. Nil uses
	// layeranim.DefaultPresets.
	Presets []layeranim.Preset
	// Sound enables a click on taps and toggles. Audio failures are not
	// fatal.
	Sound bool
	// Next receives every event after the app has seen it.
	Next layeranim.EventSink
}

// App draws one view of a scene on a tcell screen and feeds it input.
type App struct {
	screen tcell.Screen
	scene  *layeranim.Scene
	view   *layeranim.View
	config Config
	sound  *Sound

	status string
	taps   int
}

// NewApp binds scene's first view to screen. The screen must already be
// initialized.
func NewApp(screen tcell.Screen, scene *layeranim.Scene, cfg Config) (*App, error) {
	views := scene.Views()
	if len(views) == 0 {
		return nil, fmt.Errorf("term: scene has no views")
	}
	if cfg.Presets == nil {
		cfg.Presets = layeranim.DefaultPresets()
	}
	a := &App{
		screen: screen,
		scene:  scene,
		view:   views[0],
		config: cfg,
	}
	a.view.Style.Diameter = 1
	a.view.Gestures.Slop = cellTapSlop
	scene.SetEventSink(a)
	a.layout()
	return a, nil
}

// EmitEvent implements layeranim.EventSink.
func (a *App) EmitEvent(e layeranim.TransitionEvent) {
	switch e.Type {
	case layeranim.EventValueCommitted:
		a.taps++
		a.status = fmt.Sprintf("tap: committed %.2f", e.To)
		a.sound.Play()
	case layeranim.EventValueToggled:
		a.status = fmt.Sprintf("double tap: %.0f -> %.0f", e.From, e.To)
		a.sound.Play()
	}
	if a.config.Next != nil {
		a.config.Next.EmitEvent(e)
	}
}

// layout sizes the view to the terminal, inside a one-cell frame and above
// the status bar.
func (a *App) layout() {
	w, h := a.screen.Size()
	a.view.Layer.Bounds = layeranim.Rect{
		X:      1,
		Y:      1,
		Width:  float64(max(w-2, 0)),
		Height: float64(max(h-3, 0)),
	}
	a.view.Layer.SetNeedsDisplay()
}

// HandleEvent applies one tcell event. It returns false when the app should
// quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.layout()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	cx, cy := a.viewCenter()
	switch {
	case r == 'q':
		return false
	case r == 't' || r == ' ':
		a.scene.InjectTap(cx, cy)
	case r == 'd':
		a.scene.InjectDoubleTap(cx, cy)
	case r >= '1' && r <= '9':
		i := int(r - '1')
		if i < len(a.config.Presets) {
			p := a.config.Presets[i]
			a.view.Toggle(p.Animation)
			a.status = "preset: " + p.Name
		}
	}
	return true
}

func (a *App) handleMouse(x, y int, buttons tcell.ButtonMask) {
	// Cell centers keep the pointer inside the view on its edges.
	a.scene.Pointer(float64(x)+0.5, float64(y)+0.5, buttons&tcell.Button1 != 0)
}

func (a *App) viewCenter() (float64, float64) {
	b := a.view.Layer.Bounds
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Step advances the scene by dt seconds and redraws.
func (a *App) Step(dt float64) error {
	a.scene.Update(dt)
	a.Draw()
	return a.scene.Err()
}

// Draw paints the frame, the ball and the status bar. The view area is only
// repainted when its layer needs display.
func (a *App) Draw() {
	a.view.Layer.Display(func(*layeranim.Layer) {
		a.screen.Clear()
		a.drawFrame()
		a.drawBall()
	})
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawFrame() {
	b := a.view.Layer.Bounds
	style := tcell.StyleDefault.Foreground(toTcell(a.view.Style.FrameColor))
	x0, y0 := int(b.X)-1, int(b.Y)-1
	x1, y1 := int(b.X+b.Width), int(b.Y+b.Height)
	for x := x0 + 1; x < x1; x++ {
		a.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		a.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		a.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		a.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	a.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	a.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	a.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	a.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func (a *App) drawBall() {
	b := a.view.Layer.Bounds
	if b.Width < 1 || b.Height < 1 {
		return
	}
	x, y := ballCell(a.view.BallRect())
	style := tcell.StyleDefault.Foreground(toTcell(a.view.Style.BallColor))
	a.screen.SetContent(x, y, '●', nil, style)
}

func (a *App) drawStatus() {
	w, h := a.screen.Size()
	if h == 0 {
		return
	}
	line := statusLine(a.view, a.status)
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		a.screen.SetContent(col, h-1, r, nil, tcell.StyleDefault.Reverse(true))
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, h-1, ' ', nil, tcell.StyleDefault.Reverse(true))
	}
}

// ballCell returns the cell holding the ball's top-left corner.
func ballCell(r layeranim.Rect) (int, int) {
	return int(math.Round(r.X)), int(math.Round(r.Y))
}

func statusLine(v *layeranim.View, msg string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " value %.2f  shown %.2f  %s", v.Value(),
		v.Layer.PresentationValue(layeranim.ValueKey), v.Layer.Status(layeranim.ValueKey))
	if msg != "" {
		sb.WriteString("  | ")
		sb.WriteString(msg)
	}
	sb.WriteString("  [t]ap [d]ouble [1-9] preset [q]uit")
	return sb.String()
}

// toTcell converts a layeranim Color to a tcell RGB color, ignoring alpha.
func toTcell(c layeranim.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Run drives the app until the user quits or the scene's test script
// fails.
func (a *App) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	a.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := a.Step(dt); err != nil {
				return err
			}
		}
	}
}

// Run opens the terminal, runs scene in it and restores the terminal on
// exit.
func Run(scene *layeranim.Scene, cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	app, err := NewApp(screen, scene, cfg)
	if err != nil {
		return err
	}
	if cfg.Sound {
		app.sound = NewSound()
		if err := app.sound.Initialize(); err != nil {
			// Non-fatal, the demo can run without sound
			app.status = fmt.Sprintf("audio disabled: %v", err)
		}
		defer app.sound.Close()
	}
	return app.Run()
}
