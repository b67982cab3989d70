// Package render runs a layeranim scene in an [Ebitengine] window.
//
// The window shows every view's frame and ball. Clicking or touching a view
// drives its tap recognizer: one tap freezes the ball where it is, a double
// tap sends it to the other end. The number keys apply the toggle presets.
//
// [Ebitengine]: https://ebitengine.org
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/layeranim"
	"golang.org/x/image/font/basicfont"
)

const defaultTPS = 60

// RunConfig configures Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background is the window clear color.
	Background layeranim.Color
	// Presets are bound to the number keys, in order. Nil uses
	// layeranim.DefaultPresets.
	Presets []layeranim.Preset
}

// presetKeys are the keys that select Presets[0..8].
var presetKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game implements ebiten.Game for a layeranim scene.
type Game struct {
	scene  *layeranim.Scene
	config RunConfig

	// pointer and presetPressed read the live input. They are fields so the
	// update logic can run without a window.
	pointer       func() (x, y float64, pressed bool)
	presetPressed func() int

	face    text.Face
	canvas  map[*layeranim.View]*ebiten.Image
	fps     *fpsWidget
	lastMsg string
}

// NewGame wraps scene for ebiten.RunGame.
func NewGame(scene *layeranim.Scene, cfg RunConfig) *Game {
	if cfg.Presets == nil {
		cfg.Presets = layeranim.DefaultPresets()
	}
	if cfg.Background == (layeranim.Color{}) {
		cfg.Background = layeranim.Color{R: 1, G: 1, B: 1, A: 1}
	}
	g := &Game{
		scene:         scene,
		config:        cfg,
		pointer:       ebitenPointer,
		presetPressed: ebitenPresetPressed,
		face:          text.NewGoXFace(basicfont.Face7x13),
		canvas:        make(map[*layeranim.View]*ebiten.Image),
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g
}

// Update implements ebiten.Game. It feeds input to the scene and advances it
// by one tick. A failing test script ends the game with its error.
func (g *Game) Update() error {
	x, y, pressed := g.pointer()
	g.scene.Pointer(x, y, pressed)

	if i := g.presetPressed(); i >= 0 && i < len(g.config.Presets) {
		p := g.config.Presets[i]
		for _, v := range g.scene.Views() {
			v.Toggle(p.Animation)
		}
		g.lastMsg = p.Name
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	dt := 1.0 / float64(tps)
	g.scene.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return g.scene.Err()
}

// Draw implements ebiten.Game. Each view is painted into its own offscreen
// image, which is only repainted when its layer needs display.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.config.Background))

	for _, v := range g.scene.Views() {
		b := v.Layer.Bounds
		w, h := int(b.Width), int(b.Height)
		if w <= 0 || h <= 0 {
			continue
		}
		img := g.canvas[v]
		if img == nil || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			if img != nil {
				img.Deallocate()
			}
			img = ebiten.NewImage(w, h)
			g.canvas[v] = img
			v.Layer.SetNeedsDisplay()
		}
		v.Layer.Display(func(*layeranim.Layer) {
			img.Clear()
			paintView(img, v)
		})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.X, b.Y)
		screen.DrawImage(img, op)
	}

	g.drawLegend(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.config.Width, g.config.Height
}

// paintView draws v's frame and ball in layer-local coordinates.
func paintView(dst *ebiten.Image, v *layeranim.View) {
	b := v.Layer.Bounds
	st := v.Style
	half := st.FrameWidth / 2
	vector.StrokeRect(dst, float32(half), float32(half),
		float32(b.Width-st.FrameWidth), float32(b.Height-st.FrameWidth),
		float32(st.FrameWidth), toRGBA(st.FrameColor), true)

	ball := v.BallRect()
	cx := ball.X - b.X + ball.Width/2
	cy := ball.Y - b.Y + ball.Height/2
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(ball.Width/2), toRGBA(st.BallColor), true)
}

func (g *Game) drawLegend(screen *ebiten.Image) {
	lines := legendLines(g.config.Presets, g.lastMsg)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(g.config.Height-8-(len(lines)-i)*14))
		op.ColorScale.ScaleWithColor(color.Gray{Y: 64})
		text.Draw(screen, line, g.face, op)
	}
}

// legendLines lists the preset keys, followed by the last preset applied.
func legendLines(presets []layeranim.Preset, last string) []string {
	n := min(len(presets), len(presetKeys))
	lines := make([]string, 0, n+1)
	for i := range n {
		lines = append(lines, fmt.Sprintf("%d: %s", i+1, presets[i].Name))
	}
	if last != "" {
		lines = append(lines, "> "+last)
	}
	return lines
}

// ebitenPointer reports the left mouse button, or the first touch when the
// mouse is up.
func ebitenPointer() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return float64(mx), float64(my), true
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		return float64(tx), float64(ty), true
	}
	return float64(mx), float64(my), false
}

func ebitenPresetPressed() int {
	for i, k := range presetKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i
		}
	}
	return -1
}

// toRGBA converts a layeranim Color to a premultiplied color.RGBA.
func toRGBA(c layeranim.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Run opens a window and runs scene until the window is closed or the
// scene's test script fails.
func Run(scene *layeranim.Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("render: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	g := NewGame(scene, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}
