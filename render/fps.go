package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget shows the current FPS and TPS in the top-left corner. The text
// is refreshed every half second.
type fpsWidget struct {
	img        *ebiten.Image
	sinceDraw  float64
	needsPaint bool
}

func newFPSWidget() *fpsWidget {
	return &fpsWidget{needsPaint: true}
}

func (w *fpsWidget) update(dt float64) {
	w.sinceDraw += dt
	if w.sinceDraw < 0.5 {
		return
	}
	w.sinceDraw = 0
	w.needsPaint = true
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
	}
	if w.needsPaint {
		w.needsPaint = false
		w.img.Clear()
		// Semi-transparent background for readability
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(w.img, nil)
}
