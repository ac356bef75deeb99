package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/tinsel"
)

// HUD is a corner overlay showing frame rates and scene state.
// The text is refreshed every ~0.5 seconds.
type HUD struct {
	img     *ebiten.Image
	elapsed float64
}

// NewHUD creates the overlay. Draw it after the scene each frame.
func NewHUD() *HUD {
	// 220x48 fits three lines of debug text.
	return &HUD{img: ebiten.NewImage(220, 48), elapsed: 1}
}

// Update refreshes the overlay text when due. Call once per tick.
func (h *HUD) Update(dt float64, e *tinsel.Engine) {
	h.elapsed += dt
	if h.elapsed < 0.5 {
		return
	}
	h.elapsed = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})

	st := e.State()
	photos := e.Registry().CountOf(tinsel.KindPhoto)
	ebitenutil.DebugPrint(h.img, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nmode: %s  particles: %d\nphoto: %d/%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		st.Mode, e.Registry().Len(),
		e.ActivePhotoOrdinal(), photos,
	))
}

// Draw blits the overlay to the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.img, &op)
}
