//go:build ebiten

package ui

import (
	"image/color"

	"heartmaze/internal/core"
	"heartmaze/internal/theme"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var helpLines = []string{
	"Arrows/WASD move",
	"Space pause  N step",
	"R restart  S new seed",
	"T theme  M mute",
	"H help  Q quit",
}

// Overlay draws banners over the board: the end-of-session summary, the
// pause marker, and the key help.
type Overlay struct {
	sim      core.Sim
	scale    int
	theme    theme.Theme
	showHelp bool
	paused   bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int, th theme.Theme) *Overlay {
	o := &Overlay{sim: sim, scale: scale, theme: th}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetTheme changes the banner colors.
func (o *Overlay) SetTheme(th theme.Theme) { o.theme = th }

// SetPaused toggles the pause marker.
func (o *Overlay) SetPaused(p bool) { o.paused = p }

// Update handles the help toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	scale := max(o.scale, 1)
	w, h := size.W*scale, size.H*scale
	if w <= 0 || h <= 0 {
		return
	}
	if o.showHelp {
		o.drawBox(screen, 4, 4, 170, len(helpLines)*statusSpacing+12, 200)
		for i, line := range helpLines {
			drawText(screen, line, 10, 10+i*statusSpacing, o.theme.Text)
		}
	}
	provider, ok := o.sim.(core.StatusProvider)
	if !ok {
		return
	}
	st := provider.Status()
	switch {
	case st.Terminal:
		o.drawBox(screen, 0, 0, w, h, 120)
		lines := append([]string{st.Headline}, st.Lines...)
		lines = append(lines, "R restart  S new seed")
		top := h/2 - len(lines)*statusSpacing/2
		for i, line := range lines {
			col := o.theme.Text
			if i == 0 {
				col = o.theme.Accent
			}
			lw, _ := text.Measure(line, face, 0)
			drawText(screen, line, (w-int(lw))/2, top+i*statusSpacing, col)
		}
	case o.paused:
		lw, _ := text.Measure("PAUSED", face, 0)
		drawText(screen, "PAUSED", w-int(lw)-8, 8, o.theme.Accent)
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, x, y, w, h int, alpha uint8) {
	bg := o.theme.Background
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
	op.ColorScale.ScaleAlpha(float32(alpha) / 255)
	screen.DrawImage(o.pixel, op)
}
