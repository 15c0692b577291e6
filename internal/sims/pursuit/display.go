package pursuit

import (
	"image/color"

	"heartmaze/internal/core"
	"heartmaze/internal/theme"
)

// Display buffer values, one per cell. Actors are drawn over items, items
// over terrain.
const (
	DisplayFloor uint8 = iota
	DisplayWall
	DisplayToken
	DisplayRoleReversal
	DisplayFreeze
	DisplayMassElimination
	DisplayPlayer
	DisplayPursuer
	DisplayPursuerVulnerable
	DisplayPursuerIncapacitated
	displayCount
)

// Render writes the display encoding of snap over grid into buf, growing it
// as needed, and returns it.
func Render(grid *core.Grid, snap Snapshot, buf []uint8) []uint8 {
	if grid == nil {
		return buf[:0]
	}
	total := grid.W * grid.H
	if cap(buf) < total {
		buf = make([]uint8, total)
	}
	buf = buf[:total]
	for i, c := range grid.Cells() {
		if c == core.CellWall {
			buf[i] = DisplayWall
			continue
		}
		buf[i] = DisplayFloor
	}
	set := func(p core.Point, v uint8) {
		if grid.InBounds(p) {
			buf[grid.Index(p.X, p.Y)] = v
		}
	}
	for _, p := range snap.Tokens {
		set(p, DisplayToken)
	}
	for _, pu := range snap.PowerUps {
		set(pu.Pos, DisplayRoleReversal+uint8(pu.Kind))
	}
	if snap.Outcome != OutcomeIdle {
		set(snap.Player, DisplayPlayer)
	}
	for _, p := range snap.Pursuers {
		set(p.Pos, DisplayPursuer+uint8(p.State))
	}
	return buf
}

// Palette maps display values to colors for t.
func Palette(t theme.Theme) []color.RGBA {
	p := make([]color.RGBA, displayCount)
	p[DisplayFloor] = t.Background
	p[DisplayWall] = t.Surface
	p[DisplayToken] = t.Primary
	p[DisplayRoleReversal] = t.Accent
	p[DisplayFreeze] = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	p[DisplayMassElimination] = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	p[DisplayPlayer] = t.Text
	p[DisplayPursuer] = color.RGBA{R: 200, G: 30, B: 60, A: 255}
	p[DisplayPursuerVulnerable] = color.RGBA{R: 90, G: 90, B: 230, A: 255}
	p[DisplayPursuerIncapacitated] = theme.Dim(t.Secondary, 0.6)
	return p
}

// Glyph returns the terminal rune for a display value.
func Glyph(v uint8, t theme.Theme) rune {
	switch v {
	case DisplayWall:
		return '█'
	case DisplayToken:
		return t.Token
	case DisplayRoleReversal:
		return 'R'
	case DisplayFreeze:
		return 'F'
	case DisplayMassElimination:
		return 'M'
	case DisplayPlayer:
		return '@'
	case DisplayPursuer:
		return 'G'
	case DisplayPursuerVulnerable:
		return 'g'
	case DisplayPursuerIncapacitated:
		return 'z'
	default:
		return ' '
	}
}
