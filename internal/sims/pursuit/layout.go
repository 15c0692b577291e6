package pursuit

import (
	"errors"
	"fmt"
	"sort"

	"heartmaze/internal/core"
)

// Layout glyphs.
const (
	GlyphWall         = '#'
	GlyphFloor        = '.'
	GlyphSpawn        = 'P'
	GlyphPursuerSpawn = 'G'
)

var (
	ErrEmptyLayout   = errors.New("layout has no rows")
	ErrRaggedLayout  = errors.New("layout rows differ in width")
	ErrNoSpawn       = errors.New("layout has no player spawn")
	ErrBadGlyph      = errors.New("layout contains an unknown glyph")
	ErrUnknownLayout = errors.New("unknown layout")
)

// Layout is a parsed maze: its grid, the player spawn, and optional pursuer
// spawn cells. Without explicit pursuer spawns the interior corners are used.
type Layout struct {
	Name          string
	Grid          *core.Grid
	Spawn         core.Point
	PursuerSpawns []core.Point
}

var builtinLayouts = map[string][]string{
	"open": {
		"###############",
		"#.............#",
		"#.............#",
		"#.............#",
		"#.............#",
		"#.............#",
		"#.............#",
		"#......P......#",
		"#.............#",
		"#.............#",
		"#.............#",
		"#.............#",
		"#.............#",
		"#.............#",
		"###############",
	},
	"garden": {
		"###############",
		"#.............#",
		"#.##.#####.##.#",
		"#.............#",
		"#.#.##.#.##.#.#",
		"#.#....#....#.#",
		"#.#.##...##.#.#",
		"#......P......#",
		"#.#.##...##.#.#",
		"#.#....#....#.#",
		"#.#.##.#.##.#.#",
		"#.............#",
		"#.##.#####.##.#",
		"#.............#",
		"###############",
	},
	"hall": {
		"#####################",
		"#.........#.........#",
		"#.###.###.#.###.###.#",
		"#...................#",
		"#.###.#.#####.#.###.#",
		"#.....#...P...#.....#",
		"#.###.#.#####.#.###.#",
		"#...................#",
		"#.###.###.#.###.###.#",
		"#.........#.........#",
		"#####################",
	},
}

// LayoutNames lists the built-in layouts.
func LayoutNames() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinLayout parses a named built-in layout.
func BuiltinLayout(name string) (Layout, error) {
	rows, ok := builtinLayouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return ParseLayout(name, rows)
}

// ParseLayout builds a Layout from text rows. Exactly one spawn glyph is
// expected; when several are present the first in row-major order wins.
func ParseLayout(name string, rows []string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, ErrEmptyLayout
	}
	w := len(rows[0])
	if w == 0 {
		return Layout{}, ErrEmptyLayout
	}
	g := core.NewGrid(w, len(rows))
	l := Layout{Name: name, Grid: g}
	spawned := false
	for y, row := range rows {
		if len(row) != w {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			p := core.Point{X: x, Y: y}
			switch row[x] {
			case GlyphWall:
				g.Set(p, core.CellWall)
			case GlyphFloor:
			case GlyphSpawn:
				if !spawned {
					l.Spawn = p
					spawned = true
				}
			case GlyphPursuerSpawn:
				l.PursuerSpawns = append(l.PursuerSpawns, p)
			default:
				return Layout{}, fmt.Errorf("%w %q at (%d,%d)", ErrBadGlyph, row[x], x, y)
			}
		}
	}
	if !spawned {
		return Layout{}, ErrNoSpawn
	}
	return l, nil
}

// Corners returns the four interior corners of g, clockwise from the top-left.
func Corners(g *core.Grid) []core.Point {
	return []core.Point{
		{X: 1, Y: 1},
		{X: g.W - 2, Y: 1},
		{X: g.W - 2, Y: g.H - 2},
		{X: 1, Y: g.H - 2},
	}
}

// ResolveLayout returns the layout selected by cfg.
func (c Config) ResolveLayout() (Layout, error) {
	if len(c.Grid) > 0 {
		return ParseLayout("custom", c.Grid)
	}
	return BuiltinLayout(c.Layout)
}
