package core

// Cell is the static kind of a grid cell.
type Cell uint8

const (
	CellFloor Cell = iota
	CellWall
)

// Grid stores a 2D matrix of cell kinds in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-floor grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// At returns the cell at p. Out-of-bounds coordinates read as walls.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.data[g.Index(p.X, p.Y)]
}

// Set writes the cell at p; out-of-bounds writes are ignored.
func (g *Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g.data[g.Index(p.X, p.Y)] = c
	}
}

// Open reports whether p is an in-bounds floor cell.
func (g *Grid) Open(p Point) bool { return g.At(p) == CellFloor }

// Floors returns every floor cell in row-major order.
func (g *Grid) Floors() []Point {
	out := make([]Point, 0, len(g.data))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.data[g.Index(x, y)] == CellFloor {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Border walls off the outermost ring.
func (g *Grid) Border() {
	for x := 0; x < g.W; x++ {
		g.Set(Point{X: x, Y: 0}, CellWall)
		g.Set(Point{X: x, Y: g.H - 1}, CellWall)
	}
	for y := 0; y < g.H; y++ {
		g.Set(Point{X: 0, Y: y}, CellWall)
		g.Set(Point{X: g.W - 1, Y: y}, CellWall)
	}
}

// NearestOpen returns the floor cell closest to p in breadth-first order over
// the four directions, walking through walls. ok is false on an all-wall grid.
func (g *Grid) NearestOpen(p Point) (Point, bool) {
	if g.Open(p) {
		return p, true
	}
	if !g.InBounds(p) {
		p.X = clamp(p.X, 0, g.W-1)
		p.Y = clamp(p.Y, 0, g.H-1)
		if g.Open(p) {
			return p, true
		}
	}
	seen := make([]bool, len(g.data))
	seen[g.Index(p.X, p.Y)] = true
	queue := []Point{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next := cur.Add(d)
			if !g.InBounds(next) {
				continue
			}
			idx := g.Index(next.X, next.Y)
			if seen[idx] {
				continue
			}
			if g.data[idx] == CellFloor {
				return next, true
			}
			seen[idx] = true
			queue = append(queue, next)
		}
	}
	return Point{}, false
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
