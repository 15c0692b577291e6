package core

import "strings"

// Point is a grid coordinate: X is the column, Y the row, origin top-left.
type Point struct {
	X, Y int
}

// Add returns p translated by d's unit step.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Directions lists the moves in fallback priority order.
var Directions = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the column and row offsets of a single step.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// ParseDirection accepts the names produced by String plus single-letter
// vi/WASD aliases.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "w", "k":
		return DirUp
	case "right", "r", "d", "l":
		return DirRight
	case "down", "s", "j":
		return DirDown
	case "left", "a", "h":
		return DirLeft
	default:
		return DirNone
	}
}
