// Package game implements the 2048 simulation: the board model, the movement
// resolver, tick-driven tile animation and the turn controller that ties them
// together. It has no terminal or network dependencies; the platform layer
// drives it through the registry.Game interface.
package game

import "fmt"

// Position is a 0-indexed (row, col) cell on the grid.
// It is a comparable value type and is used directly as a map key.
type Position struct {
	Row int
	Col int
}

// Pos is a shorthand constructor for Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the neighbouring position one cell along dir.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// In reports whether p lies inside an n×n grid.
func (p Position) In(n int) bool {
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every direction in a fixed order.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// Delta returns the unit vector (dRow, dCol) for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection accepts "left", "right", "up" and "down", plus the single
// letters L, R, U and D used by replay move strings.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left", "L", "l":
		return DirLeft, true
	case "right", "R", "r":
		return DirRight, true
	case "up", "U", "u":
		return DirUp, true
	case "down", "D", "d":
		return DirDown, true
	default:
		return 0, false
	}
}
