package components

import (
	"ebiten-snake/config"
)

// Position is a cell on the game grid
type Position struct {
	X, Y int
}

// Add returns the neighbouring cell one step in the given direction
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether the position lies on the grid
func InBounds(p Position) bool {
	return p.X >= 0 && p.X < config.GridSize && p.Y >= 0 && p.Y < config.GridSize
}

// Rect is an axis aligned rectangle in pixels
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centre point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CellToPixel maps a grid cell to its pixel rectangle
func CellToPixel(p Position) Rect {
	return Rect{
		X: float64(p.X * config.CellSize),
		Y: float64(p.Y * config.CellSize),
		W: config.CellSize,
		H: config.CellSize,
	}
}

// Direction constants for movement
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid offset of one step in this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	}
	return "Unknown"
}
