package components

import (
	"image/color"
)

// RectCommand asks the frontend to fill a rectangle
type RectCommand struct {
	Rect  Rect
	Color color.RGBA
}

// TextCommand asks the frontend to print a label at a pixel position
type TextCommand struct {
	Text  string
	X, Y  float64
	Scale float64
	Color color.RGBA
}

// DrawList collects the draw requests of one frame in painting order
type DrawList struct {
	Background color.RGBA
	Rects      []RectCommand
	Texts      []TextCommand
}

// NewDrawList creates an empty draw list
func NewDrawList() *DrawList {
	return &DrawList{
		Rects: make([]RectCommand, 0, 1024),
		Texts: make([]TextCommand, 0, 32),
	}
}

// Reset clears the list for the next frame, keeping its capacity
func (d *DrawList) Reset(background color.RGBA) {
	d.Background = background
	d.Rects = d.Rects[:0]
	d.Texts = d.Texts[:0]
}

// FillRect queues a filled rectangle
func (d *DrawList) FillRect(r Rect, c color.RGBA) {
	d.Rects = append(d.Rects, RectCommand{Rect: r, Color: c})
}

// Text queues a text label
func (d *DrawList) Text(s string, x, y, scale float64, c color.RGBA) {
	d.Texts = append(d.Texts, TextCommand{Text: s, X: x, Y: y, Scale: scale, Color: c})
}
