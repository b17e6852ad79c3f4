package systems

import (
	"fmt"
	"image/color"
	"math"

	"ebiten-snake/components"
	"ebiten-snake/config"
)

// Glyph metrics of the debug font used by both painters
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

// Palette
var (
	BackgroundColor = color.RGBA{26, 26, 38, 255}
	GridColor       = color.RGBA{38, 38, 51, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	HighlightColor  = color.RGBA{0, 255, 0, 255}
	HintColor       = color.RGBA{255, 255, 0, 255}
	PanelColor      = color.RGBA{0, 0, 0, 200}
	BorderColor     = color.RGBA{255, 255, 255, 255}

	foodColors = [...]color.RGBA{
		{255, 0, 0, 255},     // Red
		{255, 51, 51, 255},   // Light red
		{255, 102, 102, 255}, // Lighter red
		{255, 153, 153, 255}, // Even lighter red
		{255, 204, 204, 255}, // Very light red
	}
)

// RenderSystem turns game state into draw commands
type RenderSystem struct {
	list *components.DrawList
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Begin starts a frame on the given draw list
func (s *RenderSystem) Begin(list *components.DrawList) {
	s.list = list
	list.Reset(BackgroundColor)
}

// DrawBoard draws the checkerboard, the snake, the food and the particles
func (s *RenderSystem) DrawBoard(step *StepSystem, fx *EffectsSystem) {
	// Checkerboard
	for x := 0; x < config.GridSize; x++ {
		for y := 0; y < config.GridSize; y++ {
			if (x+y)%2 == 0 {
				s.list.FillRect(components.CellToPixel(components.Position{X: x, Y: y}), GridColor)
			}
		}
	}

	// Snake with a gradient from head to tail
	segments := step.Snake().Segments()
	for i, pos := range segments {
		progress := float64(i) / float64(len(segments))
		green := uint8((0.8 + progress*0.2) * 255)
		s.list.FillRect(components.CellToPixel(pos), color.RGBA{0, green, 0, 255})
	}

	// Pulsing food
	anim := fx.FoodAnimation()
	scale := 1.0 + math.Sin(anim*math.Pi)*0.2
	cell := components.CellToPixel(step.Food())
	size := cell.W * scale
	offset := (cell.W - size) / 2
	foodColor := foodColors[int(anim*5)%len(foodColors)]
	s.list.FillRect(components.Rect{X: cell.X + offset, Y: cell.Y + offset, W: size, H: size}, foodColor)

	// Particles
	for _, effect := range fx.Effects() {
		for _, p := range effect.Particles {
			if p.Lifetime <= 0 {
				continue
			}
			s.list.FillRect(components.Rect{
				X: p.X - p.Size/2,
				Y: p.Y - p.Size/2,
				W: p.Size,
				H: p.Size,
			}, p.Color)
		}
	}
}

// DrawHUD draws the score line at the top of the board
func (s *RenderSystem) DrawHUD(step *StepSystem) {
	hud := fmt.Sprintf("Score: %d | High Score: %d | Speed: %.2f | %s",
		step.Score(), step.HighScore(), step.Speed(), step.Difficulty())
	s.list.Text(hud, 10, 10, 1, TextColor)
}

// DrawMessages draws the newest n messages of a log, newest at the bottom
func (s *RenderSystem) DrawMessages(log *MessageLog, n int, x, bottom float64) {
	messages := log.RecentMessages(n)
	for i, msg := range messages {
		y := bottom - float64(i+1)*GlyphHeight
		s.list.Text(msg.Text, x, y, 1, msg.GetColor())
	}
}

// DrawPanel draws a filled box with a thin border
func (s *RenderSystem) DrawPanel(r components.Rect, fill color.RGBA) {
	const frame = 2.0
	s.list.FillRect(r, fill)
	s.list.FillRect(components.Rect{X: r.X, Y: r.Y, W: frame, H: r.H}, BorderColor)
	s.list.FillRect(components.Rect{X: r.X + r.W - frame, Y: r.Y, W: frame, H: r.H}, BorderColor)
	s.list.FillRect(components.Rect{X: r.X, Y: r.Y, W: r.W, H: frame}, BorderColor)
	s.list.FillRect(components.Rect{X: r.X, Y: r.Y + r.H - frame, W: r.W, H: frame}, BorderColor)
}

// DrawText draws a label at a pixel position
func (s *RenderSystem) DrawText(text string, x, y, scale float64, c color.RGBA) {
	s.list.Text(text, x, y, scale, c)
}

// DrawCentered draws a label horizontally centred on the screen
func (s *RenderSystem) DrawCentered(text string, y, scale float64, c color.RGBA) {
	s.list.Text(text, CenteredX(text, scale), y, scale, c)
}

// CenteredX returns the x coordinate that centres text on the screen
func CenteredX(text string, scale float64) float64 {
	width := float64(len(text)*GlyphWidth) * scale
	return (config.ScreenSize - width) / 2
}
