package screens

import (
	"image/color"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/systems"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	lines      []string
	width      float64
	height     float64
	background color.RGBA
	textColor  color.RGBA
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title string, lines []string, width, height float64) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(title),
		title:      title,
		lines:      lines,
		width:      width,
		height:     height,
		background: systems.PanelColor,
		textColor:  systems.TextColor,
	}
}

// SetLines replaces the body text
func (s *ModalScreen) SetLines(lines []string) {
	s.lines = lines
}

// Lines returns the body text
func (s *ModalScreen) Lines() []string {
	return s.lines
}

// Bounds returns the panel rectangle, centred on the screen
func (s *ModalScreen) Bounds() components.Rect {
	return components.Rect{
		X: (config.ScreenSize - s.width) / 2,
		Y: (config.ScreenSize - s.height) / 2,
		W: s.width,
		H: s.height,
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(rs *systems.RenderSystem) {
	r := s.Bounds()
	rs.DrawPanel(r, s.background)

	rs.DrawCentered(s.title, r.Y+12, 2, s.textColor)

	for i, line := range s.lines {
		rs.DrawCentered(line, r.Y+50+float64(i)*systems.GlyphHeight*1.25, 1, s.textColor)
	}
}
