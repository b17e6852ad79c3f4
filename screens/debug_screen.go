package screens

import (
	"image/color"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/systems"
)

// DebugScreen shows debug messages in a modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        float64
	height       float64
	background   color.RGBA
	textColor    color.RGBA
}

// NewDebugScreen creates a new debug screen over a message log
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen:   NewBaseScreen("debug"),
		log:          log,
		scrollOffset: 0,
		width:        560,
		height:       400,
		background:   color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:    systems.TextColor,
	}
}

// HandleInput handles scrolling and closing
func (s *DebugScreen) HandleInput(ev components.InputEvent) error {
	switch ev.Key {
	case components.KeyUp:
		s.scrollUp()
	case components.KeyDown:
		s.scrollDown()
	case components.KeyEscape:
		return ErrCloseScreen
	}
	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}
}

// ScrollOffset returns the index of the first visible message
func (s *DebugScreen) ScrollOffset() int {
	return s.scrollOffset
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(rs *systems.RenderSystem) {
	x := (config.ScreenSize - s.width) / 2
	y := (config.ScreenSize - s.height) / 2
	rs.DrawPanel(components.Rect{X: x, Y: y, W: s.width, H: s.height}, s.background)

	rs.DrawCentered("DEBUG LOG", y+8, 1, s.textColor)

	messages := s.log.Messages
	const startY = 30
	lineHeight := float64(systems.GlyphHeight)
	maxLines := int((s.height - startY - 24) / lineHeight)

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = len(messages) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		rs.DrawText(msg.Text, x+10, y+startY+float64(i)*lineHeight, 1, msg.GetColor())
	}

	// Scroll indicator
	if len(messages) > maxLines {
		track := s.height - startY
		barHeight := float64(maxLines) / float64(len(messages)) * track
		barY := y + startY + float64(startIdx)/float64(len(messages))*track
		rs.DrawPanel(components.Rect{X: x + s.width - 10, Y: barY, W: 5, H: barHeight}, s.textColor)
	}

	rs.DrawText("Up/Down: Scroll  ESC/F1: Close", x+10, y+s.height-20, 1, s.textColor)
}
