package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/screens"
	"ebiten-snake/systems"
	"ebiten-snake/systems/sound"
)

// Terminal cells are about twice as tall as wide, so each grid cell takes two columns
const (
	columnsPerCell = 2
	pixelsPerCol   = float64(config.CellSize) / columnsPerCell
	pixelsPerRow   = float64(config.CellSize)
)

// TerminalGame hosts the session in a tcell screen
type TerminalGame struct {
	screen  tcell.Screen
	session *screens.Session
	list    *components.DrawList
	tones   *sound.ToneSystem
}

// runTerminal plays the session in the terminal until the player exits
func runTerminal(session *screens.Session, settings config.Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	tones := sound.NewToneSystem(settings.Muted)
	defer tones.Close()
	sound.ConnectSounds(session.World(), tones)

	game := &TerminalGame{
		screen:  screen,
		session: session,
		list:    components.NewDrawList(),
		tones:   tones,
	}
	return game.run()
}

func (g *TerminalGame) run() error {
	eventChan := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(g.screen.PollEvent, eventChan, done)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				input, ok := translateKey(ev)
				if !ok {
					continue
				}
				if err := g.session.HandleInput(input); err != nil {
					if errors.Is(err, screens.ErrQuit) {
						return nil
					}
					return err
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.session.Update(dt); err != nil {
				if errors.Is(err, screens.ErrQuit) {
					return nil
				}
				return err
			}
			g.draw()
		}
	}
}

// forwardEvents feeds polled events into events until poll returns nil or
// done is closed
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// translateKey maps a tcell key event to a session input event
func translateKey(ev *tcell.EventKey) (components.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return components.KeyEvent(components.KeyUp), true
	case tcell.KeyDown:
		return components.KeyEvent(components.KeyDown), true
	case tcell.KeyLeft:
		return components.KeyEvent(components.KeyLeft), true
	case tcell.KeyRight:
		return components.KeyEvent(components.KeyRight), true
	case tcell.KeyEnter:
		return components.KeyEvent(components.KeyEnter), true
	case tcell.KeyEscape:
		return components.KeyEvent(components.KeyEscape), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return components.KeyEvent(components.KeyBackspace), true
	case tcell.KeyF1:
		return components.KeyEvent(components.KeyDebug), true
	case tcell.KeyRune:
		return components.CharEvent(ev.Rune()), true
	}
	return components.InputEvent{}, false
}

// draw paints the draw list onto terminal cells
func (g *TerminalGame) draw() {
	g.session.Draw(g.list)

	bg := toTerminalColor(g.list.Background, g.list.Background)
	g.screen.Fill(' ', tcell.StyleDefault.Background(bg))

	for _, cmd := range g.list.Rects {
		g.fillRect(cmd)
	}
	for _, cmd := range g.list.Texts {
		g.drawText(cmd)
	}

	g.screen.Show()
}

// fillRect paints every cell the rectangle covers. A side thinner than a cell
// collapses to the row or column under its centre.
func (g *TerminalGame) fillRect(cmd components.RectCommand) {
	if cmd.Color.A == 0 {
		return
	}
	r := cmd.Rect
	x0 := int(math.Floor(r.X / pixelsPerCol))
	y0 := int(math.Floor(r.Y / pixelsPerRow))
	x1 := int(math.Ceil((r.X + r.W) / pixelsPerCol))
	y1 := int(math.Ceil((r.Y + r.H) / pixelsPerRow))
	if r.W < pixelsPerCol {
		x0 = int((r.X + r.W/2) / pixelsPerCol)
		x1 = x0 + 1
	}
	if r.H < pixelsPerRow {
		y0 = int((r.Y + r.H/2) / pixelsPerRow)
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			_, _, style, _ := g.screen.GetContent(x, y)
			_, under, _ := style.Decompose()
			c := toTerminalColor(cmd.Color, fromTerminalColor(under, g.list.Background))
			g.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(c))
		}
	}
}

// drawText prints a label one rune per column, keeping the cell backgrounds
func (g *TerminalGame) drawText(cmd components.TextCommand) {
	col := int(cmd.X / pixelsPerCol)
	row := int((cmd.Y + systems.GlyphHeight*cmd.Scale/2) / pixelsPerRow)
	fg := toTerminalColor(cmd.Color, g.list.Background)

	for i, r := range []rune(cmd.Text) {
		_, _, style, _ := g.screen.GetContent(col+i, row)
		_, bg, _ := style.Decompose()
		g.screen.SetContent(col+i, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

// toTerminalColor blends a translucent colour over the colour beneath it
func toTerminalColor(c, under color.RGBA) tcell.Color {
	a := int32(c.A)
	blend := func(top, bottom uint8) int32 {
		return (int32(top)*a + int32(bottom)*(255-a)) / 255
	}
	return tcell.NewRGBColor(blend(c.R, under.R), blend(c.G, under.G), blend(c.B, under.B))
}

// fromTerminalColor recovers the RGB value of a painted cell
func fromTerminalColor(c tcell.Color, fallback color.RGBA) color.RGBA {
	if !c.Valid() || c == tcell.ColorDefault {
		return fallback
	}
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
