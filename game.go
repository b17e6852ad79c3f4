package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/screens"
	"ebiten-snake/systems"
	"ebiten-snake/systems/sound"
)

// keyBindings maps ebiten keys to session keys, in dispatch order
var keyBindings = []struct {
	key    ebiten.Key
	target components.Key
}{
	{ebiten.KeyArrowUp, components.KeyUp},
	{ebiten.KeyArrowDown, components.KeyDown},
	{ebiten.KeyArrowLeft, components.KeyLeft},
	{ebiten.KeyArrowRight, components.KeyRight},
	{ebiten.KeyEnter, components.KeyEnter},
	{ebiten.KeyNumpadEnter, components.KeyEnter},
	{ebiten.KeyEscape, components.KeyEscape},
	{ebiten.KeyF1, components.KeyDebug},
}

// Game implements ebiten.Game interface.
type Game struct {
	session *screens.Session
	list    *components.DrawList
	chars   []rune

	// Rendered labels, reused while the text stays on screen
	labels     map[string]*ebiten.Image
	usedLabels map[string]bool
}

// NewGame creates a new game instance
func NewGame(session *screens.Session) *Game {
	return &Game{
		session:    session,
		list:       components.NewDrawList(),
		labels:     make(map[string]*ebiten.Image),
		usedLabels: make(map[string]bool),
	}
}

// runWindow opens the window and runs the session until the player exits
func runWindow(session *screens.Session, settings config.Settings) error {
	audioSystem := sound.NewAudioSystem(settings.ResourceDir, settings.Muted)
	sound.ConnectSounds(session.World(), audioSystem)

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetWindowTitle("Snake Game")

	return ebiten.RunGame(NewGame(session))
}

// Update translates this frame's input and advances the session.
func (g *Game) Update() error {
	for _, binding := range keyBindings {
		if inpututil.IsKeyJustPressed(binding.key) {
			if err := g.dispatch(components.KeyEvent(binding.target)); err != nil {
				return err
			}
		}
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		if err := g.dispatch(components.KeyEvent(components.KeyBackspace)); err != nil {
			return err
		}
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if err := g.dispatch(components.CharEvent(r)); err != nil {
			return err
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	return g.translate(g.session.Update(dt))
}

func (g *Game) dispatch(ev components.InputEvent) error {
	return g.translate(g.session.HandleInput(ev))
}

// translate turns the quit transition into a clean shutdown
func (g *Game) translate(err error) error {
	if errors.Is(err, screens.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// repeatingKeyPressed reports key presses with auto repeat while held
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// Draw paints the session's draw list
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(g.list)

	screen.Fill(g.list.Background)

	for _, cmd := range g.list.Rects {
		r := cmd.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cmd.Color, false)
	}

	for _, cmd := range g.list.Texts {
		label := g.label(cmd.Text)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cmd.Scale, cmd.Scale)
		op.GeoM.Translate(cmd.X, cmd.Y)
		op.ColorScale.ScaleWithColor(cmd.Color)
		screen.DrawImage(label, op)
	}

	g.evictLabels()
}

// label returns the white rendering of a text, drawing it on first use
func (g *Game) label(text string) *ebiten.Image {
	g.usedLabels[text] = true
	if img, ok := g.labels[text]; ok {
		return img
	}
	width := len(text)*systems.GlyphWidth + 1
	img := ebiten.NewImage(width, systems.GlyphHeight)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	g.labels[text] = img
	return img
}

// evictLabels drops labels that were not drawn this frame
func (g *Game) evictLabels() {
	for text, img := range g.labels {
		if !g.usedLabels[text] {
			img.Deallocate()
			delete(g.labels, text)
		}
	}
	clear(g.usedLabels)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
