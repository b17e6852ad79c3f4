package screens

import (
	"testing"

	"ebiten-snake/components"
	"ebiten-snake/systems"
)

type labelScreen struct {
	*BaseScreen
	label string
}

func (s *labelScreen) Draw(rs *systems.RenderSystem) {
	rs.DrawText(s.label, 0, 0, 1, systems.TextColor)
}

func TestScreenStack_PushPopPeek(t *testing.T) {
	stack := NewScreenStack()
	if stack.Peek() != nil || stack.Pop() != nil {
		t.Fatal("Expected an empty stack")
	}

	a := &labelScreen{BaseScreen: NewBaseScreen("a"), label: "a"}
	b := &labelScreen{BaseScreen: NewBaseScreen("b"), label: "b"}
	stack.Push(a)
	stack.Push(b)

	if stack.Peek() != Screen(b) || stack.Len() != 2 {
		t.Error("Expected b on top of two screens")
	}
	if stack.Pop() != Screen(b) || stack.Peek() != Screen(a) {
		t.Error("Expected Pop to return b and leave a")
	}

	stack.Clear()
	if stack.Len() != 0 {
		t.Error("Expected Clear to empty the stack")
	}
}

func TestScreenStack_DrawsBottomToTop(t *testing.T) {
	stack := NewScreenStack()
	stack.Push(&labelScreen{BaseScreen: NewBaseScreen("a"), label: "bottom"})
	stack.Push(&labelScreen{BaseScreen: NewBaseScreen("b"), label: "top"})

	list := components.NewDrawList()
	rs := systems.NewRenderSystem()
	rs.Begin(list)
	stack.Draw(rs)

	if len(list.Texts) != 2 || list.Texts[0].Text != "bottom" || list.Texts[1].Text != "top" {
		t.Errorf("Unexpected draw order: %+v", list.Texts)
	}
}

func TestDebugScreen_Scroll(t *testing.T) {
	log := systems.NewMessageLog("test")
	log.SetMirror(false)
	log.Add("one")
	log.Add("two")

	screen := NewDebugScreen(log)
	screen.HandleInput(components.KeyEvent(components.KeyDown))
	screen.HandleInput(components.KeyEvent(components.KeyDown))
	if screen.ScrollOffset() != 1 {
		t.Errorf("Expected offset clamped to 1, got %d", screen.ScrollOffset())
	}
	screen.HandleInput(components.KeyEvent(components.KeyUp))
	screen.HandleInput(components.KeyEvent(components.KeyUp))
	if screen.ScrollOffset() != 0 {
		t.Errorf("Expected offset clamped to 0, got %d", screen.ScrollOffset())
	}
	if err := screen.HandleInput(components.KeyEvent(components.KeyEscape)); err != ErrCloseScreen {
		t.Errorf("Expected ErrCloseScreen, got %v", err)
	}
}
