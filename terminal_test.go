package main

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-snake/components"
)

func TestForwardEvents_StopsWhenDone(t *testing.T) {
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	}
	events := make(chan tcell.Event) // nobody reads
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		forwardEvents(poll, events, done)
		close(finished)
	}()
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("forwardEvents kept blocking after done was closed")
	}
}

func TestForwardEvents_StopsOnNilEvent(t *testing.T) {
	sent := false
	poll := func() tcell.Event {
		if sent {
			return nil
		}
		sent = true
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	}
	events := make(chan tcell.Event, 1)

	forwardEvents(poll, events, make(chan struct{}))

	if len(events) != 1 {
		t.Errorf("Expected one forwarded event, got %d", len(events))
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want components.InputEvent
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), components.KeyEvent(components.KeyUp), true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), components.KeyEvent(components.KeyEscape), true},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), components.KeyEvent(components.KeyDebug), true},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), components.CharEvent('p'), true},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), components.InputEvent{}, false},
	}
	for _, tt := range tests {
		got, ok := translateKey(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("translateKey(%v) = %+v, %v; want %+v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestToTerminalColor_Blends(t *testing.T) {
	under := color.RGBA{0, 0, 0, 255}
	if got := toTerminalColor(color.RGBA{200, 100, 50, 255}, under); got != tcell.NewRGBColor(200, 100, 50) {
		t.Errorf("Opaque colour changed: %v", got)
	}
	transparent := toTerminalColor(color.RGBA{255, 255, 255, 0}, under)
	if transparent != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("Transparent colour should show the colour beneath, got %v", transparent)
	}
}
