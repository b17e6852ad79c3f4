package screens

import (
	"fmt"

	"ebiten-snake/components"
	"ebiten-snake/data"
	"ebiten-snake/systems"
)

// HighScoreScreen shows the best scores of every difficulty
type HighScoreScreen struct {
	*BaseScreen
	table *data.HighScoreTable
}

// NewHighScoreScreen creates a view over the table
func NewHighScoreScreen(table *data.HighScoreTable) *HighScoreScreen {
	return &HighScoreScreen{
		BaseScreen: NewBaseScreen("high scores"),
		table:      table,
	}
}

// HandleInput returns to the main menu
func (s *HighScoreScreen) HandleInput(ev components.InputEvent) error {
	switch ev.Key {
	case components.KeyEscape, components.KeyEnter:
		return ErrShowMenu
	}
	return nil
}

// Draw renders one section per difficulty
func (s *HighScoreScreen) Draw(rs *systems.RenderSystem) {
	rs.DrawCentered("High Scores", 30, 3, systems.TextColor)

	for i, d := range data.AllDifficulties {
		top := 90 + float64(i)*120
		rs.DrawText(fmt.Sprintf("--- %s ---", d), 50, top, 1.5, systems.HintColor)

		entries := s.table.ForDifficulty(d)
		if len(entries) == 0 {
			rs.DrawText("no scores yet", 50, top+28, 1, systems.TextColor)
			continue
		}
		for j, e := range entries {
			line := fmt.Sprintf("%2d. %-8s %6d %s", j+1, e.PlayerName, e.Score, e.Timestamp.Local().Format("2006-01-02 15:04"))
			rs.DrawText(line, 50, top+28+float64(j)*17, 1, systems.TextColor)
		}
	}

	rs.DrawCentered("Press ESC to return", 575, 1, systems.HintColor)
}
