package screens

import (
	"context"
	"errors"
	"fmt"

	"ebiten-snake/components"
	"ebiten-snake/data"
	"ebiten-snake/ecs"
	"ebiten-snake/spawners"
	"ebiten-snake/systems"
)

// Phase is the top level state of a session
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// MenuState is the active screen while the phase is PhaseMenu
type MenuState int

const (
	MenuMain MenuState = iota
	MenuDifficultySelect
	MenuHighScoreView
	MenuNameEntry
)

func (m MenuState) String() string {
	switch m {
	case MenuMain:
		return "Main"
	case MenuDifficultySelect:
		return "DifficultySelect"
	case MenuHighScoreView:
		return "HighScoreView"
	case MenuNameEntry:
		return "NameEntry"
	}
	return "Unknown"
}

// SessionConfig holds the collaborators of a session
type SessionConfig struct {
	Store      data.ScoreStore       // Nil disables persistence
	Random     spawners.RandomSource // Nil uses a clock seeded source
	Policy     systems.SpeedPolicy   // Nil uses the decay policy
	Difficulty data.Difficulty
	PlayerName string // Known player name, may be empty
}

// Session owns all game state: the step engine, the per-frame systems, the
// high score table and the screen stack
type Session struct {
	ctx     context.Context
	world   *ecs.World
	step    *systems.StepSystem
	effects *systems.EffectsSystem
	render  *systems.RenderSystem
	table   *data.HighScoreTable
	store   data.ScoreStore

	stack    *ScreenStack
	overlays *ScreenStack

	startScreen      *StartScreen
	difficultyScreen *DifficultyScreen
	highScoreScreen  *HighScoreScreen
	nameEntryScreen  *NameEntryScreen
	gameScreen       *GameScreen
	pauseScreen      *PauseScreen
	gameOverScreen   *GameOverScreen
	debugScreen      *DebugScreen

	phase        Phase
	menu         MenuState
	difficulty   data.Difficulty
	playerName   string
	pendingScore int
}

// NewSession creates a session in the main menu and loads the stored scores.
// A store that cannot be read leaves the table empty.
func NewSession(ctx context.Context, cfg SessionConfig) *Session {
	rng := cfg.Random
	if rng == nil {
		rng = spawners.NewRandomSource(0)
	}

	s := &Session{
		ctx:        ctx,
		world:      ecs.NewWorld(),
		render:     systems.NewRenderSystem(),
		store:      cfg.Store,
		stack:      NewScreenStack(),
		overlays:   NewScreenStack(),
		difficulty: cfg.Difficulty,
		playerName: cfg.PlayerName,
	}

	spawner := spawners.NewFoodSpawner(rng, systems.GetDebugLog().Add)
	s.step = systems.NewStepSystem(spawner, cfg.Policy)
	s.step.SetDifficulty(s.difficulty)

	s.effects = systems.NewEffectsSystem(rng)
	s.world.AddSystem(s.effects)
	s.effects.Initialize(s.world)

	s.table = data.NewHighScoreTable(s.loadScores())

	s.startScreen = NewStartScreen()
	s.difficultyScreen = NewDifficultyScreen(s.Difficulty, s.setDifficulty)
	s.highScoreScreen = NewHighScoreScreen(s.table)
	s.nameEntryScreen = NewNameEntryScreen()
	s.gameScreen = NewGameScreen(s.world, s.step, s.effects)
	s.pauseScreen = NewPauseScreen()
	s.gameOverScreen = NewGameOverScreen(s.world)
	s.debugScreen = NewDebugScreen(systems.GetDebugLog())

	s.subscribe()
	s.stack.Push(s.startScreen)

	return s
}

// subscribe mirrors gameplay events to the message log
func (s *Session) subscribe() {
	em := s.world.GetEventManager()
	em.Subscribe(systems.EventFoodEaten, func(event ecs.Event) {
		e := event.(systems.FoodEatenEvent)
		systems.GetMessageLog().AddColored(fmt.Sprintf("+%d points (score %d)", e.Gained, e.Score), systems.MessageTypeScore)
	})
	em.Subscribe(systems.EventGameOver, func(event ecs.Event) {
		e := event.(systems.GameOverEvent)
		systems.GetMessageLog().AddColored(fmt.Sprintf("Game over (%s) with %d points", e.Cause, e.Score), systems.MessageTypeDanger)
	})
}

func (s *Session) loadScores() []data.ScoreEntry {
	if s.store == nil {
		return nil
	}
	entries, err := s.store.Load(s.ctx)
	if err != nil {
		systems.GetDebugLog().AddColored(fmt.Sprintf("WARNING: failed to load high scores: %v", err), systems.MessageTypeAlert)
		return nil
	}
	systems.GetDebugLog().AddColored(fmt.Sprintf("Loaded %d high scores", len(entries)), systems.MessageTypeStorage)
	return entries
}

func (s *Session) saveScores() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.ctx, s.table.Entries()); err != nil {
		systems.GetDebugLog().AddColored(fmt.Sprintf("ERROR: failed to save high scores: %v", err), systems.MessageTypeDanger)
		return
	}
	systems.GetDebugLog().AddColored("High scores saved", systems.MessageTypeStorage)
}

// HandleInput routes one event to the debug overlay or the active screen.
// It returns ErrQuit when the player leaves the game.
func (s *Session) HandleInput(ev components.InputEvent) error {
	if ev.Key == components.KeyDebug {
		s.toggleDebug()
		return nil
	}

	if s.overlays.Len() > 0 {
		if err := s.overlays.HandleInput(ev); errors.Is(err, ErrCloseScreen) {
			s.overlays.Pop()
		}
		return nil
	}

	return s.apply(s.stack.HandleInput(ev))
}

// Update advances the active screen by dt seconds. The simulation is frozen
// while the debug overlay is open.
func (s *Session) Update(dt float64) error {
	if s.overlays.Len() > 0 {
		return nil
	}
	return s.apply(s.stack.Update(dt))
}

// Draw fills the draw list for the current frame
func (s *Session) Draw(list *components.DrawList) {
	s.render.Begin(list)
	s.stack.Draw(s.render)
	s.overlays.Draw(s.render)
}

func (s *Session) toggleDebug() {
	if s.overlays.Len() > 0 {
		s.overlays.Pop()
		return
	}
	s.overlays.Push(s.debugScreen)
}

// apply performs the transition requested by a screen
func (s *Session) apply(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQuit):
		systems.GetDebugLog().AddColored("Quit requested", systems.MessageTypeSystem)
		return ErrQuit
	case errors.Is(err, ErrNewGame):
		s.startGame()
	case errors.Is(err, ErrRestart):
		if s.playerName != "" {
			s.recordPending()
		}
		s.startGame()
	case errors.Is(err, ErrShowMenu):
		s.discardPending()
		s.showMenu(MenuMain)
	case errors.Is(err, ErrShowDifficulty):
		s.showMenu(MenuDifficultySelect)
	case errors.Is(err, ErrShowHighScores):
		s.showMenu(MenuHighScoreView)
	case errors.Is(err, ErrPause):
		s.stack.Push(s.pauseScreen)
		s.setPhase(PhasePaused, s.menu)
	case errors.Is(err, ErrResume):
		s.stack.Pop()
		s.setPhase(PhasePlaying, s.menu)
	case errors.Is(err, ErrGameOver):
		s.gameOver()
	case errors.Is(err, ErrRecordScore):
		switch {
		case s.pendingScore <= 0:
			s.showMenu(MenuHighScoreView)
		case s.playerName == "":
			s.nameEntryScreen.Reset()
			s.showMenu(MenuNameEntry)
		default:
			s.recordPending()
			s.showMenu(MenuHighScoreView)
		}
	case errors.Is(err, ErrNameEntered):
		s.playerName = s.nameEntryScreen.Name()
		s.recordPending()
		s.showMenu(MenuHighScoreView)
	case errors.Is(err, ErrDiscardScore):
		s.discardPending()
		s.showMenu(MenuMain)
	default:
		return err
	}
	return nil
}

func (s *Session) startGame() {
	s.step.Reset(s.difficulty)
	s.effects.Clear()
	s.pendingScore = 0
	s.stack.Clear()
	s.stack.Push(s.gameScreen)
	systems.GetDebugLog().AddColored(fmt.Sprintf("New run on %s, cooldown %.3fs", s.difficulty, s.step.Cooldown()), systems.MessageTypeSystem)
	s.setPhase(PhasePlaying, s.menu)
}

func (s *Session) gameOver() {
	s.pendingScore = s.step.Score()
	qualifies := s.table.Qualifies(s.pendingScore, s.difficulty)
	s.gameOverScreen.SetResult(s.pendingScore, s.step.HighScore(), s.gameScreen.LastOutcome().Cause, qualifies)
	s.stack.Push(s.gameOverScreen)
	s.setPhase(PhaseGameOver, s.menu)
}

func (s *Session) showMenu(state MenuState) {
	s.stack.Clear()
	switch state {
	case MenuMain:
		s.stack.Push(s.startScreen)
	case MenuDifficultySelect:
		s.stack.Push(s.difficultyScreen)
	case MenuHighScoreView:
		s.stack.Push(s.highScoreScreen)
	case MenuNameEntry:
		s.stack.Push(s.nameEntryScreen)
	}
	s.setPhase(PhaseMenu, state)
}

func (s *Session) setPhase(phase Phase, menu MenuState) {
	from := s.describe()
	s.phase = phase
	s.menu = menu
	to := s.describe()
	if from == to {
		return
	}
	systems.GetDebugLog().AddColored(fmt.Sprintf("%s -> %s", from, to), systems.MessageTypeSystem)
	s.world.EmitEvent(systems.PhaseChangedEvent{From: from, To: to})
}

func (s *Session) describe() string {
	if s.phase == PhaseMenu {
		return s.phase.String() + "/" + s.menu.String()
	}
	return s.phase.String()
}

// recordPending inserts the pending score under the known player name and saves the table
func (s *Session) recordPending() {
	score := s.pendingScore
	s.pendingScore = 0
	if score <= 0 || s.playerName == "" {
		return
	}

	entry := data.NewScoreEntry(s.playerName, score, s.difficulty)
	kept := s.table.Insert(entry)
	if kept {
		systems.GetMessageLog().AddColored(fmt.Sprintf("%s entered the %s high scores with %d", s.playerName, s.difficulty, score), systems.MessageTypeScore)
	} else {
		systems.GetDebugLog().Add(fmt.Sprintf("Score %d did not make the %s table", score, s.difficulty))
	}
	s.world.EmitEvent(systems.ScoreRecordedEvent{PlayerName: s.playerName, Score: score, Kept: kept})
	s.saveScores()
}

func (s *Session) discardPending() {
	if s.pendingScore > 0 {
		systems.GetDebugLog().Add(fmt.Sprintf("Discarded unsaved score %d", s.pendingScore))
	}
	s.pendingScore = 0
}

func (s *Session) setDifficulty(d data.Difficulty) {
	s.difficulty = d
	s.step.SetDifficulty(d)
}

// Phase returns the top level state
func (s *Session) Phase() Phase { return s.phase }

// MenuState returns the active menu screen; only meaningful in PhaseMenu
func (s *Session) MenuState() MenuState { return s.menu }

// Difficulty returns the selected difficulty
func (s *Session) Difficulty() data.Difficulty { return s.difficulty }

// PlayerName returns the known player name, or an empty string
func (s *Session) PlayerName() string { return s.playerName }

// PendingScore returns the score of the last run that has not been recorded
func (s *Session) PendingScore() int { return s.pendingScore }

// MenuSelection returns the highlighted main menu entry
func (s *Session) MenuSelection() int { return s.startScreen.Selected() }

// DebugVisible reports whether the debug overlay is open
func (s *Session) DebugVisible() bool { return s.overlays.Len() > 0 }

// Step returns the step engine
func (s *Session) Step() *systems.StepSystem { return s.step }

// Effects returns the effects system
func (s *Session) Effects() *systems.EffectsSystem { return s.effects }

// Table returns the high score table
func (s *Session) Table() *data.HighScoreTable { return s.table }

// World returns the event bus shared with frontends, e.g. for sound players
func (s *Session) World() *ecs.World { return s.world }
