package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64        `json:"tick"`
	Variant string        `json:"variant"`
	Target  int           `json:"target"`
	Score   int           `json:"score"`
	Best    int           `json:"best"`
	Board   [][]int       `json:"board"`
	MaxTile int           `json:"max_tile"`
	Moves   int           `json:"moves"`
	Merges  int           `json:"merges"`
	State   GameStateType `json:"state"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.session.Won():
		state = StateWon
	}

	stats := g.session.Stats()
	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Target:  g.session.Target(),
		Score:   g.session.Score(),
		Best:    g.session.Best(),
		Board:   g.session.Board().Values(),
		MaxTile: stats.MaxTile,
		Moves:   stats.Moves,
		Merges:  stats.Merges,
		State:   state,
	}
}
