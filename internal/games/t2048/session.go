package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// DefaultHistoryLimit is the number of undo snapshots kept.
const DefaultHistoryLimit = 10

// historyEntry is an undo snapshot. Boards are never mutated after a
// move, so the board reference can be kept as is.
type historyEntry struct {
	board engine.Board
	score int
}

// Stats holds per-game counters.
type Stats struct {
	Moves       int `json:"moves"`
	Merges      int `json:"merges"`
	MaxTile     int `json:"max_tile"`
	AverageTile int `json:"average_tile"`
}

// MoveOutcome reports what a session move did.
type MoveOutcome struct {
	Result engine.MoveResult
	// Applied is false when the game was over or the move changed nothing.
	Applied bool
	// JustWon is set on the first move of a game that produced the win
	// target. It fires at most once until Restart.
	JustWon bool
}

// Session is one player's game: the current board plus score, best score,
// undo history and counters. It is not safe for concurrent use; a single
// controller must serialize moves.
type Session struct {
	eng          *engine.Engine
	board        engine.Board
	score        int
	best         int
	history      []historyEntry
	historyLimit int
	moves        int
	merges       int
	won          bool
	winAnnounced bool
	gameOver     bool
}

// NewSession starts a new game on the given engine.
// A historyLimit <= 0 uses DefaultHistoryLimit.
func NewSession(eng *engine.Engine, historyLimit int) *Session {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	s := &Session{
		eng:          eng,
		historyLimit: historyLimit,
	}
	s.Restart()
	return s
}

// Restart deals a fresh board. The best score is kept.
func (s *Session) Restart() {
	s.board = s.eng.InitializeGrid()
	s.score = 0
	s.history = nil
	s.moves = 0
	s.merges = 0
	s.won = false
	s.winAnnounced = false
	s.gameOver = false
}

// ApplyMove moves the board in dir. Nothing happens once the game is over.
// Reaching the win target sets the won flag but never blocks further moves.
func (s *Session) ApplyMove(dir engine.Direction) (MoveOutcome, error) {
	if s.gameOver {
		return MoveOutcome{}, nil
	}

	res, err := s.eng.Move(s.board, dir)
	if err != nil {
		return MoveOutcome{}, err
	}
	if !res.Moved {
		return MoveOutcome{Result: res}, nil
	}

	s.pushHistory(historyEntry{board: s.board, score: s.score})

	s.board = res.Board
	s.score += res.ScoreGained
	if s.score > s.best {
		s.best = s.score
	}
	s.moves++
	s.merges += res.MergedTiles

	s.won = s.eng.CheckWin(s.board)
	s.gameOver = s.eng.CheckGameOver(s.board)

	out := MoveOutcome{Result: res, Applied: true}
	if s.won && !s.winAnnounced {
		out.JustWon = true
		s.winAnnounced = true
	}
	return out, nil
}

// pushHistory appends a snapshot, dropping the oldest beyond the limit.
func (s *Session) pushHistory(h historyEntry) {
	s.history = append(s.history, h)
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = append(s.history[:0:0], s.history[over:]...)
	}
}

// Undo restores the board and score from before the last applied move.
// It clears the won and game over flags. Returns false with no history.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.board = last.board
	s.score = last.score
	s.won = false
	s.gameOver = false
	return true
}

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool {
	return len(s.history) > 0
}

// HistoryLen returns the number of undo snapshots held.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// Board returns the current board. Callers must not modify it.
func (s *Session) Board() engine.Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Best returns the best score seen by this session.
func (s *Session) Best() int {
	return s.best
}

// SetBest seeds the best score, typically from storage. Lower values are ignored.
func (s *Session) SetBest(best int) {
	if best > s.best {
		s.best = best
	}
}

// Won reports whether the board holds the win target.
func (s *Session) Won() bool {
	return s.won
}

// GameOver reports whether no move can change the board.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Target returns the win target, 0 when the variant has none.
func (s *Session) Target() int {
	return s.eng.Config().WinTarget
}

// Stats returns the current counters and board statistics.
func (s *Session) Stats() Stats {
	return Stats{
		Moves:       s.moves,
		Merges:      s.merges,
		MaxTile:     engine.MaxTile(s.board),
		AverageTile: engine.AverageTileValue(s.board),
	}
}
