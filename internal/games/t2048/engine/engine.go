package engine

import "fmt"

// Config holds the rule parameters.
type Config struct {
	Size       int     // Board dimension
	WinTarget  int     // Tile value that wins; 0 disables the win check
	Spawn4Prob float64 // Probability that a spawned tile is a 4
}

// DefaultConfig returns the classic 4x4 / 2048 rules.
func DefaultConfig() Config {
	return Config{
		Size:       4,
		WinTarget:  2048,
		Spawn4Prob: DefaultSpawn4Prob,
	}
}

// MoveResult is the outcome of a single move.
type MoveResult struct {
	Board       Board
	Moved       bool
	ScoreGained int
	MergedTiles int
	// Spawned is the cell that received a new tile, nil if none.
	Spawned *Position
}

// Engine applies moves under a fixed Config.
type Engine struct {
	cfg     Config
	ids     IDSource
	spawner *Spawner
}

// New creates an engine. rng and ids are the only sources of
// nondeterminism; pass seeded ones for reproducible games.
func New(cfg Config, rng Rand, ids IDSource) *Engine {
	return &Engine{
		cfg: cfg,
		ids: ids,
		spawner: &Spawner{
			Rand:       rng,
			IDs:        ids,
			Spawn4Prob: cfg.Spawn4Prob,
		},
	}
}

// Config returns the engine's rule parameters.
func (e *Engine) Config() Config {
	return e.cfg
}

// InitializeGrid returns an empty board with two spawned tiles.
func (e *Engine) InitializeGrid() Board {
	b := NewBoard(e.cfg.Size)
	e.spawner.Spawn(b)
	e.spawner.Spawn(b)
	return b
}

// Move slides the board in dir. The input board is never modified; the
// result board is a new copy with per-move markers set on its tiles.
// When the board changed, exactly one tile is spawned.
func (e *Engine) Move(b Board, dir Direction) (MoveResult, error) {
	if err := b.Validate(); err != nil {
		return MoveResult{}, err
	}
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	next := b.cloneClean()
	res := MoveResult{Board: next}

	for i, line := range Lines(next, dir) {
		lr := ResolveLine(line, e.ids)
		res.Moved = res.Moved || lr.Moved
		res.ScoreGained += lr.Score
		res.MergedTiles += lr.Merges

		for pos, t := range lr.Tiles {
			Place(next, dir, i, pos, t)
		}
	}

	if res.Moved {
		if p, ok := e.spawner.Spawn(next); ok {
			res.Spawned = &p
		}
	}
	return res, nil
}

// CheckWin reports whether the board holds the configured win target.
func (e *Engine) CheckWin(b Board) bool {
	return CheckWin(b, e.cfg.WinTarget)
}

// CheckGameOver reports whether no move can change the board.
func (e *Engine) CheckGameOver(b Board) bool {
	return CheckGameOver(b)
}
