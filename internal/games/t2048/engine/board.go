// Package engine implements the 2048 rules: spawning, line projection,
// merge resolution, move orchestration and terminal-state checks.
// It is UI-agnostic and deterministic given its injected random and id sources.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedBoard is returned when a board is empty or not square.
var ErrMalformedBoard = errors.New("engine: malformed board")

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// Tile is a single numbered tile.
type Tile struct {
	ID    string
	Value int
	Pos   Position

	// IsNew marks a tile spawned during the last move.
	IsNew bool
	// MergedFrom holds the two tiles that combined into this one during
	// the last move, leading tile first. Presentation only.
	MergedFrom []*Tile
}

// Board is a square grid of optional tiles. A nil cell is empty.
type Board [][]*Tile

// NewBoard creates an empty size x size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for r := range b {
		b[r] = make([]*Tile, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Validate checks that the board is non-empty and square.
func (b Board) Validate() error {
	n := len(b)
	if n == 0 {
		return fmt.Errorf("%w: size 0", ErrMalformedBoard)
	}
	for r, row := range b {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), n)
		}
	}
	return nil
}

// Clone returns a deep copy of the board. Tile markers are preserved.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = make([]*Tile, len(row))
		for c, t := range row {
			if t != nil {
				cp := *t
				out[r][c] = &cp
			}
		}
	}
	return out
}

// cloneClean deep-copies the board and clears the per-move markers.
func (b Board) cloneClean() Board {
	out := b.Clone()
	for _, row := range out {
		for _, t := range row {
			if t != nil {
				t.IsNew = false
				t.MergedFrom = nil
			}
		}
	}
	return out
}

// At returns the tile at (row, col), or nil when empty or out of range.
func (b Board) At(row, col int) *Tile {
	if row < 0 || row >= len(b) || col < 0 || col >= len(b[row]) {
		return nil
	}
	return b[row][col]
}

// Values returns the tile values as a matrix, 0 for empty cells.
func (b Board) Values() [][]int {
	out := make([][]int, len(b))
	for r, row := range b {
		out[r] = make([]int, len(row))
		for c, t := range row {
			if t != nil {
				out[r][c] = t.Value
			}
		}
	}
	return out
}

// Equal reports whether two boards hold the same values in the same cells.
// Tile identity is ignored.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if cellValue(b[r][c]) != cellValue(other[r][c]) {
				return false
			}
		}
	}
	return true
}

// String renders the board as rows of right-aligned values, "." for empty.
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, t := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if t != nil {
				cell = strconv.Itoa(t.Value)
			}
			fmt.Fprintf(&sb, "%5s", cell)
		}
	}
	return sb.String()
}

// BoardFromValues builds a board from a value matrix (0 = empty),
// assigning ids from the given source.
func BoardFromValues(values [][]int, ids IDSource) (Board, error) {
	b := make(Board, len(values))
	for r, row := range values {
		b[r] = make([]*Tile, len(row))
		for c, v := range row {
			if v == 0 {
				continue
			}
			if !isPowerOfTwo(v) {
				return nil, fmt.Errorf("engine: value %d at (%d,%d) is not a power of two", v, r, c)
			}
			b[r][c] = &Tile{ID: ids.NextID(), Value: v, Pos: Position{Row: r, Col: c}}
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func cellValue(t *Tile) int {
	if t == nil {
		return 0
	}
	return t.Value
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
