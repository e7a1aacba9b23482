package t2048

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// ErrBadMoveScript is returned by Replay for characters it cannot play.
var ErrBadMoveScript = errors.New("t2048: bad move script")

// ReplayStep is the outcome of one scripted input.
type ReplayStep struct {
	Input    string           `json:"input"`
	Applied  bool             `json:"applied"`
	Gained   int              `json:"gained"`
	Score    int              `json:"score"`
	Spawned  *engine.Position `json:"spawned,omitempty"`
	GameOver bool             `json:"game_over"`
}

// Replay plays a move script on a fresh session without any UI. The same
// variant, tunables, seed and script always produce the same boards;
// only Spawn4Prob and HistoryLimit of tun are used.
//
// The script holds one letter per input: u, d, l, r move and z undoes.
// Whitespace and commas are skipped.
func Replay(v Variant, tun Settings, seed int64, script string) (*Session, []ReplayStep, error) {
	eng := newEngine(v, tun.Spawn4Prob, newRand(seed), &engine.CounterIDs{})
	s := NewSession(eng, tun.HistoryLimit)

	var steps []ReplayStep
	for i, r := range script {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}

		if unicode.ToLower(r) == 'z' {
			steps = append(steps, ReplayStep{
				Input:    "undo",
				Applied:  s.Undo(),
				Score:    s.Score(),
				GameOver: s.GameOver(),
			})
			continue
		}

		dir, err := engine.ParseDirection(string(r))
		if err != nil {
			return s, steps, fmt.Errorf("%w: %q at offset %d", ErrBadMoveScript, r, i)
		}
		out, err := s.ApplyMove(dir)
		if err != nil {
			return s, steps, err
		}
		steps = append(steps, ReplayStep{
			Input:    dir.String(),
			Applied:  out.Applied,
			Gained:   out.Result.ScoreGained,
			Score:    s.Score(),
			Spawned:  out.Result.Spawned,
			GameOver: s.GameOver(),
		})
	}
	return s, steps, nil
}

// FormatBoard renders a board as right-aligned columns, "." for empty cells.
func FormatBoard(b engine.Board) string {
	values := b.Values()
	width := len(".")
	for _, row := range values {
		for _, v := range row {
			width = max(width, len(fmt.Sprint(v)))
		}
	}

	var sb strings.Builder
	for _, row := range values {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = fmt.Sprint(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
