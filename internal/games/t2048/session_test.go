package t2048

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// firstCellRand always picks the first empty cell and spawns a 2.
type firstCellRand struct{}

func (firstCellRand) IntN(int) int     { return 0 }
func (firstCellRand) Float64() float64 { return 0.99 }

func newTestSession(t *testing.T, target, limit int, values [][]int) *Session {
	t.Helper()
	ids := &engine.CounterIDs{}
	eng := engine.New(engine.Config{
		Size:       len(values),
		WinTarget:  target,
		Spawn4Prob: engine.DefaultSpawn4Prob,
	}, firstCellRand{}, ids)

	s := NewSession(eng, limit)
	b, err := engine.BoardFromValues(values, ids)
	if err != nil {
		t.Fatalf("BoardFromValues: %v", err)
	}
	s.board = b
	return s
}

func mustMove(t *testing.T, s *Session, dir engine.Direction) MoveOutcome {
	t.Helper()
	out, err := s.ApplyMove(dir)
	if err != nil {
		t.Fatalf("ApplyMove(%s): %v", dir, err)
	}
	return out
}

func assertBoard(t *testing.T, s *Session, want [][]int) {
	t.Helper()
	if got := s.Board().Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("board = %v, want %v", got, want)
	}
}

func TestSessionMoveUpdatesCounters(t *testing.T) {
	s := newTestSession(t, 2048, 0, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	out := mustMove(t, s, engine.DirLeft)
	if !out.Applied {
		t.Fatal("merging move should be applied")
	}

	assertBoard(t, s, [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if s.Score() != 4 || s.Best() != 4 {
		t.Errorf("score/best = %d/%d, want 4/4", s.Score(), s.Best())
	}
	stats := s.Stats()
	if stats.Moves != 1 || stats.Merges != 1 || stats.MaxTile != 4 || stats.AverageTile != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if s.HistoryLen() != 1 {
		t.Errorf("HistoryLen = %d, want 1", s.HistoryLen())
	}
}

func TestSessionNoOpMove(t *testing.T) {
	s := newTestSession(t, 2048, 0, [][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	out := mustMove(t, s, engine.DirLeft)
	if out.Applied || out.Result.Moved {
		t.Error("move that changes nothing must not be applied")
	}
	if s.HistoryLen() != 0 || s.Stats().Moves != 0 {
		t.Error("no-op move must not touch history or counters")
	}
}

func TestSessionUndo(t *testing.T) {
	start := [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(t, 2048, 0, start)

	if s.Undo() {
		t.Fatal("Undo with no history should return false")
	}

	mustMove(t, s, engine.DirLeft)
	if !s.Undo() {
		t.Fatal("Undo after a move should succeed")
	}

	assertBoard(t, s, start)
	if s.Score() != 0 {
		t.Errorf("score after undo = %d, want 0", s.Score())
	}
	if s.Best() != 4 {
		t.Errorf("best after undo = %d, want 4", s.Best())
	}
	if s.CanUndo() {
		t.Error("history should be empty after undoing the only move")
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	s := newTestSession(t, 2048, 2, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	for _, d := range []engine.Direction{engine.DirRight, engine.DirLeft, engine.DirRight} {
		if out := mustMove(t, s, d); !out.Applied {
			t.Fatalf("move %s should be applied", d)
		}
	}
	if s.HistoryLen() != 2 {
		t.Fatalf("HistoryLen = %d, want 2", s.HistoryLen())
	}

	s.Undo()
	s.Undo()
	if s.Undo() {
		t.Error("third undo should fail with a limit of 2")
	}
	// The oldest snapshot (the starting board) was dropped.
	assertBoard(t, s, [][]int{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
}

func TestSessionWinNoticeOnce(t *testing.T) {
	s := newTestSession(t, 8, 0, [][]int{
		{4, 4, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	out := mustMove(t, s, engine.DirLeft)
	if !out.JustWon || !s.Won() {
		t.Fatalf("reaching the target should win: JustWon=%v Won=%v", out.JustWon, s.Won())
	}

	out = mustMove(t, s, engine.DirRight)
	if !out.Applied {
		t.Fatal("moves continue after a win")
	}
	if out.JustWon {
		t.Error("win notice should fire only once")
	}
	if !s.Won() {
		t.Error("won flag should hold while the target tile is on the board")
	}

	s.Undo()
	if s.Won() {
		t.Error("undo clears the won flag")
	}
	if out := mustMove(t, s, engine.DirDown); out.JustWon {
		t.Error("win notice must not re-fire after undo")
	}

	s.Restart()
	if s.Won() || s.Score() != 0 || s.CanUndo() {
		t.Error("restart should clear won, score and history")
	}
}

func TestSessionGameOver(t *testing.T) {
	s := newTestSession(t, 2048, 0, [][]int{
		{2, 4, 2},
		{4, 2, 8},
		{0, 8, 16},
	})

	mustMove(t, s, engine.DirLeft)
	assertBoard(t, s, [][]int{
		{2, 4, 2},
		{4, 2, 8},
		{8, 16, 2},
	})
	if !s.GameOver() {
		t.Fatal("full board without merges should be game over")
	}

	if out := mustMove(t, s, engine.DirUp); out.Applied {
		t.Error("moves after game over must be ignored")
	}

	s.Undo()
	if s.GameOver() {
		t.Error("undo clears game over")
	}
}

func TestSessionRestartKeepsBest(t *testing.T) {
	s := newTestSession(t, 2048, 0, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	mustMove(t, s, engine.DirLeft)
	s.Restart()

	if s.Best() != 4 {
		t.Errorf("best after restart = %d, want 4", s.Best())
	}
	if got := len(engine.EmptyCells(s.Board())); got != 14 {
		t.Errorf("restart should deal two tiles, %d empty cells", got)
	}

	s.SetBest(2)
	if s.Best() != 4 {
		t.Error("SetBest must not lower the best score")
	}
	s.SetBest(100)
	if s.Best() != 100 {
		t.Errorf("SetBest(100) = %d", s.Best())
	}
}
