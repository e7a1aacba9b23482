package engine

import (
	"slices"
	"testing"
)

func TestSpawnerFullBoard(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4},
		{8, 16},
	})
	before := b.Clone()
	s := &Spawner{Rand: lastCellRand{}, IDs: &CounterIDs{}, Spawn4Prob: DefaultSpawn4Prob}

	if _, ok := s.Spawn(b); ok {
		t.Error("Spawn on a full board reported a spawn")
	}
	if !b.Equal(before) {
		t.Error("Spawn modified a full board")
	}
}

func TestSpawnerValues(t *testing.T) {
	tests := []struct {
		roll float64
		want int
	}{
		{roll: 0.0, want: 4},
		{roll: 0.09, want: 4},
		{roll: 0.1, want: 2},
		{roll: 0.99, want: 2},
	}

	for _, tt := range tests {
		b := NewBoard(3)
		s := &Spawner{Rand: lastCellRand{roll: tt.roll}, IDs: &CounterIDs{}, Spawn4Prob: DefaultSpawn4Prob}

		p, ok := s.Spawn(b)
		if !ok {
			t.Fatalf("roll %v: no spawn on empty board", tt.roll)
		}
		if p != (Position{Row: 2, Col: 2}) {
			t.Errorf("roll %v: spawned at %+v, want last empty cell (2,2)", tt.roll, p)
		}
		tile := b[p.Row][p.Col]
		if tile.Value != tt.want || !tile.IsNew || tile.Pos != p {
			t.Errorf("roll %v: tile = %+v, want value %d new at %+v", tt.roll, tile, tt.want, p)
		}
	}
}

// pickRand picks a fixed index among the empty cells.
type pickRand struct {
	k    int
	roll float64
}

func (r pickRand) IntN(n int) int   { return r.k % n }
func (r pickRand) Float64() float64 { return r.roll }

func TestSpawnerPicksAmongEmptyCells(t *testing.T) {
	// Empty cells in row-major order: (0,1) (1,0) (1,2) (2,1) (2,2).
	values := [][]int{
		{2, 0, 4},
		{0, 8, 0},
		{16, 0, 0},
	}
	empties := []Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 1, Col: 2},
		{Row: 2, Col: 1},
		{Row: 2, Col: 2},
	}

	b := mustBoard(t, values)
	if got := EmptyCells(b); !slices.Equal(got, empties) {
		t.Fatalf("EmptyCells = %v, want %v", got, empties)
	}

	for k, want := range empties {
		b := mustBoard(t, values)
		s := &Spawner{Rand: pickRand{k: k, roll: 0.5}, IDs: &CounterIDs{}, Spawn4Prob: DefaultSpawn4Prob}

		p, ok := s.Spawn(b)
		if !ok {
			t.Fatalf("k=%d: no spawn", k)
		}
		if p != want {
			t.Errorf("k=%d: spawned at %+v, want %+v", k, p, want)
		}
		if tile := b[want.Row][want.Col]; tile == nil || tile.Value != 2 || !tile.IsNew {
			t.Errorf("k=%d: tile = %+v, want new 2", k, tile)
		}
		if got := len(EmptyCells(b)); got != len(empties)-1 {
			t.Errorf("k=%d: %d empty cells left, want %d", k, got, len(empties)-1)
		}
	}
}
