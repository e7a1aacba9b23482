package engine

import "testing"

func TestCheckGameOver(t *testing.T) {
	tests := []struct {
		name  string
		board [][]int
		want  bool
	}{
		{
			name: "full with no equal neighbours",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "checkerboard",
			board: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: true,
		},
		{
			name: "horizontal merge available",
			board: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
		{
			name: "vertical merge in last column",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
		},
		{
			name: "one empty cell",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.board)
			before := b.Clone()

			first := CheckGameOver(b)
			second := CheckGameOver(b)
			if first != tt.want || second != tt.want {
				t.Errorf("CheckGameOver = %v then %v, want %v", first, second, tt.want)
			}
			if !b.Equal(before) {
				t.Error("CheckGameOver mutated the board")
			}
		})
	}
}

func TestCheckGameOverMatchesMoves(t *testing.T) {
	boards := [][][]int{
		{{2, 4}, {4, 2}},
		{{2, 4}, {2, 8}},
		{{2, 4, 2}, {4, 2, 4}, {2, 4, 4}},
		{{2, 4, 2}, {4, 2, 4}, {2, 4, 8}},
	}

	for _, values := range boards {
		b := mustBoard(t, values)
		cfg := DefaultConfig()
		cfg.Size = b.Size()
		e := New(cfg, lastCellRand{}, &CounterIDs{})

		anyMove := false
		for _, d := range Directions {
			res, err := e.Move(b, d)
			if err != nil {
				t.Fatalf("Move: %v", err)
			}
			anyMove = anyMove || res.Moved
		}
		if CheckGameOver(b) == anyMove {
			t.Errorf("board %v: CheckGameOver = %v but a move exists = %v", values, CheckGameOver(b), anyMove)
		}
	}
}

func TestCheckWin(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 2048, 0, 0},
		{0, 0, 0, 2},
	})
	before := b.Clone()

	if !CheckWin(b, 2048) || !CheckWin(b, 2048) {
		t.Error("CheckWin(2048) = false with a 2048 tile")
	}
	if CheckWin(b, 4096) {
		t.Error("CheckWin(4096) = true without a 4096 tile")
	}
	if CheckWin(b, 0) {
		t.Error("CheckWin with target 0 must never win")
	}
	if !b.Equal(before) {
		t.Error("CheckWin mutated the board")
	}

	beyond := mustBoard(t, [][]int{
		{4096, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if CheckWin(beyond, 2048) {
		t.Error("CheckWin matches only the exact target value")
	}
}

func TestMaxAndAverage(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 0},
		{0, 8, 0},
		{0, 0, 2},
	})

	if got := MaxTile(b); got != 8 {
		t.Errorf("MaxTile = %d, want 8", got)
	}
	if got := AverageTileValue(b); got != 4 {
		t.Errorf("AverageTileValue = %d, want 4", got)
	}
	if got := AverageTileValue(NewBoard(3)); got != 0 {
		t.Errorf("AverageTileValue(empty) = %d, want 0", got)
	}
}
