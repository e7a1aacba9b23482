package engine

import (
	"errors"
	"testing"
)

func TestGridPosition(t *testing.T) {
	tests := []struct {
		dir       Direction
		line, pos int
		want      Position
	}{
		{DirLeft, 1, 0, Position{Row: 1, Col: 0}},
		{DirLeft, 1, 3, Position{Row: 1, Col: 3}},
		{DirRight, 1, 0, Position{Row: 1, Col: 3}},
		{DirRight, 2, 3, Position{Row: 2, Col: 0}},
		{DirUp, 2, 0, Position{Row: 0, Col: 2}},
		{DirUp, 2, 1, Position{Row: 1, Col: 2}},
		{DirDown, 2, 0, Position{Row: 3, Col: 2}},
		{DirDown, 0, 3, Position{Row: 0, Col: 0}},
	}

	for _, tt := range tests {
		if got := GridPosition(tt.dir, 4, tt.line, tt.pos); got != tt.want {
			t.Errorf("GridPosition(%s, 4, %d, %d) = %+v, want %+v", tt.dir, tt.line, tt.pos, got, tt.want)
		}
	}
}

func TestLinesReadOrder(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 8},
		{16, 32, 64},
		{128, 256, 512},
	})

	tests := []struct {
		dir  Direction
		want [][]int
	}{
		{DirLeft, [][]int{{2, 4, 8}, {16, 32, 64}, {128, 256, 512}}},
		{DirRight, [][]int{{8, 4, 2}, {64, 32, 16}, {512, 256, 128}}},
		{DirUp, [][]int{{2, 16, 128}, {4, 32, 256}, {8, 64, 512}}},
		{DirDown, [][]int{{128, 16, 2}, {256, 32, 4}, {512, 64, 8}}},
	}

	for _, tt := range tests {
		lines := Lines(b, tt.dir)
		got := make([][]int, len(lines))
		for i, l := range lines {
			got[i] = lineValues(l)
		}
		if !equalMatrix(got, tt.want) {
			t.Errorf("Lines(%s) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestLinesAreIndependent(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	})

	lines := Lines(b, DirUp)
	lines[0][0] = nil

	if b[0][0] == nil {
		t.Error("clearing a projected line cell cleared the board")
	}
	if lines[1][1] == nil || lines[1][1].Value != 4 {
		t.Error("lines share storage")
	}
}

func TestPlaceUpdatesPosition(t *testing.T) {
	b := NewBoard(4)
	tile := &Tile{ID: "x", Value: 2}

	Place(b, DirDown, 1, 0, tile)

	if b[3][1] != tile {
		t.Fatal("tile not written at (3,1)")
	}
	if tile.Pos != (Position{Row: 3, Col: 1}) {
		t.Errorf("Pos = %+v, want (3,1)", tile.Pos)
	}

	Place(b, DirDown, 1, 0, nil)
	if b[3][1] != nil {
		t.Error("nil write did not clear the cell")
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up":     DirUp,
		"U":      DirUp,
		"down":   DirDown,
		" Left ": DirLeft,
		"r":      DirRight,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(north) err = %v, want ErrInvalidDirection", err)
	}
}

func TestDirectionString(t *testing.T) {
	if DirRight.String() != "right" {
		t.Errorf("DirRight.String() = %q", DirRight.String())
	}
	if Direction(7).Valid() {
		t.Error("Direction(7) reported valid")
	}
}
