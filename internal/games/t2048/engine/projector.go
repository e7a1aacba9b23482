package engine

// GridPosition converts a (line, pos) pair for the given direction into
// an absolute board coordinate on an n x n board.
func GridPosition(dir Direction, n, line, pos int) Position {
	tf := transforms[dir]
	along := pos
	if tf.reversed {
		along = n - 1 - pos
	}
	if tf.lineIsRow {
		return Position{Row: line, Col: along}
	}
	return Position{Row: along, Col: line}
}

// Lines projects the board into n lines for the direction, each ordered
// from the leading edge to the trailing edge. Every line is a fresh slice.
func Lines(b Board, dir Direction) [][]*Tile {
	n := b.Size()
	lines := make([][]*Tile, n)
	for i := range n {
		line := make([]*Tile, n)
		for j := range n {
			p := GridPosition(dir, n, i, j)
			line[j] = b[p.Row][p.Col]
		}
		lines[i] = line
	}
	return lines
}

// Place writes a tile (or nil) at position pos of the given line and
// updates the tile's stored position to match.
func Place(b Board, dir Direction, line, pos int, t *Tile) {
	p := GridPosition(dir, b.Size(), line, pos)
	b[p.Row][p.Col] = t
	if t != nil {
		t.Pos = p
	}
}
