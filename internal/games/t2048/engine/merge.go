package engine

// LineResult is the outcome of collapsing one line.
type LineResult struct {
	Tiles  []*Tile
	Moved  bool
	Score  int
	Merges int
}

// ResolveLine compacts a line toward index 0 and merges equal neighbours,
// each tile merging at most once. Merged tiles get a fresh id from ids.
func ResolveLine(line []*Tile, ids IDSource) LineResult {
	tiles := make([]*Tile, 0, len(line))
	for _, t := range line {
		if t != nil {
			tiles = append(tiles, t)
		}
	}

	res := LineResult{Tiles: make([]*Tile, len(line))}
	write := 0

	for i := 0; i < len(tiles); i++ {
		cur := tiles[i]
		if i+1 < len(tiles) && cur.Value == tiles[i+1].Value {
			next := tiles[i+1]
			merged := &Tile{
				ID:         ids.NextID(),
				Value:      cur.Value * 2,
				MergedFrom: []*Tile{cur, next},
			}
			res.Tiles[write] = merged
			res.Score += merged.Value
			res.Merges++
			i++
		} else {
			shifted := *cur
			shifted.IsNew = false
			shifted.MergedFrom = nil
			res.Tiles[write] = &shifted
		}
		write++
	}

	if res.Merges > 0 {
		res.Moved = true
		return res
	}

	// Only values are compared, so pure compaction counts as a move.
	for i := range line {
		if cellValue(line[i]) != cellValue(res.Tiles[i]) {
			res.Moved = true
			break
		}
	}
	return res
}
