package engine

// Rand is the random source used for spawning.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// DefaultSpawn4Prob is the chance that a spawned tile is a 4.
const DefaultSpawn4Prob = 0.1

// Spawner places new tiles on empty cells.
type Spawner struct {
	Rand       Rand
	IDs        IDSource
	Spawn4Prob float64
}

// EmptyCells returns the empty cells in row-major order.
func EmptyCells(b Board) []Position {
	var cells []Position
	for r, row := range b {
		for c, t := range row {
			if t == nil {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Spawn puts a 2 (or, with probability Spawn4Prob, a 4) on a uniformly
// chosen empty cell. A full board is left untouched and false is returned.
func (s *Spawner) Spawn(b Board) (Position, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return Position{}, false
	}

	p := empty[s.Rand.IntN(len(empty))]
	value := 2
	if s.Rand.Float64() < s.Spawn4Prob {
		value = 4
	}

	b[p.Row][p.Col] = &Tile{
		ID:    s.IDs.NextID(),
		Value: value,
		Pos:   p,
		IsNew: true,
	}
	return p, true
}
