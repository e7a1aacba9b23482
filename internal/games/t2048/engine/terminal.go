package engine

// CheckWin reports whether any tile equals target. A target <= 0 never wins.
func CheckWin(b Board, target int) bool {
	if target <= 0 {
		return false
	}
	for _, row := range b {
		for _, t := range row {
			if t != nil && t.Value == target {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any direction would change the board.
// Only right and down neighbours are checked; adjacency is symmetric.
func CanMove(b Board) bool {
	n := b.Size()
	for r := range n {
		for c := range n {
			if b[r][c] == nil {
				return true
			}
		}
	}

	for r := range n {
		for c := range n {
			v := b[r][c].Value
			if c < n-1 && b[r][c+1].Value == v {
				return true
			}
			if r < n-1 && b[r+1][c].Value == v {
				return true
			}
		}
	}
	return false
}

// CheckGameOver reports whether no move is possible.
func CheckGameOver(b Board) bool {
	return !CanMove(b)
}

// MaxTile returns the highest tile value, 0 on an empty board.
func MaxTile(b Board) int {
	maxVal := 0
	for _, row := range b {
		for _, t := range row {
			if t != nil && t.Value > maxVal {
				maxVal = t.Value
			}
		}
	}
	return maxVal
}

// AverageTileValue returns the rounded mean value of occupied cells.
func AverageTileValue(b Board) int {
	sum, count := 0, 0
	for _, row := range b {
		for _, t := range row {
			if t != nil {
				sum += t.Value
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return (sum + count/2) / count
}
