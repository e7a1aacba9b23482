package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for a Direction outside the four moves.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// Direction is a move direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all valid moves.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// transform maps (line, pos) to a board coordinate. A line runs from the
// edge tiles move toward (pos 0) to the opposite edge.
type transform struct {
	name string
	// lineIsRow: the line index selects a row (horizontal moves).
	lineIsRow bool
	// reversed: pos 0 sits at index n-1 of the row/column.
	reversed bool
}

var transforms = [...]transform{
	DirUp:    {name: "up", lineIsRow: false, reversed: false},
	DirDown:  {name: "down", lineIsRow: false, reversed: true},
	DirLeft:  {name: "left", lineIsRow: true, reversed: false},
	DirRight: {name: "right", lineIsRow: true, reversed: true},
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return int(d) < len(transforms)
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return transforms[d].name
}

// ParseDirection accepts a direction name or its first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
