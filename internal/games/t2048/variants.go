// Package t2048 implements the 2048 puzzle session and its arcade adapter.
// Rules live in the engine subpackage; this package owns history, counters
// and presentation state.
package t2048

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by LookupVariant for an unregistered id.
var ErrUnknownVariant = errors.New("t2048: unknown variant")

// Variant defines a board size and win target combination.
type Variant struct {
	ID     string
	Name   string
	Size   int
	Target int // Tile value that triggers the win notice, 0 for none
}

// Variants lists the registered game variants. The first entry is the classic game.
var Variants = []Variant{
	{ID: "2048", Name: "2048", Size: 4, Target: 2048},
	{ID: "2048_3x3", Name: "2048 Mini (3x3)", Size: 3, Target: 256},
	{ID: "2048_5x5", Name: "2048 Big (5x5)", Size: 5, Target: 4096},
	{ID: "2048_endless", Name: "2048 (Endless)", Size: 4, Target: 0},
}

// ClassicID is the id of the default 4x4 variant.
const ClassicID = "2048"

// VariantByID returns the variant with the given id, or nil if unknown.
func VariantByID(id string) *Variant {
	for i := range Variants {
		if Variants[i].ID == id {
			return &Variants[i]
		}
	}
	return nil
}

// LookupVariant is VariantByID with an error for unknown ids.
func LookupVariant(id string) (Variant, error) {
	v := VariantByID(id)
	if v == nil {
		return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return *v, nil
}

// BestScoreKey returns the settings key the best score is stored under.
// The classic variant uses the base key unchanged.
func (v Variant) BestScoreKey(base string) string {
	if v.ID == ClassicID {
		return base
	}
	return base + ":" + v.ID
}
