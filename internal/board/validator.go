package board

import (
	"github.com/raceboard/ludo/internal/models"
)

// Destination computes where a token at the given index lands for a roll.
// A token in the yard (index 0) moves only on a 6, to index 1. A token on
// the track moves to index+roll unless that exceeds the finish index; the
// final stretch must be rolled exactly.
func (g *Geometry) Destination(index, roll int) (int, error) {
	if roll < 1 || roll > 6 {
		return 0, ErrInvalidRoll
	}

	if index == 0 {
		if roll != 6 {
			return 0, ErrTokenInYard
		}
		return 1, nil
	}

	if index >= g.finishIndex {
		return 0, ErrTokenFinished
	}

	dest := index + roll
	if dest > g.finishIndex {
		return 0, ErrOvershoot
	}

	return dest, nil
}

// CanMove reports whether a token at the given index has a legal move for
// the roll
func (g *Geometry) CanMove(index, roll int) bool {
	_, err := g.Destination(index, roll)
	return err == nil
}

// HasLegalMove reports whether any of the four tokens can move for the roll
func (g *Geometry) HasLegalMove(tokens *models.TokenSet, roll int) bool {
	for _, pos := range tokens.All() {
		if g.CanMove(pos, roll) {
			return true
		}
	}
	return false
}
