package board

import (
	"github.com/raceboard/ludo/internal/models"
)

// Capture describes one opposing token sent back to the yard
type Capture struct {
	// Color is the captured token's color
	Color models.Color

	// Token is the captured token's number (1-4)
	Token int

	// FromIndex is where the token stood when it was captured
	FromIndex int
}

// ResolveCaptures finds every opposing token sharing the cell a token of the
// moved color just landed on, and resets it to the yard in place. Nothing is
// captured on a safe index or off the shared track. Tokens in the yard or in
// a home column are never capture targets.
func (g *Geometry) ResolveCaptures(positions map[models.Color]*models.TokenSet, moved models.Color, landedIndex int) []Capture {
	if g.IsSafe(landedIndex) || !g.OnSharedTrack(landedIndex) {
		return nil
	}

	var captures []Capture
	for color, tokens := range positions {
		if color == moved {
			continue
		}
		for n := 1; n <= 4; n++ {
			idx := tokens.Get(n)
			if !g.OnSharedTrack(idx) {
				continue
			}
			if g.SameCell(moved, landedIndex, color, idx) {
				tokens.Set(n, 0)
				captures = append(captures, Capture{Color: color, Token: n, FromIndex: idx})
			}
		}
	}

	return captures
}
