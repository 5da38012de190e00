package board

import (
	"testing"

	"github.com/raceboard/ludo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantFor(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		g, err := VariantFor(n)
		require.NoError(t, err)
		assert.Equal(t, VariantGrid, g.Variant())
	}

	g, err := VariantFor(5)
	require.NoError(t, err)
	assert.Equal(t, VariantFive, g.Variant())

	g, err = VariantFor(6)
	require.NoError(t, err)
	assert.Equal(t, VariantSix, g.Variant())

	for _, n := range []int{0, 1, 7} {
		_, err := VariantFor(n)
		assert.ErrorIs(t, err, ErrInvalidPlayerCount)
	}
}

func TestDestinationYardExit(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	for roll := 1; roll <= 5; roll++ {
		_, err := g.Destination(0, roll)
		assert.ErrorIs(t, err, ErrTokenInYard, "roll %d should not leave the yard", roll)
	}

	dest, err := g.Destination(0, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, dest)
}

func TestDestinationOvershoot(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	finish := g.FinishIndex()

	// Exact landing is legal
	dest, err := g.Destination(finish-3, 3)
	require.NoError(t, err)
	assert.Equal(t, finish, dest)

	// Anything past the finish is not
	_, err = g.Destination(finish-3, 4)
	assert.ErrorIs(t, err, ErrOvershoot)

	// A finished token never moves again
	_, err = g.Destination(finish, 1)
	assert.ErrorIs(t, err, ErrTokenFinished)
}

func TestDestinationRejectsBadRoll(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	for _, roll := range []int{0, 7, -1} {
		_, err := g.Destination(10, roll)
		assert.ErrorIs(t, err, ErrInvalidRoll)
	}
}

func TestHasLegalMove(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	// All tokens in the yard: only a 6 opens a move
	tokens := &models.TokenSet{}
	assert.False(t, g.HasLegalMove(tokens, 3))
	assert.True(t, g.HasLegalMove(tokens, 6))

	// One token near the finish, rest finished: only the exact roll works
	finish := g.FinishIndex()
	tokens = &models.TokenSet{Token1: finish, Token2: finish, Token3: finish, Token4: finish - 2}
	assert.True(t, g.HasLegalMove(tokens, 2))
	assert.False(t, g.HasLegalMove(tokens, 3))
}

func TestGridSharedCellAlignment(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	// Color offsets on the grid loop are 15 apart, so red's index 54 and
	// green's index 39 are the same physical cell.
	assert.True(t, g.SameCell(models.ColorRed, 54, models.ColorGreen, 39))
	assert.True(t, g.SameCell(models.ColorRed, 16, models.ColorGreen, 1))
	assert.False(t, g.SameCell(models.ColorRed, 54, models.ColorGreen, 40))
}

func TestVectorSharedCellTolerance(t *testing.T) {
	for _, n := range []int{5, 6} {
		g, err := VariantFor(n)
		require.NoError(t, err)

		// Offsets are one arm apart; red's index 20 lines up with green's
		// index 20-arm even though the authored coordinates differ slightly.
		arm := 14
		if n == 6 {
			arm = 13
		}
		assert.True(t, g.SameCell(models.ColorRed, 20, models.ColorGreen, 20-arm),
			"%d player board should match logically shared cells", n)
		assert.False(t, g.SameCell(models.ColorRed, 20, models.ColorGreen, 20-arm+1))
	}
}

func TestResolveCapturesSendsOpponentHome(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	positions := map[models.Color]*models.TokenSet{
		models.ColorRed:   {Token1: 54},
		models.ColorGreen: {Token2: 39}, // same cell as red 54
	}

	captures := g.ResolveCaptures(positions, models.ColorRed, 54)
	require.Len(t, captures, 1)
	assert.Equal(t, models.ColorGreen, captures[0].Color)
	assert.Equal(t, 2, captures[0].Token)
	assert.Equal(t, 39, captures[0].FromIndex)
	assert.Equal(t, 0, positions[models.ColorGreen].Token2)
}

func TestResolveCapturesSafeSquare(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	// Red lands on safe index 16, which is green's start cell (green
	// relative index 1, also safe).
	positions := map[models.Color]*models.TokenSet{
		models.ColorRed:   {Token1: 16},
		models.ColorGreen: {Token1: 1},
	}

	captures := g.ResolveCaptures(positions, models.ColorRed, 16)
	assert.Empty(t, captures)
	assert.Equal(t, 1, positions[models.ColorGreen].Token1)
}

func TestResolveCapturesIgnoresHomeColumnAndYard(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)

	positions := map[models.Color]*models.TokenSet{
		models.ColorRed:   {Token1: 30},
		models.ColorGreen: {Token1: 0, Token2: g.HomeColumnStart()},
	}

	captures := g.ResolveCaptures(positions, models.ColorRed, 30)
	assert.Empty(t, captures)

	// Landing inside the home column resolves nothing either
	captures = g.ResolveCaptures(positions, models.ColorRed, g.HomeColumnStart()+1)
	assert.Empty(t, captures)
}

func TestSafeSets(t *testing.T) {
	g, err := VariantFor(4)
	require.NoError(t, err)
	assert.True(t, g.IsSafe(1))
	assert.True(t, g.IsSafe(55))
	assert.False(t, g.IsSafe(54))

	g, err = VariantFor(6)
	require.NoError(t, err)
	assert.True(t, g.IsSafe(73))
	assert.False(t, g.IsSafe(74))
}

func TestPathTableShapes(t *testing.T) {
	for _, tc := range []struct {
		players int
		paths   int
	}{
		{4, 4}, {5, 5}, {6, 6},
	} {
		g, err := VariantFor(tc.players)
		require.NoError(t, err)

		colors := g.Colors(tc.players)
		require.Len(t, colors, tc.paths)
		for _, c := range colors {
			var length int
			switch g.Variant() {
			case VariantGrid:
				length = len(gridPaths[c])
			case VariantFive:
				length = len(fivePlayerPaths[c])
			case VariantSix:
				length = len(sixPlayerPaths[c])
			}
			assert.Equal(t, g.FinishIndex()+1, length, "%s path length", c)
		}
	}

	// Two players on the grid sit on opposite corners
	g, err := VariantFor(2)
	require.NoError(t, err)
	assert.Equal(t, []models.Color{models.ColorRed, models.ColorYellow}, g.Colors(2))
}
