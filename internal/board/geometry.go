package board

import (
	"math"

	"github.com/raceboard/ludo/internal/models"
)

// VectorTolerance is the per-axis slack used when comparing vector-system
// coordinates. The 5 and 6 player paths are laid out independently per color,
// so logically shared cells differ by a few thousandths; anything under this
// bound counts as the same cell. Tunable.
const VectorTolerance = 0.05

// Variant selects one of the board layouts
type Variant int

const (
	// VariantGrid is the 2-4 player cross board using grid coordinates
	VariantGrid Variant = iota

	// VariantFive is the 5 player pentagonal board using vector coordinates
	VariantFive

	// VariantSix is the 6 player hexagonal board using vector coordinates
	VariantSix
)

// Geometry answers coordinate, safety and threshold questions for one board
// variant. All answers come from the lookup tables in tables.go.
type Geometry struct {
	variant         Variant
	sharedTrackEnd  int
	homeColumnStart int
	finishIndex     int
	safe            map[int]bool
	colors          []models.Color
}

var (
	gridGeometry = &Geometry{
		variant:         VariantGrid,
		sharedTrackEnd:  59,
		homeColumnStart: 60,
		finishIndex:     66,
		safe:            indexSet(1, 10, 16, 25, 31, 40, 46, 55),
		colors:          []models.Color{models.ColorRed, models.ColorGreen, models.ColorYellow, models.ColorBlue},
	}

	fiveGeometry = &Geometry{
		variant:         VariantFive,
		sharedTrackEnd:  69,
		homeColumnStart: 70,
		finishIndex:     76,
		safe:            indexSet(1, 8, 15, 22, 29, 36, 43, 50, 57, 64),
		colors:          []models.Color{models.ColorRed, models.ColorGreen, models.ColorYellow, models.ColorBlue, models.ColorPurple},
	}

	sixGeometry = &Geometry{
		variant:         VariantSix,
		sharedTrackEnd:  77,
		homeColumnStart: 78,
		finishIndex:     84,
		safe:            indexSet(1, 8, 14, 21, 27, 34, 40, 47, 53, 60, 66, 73),
		colors:          []models.Color{models.ColorRed, models.ColorGreen, models.ColorYellow, models.ColorBlue, models.ColorPurple, models.ColorOrange},
	}
)

func indexSet(indices ...int) map[int]bool {
	s := make(map[int]bool, len(indices))
	for _, i := range indices {
		s[i] = true
	}
	return s
}

// VariantFor returns the geometry for a room capacity
func VariantFor(noOfPlayers int) (*Geometry, error) {
	switch {
	case noOfPlayers >= 2 && noOfPlayers <= 4:
		return gridGeometry, nil
	case noOfPlayers == 5:
		return fiveGeometry, nil
	case noOfPlayers == 6:
		return sixGeometry, nil
	}
	return nil, ErrInvalidPlayerCount
}

// Variant returns which layout this geometry describes
func (g *Geometry) Variant() Variant {
	return g.variant
}

// FinishIndex is the track index meaning a token has finished
func (g *Geometry) FinishIndex() int {
	return g.finishIndex
}

// HomeColumnStart is the first index of a color's private home column
func (g *Geometry) HomeColumnStart() int {
	return g.homeColumnStart
}

// IsSafe reports whether the track index is immune to capture
func (g *Geometry) IsSafe(index int) bool {
	return g.safe[index]
}

// OnSharedTrack reports whether the index is on the shared loop, where
// captures can happen. The yard (0) and home columns are excluded.
func (g *Geometry) OnSharedTrack(index int) bool {
	return index >= 1 && index <= g.sharedTrackEnd
}

// Colors returns the variant's color assignment order. The grid board seats
// two players on opposite corners rather than adjacent ones.
func (g *Geometry) Colors(noOfPlayers int) []models.Color {
	if g.variant == VariantGrid && noOfPlayers == 2 {
		return []models.Color{models.ColorRed, models.ColorYellow}
	}
	return g.colors[:noOfPlayers]
}

// SameCell reports whether two tokens occupy the same board cell. Grid
// coordinates compare exactly; vector coordinates compare within
// VectorTolerance on both axes.
func (g *Geometry) SameCell(c1 models.Color, i1 int, c2 models.Color, i2 int) bool {
	if g.variant == VariantGrid {
		a := gridPaths[c1][i1]
		b := gridPaths[c2][i2]
		return a.Row == b.Row && a.Col == b.Col
	}

	paths := fivePlayerPaths
	if g.variant == VariantSix {
		paths = sixPlayerPaths
	}
	a := paths[c1][i1]
	b := paths[c2][i2]
	return math.Abs(a.X-b.X) <= VectorTolerance && math.Abs(a.Y-b.Y) <= VectorTolerance
}
