package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/raceboard/ludo/internal/dice Roller

// Roller provides the randomness the game depends on: dice rolls, initial
// turn selection and bracket shuffling. Injected so tests can pin outcomes.
type Roller interface {
	// Roll generates a roll of a die with the given number of sides
	Roll(sides int) int

	// Intn returns a uniform value in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements
	Shuffle(n int, swap func(i, j int))
}

// defaultRoller implements Roller with a seeded PRNG
type defaultRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *defaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &defaultRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *defaultRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Intn returns a uniform value in [0, n)
func (r *defaultRoller) Intn(n int) int {
	return r.random.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements
func (r *defaultRoller) Shuffle(n int, swap func(i, j int)) {
	r.random.Shuffle(n, swap)
}
