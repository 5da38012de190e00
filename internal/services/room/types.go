package room

import (
	"time"

	"github.com/raceboard/ludo/internal/board"
	"github.com/raceboard/ludo/internal/common/clock"
	"github.com/raceboard/ludo/internal/dice"
	"github.com/raceboard/ludo/internal/models"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomRepo "github.com/raceboard/ludo/internal/repositories/room"
)

// Config holds configuration and dependencies for the room service
type Config struct {
	// RoomRepo is the Room Store
	RoomRepo roomRepo.Repository

	// PlayerRepo tracks player profiles and seats
	PlayerRepo playerRepo.Repository

	// DiceRoller provides the randomness for rolls and turn selection
	DiceRoller dice.Roller

	// Clock provides timestamps
	Clock clock.Clock

	// MaxCodeAttempts bounds the room-code collision retries
	MaxCodeAttempts int

	// DiceDelay is how long a roll stays in the rolling state before the
	// deferred completion fires
	DiceDelay time.Duration
}

type CreateRoomInput struct {
	HostID      string
	NoOfPlayers int
}

type CreateRoomOutput struct {
	Room *models.Room
}

type JoinRoomInput struct {
	Code     string
	PlayerID string
}

type JoinRoomOutput struct {
	Room *models.Room

	// Color the joiner was assigned
	Color models.Color
}

type StartGameInput struct {
	Code     string
	PlayerID string
}

type StartGameOutput struct {
	Room *models.Room
}

type RollDiceInput struct {
	Code     string
	PlayerID string
}

type RollDiceOutput struct {
	Room *models.Room

	// Value of the roll, always generated server-side
	Value int
}

type CompleteDiceInput struct {
	Code     string
	PlayerID string
}

type CompleteDiceOutput struct {
	Room *models.Room

	// HasLegalMove is false when the roll was consumed and the turn passed
	HasLegalMove bool
}

type MoveTokenInput struct {
	Code     string
	PlayerID string

	// Token number (1-4) of the acting player's color
	Token int
}

type MoveTokenOutput struct {
	Room *models.Room

	// Captures lists opposing tokens sent home by this move
	Captures []board.Capture

	// TokenFinished is true when the moved token reached the finish index
	TokenFinished bool

	// TurnRetained is true when the mover keeps the turn
	TurnRetained bool
}

type LeaveRoomInput struct {
	Code     string
	PlayerID string
}

type LeaveRoomOutput struct {
	Room *models.Room

	// RoomDeleted is true when the host left and the room is gone
	RoomDeleted bool
}

type PassTurnInput struct {
	Code string
}

type PassTurnOutput struct {
	Room *models.Room
}

type GetRoomInput struct {
	Code string
}

type GetRoomOutput struct {
	Room *models.Room
}
