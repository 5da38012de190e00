package room

// RoomError is a custom error type for room-related errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	// Not found
	ErrRoomNotFound RoomError = "room not found"

	// Forbidden
	ErrNotYourTurn  RoomError = "it is not your turn"
	ErrNotHost      RoomError = "only the host can do that"
	ErrNotYourColor RoomError = "token does not belong to your color"
	ErrNotInRoom    RoomError = "player is not in the room"

	// Invalid state
	ErrInvalidGameState RoomError = "invalid game state for this action"
	ErrInvalidDiceState RoomError = "invalid dice state for this action"
	ErrStepsPending     RoomError = "a token move is still owed"
	ErrNoStepsPending   RoomError = "no steps are owed, roll first"
	ErrNotEnoughPlayers RoomError = "at least two players are needed to start"

	// Invalid move
	ErrInvalidMove  RoomError = "illegal move for the rolled value"
	ErrInvalidToken RoomError = "token number must be between 1 and 4"

	// Conflict
	ErrRoomFull        RoomError = "room is at maximum capacity"
	ErrAlreadyInRoom   RoomError = "player already joined the room"
	ErrCodeExhausted   RoomError = "could not allocate a unique room code"
	ErrInvalidCapacity RoomError = "room capacity must be between 2 and 6"

	// Config validation
	ErrNilConfig     RoomError = "config cannot be nil"
	ErrNilRoomRepo   RoomError = "room repository cannot be nil"
	ErrNilPlayerRepo RoomError = "player repository cannot be nil"
	ErrNilDiceRoller RoomError = "dice roller cannot be nil"
	ErrNilClock      RoomError = "clock cannot be nil"
)

// errStaleDice signals that a deferred dice completion arrived after the
// room moved on; it never leaves the service.
const errStaleDice RoomError = "dice completion is stale"
