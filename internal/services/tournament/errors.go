package tournament

// TournamentError is a typed error for tournament operations
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

const (
	// Not found
	ErrTournamentNotFound TournamentError = "tournament not found"
	ErrRoomNotInBracket   TournamentError = "room does not belong to this tournament"

	// Forbidden
	ErrNotParticipant TournamentError = "player is not a participant"

	// Invalid state
	ErrInvalidStatus       TournamentError = "invalid tournament status for this action"
	ErrInsufficientPlayers TournamentError = "at least four registered players are needed to start"
	ErrRoomNotFinished     TournamentError = "room has not produced a winner yet"

	// Conflict
	ErrTournamentFull TournamentError = "tournament is at maximum capacity"
	ErrAlreadyJoined  TournamentError = "player already joined the tournament"
	ErrCodeExhausted  TournamentError = "could not allocate a unique code"

	// Payment
	ErrInsufficientFunds TournamentError = "balance does not cover the entry fee"

	// Validation
	ErrInvalidEntryFee TournamentError = "entry fee cannot be negative"
	ErrInvalidReward   TournamentError = "reward amount cannot be negative"

	// Config validation
	ErrNilConfig         TournamentError = "config cannot be nil"
	ErrNilTournamentRepo TournamentError = "tournament repository cannot be nil"
	ErrNilRoomRepo       TournamentError = "room repository cannot be nil"
	ErrNilPlayerRepo     TournamentError = "player repository cannot be nil"
	ErrNilLedgerRepo     TournamentError = "ledger repository cannot be nil"
	ErrNilDiceRoller     TournamentError = "dice roller cannot be nil"
	ErrNilClock          TournamentError = "clock cannot be nil"
)

// Internal sentinels for exactly-once predicates. An apply func returning
// one of these aborts the conditional update with no write; the caller
// treats it as "someone else already owns this transition".
const (
	errAlreadyRecorded  TournamentError = "room result already recorded"
	errAlreadyCompleted TournamentError = "tournament already completed"
)
