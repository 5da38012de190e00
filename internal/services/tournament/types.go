package tournament

import (
	"github.com/raceboard/ludo/internal/common/clock"
	"github.com/raceboard/ludo/internal/dice"
	"github.com/raceboard/ludo/internal/models"
	ledgerRepo "github.com/raceboard/ludo/internal/repositories/ledger"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomRepo "github.com/raceboard/ludo/internal/repositories/room"
	tournamentRepo "github.com/raceboard/ludo/internal/repositories/tournament"
)

// Config holds the dependencies for the tournament service
type Config struct {
	// TournamentRepo persists tournament snapshots
	TournamentRepo tournamentRepo.Repository

	// RoomRepo persists the bracket rooms
	RoomRepo roomRepo.Repository

	// PlayerRepo handles entry-fee debits and prize credits
	PlayerRepo playerRepo.Repository

	// LedgerRepo records every balance movement
	LedgerRepo ledgerRepo.Repository

	// DiceRoller shuffles the seed order
	DiceRoller dice.Roller

	// Clock provides timestamps
	Clock clock.Clock

	// MaxCodeAttempts bounds public code generation retries (default 5)
	MaxCodeAttempts int
}

type CreateTournamentInput struct {
	Name         string
	EntryFee     int64
	RewardAmount int64
}

type CreateTournamentOutput struct {
	Tournament *models.Tournament
}

type JoinTournamentInput struct {
	Code     string
	PlayerID string
}

type JoinTournamentOutput struct {
	Tournament *models.Tournament
}

type StartTournamentInput struct {
	Code string
}

type StartTournamentOutput struct {
	Tournament *models.Tournament

	// Rooms are the four semifinal rooms just seeded
	Rooms []*models.Room
}

type ReportRoomResultInput struct {
	Code     string
	RoomCode string
}

type ReportRoomResultOutput struct {
	Tournament *models.Tournament

	// AlreadyRecorded is true when an earlier call owned this room's
	// result; the call was a no-op
	AlreadyRecorded bool

	// FinalsStarted is true when this result completed the semifinals and
	// the final rooms were seeded
	FinalsStarted bool

	// Completed is true when this result closed the bracket and prizes
	// were paid
	Completed bool
}

type LeaveTournamentInput struct {
	Code     string
	PlayerID string
}

type LeaveTournamentOutput struct {
	Tournament *models.Tournament

	// Refunded is the entry fee returned to the player
	Refunded int64
}

type GetTournamentInput struct {
	Code string
}

type GetTournamentOutput struct {
	Tournament *models.Tournament
}

type ListOpenTournamentsInput struct {
}

type ListOpenTournamentsOutput struct {
	Tournaments []*models.Tournament
}
