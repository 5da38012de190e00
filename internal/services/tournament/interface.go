package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/raceboard/ludo/internal/services/tournament Service

import (
	"context"
)

// Service orchestrates eight-seat elimination brackets: registration with
// entry fees, four semifinal rooms, two finals, and exactly-once payout.
type Service interface {
	// CreateTournament opens a new tournament for registration
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error)

	// JoinTournament registers a player, debiting the entry fee
	JoinTournament(ctx context.Context, input *JoinTournamentInput) (*JoinTournamentOutput, error)

	// StartTournament locks registration, fills empty seats with bots and
	// seeds the four semifinal rooms
	StartTournament(ctx context.Context, input *StartTournamentInput) (*StartTournamentOutput, error)

	// ReportRoomResult records a finished bracket room's winner and
	// advances the bracket; at most one call per room takes effect
	ReportRoomResult(ctx context.Context, input *ReportRoomResultInput) (*ReportRoomResultOutput, error)

	// LeaveTournament withdraws a player during registration and refunds
	// the entry fee
	LeaveTournament(ctx context.Context, input *LeaveTournamentInput) (*LeaveTournamentOutput, error)

	// GetTournament returns the current tournament snapshot
	GetTournament(ctx context.Context, input *GetTournamentInput) (*GetTournamentOutput, error)

	// ListOpenTournaments returns tournaments still accepting entrants
	ListOpenTournaments(ctx context.Context, input *ListOpenTournamentsInput) (*ListOpenTournamentsOutput, error)
}
