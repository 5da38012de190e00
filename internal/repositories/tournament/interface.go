package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/raceboard/ludo/internal/repositories/tournament Repository

import (
	"context"

	"github.com/raceboard/ludo/internal/models"
)

// Repository persists tournament snapshots through the same conditional
// update primitive the Room Store offers for rooms.
type Repository interface {
	// CreateTournament persists a new tournament, failing if the code is taken
	CreateTournament(ctx context.Context, input *CreateTournamentInput) error

	// GetTournament retrieves a tournament by public code
	GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error)

	// UpdateTournament applies a read-modify-write atomically; an error from
	// Apply aborts with no write (see room.Repository.UpdateRoom)
	UpdateTournament(ctx context.Context, input *UpdateTournamentInput) (*models.Tournament, error)

	// DeleteTournament removes a tournament
	DeleteTournament(ctx context.Context, input *DeleteTournamentInput) error

	// GetOpenTournaments retrieves tournaments still in registration
	GetOpenTournaments(ctx context.Context, input *GetOpenTournamentsInput) (*GetOpenTournamentsOutput, error)
}
