package tournament

import "github.com/raceboard/ludo/internal/models"

type CreateTournamentInput struct {
	Tournament *models.Tournament
}

type GetTournamentInput struct {
	Code string
}

type UpdateTournamentInput struct {
	Code string

	// Apply mutates the freshly read snapshot. Returning an error aborts
	// the update with no write.
	Apply func(tournament *models.Tournament) error
}

type DeleteTournamentInput struct {
	Code string
}

type GetOpenTournamentsInput struct {
}

type GetOpenTournamentsOutput struct {
	Tournaments []*models.Tournament
}
