package room

import "github.com/raceboard/ludo/internal/models"

type CreateRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	Code string
}

type SaveRoomInput struct {
	Room *models.Room
}

type UpdateRoomInput struct {
	Code string

	// Apply mutates the freshly read snapshot. Returning an error aborts
	// the update with no write.
	Apply func(room *models.Room) error
}

type DeleteRoomInput struct {
	Code string
}

type GetActiveRoomsInput struct {
}

type GetActiveRoomsOutput struct {
	Rooms []*models.Room
}

type GetRoomsByTournamentInput struct {
	TournamentCode string
}
