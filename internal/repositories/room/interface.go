package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/raceboard/ludo/internal/repositories/room Repository

import (
	"context"

	"github.com/raceboard/ludo/internal/models"
)

// Repository is the Room Store: a keyed snapshot store whose UpdateRoom
// primitive provides the atomic conditional update all cross-request
// concurrency control relies on.
type Repository interface {
	// CreateRoom persists a new room, failing if the code is taken
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// GetRoom retrieves a room by public code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// SaveRoom persists a room unconditionally
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// UpdateRoom applies a read-modify-write atomically: the snapshot read,
	// the Apply function and the write happen under optimistic concurrency
	// control, retrying on interleaved writers. An error returned by Apply
	// aborts the update untouched and is surfaced as-is, which is how
	// callers implement exactly-once conditional transitions.
	UpdateRoom(ctx context.Context, input *UpdateRoomInput) (*models.Room, error)

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// GetActiveRooms retrieves all rooms not yet finished
	GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error)

	// GetRoomsByTournament retrieves all bracket rooms of a tournament
	GetRoomsByTournament(ctx context.Context, input *GetRoomsByTournamentInput) ([]*models.Room, error)
}
