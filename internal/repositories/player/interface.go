package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/raceboard/ludo/internal/repositories/player Repository

import (
	"context"

	"github.com/raceboard/ludo/internal/models"
)

// Repository defines the interface for player profile and balance persistence
type Repository interface {
	// SavePlayer persists a player profile
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// UpdatePlayerRoom updates the room a player is seated in
	UpdatePlayerRoom(ctx context.Context, input *UpdatePlayerRoomInput) error

	// DebitBalance atomically subtracts from a player's balance, failing
	// with ErrInsufficientBalance rather than going negative
	DebitBalance(ctx context.Context, input *DebitBalanceInput) (*models.Player, error)

	// CreditBalance atomically adds to a player's balance
	CreditBalance(ctx context.Context, input *CreditBalanceInput) (*models.Player, error)
}
