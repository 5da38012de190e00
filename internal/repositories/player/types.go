package player

import "github.com/raceboard/ludo/internal/models"

type SavePlayerInput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID string
}

type UpdatePlayerRoomInput struct {
	PlayerID string
	RoomCode string
}

type DebitBalanceInput struct {
	PlayerID string
	Amount   int64
}

type CreditBalanceInput struct {
	PlayerID string
	Amount   int64
}
