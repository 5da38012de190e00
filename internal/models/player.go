package models

import (
	"time"
)

// Player represents a registered player profile. Authentication lives with an
// external collaborator; this record only carries display identity and the
// spendable balance the tournament layer debits and credits.
type Player struct {
	// ID is the authenticated player identity
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Balance is the player's spendable balance
	Balance int64 `json:"balance"`

	// CurrentRoomCode is the room the player is currently seated in
	CurrentRoomCode string `json:"currentRoomCode,omitempty"`

	// CreatedAt is when the profile was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the profile was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}
