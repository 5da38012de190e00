package models

import (
	"time"
)

// TournamentStatus represents the lifecycle state of a tournament
type TournamentStatus string

const (
	// TournamentStatusRegistration indicates the tournament is accepting entrants
	TournamentStatusRegistration TournamentStatus = "registration"

	// TournamentStatusInProgress indicates the semifinal rooms are being played
	TournamentStatusInProgress TournamentStatus = "in_progress"

	// TournamentStatusFinals indicates the final rooms are being played
	TournamentStatusFinals TournamentStatus = "finals"

	// TournamentStatusCompleted indicates prizes are paid and rankings recorded (terminal)
	TournamentStatusCompleted TournamentStatus = "completed"
)

// ParticipantStatus represents a player's standing within a tournament
type ParticipantStatus string

const (
	// ParticipantStatusWaiting indicates the entrant is waiting for the bracket to start
	ParticipantStatusWaiting ParticipantStatus = "waiting"

	// ParticipantStatusSemifinal indicates the entrant is seated in a semifinal room
	ParticipantStatusSemifinal ParticipantStatus = "semifinal"

	// ParticipantStatusEliminated indicates the entrant lost their semifinal
	ParticipantStatusEliminated ParticipantStatus = "eliminated"

	// ParticipantStatusFinalist indicates the entrant won their semifinal
	ParticipantStatusFinalist ParticipantStatus = "finalist"

	// ParticipantStatusWinner indicates the entrant won their final
	ParticipantStatusWinner ParticipantStatus = "winner"

	// ParticipantStatusRunnerUp indicates the entrant lost their final
	ParticipantStatusRunnerUp ParticipantStatus = "runner_up"
)

// Participant records one entrant's progress through a tournament
type Participant struct {
	// PlayerID is the entrant's identity
	PlayerID string `json:"playerId"`

	// JoinedAt is when the entrant registered
	JoinedAt time.Time `json:"joinedAt"`

	// EntryFeePaid is the fee debited at join time
	EntryFeePaid int64 `json:"entryFeePaid"`

	// Status is the entrant's current standing
	Status ParticipantStatus `json:"status"`

	// SemifinalRoomCode is the semifinal room the entrant was seeded into
	SemifinalRoomCode string `json:"semifinalRoomId,omitempty"`

	// FinalRoomCode is the final room, for finalists
	FinalRoomCode string `json:"finalRoomId,omitempty"`

	// FinalPosition is the entrant's rank in the final standings (1-based),
	// 0 until the tournament completes
	FinalPosition int `json:"finalPosition,omitempty"`

	// PrizeWon is the amount credited at completion
	PrizeWon int64 `json:"prizeWon,omitempty"`

	// IsBot marks the fixed bot identities used to fill the bracket
	IsBot bool `json:"isBot,omitempty"`
}

// Tournament represents one elimination bracket of eight seats: four
// semifinal rooms of two, then two final rooms of two.
type Tournament struct {
	// Code is the public identifier clients use to address the tournament
	Code string `json:"code"`

	// Name is a display label
	Name string `json:"name,omitempty"`

	// Participants maps player ID to entrant record
	Participants map[string]*Participant `json:"participants"`

	// SeedOrder is the explicit join order of entrants
	SeedOrder []string `json:"seedOrder"`

	// RegisteredPlayers counts non-bot entrants
	RegisteredPlayers int `json:"registeredPlayers"`

	// CurrentPlayers counts all seated entrants, bots included
	CurrentPlayers int `json:"currentPlayers"`

	// Status is the bracket lifecycle state
	Status TournamentStatus `json:"status"`

	// EntryFee is debited from each non-bot entrant at join
	EntryFee int64 `json:"entryFee"`

	// RewardAmount is the prize pool distributed at completion
	RewardAmount int64 `json:"rewardAmount"`

	// SemifinalRoomCodes lists the four opening rooms once seeded
	SemifinalRoomCodes []string `json:"semifinalRoomCodes,omitempty"`

	// FinalRoomCodes lists the two closing rooms once the bracket advances
	FinalRoomCodes []string `json:"finalRoomCodes,omitempty"`

	// SemifinalWinners maps semifinal room code to its winner
	SemifinalWinners map[string]string `json:"semifinalWinners,omitempty"`

	// FinalWinners maps final room code to its winner
	FinalWinners map[string]string `json:"finalWinners,omitempty"`

	// FinalRankings is the finish order recorded at completion, winners
	// before runners-up
	FinalRankings []string `json:"finalRankings,omitempty"`

	// CreatedAt is when the tournament was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the tournament was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasParticipant reports whether the player has already joined
func (t *Tournament) HasParticipant(playerID string) bool {
	_, ok := t.Participants[playerID]
	return ok
}

// NonBotCount counts the human entrants
func (t *Tournament) NonBotCount() int {
	n := 0
	for _, p := range t.Participants {
		if !p.IsBot {
			n++
		}
	}
	return n
}
