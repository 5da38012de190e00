package models

import (
	"time"
)

// Color identifies a player's token set on the board
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// GameState represents the current state of a room's match
type GameState string

const (
	// GameStateWaiting indicates a room is waiting for players to join
	GameStateWaiting GameState = "waiting"

	// GameStatePlaying indicates a match is in progress
	GameStatePlaying GameState = "playing"

	// GameStateFinished indicates a match has ended (terminal)
	GameStateFinished GameState = "finished"
)

// DiceState represents where the room is in the roll cycle
type DiceState string

const (
	// DiceStateWaiting indicates the turn holder may roll
	DiceStateWaiting DiceState = "waiting"

	// DiceStateRolling indicates a roll is animating and will auto-complete
	DiceStateRolling DiceState = "rolling"

	// DiceStateComplete indicates the roll has resolved and, if a legal move
	// exists, the turn holder owes a token move
	DiceStateComplete DiceState = "complete"
)

// RoomLevel marks a room's position in a tournament bracket
type RoomLevel string

const (
	// RoomLevelNone is a free-standing room outside any tournament
	RoomLevelNone RoomLevel = ""

	// RoomLevelSemifinal is one of a tournament's four opening rooms
	RoomLevelSemifinal RoomLevel = "semifinal"

	// RoomLevelFinal is one of a tournament's two closing rooms
	RoomLevelFinal RoomLevel = "final"
)

// TokenSet holds the four token positions for one color. Position 0 is the
// yard; positions run up to the variant's finish index.
type TokenSet struct {
	Token1 int `json:"t1"`
	Token2 int `json:"t2"`
	Token3 int `json:"t3"`
	Token4 int `json:"t4"`
}

// Get returns the position of token n (1-4). Out-of-range n returns -1.
func (ts *TokenSet) Get(n int) int {
	switch n {
	case 1:
		return ts.Token1
	case 2:
		return ts.Token2
	case 3:
		return ts.Token3
	case 4:
		return ts.Token4
	}
	return -1
}

// Set updates the position of token n (1-4)
func (ts *TokenSet) Set(n, pos int) {
	switch n {
	case 1:
		ts.Token1 = pos
	case 2:
		ts.Token2 = pos
	case 3:
		ts.Token3 = pos
	case 4:
		ts.Token4 = pos
	}
}

// All returns the four token positions in order
func (ts *TokenSet) All() [4]int {
	return [4]int{ts.Token1, ts.Token2, ts.Token3, ts.Token4}
}

// Room represents one match instance
type Room struct {
	// Code is the public identifier clients use to address the room
	Code string `json:"code"`

	// HostID is the player who created the room
	HostID string `json:"hostId"`

	// NoOfPlayers is the room capacity (2-6), fixed at creation. It selects
	// the board variant.
	NoOfPlayers int `json:"noOfPlayers"`

	// TurnOrder is the explicit turn cycle, in join order
	TurnOrder []string `json:"turnOrder"`

	// Players maps player ID to assigned color
	Players map[string]Color `json:"players"`

	// Bots flags the seats held by bot identities
	Bots map[string]bool `json:"bots,omitempty"`

	// Positions maps each assigned color to its four token positions. A
	// color stays here even if its player leaves mid-match.
	Positions map[Color]*TokenSet `json:"positions"`

	// Turn is the player currently entitled to roll or move
	Turn string `json:"turn,omitempty"`

	// DiceState is where the room is in the roll cycle
	DiceState DiceState `json:"diceState"`

	// DiceResult is the last rolled value (1-6), 0 when no roll is live
	DiceResult int `json:"diceResult,omitempty"`

	// RollSeq increments on every roll; a delayed dice completion only
	// applies if the sequence it captured is still current
	RollSeq int `json:"rollSeq"`

	// PendingSteps maps a player to the steps owed from their last roll
	PendingSteps map[string]int `json:"pendingSteps,omitempty"`

	// Winners lists players who brought all four tokens home, in finish order
	Winners []string `json:"winners,omitempty"`

	// GameState is the room lifecycle state
	GameState GameState `json:"gameState"`

	// RoomLevel marks bracket rooms; empty for free-standing rooms
	RoomLevel RoomLevel `json:"roomLevel,omitempty"`

	// TournamentCode back-references the owning tournament for bracket rooms
	TournamentCode string `json:"tournamentCode,omitempty"`

	// WinnerID is the first-place player once the match finishes
	WinnerID string `json:"winnerId,omitempty"`

	// ResultRecorded is the exactly-once latch for bracket progression: the
	// caller whose conditional update flips it owns the room's result
	ResultRecorded bool `json:"resultRecorded,omitempty"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasPlayer reports whether the player currently holds a seat
func (r *Room) HasPlayer(playerID string) bool {
	_, ok := r.Players[playerID]
	return ok
}

// HasWinner reports whether the player already appears in Winners
func (r *Room) HasWinner(playerID string) bool {
	for _, w := range r.Winners {
		if w == playerID {
			return true
		}
	}
	return false
}

// NextTurn returns the player after the given one in the turn cycle,
// wrapping around. Returns "" if the player is not in the cycle.
func (r *Room) NextTurn(after string) string {
	for i, id := range r.TurnOrder {
		if id == after {
			return r.TurnOrder[(i+1)%len(r.TurnOrder)]
		}
	}
	return ""
}
