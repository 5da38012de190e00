package room

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/raceboard/ludo/internal/services/room Service

// Service defines the interface for room operations
type Service interface {
	// CreateRoom creates a new room and seats the host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom seats a player in a waiting room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// StartGame moves a waiting room into play and picks the opening turn
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RollDice rolls for the turn holder and schedules the delayed
	// completion of the rolling animation state
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// CompleteDice resolves a rolling dice state ahead of the timer
	CompleteDice(ctx context.Context, input *CompleteDiceInput) (*CompleteDiceOutput, error)

	// MoveToken advances one of the turn holder's tokens by the owed steps
	MoveToken(ctx context.Context, input *MoveTokenInput) (*MoveTokenOutput, error)

	// LeaveRoom removes a player; the host leaving deletes the room
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// PassTurn force-advances the turn, clearing any owed steps
	PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error)

	// GetRoom returns the current room snapshot
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)
}
