package room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raceboard/ludo/internal/board"
	"github.com/raceboard/ludo/internal/common/code"
	"github.com/raceboard/ludo/internal/models"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomRepo "github.com/raceboard/ludo/internal/repositories/room"
)

const (
	defaultMaxCodeAttempts = 5
	defaultDiceDelay       = 1500 * time.Millisecond
)

// service implements the Service interface
type service struct {
	config     *Config
	roomRepo   roomRepo.Repository
	playerRepo playerRepo.Repository
	scheduler  *diceScheduler
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.MaxCodeAttempts <= 0 {
		cfg.MaxCodeAttempts = defaultMaxCodeAttempts
	}
	if cfg.DiceDelay <= 0 {
		cfg.DiceDelay = defaultDiceDelay
	}

	return &service{
		config:     cfg,
		roomRepo:   cfg.RoomRepo,
		playerRepo: cfg.PlayerRepo,
		scheduler:  newDiceScheduler(),
	}, nil
}

// CreateRoom creates a new room and seats the host
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	geo, err := board.VariantFor(input.NoOfPlayers)
	if err != nil {
		return nil, ErrInvalidCapacity
	}

	hostColor := geo.Colors(input.NoOfPlayers)[0]
	now := s.config.Clock.Now()

	room := &models.Room{
		HostID:      input.HostID,
		NoOfPlayers: input.NoOfPlayers,
		TurnOrder:   []string{input.HostID},
		Players:     map[string]models.Color{input.HostID: hostColor},
		Positions:   map[models.Color]*models.TokenSet{hostColor: {}},
		DiceState:   models.DiceStateWaiting,
		GameState:   models.GameStateWaiting,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Public codes can collide; retry a bounded number of times
	created := false
	for attempt := 0; attempt < s.config.MaxCodeAttempts; attempt++ {
		roomCode, err := code.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate room code: %w", err)
		}
		room.Code = roomCode

		err = s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{Room: room})
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, roomRepo.ErrRoomExists) {
			return nil, err
		}
	}
	if !created {
		return nil, ErrCodeExhausted
	}

	s.seatPlayer(ctx, input.HostID, room.Code)

	return &CreateRoomOutput{Room: room}, nil
}

// JoinRoom seats a player in a waiting room
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	var assigned models.Color

	room, err := s.updateRoom(ctx, input.Code, func(r *models.Room) error {
		if r.GameState != models.GameStateWaiting {
			return ErrInvalidGameState
		}
		if r.HasPlayer(input.PlayerID) {
			return ErrAlreadyInRoom
		}
		if len(r.TurnOrder) >= r.NoOfPlayers {
			return ErrRoomFull
		}

		geo, err := board.VariantFor(r.NoOfPlayers)
		if err != nil {
			return err
		}

		color, err := firstFreeColor(geo, r)
		if err != nil {
			return err
		}

		assigned = color
		r.Players[input.PlayerID] = color
		r.Positions[color] = &models.TokenSet{}
		r.TurnOrder = append(r.TurnOrder, input.PlayerID)
		r.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.seatPlayer(ctx, input.PlayerID, input.Code)

	return &JoinRoomOutput{Room: room, Color: assigned}, nil
}

// StartGame moves a waiting room into play and picks the opening turn
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	room, err := s.updateRoom(ctx, input.Code, func(r *models.Room) error {
		if r.HostID != input.PlayerID {
			return ErrNotHost
		}
		if r.GameState != models.GameStateWaiting {
			return ErrInvalidGameState
		}
		if len(r.TurnOrder) < 2 {
			return ErrNotEnoughPlayers
		}

		// Prefer opening on a human seat when one exists
		eligible := make([]string, 0, len(r.TurnOrder))
		for _, id := range r.TurnOrder {
			if !r.Bots[id] {
				eligible = append(eligible, id)
			}
		}
		if len(eligible) == 0 {
			eligible = r.TurnOrder
		}

		r.Turn = eligible[s.config.DiceRoller.Intn(len(eligible))]
		r.GameState = models.GameStatePlaying
		r.DiceState = models.DiceStateWaiting
		r.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{Room: room}, nil
}

// RollDice rolls for the turn holder. The dice enter the rolling state and
// a deferred completion is scheduled; the turn holder may also complete
// manually, which supersedes the timer.
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	var value int

	room, err := s.updateRoom(ctx, input.Code, func(r *models.Room) error {
		if r.GameState != models.GameStatePlaying {
			return ErrInvalidGameState
		}
		if r.Turn != input.PlayerID {
			return ErrNotYourTurn
		}
		if r.DiceState != models.DiceStateWaiting {
			return ErrInvalidDiceState
		}
		if r.PendingSteps[input.PlayerID] > 0 {
			return ErrStepsPending
		}

		value = s.config.DiceRoller.Roll(6)
		r.DiceResult = value
		r.DiceState = models.DiceStateRolling
		r.RollSeq++
		r.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fire-and-forget completion once the rolling animation window passes.
	// The deferred update re-checks the roll sequence, so a player who
	// completed manually (or a newer roll) makes it a no-op.
	seq := room.RollSeq
	s.scheduler.schedule(room.Code, s.config.DiceDelay, func() {
		s.autoCompleteDice(context.Background(), input.Code, seq)
	})

	return &RollDiceOutput{Room: room, Value: value}, nil
}

// CompleteDice resolves a rolling dice state ahead of the timer
func (s *service) CompleteDice(ctx context.Context, input *CompleteDiceInput) (*CompleteDiceOutput, error) {
	var hasMove bool

	room, err := s.updateRoom(ctx, input.Code, func(r *models.Room) error {
		if r.GameState != models.GameStatePlaying {
			return ErrInvalidGameState
		}
		if r.Turn != input.PlayerID {
			return ErrNotYourTurn
		}
		if r.DiceState != models.DiceStateRolling {
			return ErrInvalidDiceState
		}

		var err error
		hasMove, err = s.resolveDice(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.scheduler.cancel(input.Code)

	return &CompleteDiceOutput{Room: room, HasLegalMove: hasMove}, nil
}

// autoCompleteDice is the timer path of dice resolution. The update is
// predicated on the room still being in the exact rolling state the timer
// was armed for; anything else means the room moved on underneath it.
func (s *service) autoCompleteDice(ctx context.Context, roomCode string, rollSeq int) {
	_, err := s.updateRoom(ctx, roomCode, func(r *models.Room) error {
		if r.GameState != models.GameStatePlaying {
			return errStaleDice
		}
		if r.DiceState != models.DiceStateRolling || r.RollSeq != rollSeq {
			return errStaleDice
		}

		_, err := s.resolveDice(r)
		return err
	})
	// A stale or deleted room is the expected benign outcome here
	_ = err
}

// resolveDice applies the dice-resolution step: no legal move consumes the
// roll and passes the turn, otherwise steps become owed and a move is
// awaited. Caller holds the conditional update.
func (s *service) resolveDice(r *models.Room) (bool, error) {
	geo, err := board.VariantFor(r.NoOfPlayers)
	if err != nil {
		return false, err
	}

	actor := r.Turn
	tokens := r.Positions[r.Players[actor]]

	if !geo.HasLegalMove(tokens, r.DiceResult) {
		r.Turn = s.nextTurn(r, actor)
		r.DiceState = models.DiceStateWaiting
		r.DiceResult = 0
		r.UpdatedAt = s.config.Clock.Now()
		return false, nil
	}

	if r.PendingSteps == nil {
		r.PendingSteps = make(map[string]int)
	}
	r.PendingSteps[actor] = r.DiceResult
	r.DiceState = models.DiceStateComplete
	r.UpdatedAt = s.config.Clock.Now()
	return true, nil
}

// MoveToken advances one of the turn holder's tokens by the owed steps
func (s *service) MoveToken(ctx context.Context, input *MoveTokenInput) (*MoveTokenOutput, error) {
	out := &MoveTokenOutput{}

	room, err := s.updateRoom(ctx, input.Code, func(r *models.Room) error {
		if r.GameState != models.GameStatePlaying {
			return ErrInvalidGameState
		}
		if r.Turn != input.PlayerID {
			return ErrNotYourTurn
		}
		steps := r.PendingSteps[input.PlayerID]
		if steps == 0 {
			return ErrNoStepsPending
		}
		if input.Token < 1 || input.Token > 4 {
			return ErrInvalidToken
		}

		color, ok := r.Players[input.PlayerID]
		if !ok {
			return ErrNotInRoom
		}

		geo, err := board.VariantFor(r.NoOfPlayers)
		if err != nil {
			return err
		}

		tokens := r.Positions[color]
		dest, err := geo.Destination(tokens.Get(input.Token), steps)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidMove, err)
		}

		tokens.Set(input.Token, dest)
		out.Captures = geo.ResolveCaptures(r.Positions, color, dest)
		out.TokenFinished = dest == geo.FinishIndex()

		// Win detection: all four tokens home
		if allFinished(tokens, geo.FinishIndex()) && !r.HasWinner(input.PlayerID) {
			r.Winners = append(r.Winners, input.PlayerID)
		}

		delete(r.PendingSteps, input.PlayerID)
		r.DiceState = models.DiceStateWaiting
		rolled := r.DiceResult
		r.DiceResult = 0

		if len(r.Winners) >= r.NoOfPlayers-1 {
			r.GameState = models.GameStateFinished
			r.WinnerID = r.Winners[0]
			r.Turn = ""
			out.TurnRetained = false
			r.UpdatedAt = s.config.Clock.Now()
			return nil
		}

		// Bonus-turn rule: a 6, a capture, or finishing a token keeps the
		// turn, unless the mover just finished their whole set
		retain := (rolled == 6 || len(out.Captures) > 0 || out.TokenFinished) &&
			!r.HasWinner(input.PlayerID)
		if !retain {
			r.Turn = s.nextTurn(r, input.PlayerID)
		}
		out.TurnRetained = retain
		r.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Room = room
	return out, nil
}

// LeaveRoom removes a player; the host leaving deletes the room outright
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	current, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Code: input.Code})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if !current.HasPlayer(input.PlayerID) {
		return nil, ErrNotInRoom
	}

	if current.HostID == input.PlayerID {
		if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{Code: input.Code}); err != nil {
			return nil, err
		}
		s.scheduler.cancel(input.Code)
		s.seatPlayer(ctx, input.PlayerID, "")
		return &LeaveRoomOutput{RoomDeleted: true}, nil
	}

	room, err := s.updateRoom(ctx, input.Code, func(r *models.Room) error {
		if !r.HasPlayer(input.PlayerID) {
			return ErrNotInRoom
		}

		// Hand the turn off before removing the seat
		if r.Turn == input.PlayerID {
			r.Turn = s.nextTurn(r, input.PlayerID)
			r.DiceState = models.DiceStateWaiting
			r.DiceResult = 0
		}

		color := r.Players[input.PlayerID]
		delete(r.Players, input.PlayerID)
		delete(r.PendingSteps, input.PlayerID)
		delete(r.Bots, input.PlayerID)
		r.TurnOrder = removeID(r.TurnOrder, input.PlayerID)

		// Before the match starts the color frees up entirely; mid-match
		// the vacated tokens stay on the board
		if r.GameState == models.GameStateWaiting {
			delete(r.Positions, color)
		}

		r.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.seatPlayer(ctx, input.PlayerID, "")

	return &LeaveRoomOutput{Room: room}, nil
}

// PassTurn force-advances the turn, clearing any owed steps. This is the
// administrative escape hatch for timeouts; it does not require the dice
// cycle to have run.
func (s *service) PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error) {
	room, err := s.updateRoom(ctx, input.Code, func(r *models.Room) error {
		if r.GameState != models.GameStatePlaying {
			return ErrInvalidGameState
		}

		actor := r.Turn
		delete(r.PendingSteps, actor)
		r.Turn = s.nextTurn(r, actor)
		r.DiceState = models.DiceStateWaiting
		r.DiceResult = 0
		r.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.scheduler.cancel(input.Code)

	return &PassTurnOutput{Room: room}, nil
}

// GetRoom returns the current room snapshot
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Code: input.Code})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &GetRoomOutput{Room: room}, nil
}

// updateRoom funnels every mutation through the store's conditional update,
// translating the store's not-found error to the service taxonomy
func (s *service) updateRoom(ctx context.Context, roomCode string, apply func(*models.Room) error) (*models.Room, error) {
	room, err := s.roomRepo.UpdateRoom(ctx, &roomRepo.UpdateRoomInput{
		Code:  roomCode,
		Apply: apply,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// nextTurn returns the next seat in join order after the given player,
// wrapping around and skipping seats that already finished
func (s *service) nextTurn(r *models.Room, after string) string {
	next := r.NextTurn(after)
	for i := 0; i < len(r.TurnOrder) && next != ""; i++ {
		if !r.HasWinner(next) {
			return next
		}
		next = r.NextTurn(next)
	}
	return next
}

// seatPlayer best-effort updates the player profile's current room; players
// without a stored profile are fine
func (s *service) seatPlayer(ctx context.Context, playerID, roomCode string) {
	err := s.playerRepo.UpdatePlayerRoom(ctx, &playerRepo.UpdatePlayerRoomInput{
		PlayerID: playerID,
		RoomCode: roomCode,
	})
	if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		// Seat tracking is advisory; the room snapshot stays authoritative
		_ = err
	}
}

func firstFreeColor(geo *board.Geometry, r *models.Room) (models.Color, error) {
	used := make(map[models.Color]bool, len(r.Players))
	for _, c := range r.Players {
		used[c] = true
	}
	for _, c := range geo.Colors(r.NoOfPlayers) {
		if !used[c] {
			return c, nil
		}
	}
	return "", ErrRoomFull
}

func allFinished(tokens *models.TokenSet, finish int) bool {
	for _, pos := range tokens.All() {
		if pos != finish {
			return false
		}
	}
	return true
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
