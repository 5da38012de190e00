package tournament

import (
	"context"
	"errors"
	"fmt"

	"github.com/raceboard/ludo/internal/board"
	"github.com/raceboard/ludo/internal/common/code"
	"github.com/raceboard/ludo/internal/models"
	ledgerRepo "github.com/raceboard/ludo/internal/repositories/ledger"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomRepo "github.com/raceboard/ludo/internal/repositories/room"
	tournamentRepo "github.com/raceboard/ludo/internal/repositories/tournament"
)

const (
	defaultMaxCodeAttempts = 5

	// Eight seats: four semifinal rooms of two, two final rooms of two
	tournamentSeats = 8
	minHumanPlayers = 4

	// Prize split in percent of the reward amount
	winnerSharePct   = 40
	runnerUpSharePct = 10
)

// botRoster holds the fixed bot identities used to fill empty seats. At
// most four are needed since a start requires four humans.
var botRoster = []string{"bot-vega", "bot-rook", "bot-pip", "bot-moss"}

// service implements the Service interface
type service struct {
	config         *Config
	tournamentRepo tournamentRepo.Repository
	roomRepo       roomRepo.Repository
	playerRepo     playerRepo.Repository
	ledgerRepo     ledgerRepo.Repository
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
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

	return &service{
		config:         cfg,
		tournamentRepo: cfg.TournamentRepo,
		roomRepo:       cfg.RoomRepo,
		playerRepo:     cfg.PlayerRepo,
		ledgerRepo:     cfg.LedgerRepo,
	}, nil
}

// CreateTournament opens a new tournament for registration
func (s *service) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error) {
	if input.EntryFee < 0 {
		return nil, ErrInvalidEntryFee
	}
	if input.RewardAmount < 0 {
		return nil, ErrInvalidReward
	}

	now := s.config.Clock.Now()
	t := &models.Tournament{
		Name:         input.Name,
		Participants: make(map[string]*models.Participant),
		Status:       models.TournamentStatusRegistration,
		EntryFee:     input.EntryFee,
		RewardAmount: input.RewardAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created := false
	for attempt := 0; attempt < s.config.MaxCodeAttempts; attempt++ {
		tournamentCode, err := code.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tournament code: %w", err)
		}
		t.Code = tournamentCode

		err = s.tournamentRepo.CreateTournament(ctx, &tournamentRepo.CreateTournamentInput{Tournament: t})
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, tournamentRepo.ErrTournamentExists) {
			return nil, err
		}
	}
	if !created {
		return nil, ErrCodeExhausted
	}

	return &CreateTournamentOutput{Tournament: t}, nil
}

// JoinTournament registers a player. The entry fee is debited before the
// participant record commits; a failed commit is compensated with a refund.
func (s *service) JoinTournament(ctx context.Context, input *JoinTournamentInput) (*JoinTournamentOutput, error) {
	current, err := s.getTournament(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	// Cheap rejections before touching the player's balance
	if current.Status != models.TournamentStatusRegistration {
		return nil, ErrInvalidStatus
	}
	if current.HasParticipant(input.PlayerID) {
		return nil, ErrAlreadyJoined
	}
	if current.CurrentPlayers >= tournamentSeats {
		return nil, ErrTournamentFull
	}

	fee := current.EntryFee
	if fee > 0 {
		_, err := s.playerRepo.DebitBalance(ctx, &playerRepo.DebitBalanceInput{
			PlayerID: input.PlayerID,
			Amount:   fee,
		})
		if err != nil {
			if errors.Is(err, playerRepo.ErrInsufficientBalance) {
				return nil, ErrInsufficientFunds
			}
			return nil, err
		}
		s.recordTransaction(ctx, input.PlayerID, input.Code, -fee, models.TransactionReasonEntryFee)
	}

	t, err := s.updateTournament(ctx, input.Code, func(t *models.Tournament) error {
		if t.Status != models.TournamentStatusRegistration {
			return ErrInvalidStatus
		}
		if t.HasParticipant(input.PlayerID) {
			return ErrAlreadyJoined
		}
		if t.CurrentPlayers >= tournamentSeats {
			return ErrTournamentFull
		}

		t.Participants[input.PlayerID] = &models.Participant{
			PlayerID:     input.PlayerID,
			JoinedAt:     s.config.Clock.Now(),
			EntryFeePaid: fee,
			Status:       models.ParticipantStatusWaiting,
		}
		t.SeedOrder = append(t.SeedOrder, input.PlayerID)
		t.RegisteredPlayers++
		t.CurrentPlayers++
		t.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		// The debit went through but the seat did not; give the fee back
		if fee > 0 {
			s.refundFee(ctx, input.PlayerID, input.Code, fee)
		}
		return nil, err
	}

	return &JoinTournamentOutput{Tournament: t}, nil
}

// StartTournament locks registration, fills the bracket to eight seats with
// bots, shuffles the seeding and creates the four semifinal rooms
func (s *service) StartTournament(ctx context.Context, input *StartTournamentInput) (*StartTournamentOutput, error) {
	var seeds []string

	// Locking the status first stops late joins racing the seeding
	_, err := s.updateTournament(ctx, input.Code, func(t *models.Tournament) error {
		if t.Status != models.TournamentStatusRegistration {
			return ErrInvalidStatus
		}
		if t.NonBotCount() < minHumanPlayers {
			return ErrInsufficientPlayers
		}

		for i := 0; t.CurrentPlayers < tournamentSeats; i++ {
			botID := botRoster[i]
			t.Participants[botID] = &models.Participant{
				PlayerID: botID,
				JoinedAt: s.config.Clock.Now(),
				Status:   models.ParticipantStatusWaiting,
				IsBot:    true,
			}
			t.SeedOrder = append(t.SeedOrder, botID)
			t.CurrentPlayers++
		}

		seeds = make([]string, len(t.SeedOrder))
		copy(seeds, t.SeedOrder)
		s.config.DiceRoller.Shuffle(len(seeds), func(i, j int) {
			seeds[i], seeds[j] = seeds[j], seeds[i]
		})

		t.Status = models.TournamentStatusInProgress
		t.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	rooms := make([]*models.Room, 0, tournamentSeats/2)
	codes := make([]string, 0, tournamentSeats/2)

	t, err := s.getTournament(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	for i := 0; i < tournamentSeats; i += 2 {
		pair := []string{seeds[i], seeds[i+1]}
		room, err := s.createBracketRoom(ctx, t, pair, models.RoomLevelSemifinal)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
		codes = append(codes, room.Code)
	}

	t, err = s.updateTournament(ctx, input.Code, func(t *models.Tournament) error {
		t.SemifinalRoomCodes = codes
		for i, roomCode := range codes {
			for _, playerID := range []string{seeds[2*i], seeds[2*i+1]} {
				p := t.Participants[playerID]
				p.Status = models.ParticipantStatusSemifinal
				p.SemifinalRoomCode = roomCode
			}
		}
		t.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &StartTournamentOutput{Tournament: t, Rooms: rooms}, nil
}

// ReportRoomResult records a finished bracket room's winner. The room's
// result latch makes at most one call the owner; the owner advances the
// bracket and, on the last final, pays out.
func (s *service) ReportRoomResult(ctx context.Context, input *ReportRoomResultInput) (*ReportRoomResultOutput, error) {
	t, err := s.getTournament(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	isSemifinal := containsCode(t.SemifinalRoomCodes, input.RoomCode)
	isFinal := containsCode(t.FinalRoomCodes, input.RoomCode)
	if !isSemifinal && !isFinal {
		return nil, ErrRoomNotInBracket
	}

	// Claim the result. The conditional update refuses when a previous
	// call already flipped the latch, so exactly one caller proceeds.
	room, err := s.roomRepo.UpdateRoom(ctx, &roomRepo.UpdateRoomInput{
		Code: input.RoomCode,
		Apply: func(r *models.Room) error {
			if r.GameState != models.GameStateFinished || r.WinnerID == "" {
				return ErrRoomNotFinished
			}
			if r.ResultRecorded {
				return errAlreadyRecorded
			}
			r.ResultRecorded = true
			r.UpdatedAt = s.config.Clock.Now()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, errAlreadyRecorded) {
			return &ReportRoomResultOutput{Tournament: t, AlreadyRecorded: true}, nil
		}
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotInBracket
		}
		return nil, err
	}

	winner := room.WinnerID
	losers := make([]string, 0, len(room.TurnOrder))
	for _, playerID := range room.TurnOrder {
		if playerID != winner {
			losers = append(losers, playerID)
		}
	}

	t, err = s.updateTournament(ctx, input.Code, func(t *models.Tournament) error {
		if isSemifinal {
			if t.SemifinalWinners == nil {
				t.SemifinalWinners = make(map[string]string)
			}
			t.SemifinalWinners[input.RoomCode] = winner
			t.Participants[winner].Status = models.ParticipantStatusFinalist
			for _, loser := range losers {
				t.Participants[loser].Status = models.ParticipantStatusEliminated
			}
		} else {
			if t.FinalWinners == nil {
				t.FinalWinners = make(map[string]string)
			}
			t.FinalWinners[input.RoomCode] = winner
			t.Participants[winner].Status = models.ParticipantStatusWinner
			for _, loser := range losers {
				t.Participants[loser].Status = models.ParticipantStatusRunnerUp
			}
		}
		t.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &ReportRoomResultOutput{Tournament: t}

	if isSemifinal && len(t.SemifinalWinners) == len(t.SemifinalRoomCodes) {
		t, err = s.startFinals(ctx, t)
		if err != nil {
			return nil, err
		}
		out.Tournament = t
		out.FinalsStarted = true
	}

	if isFinal && len(t.FinalWinners) == len(t.FinalRoomCodes) {
		t, completed, err := s.completeTournament(ctx, t.Code)
		if err != nil {
			return nil, err
		}
		out.Tournament = t
		out.Completed = completed
	}

	return out, nil
}

// startFinals pairs the four semifinal winners into two final rooms
func (s *service) startFinals(ctx context.Context, t *models.Tournament) (*models.Tournament, error) {
	winners := make([]string, 0, len(t.SemifinalRoomCodes))
	for _, roomCode := range t.SemifinalRoomCodes {
		winners = append(winners, t.SemifinalWinners[roomCode])
	}

	codes := make([]string, 0, 2)
	for i := 0; i < len(winners); i += 2 {
		room, err := s.createBracketRoom(ctx, t, []string{winners[i], winners[i+1]}, models.RoomLevelFinal)
		if err != nil {
			return nil, err
		}
		codes = append(codes, room.Code)
	}

	return s.updateTournament(ctx, t.Code, func(t *models.Tournament) error {
		if t.Status != models.TournamentStatusInProgress {
			return ErrInvalidStatus
		}
		t.FinalRoomCodes = codes
		for i, roomCode := range codes {
			for _, playerID := range []string{winners[2*i], winners[2*i+1]} {
				t.Participants[playerID].FinalRoomCode = roomCode
			}
		}
		t.Status = models.TournamentStatusFinals
		t.UpdatedAt = s.config.Clock.Now()
		return nil
	})
}

type payout struct {
	playerID string
	amount   int64
	reason   models.TransactionReason
}

// completeTournament closes the bracket and pays prizes. The status
// predicate makes the transition exactly-once; only the owning call
// credits balances.
func (s *service) completeTournament(ctx context.Context, tournamentCode string) (*models.Tournament, bool, error) {
	var payouts []payout

	t, err := s.updateTournament(ctx, tournamentCode, func(t *models.Tournament) error {
		if t.Status == models.TournamentStatusCompleted {
			return errAlreadyCompleted
		}

		winners := make([]string, 0, len(t.FinalRoomCodes))
		runnersUp := make([]string, 0, len(t.FinalRoomCodes))
		for _, roomCode := range t.FinalRoomCodes {
			winner := t.FinalWinners[roomCode]
			winners = append(winners, winner)
			for _, p := range t.Participants {
				if p.FinalRoomCode == roomCode && p.PlayerID != winner {
					runnersUp = append(runnersUp, p.PlayerID)
				}
			}
		}

		t.FinalRankings = append(append([]string{}, winners...), runnersUp...)
		payouts = payouts[:0]

		for rank, playerID := range t.FinalRankings {
			p := t.Participants[playerID]
			p.FinalPosition = rank + 1

			share := int64(runnerUpSharePct)
			reason := models.TransactionReasonPrizeRunnerUp
			if rank < len(winners) {
				share = int64(winnerSharePct)
				reason = models.TransactionReasonPrizeWinner
			}
			prize := t.RewardAmount * share / 100

			p.PrizeWon = prize
			// Bots rank but never collect
			if !p.IsBot && prize > 0 {
				payouts = append(payouts, payout{playerID: playerID, amount: prize, reason: reason})
			}
		}

		t.Status = models.TournamentStatusCompleted
		t.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		if errors.Is(err, errAlreadyCompleted) {
			current, getErr := s.getTournament(ctx, tournamentCode)
			if getErr != nil {
				return nil, false, getErr
			}
			return current, false, nil
		}
		return nil, false, err
	}

	for _, p := range payouts {
		_, err := s.playerRepo.CreditBalance(ctx, &playerRepo.CreditBalanceInput{
			PlayerID: p.playerID,
			Amount:   p.amount,
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to credit prize for %s: %w", p.playerID, err)
		}
		s.recordTransaction(ctx, p.playerID, tournamentCode, p.amount, p.reason)
	}

	return t, true, nil
}

// LeaveTournament withdraws a player during registration and refunds the fee
func (s *service) LeaveTournament(ctx context.Context, input *LeaveTournamentInput) (*LeaveTournamentOutput, error) {
	var fee int64

	t, err := s.updateTournament(ctx, input.Code, func(t *models.Tournament) error {
		if t.Status != models.TournamentStatusRegistration {
			return ErrInvalidStatus
		}
		p, ok := t.Participants[input.PlayerID]
		if !ok {
			return ErrNotParticipant
		}

		fee = p.EntryFeePaid
		delete(t.Participants, input.PlayerID)
		t.SeedOrder = removeID(t.SeedOrder, input.PlayerID)
		t.RegisteredPlayers--
		t.CurrentPlayers--
		t.UpdatedAt = s.config.Clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if fee > 0 {
		s.refundFee(ctx, input.PlayerID, input.Code, fee)
	}

	return &LeaveTournamentOutput{Tournament: t, Refunded: fee}, nil
}

// GetTournament returns the current tournament snapshot
func (s *service) GetTournament(ctx context.Context, input *GetTournamentInput) (*GetTournamentOutput, error) {
	t, err := s.getTournament(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	return &GetTournamentOutput{Tournament: t}, nil
}

// ListOpenTournaments returns tournaments still accepting entrants
func (s *service) ListOpenTournaments(ctx context.Context, input *ListOpenTournamentsInput) (*ListOpenTournamentsOutput, error) {
	out, err := s.tournamentRepo.GetOpenTournaments(ctx, &tournamentRepo.GetOpenTournamentsInput{})
	if err != nil {
		return nil, err
	}
	return &ListOpenTournamentsOutput{Tournaments: out.Tournaments}, nil
}

// createBracketRoom creates a two-seat room for a bracket pairing, already
// in play with the first human to act
func (s *service) createBracketRoom(ctx context.Context, t *models.Tournament, pair []string, level models.RoomLevel) (*models.Room, error) {
	geo, err := board.VariantFor(len(pair))
	if err != nil {
		return nil, err
	}
	colors := geo.Colors(len(pair))

	now := s.config.Clock.Now()
	room := &models.Room{
		HostID:         pair[0],
		NoOfPlayers:    len(pair),
		TurnOrder:      append([]string{}, pair...),
		Players:        make(map[string]models.Color, len(pair)),
		Positions:      make(map[models.Color]*models.TokenSet, len(pair)),
		DiceState:      models.DiceStateWaiting,
		GameState:      models.GameStatePlaying,
		RoomLevel:      level,
		TournamentCode: t.Code,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for i, playerID := range pair {
		room.Players[playerID] = colors[i]
		room.Positions[colors[i]] = &models.TokenSet{}
		if t.Participants[playerID] != nil && t.Participants[playerID].IsBot {
			if room.Bots == nil {
				room.Bots = make(map[string]bool)
			}
			room.Bots[playerID] = true
		}
	}

	room.Turn = pair[0]
	for _, playerID := range pair {
		if !room.Bots[playerID] {
			room.Turn = playerID
			break
		}
	}

	for attempt := 0; attempt < s.config.MaxCodeAttempts; attempt++ {
		roomCode, err := code.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate room code: %w", err)
		}
		room.Code = roomCode

		err = s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{Room: room})
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, roomRepo.ErrRoomExists) {
			return nil, err
		}
	}
	return nil, ErrCodeExhausted
}

// refundFee compensates an entry-fee debit
func (s *service) refundFee(ctx context.Context, playerID, tournamentCode string, fee int64) {
	_, err := s.playerRepo.CreditBalance(ctx, &playerRepo.CreditBalanceInput{
		PlayerID: playerID,
		Amount:   fee,
	})
	if err != nil {
		return
	}
	s.recordTransaction(ctx, playerID, tournamentCode, fee, models.TransactionReasonEntryFeeRefund)
}

// recordTransaction best-effort appends a ledger entry; the balance itself
// is authoritative
func (s *service) recordTransaction(ctx context.Context, playerID, tournamentCode string, amount int64, reason models.TransactionReason) {
	_, _ = s.ledgerRepo.CreateTransaction(ctx, &ledgerRepo.CreateTransactionInput{
		PlayerID:       playerID,
		TournamentCode: tournamentCode,
		Amount:         amount,
		Reason:         reason,
		Timestamp:      s.config.Clock.Now(),
	})
}

func (s *service) getTournament(ctx context.Context, tournamentCode string) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetTournament(ctx, &tournamentRepo.GetTournamentInput{Code: tournamentCode})
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *service) updateTournament(ctx context.Context, tournamentCode string, apply func(*models.Tournament) error) (*models.Tournament, error) {
	t, err := s.tournamentRepo.UpdateTournament(ctx, &tournamentRepo.UpdateTournamentInput{
		Code:  tournamentCode,
		Apply: apply,
	})
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func containsCode(codes []string, c string) bool {
	for _, v := range codes {
		if v == c {
			return true
		}
	}
	return false
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
