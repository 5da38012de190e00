package tournament

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/raceboard/ludo/internal/common/clock/mocks"
	diceMocks "github.com/raceboard/ludo/internal/dice/mocks"
	"github.com/raceboard/ludo/internal/models"
	ledgerRepo "github.com/raceboard/ludo/internal/repositories/ledger"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomRepo "github.com/raceboard/ludo/internal/repositories/room"
	tournamentRepo "github.com/raceboard/ludo/internal/repositories/tournament"
)

type TournamentServiceTestSuite struct {
	suite.Suite
	ctx context.Context

	mr         *miniredis.Miniredis
	client     *redis.Client
	ctrl       *gomock.Controller
	mockRoller *diceMocks.MockRoller
	mockClock  *clockMocks.MockClock

	tournaments tournamentRepo.Repository
	rooms       roomRepo.Repository
	players     playerRepo.Repository
	ledger      ledgerRepo.Repository

	service   *service
	fixedTime time.Time
}

func (s *TournamentServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)

	s.fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.fixedTime).AnyTimes()

	s.tournaments, err = tournamentRepo.NewRedis(&tournamentRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.rooms, err = roomRepo.NewRedis(&roomRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.players, err = playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.ledger, err = ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.service, err = New(&Config{
		TournamentRepo: s.tournaments,
		RoomRepo:       s.rooms,
		PlayerRepo:     s.players,
		LedgerRepo:     s.ledger,
		DiceRoller:     s.mockRoller,
		Clock:          s.mockClock,
	})
	s.Require().NoError(err)
}

func (s *TournamentServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func (s *TournamentServiceTestSuite) seedPlayer(id string, balance int64) {
	err := s.players.SavePlayer(s.ctx, &playerRepo.SavePlayerInput{
		Player: &models.Player{
			ID:        id,
			Name:      id,
			Balance:   balance,
			CreatedAt: s.fixedTime,
			UpdatedAt: s.fixedTime,
		},
	})
	s.Require().NoError(err)
}

func (s *TournamentServiceTestSuite) balance(id string) int64 {
	p, err := s.players.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: id})
	s.Require().NoError(err)
	return p.Balance
}

// finishRoom drives a bracket room straight to a finished state
func (s *TournamentServiceTestSuite) finishRoom(roomCode, winner string) {
	_, err := s.rooms.UpdateRoom(s.ctx, &roomRepo.UpdateRoomInput{
		Code: roomCode,
		Apply: func(r *models.Room) error {
			r.GameState = models.GameStateFinished
			r.WinnerID = winner
			r.Winners = []string{winner}
			r.Turn = ""
			return nil
		},
	})
	s.Require().NoError(err)
}

// registeredTournament creates a tournament with four funded entrants
func (s *TournamentServiceTestSuite) registeredTournament(fee, reward int64) *models.Tournament {
	created, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{
		Name:         "friday night knockout",
		EntryFee:     fee,
		RewardAmount: reward,
	})
	s.Require().NoError(err)

	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		s.seedPlayer(id, 500)
		_, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{
			Code:     created.Tournament.Code,
			PlayerID: id,
		})
		s.Require().NoError(err)
	}

	t, err := s.service.GetTournament(s.ctx, &GetTournamentInput{Code: created.Tournament.Code})
	s.Require().NoError(err)
	return t.Tournament
}

// startedTournament runs registration and start with an identity shuffle,
// so the seeding is the join order followed by the bot roster
func (s *TournamentServiceTestSuite) startedTournament(fee, reward int64) *StartTournamentOutput {
	t := s.registeredTournament(fee, reward)

	s.mockRoller.EXPECT().Shuffle(8, gomock.Any())

	out, err := s.service.StartTournament(s.ctx, &StartTournamentInput{Code: t.Code})
	s.Require().NoError(err)
	return out
}

func (s *TournamentServiceTestSuite) TestCreateTournament() {
	out, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{
		Name:         "friday night knockout",
		EntryFee:     100,
		RewardAmount: 1000,
	})
	s.Require().NoError(err)

	s.Len(out.Tournament.Code, 6)
	s.Equal(models.TournamentStatusRegistration, out.Tournament.Status)
	s.Equal(int64(100), out.Tournament.EntryFee)
	s.Equal(int64(1000), out.Tournament.RewardAmount)
	s.Empty(out.Tournament.Participants)
}

func (s *TournamentServiceTestSuite) TestCreateTournamentRejectsNegativeAmounts() {
	_, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{EntryFee: -1})
	s.ErrorIs(err, ErrInvalidEntryFee)

	_, err = s.service.CreateTournament(s.ctx, &CreateTournamentInput{RewardAmount: -1})
	s.ErrorIs(err, ErrInvalidReward)
}

func (s *TournamentServiceTestSuite) TestJoinTournamentDebitsFee() {
	created, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{EntryFee: 100, RewardAmount: 1000})
	s.Require().NoError(err)

	s.seedPlayer("p1", 500)

	out, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{Code: created.Tournament.Code, PlayerID: "p1"})
	s.Require().NoError(err)

	s.Equal(int64(400), s.balance("p1"))
	s.Equal(1, out.Tournament.RegisteredPlayers)
	s.Equal(1, out.Tournament.CurrentPlayers)
	s.Equal([]string{"p1"}, out.Tournament.SeedOrder)

	p := out.Tournament.Participants["p1"]
	s.Require().NotNil(p)
	s.Equal(int64(100), p.EntryFeePaid)
	s.Equal(models.ParticipantStatusWaiting, p.Status)

	txns, err := s.ledger.GetTransactionsForPlayer(s.ctx, &ledgerRepo.GetTransactionsForPlayerInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Require().Len(txns.Transactions, 1)
	s.Equal(int64(-100), txns.Transactions[0].Amount)
	s.Equal(models.TransactionReasonEntryFee, txns.Transactions[0].Reason)
}

func (s *TournamentServiceTestSuite) TestJoinTournamentInsufficientFunds() {
	created, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{EntryFee: 100})
	s.Require().NoError(err)

	s.seedPlayer("p1", 50)

	_, err = s.service.JoinTournament(s.ctx, &JoinTournamentInput{Code: created.Tournament.Code, PlayerID: "p1"})
	s.ErrorIs(err, ErrInsufficientFunds)
	s.Equal(int64(50), s.balance("p1"))
}

func (s *TournamentServiceTestSuite) TestJoinTournamentDuplicateAndFull() {
	created, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{EntryFee: 0})
	s.Require().NoError(err)
	tournamentCode := created.Tournament.Code

	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}
	for _, id := range ids {
		s.seedPlayer(id, 0)
		_, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{Code: tournamentCode, PlayerID: id})
		s.Require().NoError(err)
	}

	_, err = s.service.JoinTournament(s.ctx, &JoinTournamentInput{Code: tournamentCode, PlayerID: "p1"})
	s.ErrorIs(err, ErrAlreadyJoined)

	s.seedPlayer("p9", 0)
	_, err = s.service.JoinTournament(s.ctx, &JoinTournamentInput{Code: tournamentCode, PlayerID: "p9"})
	s.ErrorIs(err, ErrTournamentFull)
}

func (s *TournamentServiceTestSuite) TestStartTournamentNeedsFourHumans() {
	created, err := s.service.CreateTournament(s.ctx, &CreateTournamentInput{EntryFee: 0})
	s.Require().NoError(err)

	for _, id := range []string{"p1", "p2", "p3"} {
		s.seedPlayer(id, 0)
		_, err := s.service.JoinTournament(s.ctx, &JoinTournamentInput{Code: created.Tournament.Code, PlayerID: id})
		s.Require().NoError(err)
	}

	_, err = s.service.StartTournament(s.ctx, &StartTournamentInput{Code: created.Tournament.Code})
	s.ErrorIs(err, ErrInsufficientPlayers)

	// Registration stays open after the rejection
	t, err := s.service.GetTournament(s.ctx, &GetTournamentInput{Code: created.Tournament.Code})
	s.Require().NoError(err)
	s.Equal(models.TournamentStatusRegistration, t.Tournament.Status)
	s.Equal(3, t.Tournament.CurrentPlayers)
}

func (s *TournamentServiceTestSuite) TestStartTournamentSeedsSemifinals() {
	out := s.startedTournament(100, 1000)

	t := out.Tournament
	s.Equal(models.TournamentStatusInProgress, t.Status)
	s.Equal(8, t.CurrentPlayers)
	s.Equal(4, t.RegisteredPlayers)
	s.Len(t.SemifinalRoomCodes, 4)
	s.Require().Len(out.Rooms, 4)

	// Bots filled the empty seats
	botCount := 0
	for _, p := range t.Participants {
		if p.IsBot {
			botCount++
			s.Zero(p.EntryFeePaid)
		}
		s.Equal(models.ParticipantStatusSemifinal, p.Status)
		s.NotEmpty(p.SemifinalRoomCode)
	}
	s.Equal(4, botCount)

	for _, room := range out.Rooms {
		s.Equal(2, room.NoOfPlayers)
		s.Len(room.TurnOrder, 2)
		s.Equal(models.GameStatePlaying, room.GameState)
		s.Equal(models.RoomLevelSemifinal, room.RoomLevel)
		s.Equal(t.Code, room.TournamentCode)
		s.Contains(room.TurnOrder, room.Turn)
	}

	// With the identity shuffle the humans pair up in join order
	s.Equal([]string{"p1", "p2"}, out.Rooms[0].TurnOrder)
	s.Equal([]string{"p3", "p4"}, out.Rooms[1].TurnOrder)

	_, err := s.service.StartTournament(s.ctx, &StartTournamentInput{Code: t.Code})
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *TournamentServiceTestSuite) TestBracketRoomPrefersHumanOpener() {
	out := s.startedTournament(0, 0)

	// Rooms 3 and 4 are all-bot pairings; rooms 1 and 2 open on a human
	s.Equal("p1", out.Rooms[0].Turn)
	s.Equal("p3", out.Rooms[1].Turn)
	s.True(out.Rooms[2].Bots[out.Rooms[2].Turn])
}

func (s *TournamentServiceTestSuite) TestReportRoomResultAdvancesToFinals() {
	out := s.startedTournament(100, 1000)
	t := out.Tournament

	winners := []string{"p1", "p3", "bot-vega", "bot-pip"}
	for i, roomCode := range t.SemifinalRoomCodes {
		s.finishRoom(roomCode, winners[i])

		res, err := s.service.ReportRoomResult(s.ctx, &ReportRoomResultInput{Code: t.Code, RoomCode: roomCode})
		s.Require().NoError(err)
		s.False(res.AlreadyRecorded)

		if i < 3 {
			s.False(res.FinalsStarted)
			s.Equal(models.TournamentStatusInProgress, res.Tournament.Status)
		} else {
			s.True(res.FinalsStarted)
			s.Equal(models.TournamentStatusFinals, res.Tournament.Status)
			s.Len(res.Tournament.FinalRoomCodes, 2)
		}
	}

	final, err := s.service.GetTournament(s.ctx, &GetTournamentInput{Code: t.Code})
	s.Require().NoError(err)

	s.Equal(models.ParticipantStatusFinalist, final.Tournament.Participants["p1"].Status)
	s.Equal(models.ParticipantStatusEliminated, final.Tournament.Participants["p2"].Status)
	s.Equal(models.ParticipantStatusFinalist, final.Tournament.Participants["bot-vega"].Status)

	// Finalists pair up in semifinal room order
	finalRooms, err := s.rooms.GetRoomsByTournament(s.ctx, &roomRepo.GetRoomsByTournamentInput{TournamentCode: t.Code})
	s.Require().NoError(err)
	s.Len(finalRooms, 6)
}

func (s *TournamentServiceTestSuite) TestFullBracketPaysOutOnce() {
	out := s.startedTournament(100, 1000)
	t := out.Tournament

	semifinalWinners := []string{"p1", "p3", "bot-vega", "bot-pip"}
	var advanced *ReportRoomResultOutput
	for i, roomCode := range t.SemifinalRoomCodes {
		s.finishRoom(roomCode, semifinalWinners[i])
		var err error
		advanced, err = s.service.ReportRoomResult(s.ctx, &ReportRoomResultInput{Code: t.Code, RoomCode: roomCode})
		s.Require().NoError(err)
	}
	s.Require().True(advanced.FinalsStarted)

	finalCodes := advanced.Tournament.FinalRoomCodes
	s.Require().Len(finalCodes, 2)

	// Final one: p1 beats p3. Final two: bot-vega beats bot-pip.
	s.finishRoom(finalCodes[0], "p1")
	res, err := s.service.ReportRoomResult(s.ctx, &ReportRoomResultInput{Code: t.Code, RoomCode: finalCodes[0]})
	s.Require().NoError(err)
	s.False(res.Completed)

	s.finishRoom(finalCodes[1], "bot-vega")
	res, err = s.service.ReportRoomResult(s.ctx, &ReportRoomResultInput{Code: t.Code, RoomCode: finalCodes[1]})
	s.Require().NoError(err)
	s.True(res.Completed)

	final := res.Tournament
	s.Equal(models.TournamentStatusCompleted, final.Status)
	s.Equal([]string{"p1", "bot-vega", "p3", "bot-pip"}, final.FinalRankings)
	s.Equal(models.ParticipantStatusWinner, final.Participants["p1"].Status)
	s.Equal(models.ParticipantStatusRunnerUp, final.Participants["p3"].Status)
	s.Equal(1, final.Participants["p1"].FinalPosition)
	s.Equal(int64(400), final.Participants["p1"].PrizeWon)
	s.Equal(int64(100), final.Participants["p3"].PrizeWon)

	// 500 start, 100 fee, then the prize share
	s.Equal(int64(800), s.balance("p1"))
	s.Equal(int64(500), s.balance("p3"))
	s.Equal(int64(400), s.balance("p2"))
	s.Equal(int64(400), s.balance("p4"))

	// Bots rank but never collect
	s.Equal(int64(400), final.Participants["bot-vega"].PrizeWon)
	_, err = s.players.GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "bot-vega"})
	s.ErrorIs(err, playerRepo.ErrPlayerNotFound)

	// Reporting the same room again is a recorded no-op with no payout
	res, err = s.service.ReportRoomResult(s.ctx, &ReportRoomResultInput{Code: t.Code, RoomCode: finalCodes[1]})
	s.Require().NoError(err)
	s.True(res.AlreadyRecorded)
	s.Equal(int64(800), s.balance("p1"))
	s.Equal(int64(500), s.balance("p3"))
}

func (s *TournamentServiceTestSuite) TestReportRoomResultGuards() {
	out := s.startedTournament(0, 0)
	t := out.Tournament

	_, err := s.service.ReportRoomResult(s.ctx, &ReportRoomResultInput{Code: t.Code, RoomCode: "ZZZZZZ"})
	s.ErrorIs(err, ErrRoomNotInBracket)

	// The room is still in play
	_, err = s.service.ReportRoomResult(s.ctx, &ReportRoomResultInput{Code: t.Code, RoomCode: t.SemifinalRoomCodes[0]})
	s.ErrorIs(err, ErrRoomNotFinished)
}

func (s *TournamentServiceTestSuite) TestLeaveTournamentRefundsFee() {
	t := s.registeredTournament(100, 1000)
	s.Equal(int64(400), s.balance("p2"))

	out, err := s.service.LeaveTournament(s.ctx, &LeaveTournamentInput{Code: t.Code, PlayerID: "p2"})
	s.Require().NoError(err)
	s.Equal(int64(100), out.Refunded)
	s.Equal(int64(500), s.balance("p2"))
	s.NotContains(out.Tournament.Participants, "p2")
	s.NotContains(out.Tournament.SeedOrder, "p2")
	s.Equal(3, out.Tournament.RegisteredPlayers)

	txns, err := s.ledger.GetTransactionsForPlayer(s.ctx, &ledgerRepo.GetTransactionsForPlayerInput{PlayerID: "p2"})
	s.Require().NoError(err)
	s.Require().Len(txns.Transactions, 2)
	s.Equal(models.TransactionReasonEntryFeeRefund, txns.Transactions[1].Reason)
	s.Equal(int64(100), txns.Transactions[1].Amount)
}

func (s *TournamentServiceTestSuite) TestLeaveTournamentGuards() {
	t := s.registeredTournament(0, 0)

	_, err := s.service.LeaveTournament(s.ctx, &LeaveTournamentInput{Code: t.Code, PlayerID: "mallory"})
	s.ErrorIs(err, ErrNotParticipant)

	s.mockRoller.EXPECT().Shuffle(8, gomock.Any())
	_, err = s.service.StartTournament(s.ctx, &StartTournamentInput{Code: t.Code})
	s.Require().NoError(err)

	_, err = s.service.LeaveTournament(s.ctx, &LeaveTournamentInput{Code: t.Code, PlayerID: "p1"})
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *TournamentServiceTestSuite) TestListOpenTournaments() {
	open := s.registeredTournament(0, 0)
	started := s.startedTournament(0, 0)

	out, err := s.service.ListOpenTournaments(s.ctx, &ListOpenTournamentsInput{})
	s.Require().NoError(err)

	codes := make([]string, 0, len(out.Tournaments))
	for _, t := range out.Tournaments {
		codes = append(codes, t.Code)
	}
	s.Contains(codes, open.Code)
	s.NotContains(codes, started.Tournament.Code)
}

func TestTournamentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentServiceTestSuite))
}
