package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/raceboard/ludo/internal/common/clock"
	"github.com/raceboard/ludo/internal/dice"
	ledgerRepo "github.com/raceboard/ludo/internal/repositories/ledger"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomRepo "github.com/raceboard/ludo/internal/repositories/room"
	tournamentRepo "github.com/raceboard/ludo/internal/repositories/tournament"
	roomService "github.com/raceboard/ludo/internal/services/room"
	tournamentService "github.com/raceboard/ludo/internal/services/tournament"
)

// HandlerTestSuite wires the real stack against miniredis and drives it
// through the router
type HandlerTestSuite struct {
	suite.Suite
	ctx context.Context

	mr     *miniredis.Miniredis
	client *redis.Client
	router chi.Router
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	tournaments, err := tournamentRepo.NewRedis(&tournamentRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	roller := dice.New(&dice.Config{Seed: 42})
	clk := &clock.DefaultClock{}

	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:   rooms,
		PlayerRepo: players,
		DiceRoller: roller,
		Clock:      clk,
		DiceDelay:  time.Hour,
	})
	s.Require().NoError(err)

	tournamentSvc, err := tournamentService.New(&tournamentService.Config{
		TournamentRepo: tournaments,
		RoomRepo:       rooms,
		PlayerRepo:     players,
		LedgerRepo:     ledger,
		DiceRoller:     roller,
		Clock:          clk,
	})
	s.Require().NoError(err)

	handler, err := New(&Config{
		RoomService:       roomSvc,
		TournamentService: tournamentSvc,
		PlayerRepo:        players,
		Logger:            zap.NewNop(),
	})
	s.Require().NoError(err)

	s.router = handler.Routes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(dst))
}

func (s *HandlerTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRoomLifecycle() {
	rec := s.do(http.MethodPost, "/rooms", map[string]any{"hostId": "alice", "noOfPlayers": 4})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created struct {
		Room struct {
			Code      string `json:"code"`
			GameState string `json:"gameState"`
		} `json:"Room"`
	}
	s.decode(rec, &created)
	s.Require().Len(created.Room.Code, 6)
	s.Equal("waiting", created.Room.GameState)

	code := created.Room.Code

	rec = s.do(http.MethodPost, "/rooms/"+code+"/join", map[string]any{"playerId": "bob"})
	s.Equal(http.StatusOK, rec.Code)

	// Duplicate join conflicts
	rec = s.do(http.MethodPost, "/rooms/"+code+"/join", map[string]any{"playerId": "bob"})
	s.Equal(http.StatusConflict, rec.Code)

	// Only the host can start
	rec = s.do(http.MethodPost, "/rooms/"+code+"/start", map[string]any{"playerId": "bob"})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/rooms/"+code+"/start", map[string]any{"playerId": "alice"})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/rooms/"+code, nil)
	s.Equal(http.StatusOK, rec.Code)

	// Moving without a roll is an unprocessable action
	var room struct {
		Room struct {
			Turn string `json:"turn"`
		} `json:"Room"`
	}
	s.decode(rec, &room)
	rec = s.do(http.MethodPost, "/rooms/"+code+"/move", map[string]any{"playerId": room.Room.Turn, "token": 1})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *HandlerTestSuite) TestRoomErrorsMapToStatuses() {
	rec := s.do(http.MethodGet, "/rooms/ZZZZZZ", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/rooms", map[string]any{"hostId": "alice", "noOfPlayers": 9})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestMalformedBodyIsBadRequest() {
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestTournamentFeeMapping() {
	rec := s.do(http.MethodPost, "/tournaments", map[string]any{
		"name": "weekend cup", "entryFee": 100, "rewardAmount": 1000,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created struct {
		Tournament struct {
			Code string `json:"code"`
		} `json:"Tournament"`
	}
	s.decode(rec, &created)
	code := created.Tournament.Code

	// Broke player cannot pay the fee
	rec = s.do(http.MethodPost, "/players", map[string]any{"id": "poor", "name": "poor", "balance": 10})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/tournaments/"+code+"/join", map[string]any{"playerId": "poor"})
	s.Equal(http.StatusPaymentRequired, rec.Code)

	rec = s.do(http.MethodPost, "/players", map[string]any{"id": "rich", "name": "rich", "balance": 500})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/tournaments/"+code+"/join", map[string]any{"playerId": "rich"})
	s.Equal(http.StatusOK, rec.Code)

	// Starting with a single entrant is rejected and leaves registration open
	rec = s.do(http.MethodPost, "/tournaments/"+code+"/start", nil)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodGet, "/tournaments/"+code, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/tournaments", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestPlayerEndpoints() {
	rec := s.do(http.MethodPost, "/players", map[string]any{"id": "alice", "name": "Alice", "balance": 100})
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/players/alice", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/players/nobody", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/players", map[string]any{"name": "no id"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
