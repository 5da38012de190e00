package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/raceboard/ludo/internal/models"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomService "github.com/raceboard/ludo/internal/services/room"
	tournamentService "github.com/raceboard/ludo/internal/services/tournament"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	// RoomService handles room lifecycle and gameplay
	RoomService roomService.Service

	// TournamentService handles bracket orchestration
	TournamentService tournamentService.Service

	// PlayerRepo backs the player profile endpoints
	PlayerRepo playerRepo.Repository

	// Logger is the request logger
	Logger *zap.Logger
}

// Handler exposes the service layer over HTTP. Identity arrives as
// playerId in the request body; authentication lives in front of this
// service.
type Handler struct {
	rooms       roomService.Service
	tournaments tournamentService.Service
	players     playerRepo.Repository
	logger      *zap.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}
	if cfg.TournamentService == nil {
		return nil, errors.New("tournament service cannot be nil")
	}
	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Handler{
		rooms:       cfg.RoomService,
		tournaments: cfg.TournamentService,
		players:     cfg.PlayerRepo,
		logger:      cfg.Logger,
	}, nil
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createRoomRequest struct {
	HostID      string `json:"hostId"`
	NoOfPlayers int    `json:"noOfPlayers"`
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.rooms.CreateRoom(r.Context(), &roomService.CreateRoomInput{
		HostID:      req.HostID,
		NoOfPlayers: req.NoOfPlayers,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, out)
}

type playerActionRequest struct {
	PlayerID string `json:"playerId"`
}

func (h *Handler) joinRoom(w http.ResponseWriter, r *http.Request) {
	var req playerActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.rooms.JoinRoom(r.Context(), &roomService.JoinRoomInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request) {
	var req playerActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.rooms.StartGame(r.Context(), &roomService.StartGameInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) rollDice(w http.ResponseWriter, r *http.Request) {
	var req playerActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.rooms.RollDice(r.Context(), &roomService.RollDiceInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) completeDice(w http.ResponseWriter, r *http.Request) {
	var req playerActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.rooms.CompleteDice(r.Context(), &roomService.CompleteDiceInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

type moveTokenRequest struct {
	PlayerID string `json:"playerId"`
	Token    int    `json:"token"`
}

func (h *Handler) moveToken(w http.ResponseWriter, r *http.Request) {
	var req moveTokenRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.rooms.MoveToken(r.Context(), &roomService.MoveTokenInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
		Token:    req.Token,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) leaveRoom(w http.ResponseWriter, r *http.Request) {
	var req playerActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.rooms.LeaveRoom(r.Context(), &roomService.LeaveRoomInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) passTurn(w http.ResponseWriter, r *http.Request) {
	out, err := h.rooms.PassTurn(r.Context(), &roomService.PassTurnInput{
		Code: chi.URLParam(r, "code"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.rooms.GetRoom(r.Context(), &roomService.GetRoomInput{
		Code: chi.URLParam(r, "code"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

type createTournamentRequest struct {
	Name         string `json:"name"`
	EntryFee     int64  `json:"entryFee"`
	RewardAmount int64  `json:"rewardAmount"`
}

func (h *Handler) createTournament(w http.ResponseWriter, r *http.Request) {
	var req createTournamentRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.tournaments.CreateTournament(r.Context(), &tournamentService.CreateTournamentInput{
		Name:         req.Name,
		EntryFee:     req.EntryFee,
		RewardAmount: req.RewardAmount,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, out)
}

func (h *Handler) joinTournament(w http.ResponseWriter, r *http.Request) {
	var req playerActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.tournaments.JoinTournament(r.Context(), &tournamentService.JoinTournamentInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) startTournament(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournaments.StartTournament(r.Context(), &tournamentService.StartTournamentInput{
		Code: chi.URLParam(r, "code"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) reportRoomResult(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournaments.ReportRoomResult(r.Context(), &tournamentService.ReportRoomResultInput{
		Code:     chi.URLParam(r, "code"),
		RoomCode: chi.URLParam(r, "room"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) leaveTournament(w http.ResponseWriter, r *http.Request) {
	var req playerActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.tournaments.LeaveTournament(r.Context(), &tournamentService.LeaveTournamentInput{
		Code:     chi.URLParam(r, "code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) getTournament(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournaments.GetTournament(r.Context(), &tournamentService.GetTournamentInput{
		Code: chi.URLParam(r, "code"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

func (h *Handler) listOpenTournaments(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournaments.ListOpenTournaments(r.Context(), &tournamentService.ListOpenTournamentsInput{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, out)
}

type createPlayerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

func (h *Handler) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ID == "" {
		h.respondStatus(w, http.StatusBadRequest, "id is required")
		return
	}

	player := &models.Player{
		ID:      req.ID,
		Name:    req.Name,
		Balance: req.Balance,
	}
	err := h.players.SavePlayer(r.Context(), &playerRepo.SavePlayerInput{Player: player})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, player)
}

func (h *Handler) getPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.players.GetPlayer(r.Context(), &playerRepo.GetPlayerInput{
		PlayerID: chi.URLParam(r, "id"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, player)
}

// decode parses the JSON body, writing a 400 on malformed input
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondStatus(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
