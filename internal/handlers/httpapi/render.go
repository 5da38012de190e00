package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomService "github.com/raceboard/ludo/internal/services/room"
	tournamentService "github.com/raceboard/ludo/internal/services/tournament"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (h *Handler) respondStatus(w http.ResponseWriter, status int, msg string) {
	h.respond(w, status, errorResponse{Error: msg})
}

// respondError maps service errors onto the HTTP taxonomy. Anything
// unrecognized is a 500 and gets logged; taxonomy rejections are routine
// and are not.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.respondStatus(w, status, "internal error")
		return
	}
	h.respondStatus(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	// Not found
	case errors.Is(err, roomService.ErrRoomNotFound),
		errors.Is(err, tournamentService.ErrTournamentNotFound),
		errors.Is(err, tournamentService.ErrRoomNotInBracket),
		errors.Is(err, playerRepo.ErrPlayerNotFound):
		return http.StatusNotFound

	// Forbidden
	case errors.Is(err, roomService.ErrNotYourTurn),
		errors.Is(err, roomService.ErrNotHost),
		errors.Is(err, roomService.ErrNotYourColor),
		errors.Is(err, roomService.ErrNotInRoom),
		errors.Is(err, tournamentService.ErrNotParticipant):
		return http.StatusForbidden

	// Invalid state or move
	case errors.Is(err, roomService.ErrInvalidGameState),
		errors.Is(err, roomService.ErrInvalidDiceState),
		errors.Is(err, roomService.ErrStepsPending),
		errors.Is(err, roomService.ErrNoStepsPending),
		errors.Is(err, roomService.ErrNotEnoughPlayers),
		errors.Is(err, roomService.ErrInvalidMove),
		errors.Is(err, roomService.ErrInvalidToken),
		errors.Is(err, tournamentService.ErrInvalidStatus),
		errors.Is(err, tournamentService.ErrInsufficientPlayers),
		errors.Is(err, tournamentService.ErrRoomNotFinished),
		errors.Is(err, tournamentService.ErrInvalidEntryFee),
		errors.Is(err, tournamentService.ErrInvalidReward):
		return http.StatusUnprocessableEntity

	// Conflict
	case errors.Is(err, roomService.ErrRoomFull),
		errors.Is(err, roomService.ErrAlreadyInRoom),
		errors.Is(err, roomService.ErrCodeExhausted),
		errors.Is(err, roomService.ErrInvalidCapacity),
		errors.Is(err, tournamentService.ErrTournamentFull),
		errors.Is(err, tournamentService.ErrAlreadyJoined),
		errors.Is(err, tournamentService.ErrCodeExhausted):
		return http.StatusConflict

	// Payment
	case errors.Is(err, tournamentService.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	}

	return http.StatusInternalServerError
}
