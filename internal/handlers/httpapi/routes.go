package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Routes builds the router. One POST per action; snapshots via GET.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", h.createRoom)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", h.getRoom)
			r.Post("/join", h.joinRoom)
			r.Post("/start", h.startGame)
			r.Post("/roll", h.rollDice)
			r.Post("/dice/complete", h.completeDice)
			r.Post("/move", h.moveToken)
			r.Post("/leave", h.leaveRoom)
			r.Post("/pass", h.passTurn)
		})
	})

	r.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.listOpenTournaments)
		r.Post("/", h.createTournament)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", h.getTournament)
			r.Post("/join", h.joinTournament)
			r.Post("/start", h.startTournament)
			r.Post("/leave", h.leaveTournament)
			r.Post("/rooms/{room}/complete", h.reportRoomResult)
		})
	})

	r.Route("/players", func(r chi.Router) {
		r.Post("/", h.createPlayer)
		r.Get("/{id}", h.getPlayer)
	})

	return r
}

// requestLogger logs one line per request with status and latency
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestId", middleware.GetReqID(r.Context())),
		)
	})
}
