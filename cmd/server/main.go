package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/raceboard/ludo/internal/common/clock"
	"github.com/raceboard/ludo/internal/dice"
	"github.com/raceboard/ludo/internal/handlers/httpapi"
	ledgerRepo "github.com/raceboard/ludo/internal/repositories/ledger"
	playerRepo "github.com/raceboard/ludo/internal/repositories/player"
	roomRepo "github.com/raceboard/ludo/internal/repositories/room"
	tournamentRepo "github.com/raceboard/ludo/internal/repositories/tournament"
	roomService "github.com/raceboard/ludo/internal/services/room"
	tournamentService "github.com/raceboard/ludo/internal/services/tournament"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	rooms, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create room repository", zap.Error(err))
	}

	tournaments, err := tournamentRepo.NewRedis(&tournamentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create tournament repository", zap.Error(err))
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create player repository", zap.Error(err))
	}

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create ledger repository", zap.Error(err))
	}

	// Initialize dice roller and clock
	diceRoller := dice.New(&dice.Config{})
	clk := &clock.DefaultClock{}

	// Initialize services
	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:   rooms,
		PlayerRepo: players,
		DiceRoller: diceRoller,
		Clock:      clk,
	})
	if err != nil {
		logger.Fatal("Failed to create room service", zap.Error(err))
	}

	tournamentSvc, err := tournamentService.New(&tournamentService.Config{
		TournamentRepo: tournaments,
		RoomRepo:       rooms,
		PlayerRepo:     players,
		LedgerRepo:     ledger,
		DiceRoller:     diceRoller,
		Clock:          clk,
	})
	if err != nil {
		logger.Fatal("Failed to create tournament service", zap.Error(err))
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		RoomService:       roomSvc,
		TournamentService: tournamentSvc,
		PlayerRepo:        players,
		Logger:            logger,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP handler", zap.Error(err))
	}

	addr := getEnv("LISTEN_ADDR", ":8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", zap.Error(err))
	}

	logger.Info("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
