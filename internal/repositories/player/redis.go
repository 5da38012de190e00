package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/raceboard/ludo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"

	// How many times an optimistic update is retried before giving up
	maxUpdateAttempts = 10
)

var (
	// ErrPlayerNotFound is returned when a player is not found
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInsufficientBalance is returned when a debit would go negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUpdateContention is returned when an optimistic update keeps
	// losing to interleaved writers
	ErrUpdateContention = errors.New("player update contention, retries exhausted")
)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePlayer persists a player profile to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	if input.Player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	playerJSON, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.Player.ID)
	if err := r.client.Set(ctx, playerKey, playerJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// UpdatePlayerRoom updates the room a player is seated in
func (r *redisRepository) UpdatePlayerRoom(ctx context.Context, input *UpdatePlayerRoomInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	_, err := r.updatePlayer(ctx, input.PlayerID, func(p *models.Player) error {
		p.CurrentRoomCode = input.RoomCode
		return nil
	})
	return err
}

// DebitBalance atomically subtracts from a player's balance
func (r *redisRepository) DebitBalance(ctx context.Context, input *DebitBalanceInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}
	if input.Amount <= 0 {
		return nil, errors.New("debit amount must be positive")
	}

	return r.updatePlayer(ctx, input.PlayerID, func(p *models.Player) error {
		if p.Balance < input.Amount {
			return ErrInsufficientBalance
		}
		p.Balance -= input.Amount
		return nil
	})
}

// CreditBalance atomically adds to a player's balance
func (r *redisRepository) CreditBalance(ctx context.Context, input *CreditBalanceInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}
	if input.Amount <= 0 {
		return nil, errors.New("credit amount must be positive")
	}

	return r.updatePlayer(ctx, input.PlayerID, func(p *models.Player) error {
		p.Balance += input.Amount
		return nil
	})
}

// updatePlayer runs a read-modify-write under WATCH-based optimistic
// concurrency, mirroring the room store's conditional update
func (r *redisRepository) updatePlayer(ctx context.Context, playerID string, apply func(*models.Player) error) (*models.Player, error) {
	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, playerID)

	var updated *models.Player
	txn := func(tx *redis.Tx) error {
		playerJSON, err := tx.Get(ctx, playerKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrPlayerNotFound
			}
			return fmt.Errorf("failed to get player: %w", err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return fmt.Errorf("failed to unmarshal player: %w", err)
		}

		if err := apply(&player); err != nil {
			return err
		}

		payload, err := json.Marshal(&player)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, playerKey, payload, 0)
			return nil
		})
		if err == nil {
			updated = &player
		}
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txn, playerKey)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrUpdateContention
}
