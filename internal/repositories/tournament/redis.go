package tournament

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
	tournamentKeyPrefix = "tournament:"
	openTournamentsKey  = "open_tournaments"

	// How many times an optimistic update is retried before giving up
	maxUpdateAttempts = 10
)

var (
	// ErrTournamentNotFound is returned when a tournament is not found
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrTournamentExists is returned when creating a tournament whose code is taken
	ErrTournamentExists = errors.New("tournament code already exists")

	// ErrUpdateContention is returned when an optimistic update keeps
	// losing to interleaved writers
	ErrUpdateContention = errors.New("tournament update contention, retries exhausted")
)

// Config holds configuration for the Redis tournament repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tournament repository
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

// CreateTournament persists a new tournament, failing if the code is taken
func (r *redisRepository) CreateTournament(ctx context.Context, input *CreateTournamentInput) error {
	if input == nil || input.Tournament == nil {
		return errors.New("input and tournament cannot be nil")
	}

	if input.Tournament.Code == "" {
		return errors.New("tournament code cannot be empty")
	}

	tournamentJSON, err := json.Marshal(input.Tournament)
	if err != nil {
		return fmt.Errorf("failed to marshal tournament: %w", err)
	}

	key := fmt.Sprintf("%s%s", tournamentKeyPrefix, input.Tournament.Code)
	ok, err := r.client.SetNX(ctx, key, tournamentJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	if !ok {
		return ErrTournamentExists
	}

	pipe := r.client.Pipeline()
	r.indexTournament(ctx, pipe, input.Tournament)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index tournament: %w", err)
	}

	return nil
}

// GetTournament retrieves a tournament by public code
func (r *redisRepository) GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and tournament code cannot be empty")
	}

	key := fmt.Sprintf("%s%s", tournamentKeyPrefix, input.Code)
	tournamentJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	var tournament models.Tournament
	if err := json.Unmarshal([]byte(tournamentJSON), &tournament); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tournament: %w", err)
	}

	return &tournament, nil
}

// UpdateTournament applies a read-modify-write atomically using WATCH-based
// optimistic concurrency
func (r *redisRepository) UpdateTournament(ctx context.Context, input *UpdateTournamentInput) (*models.Tournament, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and tournament code cannot be empty")
	}
	if input.Apply == nil {
		return nil, errors.New("apply function cannot be nil")
	}

	key := fmt.Sprintf("%s%s", tournamentKeyPrefix, input.Code)

	var updated *models.Tournament
	txn := func(tx *redis.Tx) error {
		tournamentJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to get tournament: %w", err)
		}

		var tournament models.Tournament
		if err := json.Unmarshal([]byte(tournamentJSON), &tournament); err != nil {
			return fmt.Errorf("failed to unmarshal tournament: %w", err)
		}

		if err := input.Apply(&tournament); err != nil {
			return err
		}

		payload, err := json.Marshal(&tournament)
		if err != nil {
			return fmt.Errorf("failed to marshal tournament: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			r.indexTournament(ctx, pipe, &tournament)
			return nil
		})
		if err == nil {
			updated = &tournament
		}
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txn, key)
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

// DeleteTournament removes a tournament and its index entries
func (r *redisRepository) DeleteTournament(ctx context.Context, input *DeleteTournamentInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and tournament code cannot be empty")
	}

	pipe := r.client.Pipeline()
	key := fmt.Sprintf("%s%s", tournamentKeyPrefix, input.Code)
	pipe.Del(ctx, key)
	pipe.SRem(ctx, openTournamentsKey, input.Code)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}

	return nil
}

// GetOpenTournaments retrieves tournaments still in registration
func (r *redisRepository) GetOpenTournaments(ctx context.Context, input *GetOpenTournamentsInput) (*GetOpenTournamentsOutput, error) {
	codes, err := r.client.SMembers(ctx, openTournamentsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open tournament codes: %w", err)
	}

	tournaments := make([]*models.Tournament, 0, len(codes))
	for _, code := range codes {
		tournament, err := r.GetTournament(ctx, &GetTournamentInput{Code: code})
		if err != nil {
			if errors.Is(err, ErrTournamentNotFound) {
				continue
			}
			return nil, err
		}
		tournaments = append(tournaments, tournament)
	}

	return &GetOpenTournamentsOutput{Tournaments: tournaments}, nil
}

// indexTournament queues the secondary-index writes for a snapshot
func (r *redisRepository) indexTournament(ctx context.Context, pipe redis.Pipeliner, t *models.Tournament) {
	if t.Status == models.TournamentStatusRegistration {
		pipe.SAdd(ctx, openTournamentsKey, t.Code)
	} else {
		pipe.SRem(ctx, openTournamentsKey, t.Code)
	}
}
