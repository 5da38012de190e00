package room

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
	roomKeyPrefix        = "room:"
	activeRoomsKey       = "active_rooms"
	tournamentRoomsIndex = "tournament:rooms:index:" // Index for tournament bracket rooms

	// How many times an optimistic update is retried before giving up
	maxUpdateAttempts = 10
)

var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomExists is returned when creating a room whose code is taken
	ErrRoomExists = errors.New("room code already exists")

	// ErrUpdateContention is returned when an optimistic update keeps
	// losing to interleaved writers
	ErrUpdateContention = errors.New("room update contention, retries exhausted")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

// CreateRoom persists a new room, failing if the code is taken
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.Code == "" {
		return errors.New("room code cannot be empty")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.Code)
	ok, err := r.client.SetNX(ctx, roomKey, roomJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	if !ok {
		return ErrRoomExists
	}

	// Maintain the secondary indexes
	pipe := r.client.Pipeline()
	r.indexRoom(ctx, pipe, input.Room)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by public code
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Code)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// SaveRoom persists a room unconditionally
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	pipe := r.client.Pipeline()
	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.Code)
	pipe.Set(ctx, roomKey, roomJSON, 0)
	r.indexRoom(ctx, pipe, input.Room)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// UpdateRoom applies a read-modify-write atomically using WATCH-based
// optimistic concurrency. Interleaved writers make the transaction fail,
// in which case the whole read-apply-write cycle reruns on a fresh snapshot.
func (r *redisRepository) UpdateRoom(ctx context.Context, input *UpdateRoomInput) (*models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}
	if input.Apply == nil {
		return nil, errors.New("apply function cannot be nil")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Code)

	var updated *models.Room
	txn := func(tx *redis.Tx) error {
		roomJSON, err := tx.Get(ctx, roomKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to get room: %w", err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		if err := input.Apply(&room); err != nil {
			return err
		}

		payload, err := json.Marshal(&room)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, roomKey, payload, 0)
			r.indexRoom(ctx, pipe, &room)
			return nil
		})
		if err == nil {
			updated = &room
		}
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txn, roomKey)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race, reread and retry
			continue
		}
		return nil, err
	}

	return nil, ErrUpdateContention
}

// DeleteRoom removes a room and its index entries
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	room, err := r.GetRoom(ctx, &GetRoomInput{Code: input.Code})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Code)
	pipe.Del(ctx, roomKey)
	pipe.SRem(ctx, activeRoomsKey, input.Code)
	if room.TournamentCode != "" {
		indexKey := fmt.Sprintf("%s%s", tournamentRoomsIndex, room.TournamentCode)
		pipe.ZRem(ctx, indexKey, input.Code)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// GetActiveRooms retrieves all rooms not yet finished
func (r *redisRepository) GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error) {
	codes, err := r.client.SMembers(ctx, activeRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active room codes: %w", err)
	}

	if len(codes) == 0 {
		return &GetActiveRoomsOutput{Rooms: []*models.Room{}}, nil
	}

	pipe := r.client.Pipeline()
	roomCommands := make(map[string]*redis.StringCmd)
	for _, code := range codes {
		roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, code)
		roomCommands[code] = pipe.Get(ctx, roomKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(codes))
	for code, cmd := range roomCommands {
		roomJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Room was deleted between getting the codes and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get room %s: %w", code, err)
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room %s: %w", code, err)
		}

		rooms = append(rooms, &room)
	}

	return &GetActiveRoomsOutput{Rooms: rooms}, nil
}

// GetRoomsByTournament retrieves all bracket rooms of a tournament
func (r *redisRepository) GetRoomsByTournament(ctx context.Context, input *GetRoomsByTournamentInput) ([]*models.Room, error) {
	if input == nil || input.TournamentCode == "" {
		return nil, errors.New("input and tournament code cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", tournamentRoomsIndex, input.TournamentCode)
	codes, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bracket rooms: %w", err)
	}

	if len(codes) == 0 {
		return []*models.Room{}, nil
	}

	rooms := make([]*models.Room, 0, len(codes))
	for _, code := range codes {
		room, err := r.GetRoom(ctx, &GetRoomInput{Code: code})
		if err != nil {
			// Skip rooms that can't be found
			if errors.Is(err, ErrRoomNotFound) {
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// indexRoom queues the secondary-index writes for a room snapshot
func (r *redisRepository) indexRoom(ctx context.Context, pipe redis.Pipeliner, room *models.Room) {
	if room.GameState == models.GameStateFinished {
		pipe.SRem(ctx, activeRoomsKey, room.Code)
	} else {
		pipe.SAdd(ctx, activeRoomsKey, room.Code)
	}

	if room.TournamentCode != "" {
		indexKey := fmt.Sprintf("%s%s", tournamentRoomsIndex, room.TournamentCode)
		pipe.ZAdd(ctx, indexKey, redis.Z{
			Score:  float64(room.CreatedAt.UnixNano()),
			Member: room.Code,
		})
	}
}
