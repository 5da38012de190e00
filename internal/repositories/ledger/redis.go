package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	commonUUID "github.com/raceboard/ludo/internal/common/uuid"
	"github.com/raceboard/ludo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	transactionKeyPrefix    = "txn:"
	playerTxnsKeyPrefix     = "player_txns:"
	tournamentTxnsKeyPrefix = "tournament_txns:"
)

// ErrTransactionNotFound is returned when a transaction is not found
var ErrTransactionNotFound = errors.New("transaction not found")

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator is optional; defaults to the standard generator
	UUIDGenerator commonUUID.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	uuidGenerator commonUUID.UUID
}

// NewRedis creates a new Redis-backed ledger repository
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

	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = commonUUID.New()
	}

	return &redisRepository{
		client:        cfg.RedisClient,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// AddTransaction adds a transaction to the ledger
func (r *redisRepository) AddTransaction(ctx context.Context, input *AddTransactionInput) error {
	if input == nil || input.Transaction == nil {
		return errors.New("input and transaction cannot be nil")
	}

	txn := input.Transaction

	if txn.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}
	if txn.PlayerID == "" {
		return errors.New("transaction player ID cannot be empty")
	}

	txnJSON, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	pipe := r.client.Pipeline()

	txnKey := fmt.Sprintf("%s%s", transactionKeyPrefix, txn.ID)
	pipe.Set(ctx, txnKey, txnJSON, 0)

	// Index by player and, when present, by tournament
	score := float64(txn.Timestamp.UnixNano())
	playerKey := fmt.Sprintf("%s%s", playerTxnsKeyPrefix, txn.PlayerID)
	pipe.ZAdd(ctx, playerKey, redis.Z{Score: score, Member: txn.ID})

	if txn.TournamentCode != "" {
		tournamentKey := fmt.Sprintf("%s%s", tournamentTxnsKeyPrefix, txn.TournamentCode)
		pipe.ZAdd(ctx, tournamentKey, redis.Z{Score: score, Member: txn.ID})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	return nil
}

// CreateTransaction creates a new transaction with a generated UUID
func (r *redisRepository) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.PlayerID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	txn := &models.Transaction{
		ID:             r.uuidGenerator.NewUUID(),
		PlayerID:       input.PlayerID,
		TournamentCode: input.TournamentCode,
		Amount:         input.Amount,
		Reason:         input.Reason,
		Timestamp:      input.Timestamp,
	}

	if err := r.AddTransaction(ctx, &AddTransactionInput{Transaction: txn}); err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// GetTransactionsForPlayer retrieves all transactions for a player
func (r *redisRepository) GetTransactionsForPlayer(ctx context.Context, input *GetTransactionsForPlayerInput) (*GetTransactionsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", playerTxnsKeyPrefix, input.PlayerID)
	txns, err := r.getTransactionsByIndex(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	return &GetTransactionsForPlayerOutput{Transactions: txns}, nil
}

// GetTransactionsForTournament retrieves all transactions for a tournament
func (r *redisRepository) GetTransactionsForTournament(ctx context.Context, input *GetTransactionsForTournamentInput) (*GetTransactionsForTournamentOutput, error) {
	if input == nil || input.TournamentCode == "" {
		return nil, errors.New("input and tournament code cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", tournamentTxnsKeyPrefix, input.TournamentCode)
	txns, err := r.getTransactionsByIndex(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	return &GetTransactionsForTournamentOutput{Transactions: txns}, nil
}

// getTransactionsByIndex loads every transaction referenced by a zset index,
// oldest first
func (r *redisRepository) getTransactionsByIndex(ctx context.Context, indexKey string) ([]*models.Transaction, error) {
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction index: %w", err)
	}

	txns := make([]*models.Transaction, 0, len(ids))
	for _, id := range ids {
		txnKey := fmt.Sprintf("%s%s", transactionKeyPrefix, id)
		txnJSON, err := r.client.Get(ctx, txnKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
		}

		var txn models.Transaction
		if err := json.Unmarshal([]byte(txnJSON), &txn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction %s: %w", id, err)
		}

		txns = append(txns, &txn)
	}

	return txns, nil
}
