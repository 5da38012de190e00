package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/raceboard/ludo/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for wallet transaction persistence. Every
// entry-fee debit, refund and prize credit leaves a record here.
type Repository interface {
	// AddTransaction adds a transaction to the ledger
	AddTransaction(ctx context.Context, input *AddTransactionInput) error

	// CreateTransaction creates a new transaction with a generated UUID
	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error)

	// GetTransactionsForPlayer retrieves all transactions for a player
	GetTransactionsForPlayer(ctx context.Context, input *GetTransactionsForPlayerInput) (*GetTransactionsForPlayerOutput, error)

	// GetTransactionsForTournament retrieves all transactions for a tournament
	GetTransactionsForTournament(ctx context.Context, input *GetTransactionsForTournamentInput) (*GetTransactionsForTournamentOutput, error)
}
