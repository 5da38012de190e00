package ledger

import (
	"time"

	"github.com/raceboard/ludo/internal/models"
)

type AddTransactionInput struct {
	Transaction *models.Transaction
}

type CreateTransactionInput struct {
	PlayerID       string
	TournamentCode string
	Amount         int64
	Reason         models.TransactionReason
	Timestamp      time.Time
}

type CreateTransactionOutput struct {
	Transaction *models.Transaction
}

type GetTransactionsForPlayerInput struct {
	PlayerID string
}

type GetTransactionsForPlayerOutput struct {
	Transactions []*models.Transaction
}

type GetTransactionsForTournamentInput struct {
	TournamentCode string
}

type GetTransactionsForTournamentOutput struct {
	Transactions []*models.Transaction
}
