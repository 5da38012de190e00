package models

import (
	"time"
)

// TransactionReason represents why a balance movement happened
type TransactionReason string

const (
	// TransactionReasonEntryFee is a tournament entry fee debit
	TransactionReasonEntryFee TransactionReason = "entry_fee"

	// TransactionReasonEntryFeeRefund compensates a fee debit whose join
	// never committed, or a registration-phase withdrawal
	TransactionReasonEntryFeeRefund TransactionReason = "entry_fee_refund"

	// TransactionReasonPrizeWinner is a final winner's 40% share
	TransactionReasonPrizeWinner TransactionReason = "prize_winner"

	// TransactionReasonPrizeRunnerUp is a runner-up's 10% share
	TransactionReasonPrizeRunnerUp TransactionReason = "prize_runner_up"
)

// Transaction records one balance movement in the wallet ledger
type Transaction struct {
	// ID is the unique identifier for the transaction
	ID string `json:"id"`

	// PlayerID is the player whose balance moved
	PlayerID string `json:"playerId"`

	// TournamentCode is the tournament that caused the movement
	TournamentCode string `json:"tournamentCode,omitempty"`

	// Amount is the movement; debits are negative
	Amount int64 `json:"amount"`

	// Reason is why the balance moved
	Reason TransactionReason `json:"reason"`

	// Timestamp is when the movement happened
	Timestamp time.Time `json:"timestamp"`
}
