package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

type TransactionProcessed struct {
	EventID          string          `json:"event_id"`
	SessionID        string          `json:"session_id"`
	Sequence         int             `json:"sequence"`
	TillStart        decimal.Decimal `json:"till_start"`
	TransactionTotal decimal.Decimal `json:"transaction_total"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	ChangeTotal      decimal.Decimal `json:"change_total"`
	Outcome          string          `json:"outcome"`
	Change           []int           `json:"change"`
	BalanceAfter     decimal.Decimal `json:"balance_after"`
	OccurredAt       time.Time       `json:"occurred_at"`
}

// NewTransactionProcessed builds the event published for a journal entry.
func NewTransactionProcessed(entry models.JournalEntry) TransactionProcessed {
	change := make([]int, 0, len(entry.Change))
	for _, d := range entry.Change {
		change = append(change, int(d))
	}
	return TransactionProcessed{
		EventID:          uuid.NewString(),
		SessionID:        entry.SessionID,
		Sequence:         entry.Sequence,
		TillStart:        amountOf(entry.TillStart),
		TransactionTotal: amountOf(entry.TransactionTotal),
		TotalPaid:        amountOf(entry.TotalPaid),
		ChangeTotal:      amountOf(entry.ChangeTotal),
		Outcome:          string(entry.Outcome),
		Change:           change,
		BalanceAfter:     amountOf(entry.BalanceAfter),
		OccurredAt:       entry.CreatedAt,
	}
}

// PartitionKey keeps a session's events ordered on one partition.
func (e TransactionProcessed) PartitionKey() string {
	return e.SessionID
}

func amountOf(amount int) decimal.Decimal {
	return decimal.NewFromInt(int64(amount))
}
