package models

import (
	"time"
)

// JournalEntry is the audit record of one processed transaction in a till session
type JournalEntry struct {
	ID               string         // unique identifier
	SessionID        string         // till session the entry belongs to
	Sequence         int            // 1-based position within the session
	TillStart        int            // balance before the transaction
	TransactionTotal int            // sum of item amounts
	TotalPaid        int            // sum of tendered amounts
	ChangeTotal      int            // paid - total
	Outcome          ChangeOutcome  // none / given / unavailable
	Change           []Denomination // change handed out
	BalanceAfter     int            // balance once the transaction was applied
	CreatedAt        time.Time      // timestamp
}

// Result rebuilds the summary record the entry was written from.
func (e JournalEntry) Result() ProcessingResult {
	return ProcessingResult{
		TillStart:        e.TillStart,
		TransactionTotal: e.TransactionTotal,
		TotalPaid:        e.TotalPaid,
		ChangeTotal:      e.ChangeTotal,
		Outcome:          e.Outcome,
		Change:           e.Change,
	}
}
