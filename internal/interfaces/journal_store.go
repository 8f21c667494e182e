package interfaces

import (
	"context"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

// JournalStore keeps the audit trail of processed till transactions.
type JournalStore interface {
	SaveEntry(ctx context.Context, entry models.JournalEntry) error
	GetEntriesBySession(ctx context.Context, sessionID string) ([]models.JournalEntry, error)
	GetJournalEntries(ctx context.Context) ([]models.JournalEntry, error)
}
