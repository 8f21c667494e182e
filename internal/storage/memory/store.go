package memory

import (
	"context" // request-scoped cancellation for store calls
	"sync"    // Mutex guarding the entries slice

	interfaces "github.com/sheikh-saqib/till-float-management/internal/interfaces" // interface JournalStore
	"github.com/sheikh-saqib/till-float-management/internal/models"                // domain models: JournalEntry
)

// MemoryJournalStore is an in-memory implementation of interfaces.JournalStore.
// Entries live only as long as the process; it is safe for concurrent use.
type MemoryJournalStore struct {
	mu      sync.Mutex            // mutex to protect entries from concurrent access
	entries []models.JournalEntry // every journal entry, in the order it was saved
}

// NewMemoryJournalStore creates an empty store
func NewMemoryJournalStore() *MemoryJournalStore {
	return &MemoryJournalStore{
		entries: make([]models.JournalEntry, 0), // start with an empty journal
	}
}

// SaveEntry appends a journal entry.
func (m *MemoryJournalStore) SaveEntry(ctx context.Context, entry models.JournalEntry) error {
	// a cancelled caller must not leave a half-recorded session behind
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()         // lock the mutex to prevent concurrent writes
	defer m.mu.Unlock() // unlock automatically when function exits

	// copy the change slice so the caller can't edit the stored entry
	entry.Change = append(make([]models.Denomination, 0, len(entry.Change)), entry.Change...)
	m.entries = append(m.entries, entry) // append the new entry to the journal
	return nil                           // always succeeds in memory
}

// GetJournalEntries returns a copy of every entry in insertion order.
func (m *MemoryJournalStore) GetJournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]models.JournalEntry, len(m.entries))
	copy(copied, m.entries) // return a copy so external code can't modify internal state
	return copied, nil
}

func (m *MemoryJournalStore) GetEntriesBySession(ctx context.Context, sessionID string) ([]models.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.JournalEntry, 0)
	for _, e := range m.entries {
		if e.SessionID == sessionID {
			result = append(result, e)
		}
	}
	return result, nil
}

// Compile-time check: ensure MemoryJournalStore implements JournalStore interface
var _ interfaces.JournalStore = (*MemoryJournalStore)(nil)
