package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

func TestMemoryJournalStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryJournalStore()

	require.NoError(t, store.SaveEntry(ctx, models.JournalEntry{ID: "a", SessionID: "s1", Sequence: 1}))
	require.NoError(t, store.SaveEntry(ctx, models.JournalEntry{ID: "b", SessionID: "s2", Sequence: 1}))
	require.NoError(t, store.SaveEntry(ctx, models.JournalEntry{ID: "c", SessionID: "s1", Sequence: 2}))

	all, err := store.GetJournalEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	s1, err := store.GetEntriesBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, s1, 2)
	assert.Equal(t, "a", s1[0].ID)
	assert.Equal(t, "c", s1[1].ID)

	none, err := store.GetEntriesBySession(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryJournalStore_CopiesChange(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryJournalStore()

	change := []models.Denomination{20, 5}
	require.NoError(t, store.SaveEntry(ctx, models.JournalEntry{ID: "a", Change: change}))
	change[0] = 50

	all, err := store.GetJournalEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Denomination{20, 5}, all[0].Change)
}

func TestMemoryJournalStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryJournalStore()
	assert.ErrorIs(t, store.SaveEntry(ctx, models.JournalEntry{ID: "a"}), context.Canceled)
}
