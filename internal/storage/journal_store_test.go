package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/till-float-management/internal/storage/memory"
)

func TestOpen_DefaultsToMemory(t *testing.T) {
	store, closeFn, err := Open(context.Background(), "")
	require.NoError(t, err)

	assert.IsType(t, &memory.MemoryJournalStore{}, store)
	assert.NoError(t, closeFn())
}
