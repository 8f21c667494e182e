// Package storage opens the journal store the till writes its audit trail to.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" driver

	interfaces "github.com/sheikh-saqib/till-float-management/internal/interfaces"
	"github.com/sheikh-saqib/till-float-management/internal/storage/memory"
	"github.com/sheikh-saqib/till-float-management/internal/storage/postgres"
)

// Open returns a postgres-backed journal when databaseURL is set and an
// in-memory one otherwise. The returned close func is never nil.
func Open(ctx context.Context, databaseURL string) (interfaces.JournalStore, func() error, error) {
	if databaseURL == "" {
		return memory.NewMemoryJournalStore(), func() error { return nil }, nil
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping journal database: %w", err)
	}

	store := postgres.NewPostgresJournalStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db.Close, nil
}
