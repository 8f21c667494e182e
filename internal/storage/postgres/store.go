package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	interfaces "github.com/sheikh-saqib/till-float-management/internal/interfaces"
	"github.com/sheikh-saqib/till-float-management/internal/models"
)

const (
	createJournalTableQuery = `CREATE TABLE IF NOT EXISTS till_journal (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	sequence INTEGER NOT NULL,
	till_start BIGINT NOT NULL,
	transaction_total BIGINT NOT NULL,
	total_paid BIGINT NOT NULL,
	change_total BIGINT NOT NULL,
	outcome TEXT NOT NULL,
	change_given INTEGER[] NOT NULL,
	balance_after BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (session_id, sequence)
)`

	insertEntryQuery = `INSERT INTO till_journal (id, session_id, sequence, till_start, transaction_total, total_paid, change_total, outcome, change_given, balance_after, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	selectEntriesQuery = `SELECT id, session_id, sequence, till_start, transaction_total, total_paid, change_total, outcome, change_given, balance_after, created_at
	FROM till_journal ORDER BY created_at, sequence`

	selectSessionEntriesQuery = `SELECT id, session_id, sequence, till_start, transaction_total, total_paid, change_total, outcome, change_given, balance_after, created_at
	FROM till_journal WHERE session_id = $1 ORDER BY sequence`
)

type PostgresJournalStore struct {
	db *sql.DB
}

func NewPostgresJournalStore(db *sql.DB) *PostgresJournalStore {
	return &PostgresJournalStore{
		db: db,
	}
}

// EnsureSchema creates the journal table if it does not exist yet.
func (p *PostgresJournalStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, createJournalTableQuery); err != nil {
		return fmt.Errorf("failed to create till_journal: %w", err)
	}
	return nil
}

func (p *PostgresJournalStore) SaveEntry(ctx context.Context, entry models.JournalEntry) error {
	change := make([]int64, 0, len(entry.Change))
	for _, d := range entry.Change {
		change = append(change, int64(d))
	}

	_, err := p.db.ExecContext(ctx, insertEntryQuery,
		entry.ID,
		entry.SessionID,
		entry.Sequence,
		entry.TillStart,
		entry.TransactionTotal,
		entry.TotalPaid,
		entry.ChangeTotal,
		string(entry.Outcome),
		pq.Array(change),
		entry.BalanceAfter,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", entry.ID, err)
	}
	return nil
}

func (p *PostgresJournalStore) GetJournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	rows, err := p.db.QueryContext(ctx, selectEntriesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (p *PostgresJournalStore) GetEntriesBySession(ctx context.Context, sessionID string) ([]models.JournalEntry, error) {
	rows, err := p.db.QueryContext(ctx, selectSessionEntriesQuery, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0)

	for rows.Next() {
		var (
			entry   models.JournalEntry
			outcome string
			change  []int64
		)
		err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Sequence,
			&entry.TillStart,
			&entry.TransactionTotal,
			&entry.TotalPaid,
			&entry.ChangeTotal,
			&outcome,
			pq.Array(&change),
			&entry.BalanceAfter,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		entry.Outcome = models.ChangeOutcome(outcome)
		entry.Change = make([]models.Denomination, 0, len(change))
		for _, d := range change {
			entry.Change = append(entry.Change, models.Denomination(d))
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal: %w", err)
	}
	return entries, nil
}

var _ interfaces.JournalStore = (*PostgresJournalStore)(nil)
