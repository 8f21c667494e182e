package register

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	interfaces "github.com/sheikh-saqib/till-float-management/internal/interfaces"
	"github.com/sheikh-saqib/till-float-management/internal/metrics"
	"github.com/sheikh-saqib/till-float-management/internal/models"
	"github.com/sheikh-saqib/till-float-management/internal/models/events"
	"github.com/sheikh-saqib/till-float-management/internal/till"
)

// Register is one till session.
// It owns the till state and a mutex so transactions are applied one at a time:
// change-making rolls back by undoing its own withdrawals, which is only
// correct if nothing else touches the drawer meanwhile.
type Register struct {
	mu        sync.Mutex      // serializes every access to state
	state     till.State      // current drawer, balance and stock
	processor *till.Processor // applies one transaction to a state
	sequence  int             // number of transactions posted so far
	sessionID string          // identifies this till session in the journal and events

	store     interfaces.JournalStore  // audit trail, required
	publisher interfaces.EventPublisher // optional
	metrics   *metrics.Metrics          // optional
	log       zerolog.Logger
	now       func() time.Time
}

type Option func(*Register)

func WithPublisher(p interfaces.EventPublisher) Option {
	return func(r *Register) { r.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Register) { r.metrics = m }
}

func WithLogger(log zerolog.Logger) Option {
	return func(r *Register) { r.log = log }
}

func WithProcessor(p *till.Processor) Option {
	return func(r *Register) { r.processor = p }
}

func WithClock(now func() time.Time) Option {
	return func(r *Register) { r.now = now }
}

// NewRegister opens a till session with the given opening float.
func NewRegister(store interfaces.JournalStore, seed []till.SeedEntry, opts ...Option) *Register {
	r := &Register{
		state:     till.Initialize(seed),
		processor: till.NewProcessor(till.Options{}),
		sessionID: uuid.NewString(),
		store:     store,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With().Str("component", "register").Str("session_id", r.sessionID).Logger()
	return r
}

// PostTransaction applies tx to the till and returns its summary record.
//
// A transaction that can't be given exact change is a normal result, not an
// error. Journal and publish failures are logged; they never undo a
// transaction the till has already applied.
func (r *Register) PostTransaction(ctx context.Context, tx models.Transaction) (models.ProcessingResult, error) {
	// Don't touch the till for a caller that already gave up
	if err := ctx.Err(); err != nil {
		return models.ProcessingResult{}, err
	}

	// Only one transaction may work on the drawer at a time
	r.mu.Lock()
	defer r.mu.Unlock()

	// Process works on a copy; swap it in as the new till state
	result, next := r.processor.Process(tx, r.state)
	r.state = next
	r.sequence++

	// Build the audit record for this transaction
	// - Sequence: position within the session, starting at 1
	// - BalanceAfter: balance once the sale was added
	// - CreatedAt: taken from the injected clock so tests can pin it
	entry := models.JournalEntry{
		ID:               uuid.NewString(),
		SessionID:        r.sessionID,
		Sequence:         r.sequence,
		TillStart:        result.TillStart,
		TransactionTotal: result.TransactionTotal,
		TotalPaid:        result.TotalPaid,
		ChangeTotal:      result.ChangeTotal,
		Outcome:          result.Outcome,
		Change:           result.Change,
		BalanceAfter:     next.Balance,
		CreatedAt:        r.now(),
	}

	logEvent := r.log.Debug()
	if result.Outcome == models.ChangeUnavailable {
		logEvent = r.log.Info()
	}
	logEvent.
		Int("sequence", entry.Sequence).
		Int("transaction_total", result.TransactionTotal).
		Int("change_total", result.ChangeTotal).
		Str("outcome", string(result.Outcome)).
		Int("balance", next.Balance).
		Msg("Processed till transaction")

	// Journal the entry; a failing store never undoes the sale
	if err := r.store.SaveEntry(ctx, entry); err != nil {
		r.log.Warn().Err(err).Int("sequence", entry.Sequence).Msg("Failed to journal transaction")
	}

	// Publishing is optional and best effort
	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, events.NewTransactionProcessed(entry)); err != nil {
			r.log.Warn().Err(err).Int("sequence", entry.Sequence).Msg("Failed to publish transaction")
		}
	}

	if r.metrics != nil {
		r.metrics.ObserveResult(result, next.Balance)
	}

	// The summary record goes back to the caller whatever the change outcome
	return result, nil
}

// Balance returns the running till balance.
func (r *Register) Balance() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state.Balance
}

// Snapshot returns a deep copy of the till state.
func (r *Register) Snapshot() till.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state.Clone()
}

func (r *Register) SessionID() string {
	return r.sessionID
}

// JournalEntries returns this session's journal.
func (r *Register) JournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	return r.store.GetEntriesBySession(ctx, r.sessionID)
}
