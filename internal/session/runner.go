// Package session runs a transaction log through a register and prints the summary.
package session

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/sheikh-saqib/till-float-management/internal/models"
	"github.com/sheikh-saqib/till-float-management/internal/parser"
	"github.com/sheikh-saqib/till-float-management/internal/report"
)

// Poster is the part of a register the runner needs.
type Poster interface {
	PostTransaction(ctx context.Context, tx models.Transaction) (models.ProcessingResult, error)
	Balance() int
}

// Summary describes a finished run.
type Summary struct {
	Transactions int
	FinalBalance int
}

type Runner struct {
	register Poster
	log      zerolog.Logger
}

func NewRunner(register Poster, log zerolog.Logger) *Runner {
	return &Runner{
		register: register,
		log:      log.With().Str("component", "session").Logger(),
	}
}

// Run parses the whole log from in before touching the till, then processes
// the transactions in order and writes the summary to out. A malformed log
// aborts the run before anything is printed.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	txs, err := parser.Parse(in)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to parse transaction log")
		return Summary{}, err
	}
	r.log.Info().Int("transactions", len(txs)).Msg("Starting till session")

	w := report.NewWriter(out)
	w.WriteHeader()

	summary := Summary{}
	for i, tx := range txs {
		result, err := r.register.PostTransaction(ctx, tx)
		if err != nil {
			return summary, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		w.WriteResult(result)
		summary.Transactions++
	}

	summary.FinalBalance = r.register.Balance()
	w.WriteBalance(summary.FinalBalance)
	if err := w.Err(); err != nil {
		return summary, fmt.Errorf("failed to write summary: %w", err)
	}

	r.log.Info().
		Int("transactions", summary.Transactions).
		Int("final_balance", summary.FinalBalance).
		Msg("Till session finished")
	return summary, nil
}
