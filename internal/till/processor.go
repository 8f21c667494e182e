package till

import (
	"errors"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

// Options tunes the transaction step.
type Options struct {
	// LegacyItemDecrement also removes one unit of the denomination equal to
	// each item's price, when such a denomination exists and is in stock.
	// Off by default: item sales go to the stock ledger only.
	LegacyItemDecrement bool
}

// Processor applies transactions to a till state.
type Processor struct {
	opts Options
}

func NewProcessor(opts Options) *Processor {
	return &Processor{opts: opts}
}

// Process applies tx to state and returns the summary record and the next
// state. state itself is not modified.
//
// The balance grows by the transaction total only; change handed out is not
// subtracted and tendered cash is not added to the drawer.
func (p *Processor) Process(tx models.Transaction, state State) (models.ProcessingResult, State) {
	next := state.Clone()

	total := tx.Total()
	paid := tx.TotalPaid()
	result := models.ProcessingResult{
		TillStart:        state.Balance,
		TransactionTotal: total,
		TotalPaid:        paid,
		ChangeTotal:      paid - total,
		Change:           []models.Denomination{},
	}

	change, err := MakeChange(result.ChangeTotal, next.Inventory)
	switch {
	case errors.Is(err, ErrNoChangeAvailable):
		result.Outcome = models.ChangeUnavailable
	case len(change) == 0:
		result.Outcome = models.ChangeNone
	default:
		result.Outcome = models.ChangeGiven
		result.Change = change
	}

	next.Balance += total
	for _, item := range tx.Items {
		next.Stock.Record(item)
		if p.opts.LegacyItemDecrement {
			d := models.Denomination(item.Amount)
			if d.Valid() && next.Inventory.Count(d) > 0 {
				next.Inventory.Decrement(d, 1)
			}
		}
	}

	return result, next
}

// Process applies tx with default options.
func Process(tx models.Transaction, state State) (models.ProcessingResult, State) {
	return NewProcessor(Options{}).Process(tx, state)
}
