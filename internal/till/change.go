package till

import (
	"errors"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

// ErrNoChangeAvailable means the drawer holds no exact combination for the
// amount the greedy pass was asked for. The inventory is left untouched.
var ErrNoChangeAvailable = errors.New("no exact change available")

// MakeChange withdraws change for amount from inv, largest denomination first.
//
// The pass is greedy and never backtracks, so an amount that some other
// combination could cover may still fail. On failure every unit taken during
// the call is put back and ErrNoChangeAvailable is returned. Zero succeeds
// with an empty sequence; a negative amount always fails.
func MakeChange(amount int, inv *Inventory) ([]models.Denomination, error) {
	if amount < 0 {
		return nil, ErrNoChangeAvailable
	}
	if amount == 0 {
		return []models.Denomination{}, nil
	}

	change := make([]models.Denomination, 0)
	remaining := amount
	for _, d := range models.Denominations() {
		if int(d) > amount {
			continue
		}
		for remaining >= int(d) && inv.Count(d) > 0 {
			inv.Decrement(d, 1)
			change = append(change, d)
			remaining -= int(d)
		}
	}

	if remaining != 0 {
		// Put back exactly what this call took.
		for _, d := range change {
			inv.Increment(d, 1)
		}
		return nil, ErrNoChangeAvailable
	}
	return change, nil
}
