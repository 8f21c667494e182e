package till

import (
	"github.com/sheikh-saqib/till-float-management/internal/models"
)

// StockLedger counts units sold per item description. It is kept apart from
// the denomination inventory: selling a R15 loaf is not handing out a R15 note.
type StockLedger struct {
	sold map[string]int
}

func NewStockLedger() *StockLedger {
	return &StockLedger{sold: make(map[string]int)}
}

// Record books one unit of item as sold.
func (l *StockLedger) Record(item models.Item) {
	l.sold[item.Description]++
}

// Sold returns the units sold for a description.
func (l *StockLedger) Sold(description string) int {
	return l.sold[description]
}

// Snapshot returns a copy of all sold counts.
func (l *StockLedger) Snapshot() map[string]int {
	out := make(map[string]int, len(l.sold))
	for k, v := range l.sold {
		out[k] = v
	}
	return out
}

func (l *StockLedger) Clone() *StockLedger {
	return &StockLedger{sold: l.Snapshot()}
}
