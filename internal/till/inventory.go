// Package till holds the cash drawer: the denomination inventory, greedy
// change-making with rollback, and the per-transaction state transition.
package till

import (
	"github.com/sheikh-saqib/till-float-management/internal/models"
)

// SeedEntry is one "count x denomination" line of the opening float.
type SeedEntry struct {
	Denomination models.Denomination
	Count        int
}

// DefaultSeed is the opening float: 5xR50, 5xR20, 6xR10, 12xR5, 10xR2, 10xR1 (R500).
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{Denomination: 50, Count: 5},
		{Denomination: 20, Count: 5},
		{Denomination: 10, Count: 6},
		{Denomination: 5, Count: 12},
		{Denomination: 2, Count: 10},
		{Denomination: 1, Count: 10},
	}
}

// Inventory maps every denomination to the number of units in the drawer.
// The key set is fixed at construction; only counts change.
type Inventory struct {
	counts map[models.Denomination]int
}

// NewInventory builds an inventory holding every denomination, with counts
// taken from seed. Seed lines for unknown denominations are ignored.
func NewInventory(seed []SeedEntry) *Inventory {
	inv := &Inventory{counts: make(map[models.Denomination]int)}
	for _, d := range models.Denominations() {
		inv.counts[d] = 0
	}
	for _, entry := range seed {
		if !entry.Denomination.Valid() || entry.Count < 0 {
			continue
		}
		inv.counts[entry.Denomination] += entry.Count
	}
	return inv
}

// Count returns how many units of d the drawer holds, 0 for unknown denominations.
func (inv *Inventory) Count(d models.Denomination) int {
	return inv.counts[d]
}

// Decrement removes n units of d. Callers make sure the count stays >= 0.
func (inv *Inventory) Decrement(d models.Denomination, n int) {
	if _, ok := inv.counts[d]; !ok {
		return
	}
	inv.counts[d] -= n
}

// Increment adds n units of d.
func (inv *Inventory) Increment(d models.Denomination, n int) {
	if _, ok := inv.counts[d]; !ok {
		return
	}
	inv.counts[d] += n
}

// Value is the cash value of the drawer: sum of count x denomination.
func (inv *Inventory) Value() int {
	total := 0
	for d, n := range inv.counts {
		total += int(d) * n
	}
	return total
}

// Counts returns a copy of the denomination counts.
func (inv *Inventory) Counts() map[models.Denomination]int {
	out := make(map[models.Denomination]int, len(inv.counts))
	for d, n := range inv.counts {
		out[d] = n
	}
	return out
}

// Clone returns an independent copy; mutating one never affects the other.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{counts: inv.Counts()}
}
