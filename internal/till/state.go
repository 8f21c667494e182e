package till

// State is the till threaded through a session: the drawer, the running
// balance and the item stock ledger. Process never mutates the State it is
// given; it returns a new one.
type State struct {
	Inventory *Inventory
	Balance   int
	Stock     *StockLedger
}

// Initialize creates the opening till. Balance starts at the cash value of seed.
func Initialize(seed []SeedEntry) State {
	inv := NewInventory(seed)
	return State{
		Inventory: inv,
		Balance:   inv.Value(),
		Stock:     NewStockLedger(),
	}
}

// Clone deep-copies the state so a snapshot can't be changed through the copy.
func (s State) Clone() State {
	out := State{Balance: s.Balance}
	if s.Inventory != nil {
		out.Inventory = s.Inventory.Clone()
	} else {
		out.Inventory = NewInventory(nil)
	}
	if s.Stock != nil {
		out.Stock = s.Stock.Clone()
	} else {
		out.Stock = NewStockLedger()
	}
	return out
}

// DrawerValue is the cash currently in the drawer, as opposed to Balance,
// which only accumulates gross sales.
func (s State) DrawerValue() int {
	if s.Inventory == nil {
		return 0
	}
	return s.Inventory.Value()
}
