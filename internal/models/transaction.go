package models

// Item is a single line rung up on the till
type Item struct {
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// Transaction represents one sale: the items sold and the notes/coins tendered
type Transaction struct {
	Items []Item `json:"items"`
	Paid  []int  `json:"paid"`
}

// Total is the sum of all item amounts
func (t Transaction) Total() int {
	total := 0
	for _, item := range t.Items {
		total += item.Amount
	}
	return total
}

// TotalPaid is the sum of everything tendered
func (t Transaction) TotalPaid() int {
	total := 0
	for _, amount := range t.Paid {
		total += amount
	}
	return total
}
