package models

// ChangeOutcome tells apart "nothing owed" from "owed but not makeable".
// Both render as "No Change" in the summary but they are different results.
type ChangeOutcome string

const (
	ChangeNone        ChangeOutcome = "none"
	ChangeGiven       ChangeOutcome = "given"
	ChangeUnavailable ChangeOutcome = "unavailable"
)

// ProcessingResult is the summary record for one processed transaction
type ProcessingResult struct {
	TillStart        int            `json:"till_start"`        // balance before this transaction
	TransactionTotal int            `json:"transaction_total"` // sum of item amounts
	TotalPaid        int            `json:"total_paid"`        // sum of tendered amounts
	ChangeTotal      int            `json:"change_total"`      // paid - total, negative when underpaid
	Outcome          ChangeOutcome  `json:"outcome"`
	Change           []Denomination `json:"change"` // descending, grouped; empty unless Outcome is ChangeGiven
}
