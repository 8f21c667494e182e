// Package report formats the transaction summary printed after a session.
package report

import (
	"fmt"
	"io"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

const (
	Title      = "Transaction Summary:"
	Columns    = "Till Start, Transaction Total, Paid, Change Total, Change Breakdown"
	NoChange   = "No Change"
	balanceFmt = "Remaining Till Balance: R%d"
)

// Breakdown renders the change column. Nothing owed and change that could
// not be made both read "No Change".
func Breakdown(r models.ProcessingResult) string {
	if r.Outcome != models.ChangeGiven || len(r.Change) == 0 {
		return NoChange
	}
	return models.Breakdown(r.Change)
}

// Line renders one summary row.
func Line(r models.ProcessingResult) string {
	return fmt.Sprintf("R%d, R%d, R%d, R%d, %s",
		r.TillStart, r.TransactionTotal, r.TotalPaid, r.ChangeTotal, Breakdown(r))
}

// Writer prints the summary. The first write error sticks and later writes
// are skipped; check Err once at the end.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteHeader() {
	w.println(Title)
	w.println(Columns)
}

func (w *Writer) WriteResult(r models.ProcessingResult) {
	w.println(Line(r))
}

func (w *Writer) WriteBalance(balance int) {
	w.println(fmt.Sprintf(balanceFmt, balance))
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) println(s string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.w, s)
}
