package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		result models.ProcessingResult
		want   string
	}{
		{
			name: "change given",
			result: models.ProcessingResult{
				TillStart: 500, TransactionTotal: 15, TotalPaid: 40, ChangeTotal: 25,
				Outcome: models.ChangeGiven, Change: []models.Denomination{20, 5},
			},
			want: "R500, R15, R40, R25, R20-R5",
		},
		{
			name: "nothing owed",
			result: models.ProcessingResult{
				TillStart: 515, TransactionTotal: 20, TotalPaid: 20, Outcome: models.ChangeNone,
			},
			want: "R515, R20, R20, R0, No Change",
		},
		{
			name: "underpaid",
			result: models.ProcessingResult{
				TillStart: 535, TransactionTotal: 50, TotalPaid: 20, ChangeTotal: -30,
				Outcome: models.ChangeUnavailable,
			},
			want: "R535, R50, R20, R-30, No Change",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.result))
		})
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.WriteHeader()
	w.WriteResult(models.ProcessingResult{
		TillStart: 500, TransactionTotal: 15, TotalPaid: 20, ChangeTotal: 5,
		Outcome: models.ChangeGiven, Change: []models.Denomination{5},
	})
	w.WriteBalance(515)

	assert.NoError(t, w.Err())
	assert.Equal(t, "Transaction Summary:\n"+
		"Till Start, Transaction Total, Paid, Change Total, Change Breakdown\n"+
		"R500, R15, R20, R5, R5\n"+
		"Remaining Till Balance: R515\n", buf.String())
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestWriter_StickyError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw)

	w.WriteHeader()
	w.WriteBalance(500)

	assert.EqualError(t, w.Err(), "disk full")
	assert.Equal(t, 1, fw.calls)
}
