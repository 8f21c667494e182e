package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/till-float-management/internal/parser"
	"github.com/sheikh-saqib/till-float-management/internal/register"
	"github.com/sheikh-saqib/till-float-management/internal/storage/memory"
	"github.com/sheikh-saqib/till-float-management/internal/till"
)

func newRunner() *Runner {
	reg := register.NewRegister(memory.NewMemoryJournalStore(), till.DefaultSeed())
	return NewRunner(reg, zerolog.Nop())
}

func TestRun_Summary(t *testing.T) {
	input := strings.Join([]string{
		"Bread R15, R20",
		"Bread R15; Milk R12, R50-R2",
		"Cheese R50, R20",
		"Eggs R20, R20",
	}, "\n")

	var out bytes.Buffer
	summary, err := newRunner().Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Transaction Summary:",
		"Till Start, Transaction Total, Paid, Change Total, Change Breakdown",
		"R500, R15, R20, R5, R5",
		"R515, R27, R52, R25, R20-R5",
		"R542, R50, R20, R-30, No Change",
		"R592, R20, R20, R0, No Change",
		"Remaining Till Balance: R612",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, Summary{Transactions: 4, FinalBalance: 612}, summary)
}

func TestRun_EmptyLog(t *testing.T) {
	var out bytes.Buffer
	summary, err := newRunner().Run(context.Background(), strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Equal(t, "Transaction Summary:\n"+
		"Till Start, Transaction Total, Paid, Change Total, Change Breakdown\n"+
		"Remaining Till Balance: R500\n", out.String())
	assert.Equal(t, 500, summary.FinalBalance)
}

func TestRun_MalformedLogPrintsNothing(t *testing.T) {
	var out bytes.Buffer
	_, err := newRunner().Run(context.Background(), strings.NewReader("Bread R15, R20\nMilk"), &out)

	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Empty(t, out.String())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	summary, err := newRunner().Run(ctx, strings.NewReader("Bread R15, R20"), &out)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Transactions)
}
