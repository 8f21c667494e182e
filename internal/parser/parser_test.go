package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.Transaction
	}{
		{
			name: "two items two notes",
			line: "Bread R15; Milk R12, R50-R2",
			want: models.Transaction{
				Items: []models.Item{{Description: "Bread", Amount: 15}, {Description: "Milk", Amount: 12}},
				Paid:  []int{50, 2},
			},
		},
		{
			name: "multi word description",
			line: "Brown Bread R15, R20",
			want: models.Transaction{
				Items: []models.Item{{Description: "Brown Bread", Amount: 15}},
				Paid:  []int{20},
			},
		},
		{
			name: "whole rand with cents",
			line: "Eggs R20.00, R20.00",
			want: models.Transaction{
				Items: []models.Item{{Description: "Eggs", Amount: 20}},
				Paid:  []int{20},
			},
		},
		{
			name: "largest accepted amount",
			line: "Safe R2147483647, R2147483647",
			want: models.Transaction{
				Items: []models.Item{{Description: "Safe", Amount: 2147483647}},
				Paid:  []int{2147483647},
			},
		},
		{
			name: "loose spacing",
			line: "  Tea   R7 ;Sugar R3 ,  R5 - R5 ",
			want: models.Transaction{
				Items: []models.Item{{Description: "Tea", Amount: 7}, {Description: "Sugar", Amount: 3}},
				Paid:  []int{5, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"no payments", "Bread R15", ErrMissingPayment},
		{"empty payments", "Bread R15, ", ErrMissingPayment},
		{"item without amount", "Bread, R20", ErrMalformedItem},
		{"item amount not a number", "Bread Rabc, R20", ErrMalformedAmount},
		{"payment without prefix", "Bread R15, 20", ErrMalformedAmount},
		{"fractional price", "Bread R15.50, R20", ErrFractionalAmount},
		{"amount beyond range", "Bread R99999999999999999999999, R20", ErrMalformedAmount},
		{"exponent price", "Bread R1e1, R20", ErrMalformedAmount},
		{"exponent payment", "Bread R15, R2E1", ErrMalformedAmount},
		{"signed price", "Bread R+15, R20", ErrMalformedAmount},
		{"extra comma", "Bread R15, R20, R5", ErrTooManyFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse(t *testing.T) {
	input := "Bread R15, R20\n\nMilk R12; Eggs R20, R50\n"

	txs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, 15, txs[0].Total())
	assert.Equal(t, 32, txs[1].Total())
	assert.Equal(t, 50, txs[1].TotalPaid())
}

func TestParse_ReportsLine(t *testing.T) {
	input := "Bread R15, R20\nMilk R12\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "Milk R12", perr.Text)
	assert.ErrorIs(t, err, ErrMissingPayment)
}

func TestParse_Empty(t *testing.T) {
	txs, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txs)
}
