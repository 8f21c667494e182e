// Package parser reads the line-oriented transaction log:
//
//	Bread R15; Milk R12, R50-R2
//
// Items are separated by ';', the item list is separated from the payments
// by ',', and payments are separated by '-'.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

var (
	ErrMissingPayment   = errors.New("missing payment list")
	ErrMalformedItem    = errors.New("malformed item")
	ErrMalformedAmount  = errors.New("malformed amount")
	ErrFractionalAmount = errors.New("amount must be whole Rand")
	ErrTooManyFields    = errors.New("more than one ',' separator")
)

// plainAmount is digits with an optional decimal part; no signs or exponents.
var plainAmount = regexp.MustCompile(`^\d+(\.\d+)?$`)

// maxAmount keeps totals well inside int range on every platform.
var maxAmount = decimal.NewFromInt(math.MaxInt32)

// ParseError carries the 1-based line a parse failure happened on.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads every non-blank line of r as a transaction.
func Parse(r io.Reader) ([]models.Transaction, error) {
	var txs []models.Transaction

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tx, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction log: %w", err)
	}
	return txs, nil
}

// ParseLine parses one transaction line.
func ParseLine(line string) (models.Transaction, error) {
	itemsPart, paidPart, ok := strings.Cut(line, ",")
	if !ok || strings.TrimSpace(paidPart) == "" {
		return models.Transaction{}, ErrMissingPayment
	}
	if strings.Contains(paidPart, ",") {
		return models.Transaction{}, ErrTooManyFields
	}

	var tx models.Transaction
	for _, raw := range strings.Split(itemsPart, ";") {
		item, err := parseItem(raw)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.Items = append(tx.Items, item)
	}

	for _, raw := range strings.Split(paidPart, "-") {
		amount, err := parseAmount(raw)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.Paid = append(tx.Paid, amount)
	}
	return tx, nil
}

func parseItem(raw string) (models.Item, error) {
	raw = strings.TrimSpace(raw)
	idx := strings.LastIndex(raw, " R")
	if idx < 0 {
		return models.Item{}, fmt.Errorf("%w: %q", ErrMalformedItem, raw)
	}
	amount, err := parseAmount(raw[idx+1:])
	if err != nil {
		return models.Item{}, err
	}
	return models.Item{
		Description: strings.TrimSpace(raw[:idx]),
		Amount:      amount,
	}, nil
}

// parseAmount reads "R15" or "R15.00". Fractional Rand are rejected since
// the till only deals in whole-Rand denominations.
func parseAmount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	digits, ok := strings.CutPrefix(raw, "R")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	digits = strings.TrimSpace(digits)
	if !plainAmount.MatchString(digits) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	if !amount.IsInteger() {
		return 0, fmt.Errorf("%w: %q", ErrFractionalAmount, raw)
	}
	if amount.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedAmount, raw)
	}
	return int(amount.IntPart()), nil
}
