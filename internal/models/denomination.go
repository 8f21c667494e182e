package models

import (
	"strconv"
	"strings"
)

// Denomination is the face value, in Rand, of a note or coin the till holds.
type Denomination int

// denominations is the closed set the till works with, largest first.
var denominations = []Denomination{50, 20, 10, 5, 2, 1}

// Denominations returns the fixed denomination set in descending order.
// The returned slice is a copy so callers can't reorder the set.
func Denominations() []Denomination {
	out := make([]Denomination, len(denominations))
	copy(out, denominations)
	return out
}

// Valid reports whether d is one of the fixed denominations.
func (d Denomination) Valid() bool {
	for _, known := range denominations {
		if d == known {
			return true
		}
	}
	return false
}

func (d Denomination) String() string {
	return "R" + strconv.Itoa(int(d))
}

// Breakdown joins a change sequence as "R20-R5-R5". An empty sequence gives "".
func Breakdown(change []Denomination) string {
	parts := make([]string, 0, len(change))
	for _, d := range change {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "-")
}

// SumDenominations returns the cash value of a change sequence.
func SumDenominations(change []Denomination) int {
	total := 0
	for _, d := range change {
		total += int(d)
	}
	return total
}
