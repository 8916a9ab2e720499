package salarygrid

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a spreadsheet or form cell into a decimal amount.
// Blank and non-numeric values become zero, never an error or NaN.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseCount coerces a cell into a non-negative integer day count.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// tolerate decimal-formatted counts like "20.0"
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		n = int(f)
	}
	if n < 0 {
		return 0
	}
	return n
}
