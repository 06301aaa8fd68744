// Package shared holds cross-cutting domain types used by the codec,
// the engine and the console: currency amounts and their fixed-point
// wire representation.
package shared

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amounts are carried as int64 minor units (cents) everywhere in memory.
// The 8-character "NNNNN.NN" field is the on-disk form.
const amountFieldWidth = 8

var ErrInvalidAmountFormat = errors.New("amount must be a decimal number with at most two fraction digits")

// ParseAmount converts operator input such as "150", "150.5" or "150.50"
// into minor units. It accepts at most two fraction digits and no sign.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmountFormat
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidAmountFormat
	}
	if hasFrac && frac == "" {
		return 0, ErrInvalidAmountFormat
	}

	// 32 bits bound the whole part so the minor-unit conversion below
	// cannot wrap.
	dollars, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return 0, ErrInvalidAmountFormat
	}

	cents := uint64(0)
	if hasFrac {
		cents, err = strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmountFormat
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	return int64(dollars*100 + cents), nil
}

// FormatAmount renders minor units for display, e.g. 15000 -> "150.00".
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

// FormatField renders minor units as the sign-less zero-padded
// 8-character ledger field, e.g. 15000 -> "00150.00".
func FormatField(amount int64) string {
	return fmt.Sprintf("%05d.%02d", amount/100, amount%100)
}

// ParseField is the inverse of FormatField.
func ParseField(field string) (int64, error) {
	if len(field) != amountFieldWidth || field[5] != '.' {
		return 0, ErrInvalidAmountFormat
	}
	dollars, err := strconv.ParseUint(field[:5], 10, 64)
	if err != nil {
		return 0, ErrInvalidAmountFormat
	}
	cents, err := strconv.ParseUint(field[6:], 10, 64)
	if err != nil || cents > 99 {
		return 0, ErrInvalidAmountFormat
	}
	return int64(dollars*100 + cents), nil
}
