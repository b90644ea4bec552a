// Package core holds the transaction domain: the record model, the
// validation rules, amount parsing, currency conversion and the pure
// projection functions (query, aggregate) the views are computed from.
package core

import "strconv"

// ParseAmount converts an amount string to its numeric base-currency value.
//
// The string must satisfy the same shape the validator enforces: a
// non-negative decimal with no superfluous leading zeros and at most two
// fractional digits. Anything else returns ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("5")     -> 5, nil
//	ParseAmount("5.00")  -> 5, nil
//	ParseAmount("0.99")  -> 0.99, nil
//	ParseAmount("05")    -> 0, ErrInvalidAmount
//	ParseAmount("5.001") -> 0, ErrInvalidAmount
//	ParseAmount("-5")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	if !amountRe.MatchString(s) {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders a numeric amount with two fractional digits, the
// presentation used by dashboards and the CSV export.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
