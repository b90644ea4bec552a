package core

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit reports a conversion referencing a unit absent from the
// rate table. Callers presenting values should fall back to rate 1 via
// ConvertFallback instead of aborting.
var ErrUnknownUnit = errors.New("unknown currency unit")

// Convert maps an amount from one currency unit to another given a rate
// table relative to the base unit (whose own rate is 1):
//
//	converted = amount / rates[from] * rates[to]
func Convert(amount float64, rates map[string]float64, from, to string) (float64, error) {
	fromRate, ok := rates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	return amount / fromRate * toRate, nil
}

// ConvertFallback converts like Convert but substitutes rate 1 for any
// unit missing from the table, so display paths degrade instead of failing.
func ConvertFallback(amount float64, rates map[string]float64, from, to string) float64 {
	fromRate, ok := rates[from]
	if !ok || fromRate == 0 {
		fromRate = 1
	}
	toRate, ok := rates[to]
	if !ok {
		toRate = 1
	}
	return amount / fromRate * toRate
}
