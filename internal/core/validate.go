package core

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingFields         = errors.New("missing required fields")
	ErrMissingCustomCategory = errors.New("custom category required")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidType           = errors.New("invalid transaction type")
)

var (
	// No leading or trailing whitespace, at least one non-space rune.
	descShapeRe = regexp.MustCompile(`^\S(?:.*\S)?$`)
	// Non-negative decimal, no superfluous leading zero, at most 2 fractional digits.
	amountRe = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	// Coarse calendar check: month 01-12, day 01-31. Impossible combinations
	// such as 2024-02-31 pass; callers wanting strict dates must parse.
	dateRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	// Letter runs separated by single spaces or hyphens.
	categoryRe = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)

	wordRe = regexp.MustCompile(`\w+`)
)

// Validate checks the draft rule by rule; the first failing rule wins.
// It is pure: no state is carried between calls and the draft is never
// modified. A draft that passes is safe to admit to the Store.
func (d Draft) Validate() error {
	if d.Description == "" || d.Amount == "" || d.Date == "" || d.Category == "" || d.Type == "" {
		return ErrMissingFields
	}
	if strings.EqualFold(d.Category, CategoryOther) && d.CustomCategory == "" {
		return ErrMissingCustomCategory
	}
	if !descShapeRe.MatchString(d.Description) || hasRepeatedWord(d.Description) {
		return ErrInvalidDescription
	}
	if !amountRe.MatchString(d.Amount) {
		return ErrInvalidAmount
	}
	if !dateRe.MatchString(d.Date) {
		return ErrInvalidDate
	}
	if !categoryRe.MatchString(d.EffectiveCategory()) {
		return ErrInvalidCategory
	}
	if !TxType(d.Type).IsValid() {
		return ErrInvalidType
	}
	return nil
}

// hasRepeatedWord reports whether two identical words appear back to back,
// separated only by whitespace. The comparison is case-sensitive.
func hasRepeatedWord(s string) bool {
	spans := wordRe.FindAllStringIndex(s, -1)
	for i := 1; i < len(spans); i++ {
		gap := s[spans[i-1][1]:spans[i][0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue
		}
		if s[spans[i-1][0]:spans[i-1][1]] == s[spans[i][0]:spans[i][1]] {
			return true
		}
	}
	return false
}
