package core

import (
	"errors"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Description: "weekly groceries",
		Amount:      "42.50",
		Date:        "2024-01-15",
		Category:    "food",
		Type:        "expense",
	}
}

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Draft)
		want   error
	}{
		{"valid", func(d *Draft) {}, nil},
		{"valid with custom category", func(d *Draft) {
			d.Category = "other"
			d.CustomCategory = "pet-supplies"
		}, nil},
		{"missing description", func(d *Draft) { d.Description = "" }, ErrMissingFields},
		{"missing amount", func(d *Draft) { d.Amount = "" }, ErrMissingFields},
		{"missing date", func(d *Draft) { d.Date = "" }, ErrMissingFields},
		{"missing type", func(d *Draft) { d.Type = "" }, ErrMissingFields},
		{"other without custom", func(d *Draft) { d.Category = "other" }, ErrMissingCustomCategory},
		{"leading space", func(d *Draft) { d.Description = " coffee" }, ErrInvalidDescription},
		{"trailing space", func(d *Draft) { d.Description = "coffee " }, ErrInvalidDescription},
		{"repeated word", func(d *Draft) { d.Description = "coffee coffee" }, ErrInvalidDescription},
		{"repeated word mid-sentence", func(d *Draft) { d.Description = "the the bill" }, ErrInvalidDescription},
		{"repeated word different case ok", func(d *Draft) { d.Description = "Coffee coffee" }, nil},
		{"same word not adjacent ok", func(d *Draft) { d.Description = "coffee and coffee" }, nil},
		{"negative amount", func(d *Draft) { d.Amount = "-5" }, ErrInvalidAmount},
		{"leading zero amount", func(d *Draft) { d.Amount = "05" }, ErrInvalidAmount},
		{"three decimals", func(d *Draft) { d.Amount = "5.001" }, ErrInvalidAmount},
		{"zero amount ok", func(d *Draft) { d.Amount = "0" }, nil},
		{"zero with cents ok", func(d *Draft) { d.Amount = "0.99" }, nil},
		{"bad date format", func(d *Draft) { d.Date = "15-01-2024" }, ErrInvalidDate},
		{"month thirteen", func(d *Draft) { d.Date = "2024-13-01" }, ErrInvalidDate},
		{"day zero", func(d *Draft) { d.Date = "2024-01-00" }, ErrInvalidDate},
		{"day thirty-two", func(d *Draft) { d.Date = "2024-01-32" }, ErrInvalidDate},
		// Inherited coarseness: Feb 30 is syntactically valid.
		{"february thirty accepted", func(d *Draft) { d.Date = "2024-02-30" }, nil},
		{"digits in category", func(d *Draft) { d.Category = "food2" }, ErrInvalidCategory},
		{"trailing hyphen in category", func(d *Draft) { d.Category = "food-" }, ErrInvalidCategory},
		{"double space in category", func(d *Draft) { d.Category = "eating  out" }, ErrInvalidCategory},
		{"hyphenated category ok", func(d *Draft) { d.Category = "eating-out" }, nil},
		{"spaced category ok", func(d *Draft) { d.Category = "eating out" }, nil},
		{"invalid custom category", func(d *Draft) {
			d.Category = "other"
			d.CustomCategory = "misc!"
		}, ErrInvalidCategory},
		{"unknown type", func(d *Draft) { d.Type = "transfer" }, ErrInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := d.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	// Multiple broken fields: the missing-fields rule runs first.
	d := Draft{Description: " bad ", Amount: "", Date: "nope", Category: "x1", Type: "transfer"}
	if err := d.Validate(); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	// All fields present: description shape is checked before the amount.
	d = Draft{Description: " bad ", Amount: "-1", Date: "2024-01-01", Category: "food", Type: "expense"}
	if err := d.Validate(); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription, got %v", err)
	}
}

func TestEffectiveCategory(t *testing.T) {
	tx := Transaction{Category: "other", CustomCategory: "garden"}
	if got := tx.EffectiveCategory(); got != "garden" {
		t.Fatalf("expected garden, got %q", got)
	}
	tx = Transaction{Category: "food"}
	if got := tx.EffectiveCategory(); got != "food" {
		t.Fatalf("expected food, got %q", got)
	}
}
