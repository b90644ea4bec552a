package core

import (
	"strings"
	"time"
)

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// CategoryOther is the sentinel category that requires a custom label.
const CategoryOther = "other"

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

type (
	TxType string

	// Transaction is the sole persisted entity. Amount is stored in the
	// configured base currency; display conversion never touches it.
	Transaction struct {
		ID             int64     `json:"id"`
		Description    string    `json:"description"`
		Amount         float64   `json:"amount"`
		Date           string    `json:"date"` // YYYY-MM-DD
		Category       string    `json:"category"`
		CustomCategory string    `json:"customCategory,omitempty"`
		Type           TxType    `json:"type"`
		CreatedAt      time.Time `json:"createdAt"`
		UpdatedAt      time.Time `json:"updatedAt"`
	}

	// Draft carries raw user input for a transaction before validation.
	// All fields are strings as submitted; the Store converts on admit.
	Draft struct {
		Description    string `json:"description"`
		Amount         string `json:"amount"`
		Date           string `json:"date"`
		Category       string `json:"category"`
		CustomCategory string `json:"customCategory"`
		Type           string `json:"type"`
	}
)

// EffectiveCategory returns the label used for filtering and display:
// the custom text when the sentinel "other" is selected, else the category.
func (t Transaction) EffectiveCategory() string {
	if strings.EqualFold(t.Category, CategoryOther) && t.CustomCategory != "" {
		return t.CustomCategory
	}
	return t.Category
}

// EffectiveCategory mirrors Transaction.EffectiveCategory for drafts.
func (d Draft) EffectiveCategory() string {
	if strings.EqualFold(d.Category, CategoryOther) && d.CustomCategory != "" {
		return d.CustomCategory
	}
	return d.Category
}

func (tt TxType) IsValid() bool {
	return tt == TypeIncome || tt == TypeExpense
}
