package core

import (
	"sort"
	"strings"
)

const (
	OrderNewest = "newest"
	OrderOldest = "oldest"

	// FilterAll is the sentinel disabling a category or type filter.
	FilterAll = "all"
)

// Filter describes one derived list view: free-text search, category and
// type narrowing, and the date ordering. The zero value selects everything
// in ascending date order.
type Filter struct {
	Search    string
	Category  string
	Type      string
	DateOrder string
}

// Query projects the collection into a fresh ordered slice. The input is
// never mutated; running the same filter twice over an unchanged collection
// yields identical output. Date ties keep the original collection order.
func Query(collection []Transaction, f Filter) []Transaction {
	out := make([]Transaction, 0, len(collection))
	search := strings.ToLower(f.Search)
	for _, t := range collection {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.EffectiveCategory()), search) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(f.Category, FilterAll) &&
			!strings.EqualFold(t.EffectiveCategory(), f.Category) {
			continue
		}
		if f.Type != "" && !strings.EqualFold(f.Type, FilterAll) && string(t.Type) != f.Type {
			continue
		}
		out = append(out, t)
	}

	// YYYY-MM-DD sorts chronologically as plain text.
	newest := f.DateOrder == OrderNewest
	sort.SliceStable(out, func(i, j int) bool {
		if newest {
			return out[i].Date > out[j].Date
		}
		return out[i].Date < out[j].Date
	})
	return out
}
