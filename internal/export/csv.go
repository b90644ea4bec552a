// Package export renders a filtered transaction sequence as CSV text.
package export

import (
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
)

// Header is the fixed CSV header row.
const Header = "ID,Description,Amount,Category,Type,Date,CreatedAt,UpdatedAt"

// CSV renders the records one per row after the header. The description
// is always double-quoted with internal quotes doubled; all other fields
// are written bare. Rows are joined with \n and there is no trailing
// newline.
func CSV(txs []core.Transaction) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, t := range txs {
		b.WriteByte('\n')
		b.WriteString(strconv.FormatInt(t.ID, 10))
		b.WriteByte(',')
		b.WriteString(quote(t.Description))
		b.WriteByte(',')
		b.WriteString(core.FormatAmount(t.Amount))
		b.WriteByte(',')
		b.WriteString(t.EffectiveCategory())
		b.WriteByte(',')
		b.WriteString(string(t.Type))
		b.WriteByte(',')
		b.WriteString(t.Date)
		b.WriteByte(',')
		b.WriteString(formatTime(t.CreatedAt))
		b.WriteByte(',')
		b.WriteString(formatTime(t.UpdatedAt))
	}
	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
