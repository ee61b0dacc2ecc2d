// Package cli formats trip boards for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "Jan 2, 2006"

// FormatAmount renders a budget with thousands separators and no currency
// symbol. Whole amounts drop the fraction.
// e.g., 1234.5 -> "1,234.50", 1500 -> "1,500"
func FormatAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatAmount(d.Neg())
	}

	if d.Equal(d.Truncate(0)) {
		return groupThousands(d.String())
	}
	fixed := d.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	return groupThousands(fixed[:dot]) + fixed[dot:]
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatDateRange renders a trip's dates. Unknown dates print as "?".
func FormatDateRange(start, end time.Time) string {
	return formatDate(start) + " - " + formatDate(end)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "?"
	}
	return t.Format(dateLayout)
}

// FormatDays renders a duration in days.
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatCities joins city names, truncating after limit entries.
func FormatCities(cities []string, limit int) string {
	if limit <= 0 || len(cities) <= limit {
		return strings.Join(cities, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(cities[:limit], ", "), len(cities)-limit)
}
