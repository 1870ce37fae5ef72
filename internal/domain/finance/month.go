package finance

import (
	"fmt"
	"sort"
	"time"
)

// MonthKey renders the canonical accrual-period key, e.g. "2026-03".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// ParseMonthKey is the inverse of MonthKey; the result is the first instant
// of that month in UTC.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// SortMonthKeys orders keys chronologically in place. Statements and audit
// trails use real date order, not the display rotation.
func SortMonthKeys(keys []string) {
	sort.Strings(keys) // zero-padded YYYY-MM sorts lexicographically
}

// DisplayMonths returns the twelve months rotated so the current month comes
// first, wrapping through December back to January. This matches the order
// the account-history view renders.
func DisplayMonths(now time.Time) []time.Month {
	out := make([]time.Month, 12)
	start := int(now.Month()) - 1
	for i := 0; i < 12; i++ {
		out[i] = time.Month((start+i)%12 + 1)
	}
	return out
}
