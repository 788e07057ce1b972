// Package periods maps the 24 evaluation periods onto calendar months.
package periods

import (
	"fmt"
	"time"

	"github.com/specialistvlad/finsheet/internal/model"
)

// MonthLayout is the storage format of months, e.g. "2023-01".
const MonthLayout = "2006-01"

const labelLayout = "Jan 06"

// ParseMonth parses "YYYY-MM". A full "YYYY-MM-DD" date is accepted and
// truncated to its month.
func ParseMonth(s string) (time.Time, error) {
	if len(s) == len("2006-01-02") {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
		}
		return FirstOfMonth(t), nil
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t, nil
}

// FirstOfMonth truncates t to midnight UTC on the first day of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Month returns the first day of period p, counting from start.
func Month(start time.Time, p int) time.Time {
	return FirstOfMonth(start).AddDate(0, p, 0)
}

// Labels returns a "Jan 23" style label for each period starting at start.
func Labels(start time.Time) []string {
	labels := make([]string, model.Periods)
	for p := range labels {
		labels[p] = Month(start, p).Format(labelLayout)
	}
	return labels
}

// Index returns the period of month relative to start. It is negative for
// months before start and may exceed the last period.
func Index(start, month time.Time) int {
	s, m := FirstOfMonth(start), FirstOfMonth(month)
	return (m.Year()-s.Year())*12 + int(m.Month()) - int(s.Month())
}

// Active reports, for every period, whether a span from "from" to "until"
// (inclusive months) covers it. An empty until means open ended.
func Active(start time.Time, from, until string) ([]bool, error) {
	first, err := ParseMonth(from)
	if err != nil {
		return nil, err
	}
	last := model.Periods - 1
	if until != "" {
		end, err := ParseMonth(until)
		if err != nil {
			return nil, err
		}
		if end.Before(first) {
			return nil, fmt.Errorf("end month %s is before start month %s", until, from)
		}
		last = Index(start, end)
	}

	active := make([]bool, model.Periods)
	for p := max(Index(start, first), 0); p <= last && p < model.Periods; p++ {
		active[p] = true
	}
	return active, nil
}
