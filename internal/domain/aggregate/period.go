package aggregate

import "time"

// Period is a relative date-range filter.
//
// this_week is deliberately a rolling 7x24h window ending at now, not a
// calendar-aligned week. Callers rely on the rolling semantic.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this_week"
	PeriodThisMonth Period = "this_month"
	PeriodThisYear  Period = "this_year"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear:
		return true
	}
	return false
}

// InPeriod reports whether t falls inside the period relative to now.
// Unknown periods match nothing.
func InPeriod(t time.Time, p Period, now time.Time) bool {
	switch p {
	case PeriodToday:
		y1, m1, d1 := t.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodThisWeek:
		return !t.After(now) && now.Sub(t) < 7*24*time.Hour
	case PeriodThisMonth:
		y1, m1, _ := t.Date()
		y2, m2, _ := now.Date()
		return y1 == y2 && m1 == m2
	case PeriodThisYear:
		return t.Year() == now.Year()
	}
	return false
}

// FilterByPeriod keeps the records whose date (as reported by dateOf) falls
// inside the period relative to now, preserving input order.
func FilterByPeriod[T any](records []T, dateOf func(T) time.Time, p Period, now time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if InPeriod(dateOf(r), p, now) {
			out = append(out, r)
		}
	}
	return out
}
