package aggregate

import (
	"testing"
	"time"
)

func TestPeriodIsValid(t *testing.T) {
	for _, p := range []Period{PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear} {
		if !p.IsValid() {
			t.Fatalf("%s should be valid", p)
		}
	}
	if Period("last_week").IsValid() {
		t.Fatalf("unknown period should be invalid")
	}
}

func TestInPeriodToday(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC)

	if !InPeriod(time.Date(2026, 8, 30, 0, 0, 1, 0, time.UTC), PeriodToday, now) {
		t.Fatalf("same calendar day must match")
	}
	if InPeriod(time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC), PeriodToday, now) {
		t.Fatalf("yesterday must not match")
	}
}

func TestInPeriodThisWeekIsRollingWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// the week window rolls back exactly 7x24h from now, it is not aligned
	// to a calendar week
	inside := now.Add(-7*24*time.Hour + time.Second)
	if !InPeriod(inside, PeriodThisWeek, now) {
		t.Fatalf("timestamp just inside the window must match")
	}

	boundary := now.Add(-7 * 24 * time.Hour)
	if InPeriod(boundary, PeriodThisWeek, now) {
		t.Fatalf("timestamp exactly 7x24h ago is outside the half-open window")
	}

	future := now.Add(time.Minute)
	if InPeriod(future, PeriodThisWeek, now) {
		t.Fatalf("future timestamps never match")
	}

	if !InPeriod(now, PeriodThisWeek, now) {
		t.Fatalf("now itself must match")
	}
}

func TestInPeriodMonthAndYear(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if !InPeriod(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), PeriodThisMonth, now) {
		t.Fatalf("first of the month must match this_month")
	}
	if InPeriod(time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC), PeriodThisMonth, now) {
		t.Fatalf("previous month must not match this_month")
	}
	if !InPeriod(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), PeriodThisYear, now) {
		t.Fatalf("january must match this_year")
	}
	if InPeriod(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), PeriodThisYear, now) {
		t.Fatalf("previous year must not match this_year")
	}
}

func TestInPeriodUnknownMatchesNothing(t *testing.T) {
	now := time.Now()
	if InPeriod(now, Period("fortnight"), now) {
		t.Fatalf("unknown period must match nothing")
	}
}

func TestFilterByPeriod(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	type rec struct {
		id string
		at time.Time
	}
	records := []rec{
		{"a", now.Add(-time.Hour)},
		{"b", now.AddDate(0, 0, -10)},
		{"c", now.Add(-2 * 24 * time.Hour)},
	}

	got := FilterByPeriod(records, func(r rec) time.Time { return r.at }, PeriodThisWeek, now)
	if len(got) != 2 || got[0].id != "a" || got[1].id != "c" {
		t.Fatalf("expected [a c] preserving order, got %+v", got)
	}
}
