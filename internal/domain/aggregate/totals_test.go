package aggregate

import (
	"testing"
	"time"

	"atelie_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(2, d("15.00"))
	if !got.Equal(d("30.00")) {
		t.Fatalf("expected 30.00, got %s", got)
	}

	// exact decimal arithmetic, no float drift
	got = LineTotal(3, d("0.10"))
	if !got.Equal(d("0.30")) {
		t.Fatalf("expected 0.30, got %s", got)
	}
}

func TestOrderTotal(t *testing.T) {
	if !OrderTotal(nil).Equal(decimal.Zero) {
		t.Fatalf("expected zero total for empty items")
	}

	items := []entities.OrderLineItem{
		{ServiceID: "a", Quantity: 2, UnitPrice: d("15.00"), LineTotal: d("30.00")},
		{ServiceID: "b", Quantity: 1, UnitPrice: d("25.50"), LineTotal: d("25.50")},
	}
	if got := OrderTotal(items); !got.Equal(d("55.50")) {
		t.Fatalf("expected 55.50, got %s", got)
	}
}

func TestCashBalance(t *testing.T) {
	if !CashBalance(nil).Equal(decimal.Zero) {
		t.Fatalf("expected zero balance for empty register")
	}

	movements := []entities.CashMovement{
		{Kind: entities.MovementKindInflow, Amount: d("100.00")},
		{Kind: entities.MovementKindOutflow, Amount: d("40.25")},
		{Kind: entities.MovementKindInflow, Amount: d("10.00")},
	}
	if got := CashBalance(movements); !got.Equal(d("69.75")) {
		t.Fatalf("expected 69.75, got %s", got)
	}

	// order of movements never changes the fold result
	reversed := []entities.CashMovement{movements[2], movements[1], movements[0]}
	if got := CashBalance(reversed); !got.Equal(d("69.75")) {
		t.Fatalf("expected 69.75 regardless of order, got %s", got)
	}
}

func TestPendingByKind(t *testing.T) {
	entries := []entities.FinancialEntry{
		{Kind: entities.EntryKindReceivable, Status: entities.EntryStatusPending, Amount: d("30.00")},
		{Kind: entities.EntryKindReceivable, Status: entities.EntryStatusPaid, Amount: d("99.00")},
		{Kind: entities.EntryKindPayable, Status: entities.EntryStatusPending, Amount: d("12.50")},
	}

	totals := PendingByKind(entries)
	if !totals.Receivable.Equal(d("30.00")) {
		t.Fatalf("expected receivable 30.00, got %s", totals.Receivable)
	}
	if !totals.Payable.Equal(d("12.50")) {
		t.Fatalf("expected payable 12.50, got %s", totals.Payable)
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	pendingPast := entities.FinancialEntry{Status: entities.EntryStatusPending, DueAt: now.Add(-time.Hour)}
	if !IsOverdue(pendingPast, now) {
		t.Fatalf("pending entry past due must be overdue")
	}

	pendingFuture := entities.FinancialEntry{Status: entities.EntryStatusPending, DueAt: now.Add(time.Hour)}
	if IsOverdue(pendingFuture, now) {
		t.Fatalf("pending entry due in the future must not be overdue")
	}

	// a paid entry is never overdue, regardless of due date
	paidPast := entities.FinancialEntry{Status: entities.EntryStatusPaid, DueAt: now.Add(-time.Hour)}
	if IsOverdue(paidPast, now) {
		t.Fatalf("paid entry must never be overdue")
	}

	dueNow := entities.FinancialEntry{Status: entities.EntryStatusPending, DueAt: now}
	if IsOverdue(dueNow, now) {
		t.Fatalf("entry due exactly now is not overdue yet")
	}
}

func TestSummarizeOrders(t *testing.T) {
	orders := []entities.ServiceOrder{
		{Status: entities.OrderStatusPending, TotalAmount: d("10.00")},
		{Status: entities.OrderStatusInProgress, TotalAmount: d("20.00")},
		{Status: entities.OrderStatusCompleted, TotalAmount: d("30.00")},
		{Status: entities.OrderStatusCompleted, TotalAmount: d("45.00")},
		{Status: entities.OrderStatusCancelled, TotalAmount: d("99.00")},
	}

	stats := SummarizeOrders(orders)
	if stats.Pending != 1 || stats.InProgress != 1 || stats.Completed != 2 || stats.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if !stats.CompletedRevenue.Equal(d("75.00")) {
		t.Fatalf("expected completed revenue 75.00, got %s", stats.CompletedRevenue)
	}
}

func TestSummarizeCash(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	movements := []entities.CashMovement{
		{Kind: entities.MovementKindInflow, Amount: d("50.00"), OccurredAt: now.Add(-2 * time.Hour)},
		{Kind: entities.MovementKindOutflow, Amount: d("20.00"), OccurredAt: now.Add(-3 * time.Hour)},
		{Kind: entities.MovementKindInflow, Amount: d("500.00"), OccurredAt: now.AddDate(0, -2, 0)},
	}

	s := SummarizeCash(movements, PeriodToday, now)
	if !s.Inflow.Equal(d("50.00")) || !s.Outflow.Equal(d("20.00")) || !s.Net.Equal(d("30.00")) {
		t.Fatalf("unexpected summary: %+v", s)
	}

	s = SummarizeCash(movements, PeriodThisYear, now)
	if !s.Net.Equal(d("530.00")) {
		t.Fatalf("expected net 530.00 for the year, got %s", s.Net)
	}
}
