// Package aggregate holds the pure derived-state rules of the CRM: order
// totals, the cash-register balance, pending receivable/payable totals and the
// overdue predicate. Everything here is side-effect free and total over
// well-formed input; validation is the caller's job.
package aggregate

import (
	"time"

	"atelie_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineTotal is quantity x unit price, in exact decimal arithmetic. Rounding to
// two fraction digits happens only at presentation.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderTotal sums the line totals of an order. An order total must always
// equal this sum; it is recomputed on every line-item mutation.
func OrderTotal(items []entities.OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal)
	}
	return total
}

// CashBalance folds over the full movement set: +amount for inflows, -amount
// for outflows. Empty input yields zero.
func CashBalance(movements []entities.CashMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		if m.Kind == entities.MovementKindOutflow {
			balance = balance.Sub(m.Amount)
		} else {
			balance = balance.Add(m.Amount)
		}
	}
	return balance
}

// PendingTotals partitions the open ledger amounts by kind.
type PendingTotals struct {
	Receivable decimal.Decimal
	Payable    decimal.Decimal
}

// PendingByKind sums the amounts of pending entries, split into receivable and
// payable buckets. Paid entries never contribute.
func PendingByKind(entries []entities.FinancialEntry) PendingTotals {
	totals := PendingTotals{Receivable: decimal.Zero, Payable: decimal.Zero}
	for _, e := range entries {
		if e.Status != entities.EntryStatusPending {
			continue
		}
		switch e.Kind {
		case entities.EntryKindReceivable:
			totals.Receivable = totals.Receivable.Add(e.Amount)
		case entities.EntryKindPayable:
			totals.Payable = totals.Payable.Add(e.Amount)
		}
	}
	return totals
}

// IsOverdue reports whether a pending entry's due date has passed as of now.
// It is a view-time predicate, never persisted.
func IsOverdue(e entities.FinancialEntry, now time.Time) bool {
	return e.Status == entities.EntryStatusPending && e.DueAt.Before(now)
}

// OrderStats are the dashboard order figures.
type OrderStats struct {
	Pending          int
	InProgress       int
	Completed        int
	Cancelled        int
	CompletedRevenue decimal.Decimal
}

// SummarizeOrders counts orders per status and totals the revenue of the
// completed ones.
func SummarizeOrders(orders []entities.ServiceOrder) OrderStats {
	stats := OrderStats{CompletedRevenue: decimal.Zero}
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusPending:
			stats.Pending++
		case entities.OrderStatusInProgress:
			stats.InProgress++
		case entities.OrderStatusCompleted:
			stats.Completed++
			stats.CompletedRevenue = stats.CompletedRevenue.Add(o.TotalAmount)
		case entities.OrderStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

// CashSummary aggregates register movements over a period.
type CashSummary struct {
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Net     decimal.Decimal
}

// SummarizeCash totals inflows and outflows of the movements whose OccurredAt
// falls inside the period relative to now.
func SummarizeCash(movements []entities.CashMovement, p Period, now time.Time) CashSummary {
	s := CashSummary{Inflow: decimal.Zero, Outflow: decimal.Zero}
	for _, m := range movements {
		if !InPeriod(m.OccurredAt, p, now) {
			continue
		}
		if m.Kind == entities.MovementKindOutflow {
			s.Outflow = s.Outflow.Add(m.Amount)
		} else {
			s.Inflow = s.Inflow.Add(m.Amount)
		}
	}
	s.Net = s.Inflow.Sub(s.Outflow)
	return s
}
