package response

import (
	"testing"
	"time"

	"atelie_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromServiceOrderRoundsAtPresentation(t *testing.T) {
	// internal values keep full precision; the response carries two decimals
	unit := decimal.RequireFromString("10.005")
	order := entities.ServiceOrder{
		ID:       "o1",
		ClientID: "c1",
		LineItems: []entities.OrderLineItem{
			{ServiceID: "s1", Quantity: 3, UnitPrice: unit, LineTotal: unit.Mul(decimal.NewFromInt(3))},
		},
		TotalAmount: unit.Mul(decimal.NewFromInt(3)),
		Status:      entities.OrderStatusPending,
		OpenedAt:    time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}

	resp := FromServiceOrder(order)
	if resp.TotalAmount != "30.02" {
		t.Fatalf("expected 30.02, got %s", resp.TotalAmount)
	}
	if resp.LineItems[0].UnitPrice != "10.01" {
		t.Fatalf("expected 10.01, got %s", resp.LineItems[0].UnitPrice)
	}
	if resp.CompletedAt != nil {
		t.Fatalf("nil completed_at must stay nil")
	}
}

func TestFromFinancialEntryKeepsDanglingOrderRef(t *testing.T) {
	e := entities.FinancialEntry{
		ID:            "e1",
		Kind:          entities.EntryKindReceivable,
		Amount:        decimal.RequireFromString("30"),
		Status:        entities.EntryStatusPending,
		LinkedOrderID: "order-deleted-long-ago",
	}

	resp := FromFinancialEntry(e)
	if resp.LinkedOrderID != "order-deleted-long-ago" {
		t.Fatalf("dangling order reference must be preserved, got %q", resp.LinkedOrderID)
	}
	if resp.Amount != "30.00" {
		t.Fatalf("expected 30.00, got %s", resp.Amount)
	}
}
