package request

import (
	"testing"
	"time"

	"atelie_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestOrderUpdateRequestToPatch(t *testing.T) {
	t.Run("absent items leave the patch nil", func(t *testing.T) {
		status := "in_progress"
		p := OrderUpdateRequest{Status: &status}.ToPatch()

		if p.Items != nil {
			t.Fatalf("absent items must map to a nil patch, got %+v", p.Items)
		}
		if p.Status == nil || *p.Status != entities.OrderStatusInProgress {
			t.Fatalf("unexpected status: %+v", p.Status)
		}
	})

	t.Run("items and completed_at are carried over", func(t *testing.T) {
		price := decimal.RequireFromString("12.50")
		completedAt := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
		p := OrderUpdateRequest{
			Items:       []OrderItemRequest{{ServiceID: "s1", Quantity: 2, UnitPrice: &price}},
			CompletedAt: &completedAt,
		}.ToPatch()

		if len(p.Items) != 1 || p.Items[0].ServiceID != "s1" || p.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items: %+v", p.Items)
		}
		if p.Items[0].UnitPrice == nil || !p.Items[0].UnitPrice.Equal(price) {
			t.Fatalf("unit price override lost: %+v", p.Items[0].UnitPrice)
		}
		if p.CompletedAt == nil || !p.CompletedAt.Equal(completedAt) {
			t.Fatalf("completed_at lost: %+v", p.CompletedAt)
		}
	})

	t.Run("empty items array requests a replace", func(t *testing.T) {
		p := OrderUpdateRequest{Items: []OrderItemRequest{}}.ToPatch()
		if p.Items == nil || len(p.Items) != 0 {
			t.Fatalf("empty array must map to an empty non-nil patch, got %+v", p.Items)
		}
	})
}
