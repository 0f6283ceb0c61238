package request

import (
	"time"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// OrderItemRequest describes one requested line. unit_price overrides the
// catalog price when present.
type OrderItemRequest struct {
	ServiceID string           `json:"service_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type OrderCreateRequest struct {
	ClientID   string             `json:"client_id" binding:"required"`
	Items      []OrderItemRequest `json:"items" binding:"required"`
	ExpectedAt *time.Time         `json:"expected_at"`
	Notes      string             `json:"notes"`
}

func (r OrderCreateRequest) ToInput() usecase.NewOrder {
	return usecase.NewOrder{
		ClientID:   r.ClientID,
		Items:      toItemInputs(r.Items),
		ExpectedAt: r.ExpectedAt,
		Notes:      r.Notes,
	}
}

// OrderUpdateRequest is a partial update: absent fields stay unchanged. A
// present items array replaces the whole line set. completed_at is set by
// the caller; moving the status to completed does not stamp it.
type OrderUpdateRequest struct {
	ClientID    *string            `json:"client_id"`
	Items       []OrderItemRequest `json:"items"`
	Status      *string            `json:"status"`
	ExpectedAt  *time.Time         `json:"expected_at"`
	CompletedAt *time.Time         `json:"completed_at"`
	Notes       *string            `json:"notes"`
}

func (r OrderUpdateRequest) ToPatch() usecase.OrderPatch {
	p := usecase.OrderPatch{
		ClientID:    r.ClientID,
		ExpectedAt:  r.ExpectedAt,
		CompletedAt: r.CompletedAt,
		Notes:       r.Notes,
	}
	if r.Items != nil {
		p.Items = toItemInputs(r.Items)
	}
	if r.Status != nil {
		st := entities.OrderStatus(*r.Status)
		p.Status = &st
	}
	return p
}

func toItemInputs(items []OrderItemRequest) []usecase.NewOrderItem {
	out := make([]usecase.NewOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.NewOrderItem{
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}
