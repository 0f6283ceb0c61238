package response

import (
	"time"

	"atelie_crm/internal/domain/entities"
)

type OrderLineItemResponse struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type ServiceOrderResponse struct {
	ID          string                  `json:"id"`
	ClientID    string                  `json:"client_id"`
	LineItems   []OrderLineItemResponse `json:"line_items"`
	TotalAmount string                  `json:"total_amount"`
	Status      string                  `json:"status"`
	OpenedAt    time.Time               `json:"opened_at"`
	ExpectedAt  *time.Time              `json:"expected_at,omitempty"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	Notes       string                  `json:"notes"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OrderLineItemResponse, 0, len(o.LineItems))
	for _, it := range o.LineItems {
		items = append(items, OrderLineItemResponse{
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			LineTotal: it.LineTotal.StringFixed(2),
		})
	}
	return ServiceOrderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		LineItems:   items,
		TotalAmount: o.TotalAmount.StringFixed(2),
		Status:      string(o.Status),
		OpenedAt:    o.OpenedAt,
		ExpectedAt:  o.ExpectedAt,
		CompletedAt: o.CompletedAt,
		Notes:       o.Notes,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
