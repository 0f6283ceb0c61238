package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a service order.
//
// Domain notes:
//   - pending -> in_progress -> completed, and pending|in_progress -> cancelled.
//   - completed and cancelled are terminal; transitions are caller-directed.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderLineItem is one (service, quantity) pairing inside an order.
// UnitPrice is the catalog price snapshotted when the line was added and
// LineTotal = Quantity x UnitPrice at that moment.
type OrderLineItem struct {
	ServiceID string          `json:"service_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// ServiceOrder is a customer order composed of priced line items.
//
// Storage model (DynamoDB):
//   - PK: id
//
// TotalAmount is derived: it always equals the sum of the line totals and is
// recomputed on every line-item mutation, never edited directly.
//
// ClientID may reference a client that was deleted afterwards; deletes do not
// cascade and readers must treat the reference as unknown rather than fail.
type ServiceOrder struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	LineItems   []OrderLineItem `json:"line_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	OpenedAt    time.Time       `json:"opened_at"`
	ExpectedAt  *time.Time      `json:"expected_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}
