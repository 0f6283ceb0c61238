package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes accounts receivable from accounts payable.
type EntryKind string

const (
	EntryKindReceivable EntryKind = "receivable"
	EntryKindPayable    EntryKind = "payable"
)

func (k EntryKind) IsValid() bool {
	return k == EntryKindReceivable || k == EntryKindPayable
}

// EntryStatus is the settlement state of a financial entry.
type EntryStatus string

const (
	EntryStatusPending EntryStatus = "pending"
	EntryStatusPaid    EntryStatus = "paid"
)

// FinancialEntry is one ledger entry (a bill to pay or an amount to collect).
//
// Storage model (DynamoDB):
//   - PK: id
//
// Amount is fixed at creation. Settling an entry is the only operation allowed
// to append a CashMovement as a side effect, and the pairing is atomic from
// the caller's point of view.
//
// "Overdue" is never stored: it is the view predicate
// status == pending && due_at < now.
type FinancialEntry struct {
	ID                string          `json:"id"`
	Kind              EntryKind       `json:"kind"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	DueAt             time.Time       `json:"due_at"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	Status            EntryStatus     `json:"status"`
	LinkedOrderID     string          `json:"linked_order_id,omitempty"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
}
