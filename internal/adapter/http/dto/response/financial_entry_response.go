package response

import (
	"time"

	"atelie_crm/internal/domain/entities"
)

type FinancialEntryResponse struct {
	ID                string     `json:"id"`
	Kind              string     `json:"kind"`
	Description       string     `json:"description"`
	Amount            string     `json:"amount"`
	DueAt             time.Time  `json:"due_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	Status            string     `json:"status"`
	LinkedOrderID     string     `json:"linked_order_id,omitempty"`
	ProviderPaymentID string     `json:"provider_payment_id,omitempty"`
}

func FromFinancialEntry(e entities.FinancialEntry) FinancialEntryResponse {
	return FinancialEntryResponse{
		ID:                e.ID,
		Kind:              string(e.Kind),
		Description:       e.Description,
		Amount:            e.Amount.StringFixed(2),
		DueAt:             e.DueAt,
		PaidAt:            e.PaidAt,
		Status:            string(e.Status),
		LinkedOrderID:     e.LinkedOrderID,
		ProviderPaymentID: e.ProviderPaymentID,
	}
}

func FromFinancialEntries(entries []entities.FinancialEntry) []FinancialEntryResponse {
	out := make([]FinancialEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromFinancialEntry(e))
	}
	return out
}

// EntryPaidResponse is returned by the settle operation: the paid entry plus
// the cash movement recorded with it.
type EntryPaidResponse struct {
	Entry    FinancialEntryResponse `json:"entry"`
	Movement CashMovementResponse   `json:"movement"`
}

type PendingTotalsResponse struct {
	Receivable string `json:"receivable"`
	Payable    string `json:"payable"`
}
