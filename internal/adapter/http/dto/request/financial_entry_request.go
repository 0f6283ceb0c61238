package request

import (
	"encoding/json"
	"time"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

type EntryCreateRequest struct {
	Kind          string          `json:"kind" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DueAt         time.Time       `json:"due_at" binding:"required"`
	LinkedOrderID string          `json:"linked_order_id"`
}

func (r EntryCreateRequest) ToInput() usecase.NewEntry {
	return usecase.NewEntry{
		Kind:          entities.EntryKind(r.Kind),
		Description:   r.Description,
		Amount:        r.Amount,
		DueAt:         r.DueAt,
		LinkedOrderID: r.LinkedOrderID,
	}
}

// EntryUpdateRequest edits the mutable fields of a pending entry. The amount
// is fixed at creation.
type EntryUpdateRequest struct {
	Description *string    `json:"description"`
	DueAt       *time.Time `json:"due_at"`
}

func (r EntryUpdateRequest) ToPatch() usecase.EntryPatch {
	return usecase.EntryPatch{
		Description: r.Description,
		DueAt:       r.DueAt,
	}
}

// EntryPayRequest optionally carries the raw Mercado Pago payment payload.
// When omitted the entry is settled without contacting the provider.
type EntryPayRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
