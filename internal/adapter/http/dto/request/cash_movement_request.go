package request

import (
	"time"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// MovementCreateRequest registers a manual cash movement. occurred_at
// defaults to now when omitted.
type MovementCreateRequest struct {
	Kind        string          `json:"kind" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	OccurredAt  *time.Time      `json:"occurred_at"`
}

func (r MovementCreateRequest) ToInput() usecase.NewMovement {
	return usecase.NewMovement{
		Kind:        entities.MovementKind(r.Kind),
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		OccurredAt:  r.OccurredAt,
	}
}
