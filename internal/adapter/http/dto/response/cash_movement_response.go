package response

import (
	"time"

	"atelie_crm/internal/domain/aggregate"
	"atelie_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CashMovementResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func FromCashMovement(m entities.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Amount:      m.Amount.StringFixed(2),
		Description: m.Description,
		Category:    m.Category,
		OccurredAt:  m.OccurredAt,
	}
}

func FromCashMovements(movements []entities.CashMovement) []CashMovementResponse {
	out := make([]CashMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, FromCashMovement(m))
	}
	return out
}

type CashBalanceResponse struct {
	Balance string `json:"balance"`
}

func FromCashBalance(balance decimal.Decimal) CashBalanceResponse {
	return CashBalanceResponse{Balance: balance.StringFixed(2)}
}

type CashSummaryResponse struct {
	Period  string `json:"period"`
	Inflow  string `json:"inflow"`
	Outflow string `json:"outflow"`
	Net     string `json:"net"`
}

func FromCashSummary(period string, s aggregate.CashSummary) CashSummaryResponse {
	return CashSummaryResponse{
		Period:  period,
		Inflow:  s.Inflow.StringFixed(2),
		Outflow: s.Outflow.StringFixed(2),
		Net:     s.Net.StringFixed(2),
	}
}

type CashCategoriesResponse struct {
	Categories []string `json:"categories"`
}
