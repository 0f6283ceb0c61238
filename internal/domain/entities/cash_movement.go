package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind is the direction of a cash-register movement.
type MovementKind string

const (
	MovementKindInflow  MovementKind = "inflow"
	MovementKindOutflow MovementKind = "outflow"
)

func (k MovementKind) IsValid() bool {
	return k == MovementKindInflow || k == MovementKindOutflow
}

// Categories the cash register knows about. Settling a receivable entry tags
// the generated inflow with Recebimento; settling a payable tags the outflow
// with Pagamento.
const (
	CashCategoryReceipt = "Recebimento"
	CashCategoryPayment = "Pagamento"
)

// CashCategories is the canonical category list offered by the register.
var CashCategories = []string{
	CashCategoryReceipt,
	CashCategoryPayment,
	"Compra Material",
	"Despesa Operacional",
	"Retirada",
	"Depósito",
	"Outros",
}

// CashMovement is one append-only cash-register record. The register balance
// is always derived by folding over the full set of movements; it is never
// stored as a mutable field.
//
// Storage model (DynamoDB):
//   - PK: id
type CashMovement struct {
	ID          string          `json:"id"`
	Kind        MovementKind    `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
