package interfaces

import (
	"context"

	"atelie_crm/internal/domain/entities"
)

// ICashMovementRepository abstracts persistence for the append-only cash
// register. There is no update or delete: the balance is derived from the full
// movement history.
//
// List returns movements ordered by occurred-at descending.
type ICashMovementRepository interface {
	List(ctx context.Context) ([]entities.CashMovement, error)
	Create(ctx context.Context, m entities.CashMovement) (entities.CashMovement, error)
}
