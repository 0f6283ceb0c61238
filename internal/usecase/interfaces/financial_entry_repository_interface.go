package interfaces

import (
	"context"
	"time"

	"atelie_crm/internal/domain/entities"
)

// IFinancialEntryRepository abstracts persistence for FinancialEntry.
//
// List returns entries ordered by due-at descending. Update returns a zero-ID
// entry (and nil error) when the record no longer exists; Delete of an absent
// id is not an error.
//
// SetPaid flips a pending entry to paid and stamps paid-at in a single
// conditional write; it returns a zero-ID entry when the entry is absent or
// not pending anymore. SetPending is its inverse, used to roll the settle back
// when the paired cash-movement insert fails.
type IFinancialEntryRepository interface {
	List(ctx context.Context) ([]entities.FinancialEntry, error)
	Create(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error)
	Update(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error)
	Delete(ctx context.Context, id string) error
	SetPaid(ctx context.Context, id string, paidAt time.Time, providerPaymentID string) (entities.FinancialEntry, error)
	SetPending(ctx context.Context, id string) (entities.FinancialEntry, error)
}
