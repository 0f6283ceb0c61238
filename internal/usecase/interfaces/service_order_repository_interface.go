package interfaces

import (
	"context"

	"atelie_crm/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence for ServiceOrder.
//
// List returns orders ordered by opened-at descending. Update replaces the
// full record: the session owns the merge and the derived-total recompute, so
// the store never sees an order whose total drifted from its line items.
// Update returns a zero-ID order (and nil error) when the record no longer
// exists; Delete of an absent id is not an error.
type IServiceOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}
