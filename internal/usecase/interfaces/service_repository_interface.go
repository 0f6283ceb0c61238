package interfaces

import (
	"context"

	"atelie_crm/internal/domain/entities"
)

// IServiceRepository abstracts persistence for the service catalog.
//
// List returns services ordered by name ascending. Update returns a zero-ID
// service (and nil error) when the record no longer exists; Delete of an
// absent id is not an error.
type IServiceRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
