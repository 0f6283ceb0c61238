package interfaces

import (
	"context"

	"atelie_crm/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client.
//
// List returns clients ordered by name ascending; the UI relies on the
// ordering, so it is part of the contract every implementation honors.
//
// Update returns a zero-ID client (and nil error) when the record no longer
// exists, so callers can tell an applied write from a missed one. Delete is
// idempotent: removing an absent id is not an error.
type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
