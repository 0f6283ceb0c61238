package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"atelie_crm/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidServiceName     = errors.New("invalid service name")
	ErrInvalidServiceCategory = errors.New("invalid service category")
	ErrInvalidServicePrice    = errors.New("invalid service price")
)

type NewService struct {
	Name        string
	Category    string
	UnitPrice   decimal.Decimal
	Description string
}

// ServicePatch is a partial update: nil fields stay unchanged. Editing the
// catalog price never rewrites existing order lines; those keep the price
// snapshotted when the line was added.
type ServicePatch struct {
	Name        *string
	Category    *string
	UnitPrice   *decimal.Decimal
	Description *string
}

func (s *CRMSession) Services() []entities.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.serviceSet)
}

func (s *CRMSession) AddService(ctx context.Context, in NewService) (entities.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return entities.Service{}, ErrInvalidServiceCategory
	}
	if in.UnitPrice.IsNegative() {
		return entities.Service{}, ErrInvalidServicePrice
	}

	svc := entities.Service{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category,
		UnitPrice:   in.UnitPrice,
		Description: strings.TrimSpace(in.Description),
	}
	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		return entities.Service{}, storeErr(err)
	}

	s.mutate(func() {
		s.serviceSet = append(s.serviceSet, created)
		sortServices(s.serviceSet)
	})
	return created, nil
}

func (s *CRMSession) UpdateService(ctx context.Context, id string, patch ServicePatch) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s.mu.Lock()
	idx := indexByID(s.serviceSet, id, func(v entities.Service) string { return v.ID })
	if idx < 0 {
		s.mu.Unlock()
		return entities.Service{}, ErrServiceNotFound
	}
	merged := s.serviceSet[idx]
	s.mu.Unlock()

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Service{}, ErrInvalidServiceName
		}
		merged.Name = name
	}
	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		if category == "" {
			return entities.Service{}, ErrInvalidServiceCategory
		}
		merged.Category = category
	}
	if patch.UnitPrice != nil {
		if patch.UnitPrice.IsNegative() {
			return entities.Service{}, ErrInvalidServicePrice
		}
		merged.UnitPrice = *patch.UnitPrice
	}
	if patch.Description != nil {
		merged.Description = strings.TrimSpace(*patch.Description)
	}

	updated, err := s.serviceRepo.Update(ctx, merged)
	if err != nil {
		return entities.Service{}, storeErr(err)
	}
	if updated.ID == "" {
		// The record vanished from the store since the last refresh.
		return entities.Service{}, ErrServiceNotFound
	}

	s.mutate(func() {
		replaceByID(s.serviceSet, updated, func(v entities.Service) string { return v.ID })
		sortServices(s.serviceSet)
	})
	return updated, nil
}

// RemoveService hard-deletes the catalog entry. Existing order lines keep
// their service_id and price snapshot; readers surface the dangling reference
// as unknown.
func (s *CRMSession) RemoveService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	s.mu.Lock()
	idx := indexByID(s.serviceSet, id, func(v entities.Service) string { return v.ID })
	s.mu.Unlock()
	if idx < 0 {
		return ErrServiceNotFound
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}

	s.mutate(func() {
		s.serviceSet = removeByID(s.serviceSet, id, func(v entities.Service) string { return v.ID })
	})
	return nil
}

func sortServices(services []entities.Service) {
	sort.SliceStable(services, func(i, j int) bool { return services[i].Name < services[j].Name })
}
