package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"atelie_crm/internal/domain/aggregate"
	"atelie_crm/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound      = errors.New("service order not found")
	ErrInvalidOrderID     = errors.New("invalid service order id")
	ErrInvalidOrderClient = errors.New("invalid order client id")
	ErrEmptyOrderItems    = errors.New("order has no line items")
	ErrInvalidOrderItem   = errors.New("invalid order line item service id")
	ErrInvalidOrderQty    = errors.New("order line item quantity must be at least 1")
	ErrInvalidOrderPrice  = errors.New("invalid order line item price")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// NewOrderItem describes one requested line. UnitPrice overrides the catalog
// price when set; otherwise the current catalog price of the service is
// snapshotted into the line.
type NewOrderItem struct {
	ServiceID string
	Quantity  int
	UnitPrice *decimal.Decimal
}

type NewOrder struct {
	ClientID   string
	Items      []NewOrderItem
	ExpectedAt *time.Time
	Notes      string
}

// OrderPatch is a partial update: nil fields stay unchanged. A non-nil Items
// replaces the line items and recomputes the derived total. CompletedAt is
// caller-set: transitioning to completed does not stamp it automatically.
type OrderPatch struct {
	ClientID    *string
	Items       []NewOrderItem
	Status      *entities.OrderStatus
	ExpectedAt  *time.Time
	CompletedAt *time.Time
	Notes       *string
}

func (s *CRMSession) Orders() []entities.ServiceOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.orderSet)
}

func (s *CRMSession) AddOrder(ctx context.Context, in NewOrder) (entities.ServiceOrder, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderClient
	}
	items, err := s.resolveItems(in.Items)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	o := entities.ServiceOrder{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		LineItems:   items,
		TotalAmount: aggregate.OrderTotal(items),
		Status:      entities.OrderStatusPending,
		OpenedAt:    time.Now().UTC(),
		ExpectedAt:  in.ExpectedAt,
		Notes:       strings.TrimSpace(in.Notes),
	}
	created, err := s.orderRepo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, storeErr(err)
	}

	s.mutate(func() {
		s.orderSet = append(s.orderSet, created)
		sortOrders(s.orderSet)
	})
	return created, nil
}

func (s *CRMSession) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	s.mu.Lock()
	idx := indexByID(s.orderSet, id, func(o entities.ServiceOrder) string { return o.ID })
	if idx < 0 {
		s.mu.Unlock()
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	merged := s.orderSet[idx]
	merged.LineItems = copySlice(merged.LineItems)
	s.mu.Unlock()

	if patch.ClientID != nil {
		clientID := strings.TrimSpace(*patch.ClientID)
		if clientID == "" {
			return entities.ServiceOrder{}, ErrInvalidOrderClient
		}
		merged.ClientID = clientID
	}
	if patch.Items != nil {
		items, err := s.resolveItems(patch.Items)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		// Line items changed: the derived total is recomputed before the
		// store ever sees the record, so it can never drift.
		merged.LineItems = items
		merged.TotalAmount = aggregate.OrderTotal(items)
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return entities.ServiceOrder{}, ErrInvalidOrderStatus
		}
		merged.Status = *patch.Status
	}
	if patch.ExpectedAt != nil {
		merged.ExpectedAt = patch.ExpectedAt
	}
	if patch.CompletedAt != nil {
		merged.CompletedAt = patch.CompletedAt
	}
	if patch.Notes != nil {
		merged.Notes = strings.TrimSpace(*patch.Notes)
	}

	updated, err := s.orderRepo.Update(ctx, merged)
	if err != nil {
		return entities.ServiceOrder{}, storeErr(err)
	}
	if updated.ID == "" {
		// The record vanished from the store since the last refresh.
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	s.mutate(func() {
		replaceByID(s.orderSet, updated, func(o entities.ServiceOrder) string { return o.ID })
		sortOrders(s.orderSet)
	})
	return updated, nil
}

func (s *CRMSession) RemoveOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	s.mu.Lock()
	idx := indexByID(s.orderSet, id, func(o entities.ServiceOrder) string { return o.ID })
	s.mu.Unlock()
	if idx < 0 {
		return ErrOrderNotFound
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}

	s.mutate(func() {
		s.orderSet = removeByID(s.orderSet, id, func(o entities.ServiceOrder) string { return o.ID })
	})
	return nil
}

// OrderStats recomputes the dashboard figures from the in-memory orders.
func (s *CRMSession) OrderStats() aggregate.OrderStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return aggregate.SummarizeOrders(s.orderSet)
}

// resolveItems validates the requested lines and snapshots a unit price into
// each: the explicit price when given, the current catalog price otherwise.
func (s *CRMSession) resolveItems(items []NewOrderItem) ([]entities.OrderLineItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrderItems
	}

	out := make([]entities.OrderLineItem, 0, len(items))
	for _, it := range items {
		serviceID := strings.TrimSpace(it.ServiceID)
		if serviceID == "" {
			return nil, ErrInvalidOrderItem
		}
		if it.Quantity < 1 {
			return nil, ErrInvalidOrderQty
		}

		var unitPrice decimal.Decimal
		switch {
		case it.UnitPrice != nil:
			if it.UnitPrice.IsNegative() {
				return nil, ErrInvalidOrderPrice
			}
			unitPrice = *it.UnitPrice
		default:
			s.mu.Lock()
			idx := indexByID(s.serviceSet, serviceID, func(v entities.Service) string { return v.ID })
			if idx >= 0 {
				unitPrice = s.serviceSet[idx].UnitPrice
			}
			s.mu.Unlock()
			if idx < 0 {
				return nil, ErrServiceNotFound
			}
		}

		out = append(out, entities.OrderLineItem{
			ServiceID: serviceID,
			Quantity:  it.Quantity,
			UnitPrice: unitPrice,
			LineTotal: aggregate.LineTotal(it.Quantity, unitPrice),
		})
	}
	return out, nil
}

func sortOrders(orders []entities.ServiceOrder) {
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].OpenedAt.After(orders[j].OpenedAt) })
}
