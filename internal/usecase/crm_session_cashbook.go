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
	ErrInvalidMovementKind     = errors.New("invalid cash movement kind")
	ErrInvalidMovementAmount   = errors.New("invalid cash movement amount")
	ErrInvalidMovementDesc     = errors.New("invalid cash movement description")
	ErrInvalidMovementCategory = errors.New("unknown cash movement category")
	ErrInvalidPeriod           = errors.New("unknown period")
)

// NewMovement carries a manual register entry. OccurredAt defaults to now
// when nil.
type NewMovement struct {
	Kind        entities.MovementKind
	Amount      decimal.Decimal
	Description string
	Category    string
	OccurredAt  *time.Time
}

func (s *CRMSession) Movements() []entities.CashMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.movementSet)
}

func (s *CRMSession) AddMovement(ctx context.Context, in NewMovement) (entities.CashMovement, error) {
	if !in.Kind.IsValid() {
		return entities.CashMovement{}, ErrInvalidMovementKind
	}
	if !in.Amount.IsPositive() {
		return entities.CashMovement{}, ErrInvalidMovementAmount
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entities.CashMovement{}, ErrInvalidMovementDesc
	}
	category := strings.TrimSpace(in.Category)
	if !isKnownCashCategory(category) {
		return entities.CashMovement{}, ErrInvalidMovementCategory
	}

	occurredAt := time.Now().UTC()
	if in.OccurredAt != nil {
		occurredAt = in.OccurredAt.UTC()
	}

	m := entities.CashMovement{
		ID:          uuid.NewString(),
		Kind:        in.Kind,
		Amount:      in.Amount,
		Description: description,
		Category:    category,
		OccurredAt:  occurredAt,
	}
	created, err := s.movementRepo.Create(ctx, m)
	if err != nil {
		return entities.CashMovement{}, storeErr(err)
	}

	s.mutate(func() {
		s.movementSet = append(s.movementSet, created)
		sortMovements(s.movementSet)
	})
	return created, nil
}

// CashBalance folds over the full in-memory movement set on every call; the
// balance is never cached where it could desync.
func (s *CRMSession) CashBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return aggregate.CashBalance(s.movementSet)
}

func (s *CRMSession) CashSummary(p aggregate.Period, now time.Time) (aggregate.CashSummary, error) {
	if !p.IsValid() {
		return aggregate.CashSummary{}, ErrInvalidPeriod
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return aggregate.SummarizeCash(s.movementSet, p, now), nil
}

func isKnownCashCategory(category string) bool {
	for _, c := range entities.CashCategories {
		if c == category {
			return true
		}
	}
	return false
}

func sortMovements(movements []entities.CashMovement) {
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].OccurredAt.After(movements[j].OccurredAt)
	})
}
