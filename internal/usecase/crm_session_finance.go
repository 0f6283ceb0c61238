package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"atelie_crm/internal/domain/aggregate"
	"atelie_crm/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrEntryNotFound       = errors.New("financial entry not found")
	ErrInvalidEntryID      = errors.New("invalid financial entry id")
	ErrInvalidEntryKind    = errors.New("invalid financial entry kind")
	ErrInvalidEntryAmount  = errors.New("invalid financial entry amount")
	ErrInvalidEntryDesc    = errors.New("invalid financial entry description")
	ErrInvalidEntryDueDate = errors.New("invalid financial entry due date")
	ErrEntryAlreadyPaid    = errors.New("financial entry already paid")
)

type NewEntry struct {
	Kind          entities.EntryKind
	Description   string
	Amount        decimal.Decimal
	DueAt         time.Time
	LinkedOrderID string
}

// EntryPatch is a partial update. The amount is fixed at creation, so only
// the description and due date are editable.
type EntryPatch struct {
	Description *string
	DueAt       *time.Time
}

func (s *CRMSession) Entries() []entities.FinancialEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.entrySet)
}

func (s *CRMSession) AddEntry(ctx context.Context, in NewEntry) (entities.FinancialEntry, error) {
	if !in.Kind.IsValid() {
		return entities.FinancialEntry{}, ErrInvalidEntryKind
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entities.FinancialEntry{}, ErrInvalidEntryDesc
	}
	if !in.Amount.IsPositive() {
		return entities.FinancialEntry{}, ErrInvalidEntryAmount
	}
	if in.DueAt.IsZero() {
		return entities.FinancialEntry{}, ErrInvalidEntryDueDate
	}

	e := entities.FinancialEntry{
		ID:            uuid.NewString(),
		Kind:          in.Kind,
		Description:   description,
		Amount:        in.Amount,
		DueAt:         in.DueAt,
		Status:        entities.EntryStatusPending,
		LinkedOrderID: strings.TrimSpace(in.LinkedOrderID),
	}
	created, err := s.entryRepo.Create(ctx, e)
	if err != nil {
		return entities.FinancialEntry{}, storeErr(err)
	}

	s.mutate(func() {
		s.entrySet = append(s.entrySet, created)
		sortEntries(s.entrySet)
	})
	return created, nil
}

func (s *CRMSession) UpdateEntry(ctx context.Context, id string, patch EntryPatch) (entities.FinancialEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialEntry{}, ErrInvalidEntryID
	}

	s.mu.Lock()
	idx := indexByID(s.entrySet, id, func(e entities.FinancialEntry) string { return e.ID })
	if idx < 0 {
		s.mu.Unlock()
		return entities.FinancialEntry{}, ErrEntryNotFound
	}
	merged := s.entrySet[idx]
	s.mu.Unlock()

	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return entities.FinancialEntry{}, ErrInvalidEntryDesc
		}
		merged.Description = description
	}
	if patch.DueAt != nil {
		if patch.DueAt.IsZero() {
			return entities.FinancialEntry{}, ErrInvalidEntryDueDate
		}
		merged.DueAt = *patch.DueAt
	}

	updated, err := s.entryRepo.Update(ctx, merged)
	if err != nil {
		return entities.FinancialEntry{}, storeErr(err)
	}
	if updated.ID == "" {
		// The record vanished from the store since the last refresh.
		return entities.FinancialEntry{}, ErrEntryNotFound
	}

	s.mutate(func() {
		replaceByID(s.entrySet, updated, func(e entities.FinancialEntry) string { return e.ID })
		sortEntries(s.entrySet)
	})
	return updated, nil
}

func (s *CRMSession) RemoveEntry(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEntryID
	}

	s.mu.Lock()
	idx := indexByID(s.entrySet, id, func(e entities.FinancialEntry) string { return e.ID })
	s.mu.Unlock()
	if idx < 0 {
		return ErrEntryNotFound
	}

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}

	s.mutate(func() {
		s.entrySet = removeByID(s.entrySet, id, func(e entities.FinancialEntry) string { return e.ID })
	})
	return nil
}

// MarkEntryPaid settles a pending entry and appends the paired cash movement:
// receivable -> inflow tagged Recebimento, payable -> outflow tagged
// Pagamento. The pairing is atomic from the caller's point of view: when the
// movement insert fails the entry flip is rolled back, and nothing reaches the
// in-memory collections until both writes landed.
//
// For receivable entries a configured payment gateway is consulted first and
// the provider payment id is recorded on the entry. gatewayPayload carries the
// provider request body; it is ignored when no gateway is configured.
func (s *CRMSession) MarkEntryPaid(ctx context.Context, id string, gatewayPayload json.RawMessage) (entities.FinancialEntry, entities.CashMovement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialEntry{}, entities.CashMovement{}, ErrInvalidEntryID
	}

	s.mu.Lock()
	idx := indexByID(s.entrySet, id, func(e entities.FinancialEntry) string { return e.ID })
	if idx < 0 {
		s.mu.Unlock()
		return entities.FinancialEntry{}, entities.CashMovement{}, ErrEntryNotFound
	}
	entry := s.entrySet[idx]
	s.mu.Unlock()

	if entry.Status == entities.EntryStatusPaid {
		return entities.FinancialEntry{}, entities.CashMovement{}, ErrEntryAlreadyPaid
	}

	providerPaymentID := ""
	if s.gateway != nil && entry.Kind == entities.EntryKindReceivable {
		pid, err := s.collectViaGateway(ctx, entry, gatewayPayload)
		if err != nil {
			return entities.FinancialEntry{}, entities.CashMovement{}, err
		}
		providerPaymentID = pid
	}

	now := time.Now().UTC()
	paid, err := s.entryRepo.SetPaid(ctx, id, now, providerPaymentID)
	if err != nil {
		return entities.FinancialEntry{}, entities.CashMovement{}, storeErr(err)
	}
	if paid.ID == "" {
		// The conditional flip failed: the entry was settled (or removed)
		// behind our back since the last refresh.
		return entities.FinancialEntry{}, entities.CashMovement{}, ErrEntryAlreadyPaid
	}

	kind := entities.MovementKindInflow
	category := entities.CashCategoryReceipt
	if entry.Kind == entities.EntryKindPayable {
		kind = entities.MovementKindOutflow
		category = entities.CashCategoryPayment
	}
	movement := entities.CashMovement{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      entry.Amount,
		Description: fmt.Sprintf("Pagamento: %s", entry.Description),
		Category:    category,
		OccurredAt:  now,
	}
	createdMovement, err := s.movementRepo.Create(ctx, movement)
	if err != nil {
		// Manual rollback: the store has no cross-collection transaction, so
		// flip the entry back before surfacing the failure.
		if _, rbErr := s.entryRepo.SetPending(ctx, id); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"module":   "usecase",
				"funcName": "MarkEntryPaid",
				"entry_id": id,
			}).Errorf("rollback of paid flip failed: %v (movement insert: %v)", rbErr, err)
		}
		return entities.FinancialEntry{}, entities.CashMovement{}, storeErr(err)
	}

	s.mutate(func() {
		replaceByID(s.entrySet, paid, func(e entities.FinancialEntry) string { return e.ID })
		s.movementSet = append(s.movementSet, createdMovement)
		sortMovements(s.movementSet)
	})
	return paid, createdMovement, nil
}

// collectViaGateway charges the receivable through the configured provider.
// The entry amount in the store is the source of truth for the charged value.
func (s *CRMSession) collectViaGateway(ctx context.Context, entry entities.FinancialEntry, payload json.RawMessage) (string, error) {
	reqMap := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &reqMap); err != nil {
			reqMap = map[string]any{}
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = entry.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = entry.Description
	}
	amount, _ := entry.Amount.Float64()
	reqMap["transaction_amount"] = amount

	body, err := json.Marshal(reqMap)
	if err != nil {
		return "", err
	}
	providerPaymentID, providerStatus, _, err := s.gateway.CreatePayment(ctx, body)
	if err != nil {
		return "", err
	}
	s.log.WithFields(logrus.Fields{
		"module":          "usecase",
		"funcName":        "MarkEntryPaid",
		"entry_id":        entry.ID,
		"provider_status": providerStatus,
	}).Info("gateway payment created")
	return providerPaymentID, nil
}

// OverdueEntries returns the pending entries whose due date has passed as of
// now. Overdue is a view predicate, never persisted.
func (s *CRMSession) OverdueEntries(now time.Time) []entities.FinancialEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.FinancialEntry, 0)
	for _, e := range s.entrySet {
		if aggregate.IsOverdue(e, now) {
			out = append(out, e)
		}
	}
	return out
}

// PendingTotals recomputes the receivable/payable open totals from the
// in-memory entries.
func (s *CRMSession) PendingTotals() aggregate.PendingTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return aggregate.PendingByKind(s.entrySet)
}

func sortEntries(entries []entities.FinancialEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].DueAt.After(entries[j].DueAt) })
}
