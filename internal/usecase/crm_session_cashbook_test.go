package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelie_crm/internal/domain/aggregate"
	"atelie_crm/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestCRMSession_AddMovement(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		s, _ := newTestSession(t, nil)
		_, err := s.AddMovement(context.Background(), NewMovement{
			Kind: "transfer", Amount: dec("10"), Description: "x", Category: "Outros",
		})
		if !errors.Is(err, ErrInvalidMovementKind) {
			t.Fatalf("expected ErrInvalidMovementKind, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		s, _ := newTestSession(t, nil)
		_, err := s.AddMovement(context.Background(), NewMovement{
			Kind: entities.MovementKindInflow, Amount: dec("10"), Description: "x", Category: "Imposto",
		})
		if !errors.Is(err, ErrInvalidMovementCategory) {
			t.Fatalf("expected ErrInvalidMovementCategory, got %v", err)
		}
	})

	t.Run("create success defaults occurred_at", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.movements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mv entities.CashMovement) (entities.CashMovement, error) {
				if mv.ID == "" || mv.OccurredAt.IsZero() {
					t.Fatalf("unexpected movement: %+v", mv)
				}
				return mv, nil
			},
		)

		_, err := s.AddMovement(context.Background(), NewMovement{
			Kind: entities.MovementKindOutflow, Amount: dec("35.90"), Description: "Linha e agulhas", Category: "Compra Material",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCRMSession_CashSummary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s, m := newTestSession(t, nil)
	m.expectRefresh(nil, nil, nil, nil, []entities.CashMovement{
		{ID: "m1", Kind: entities.MovementKindInflow, Amount: dec("100.00"), OccurredAt: now.Add(-time.Hour)},
		{ID: "m2", Kind: entities.MovementKindOutflow, Amount: dec("40.00"), OccurredAt: now.AddDate(0, 0, -20)},
	})
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if _, err := s.CashSummary(aggregate.Period("quarter"), now); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}

	week, err := s.CashSummary(aggregate.PeriodThisWeek, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !week.Net.Equal(dec("100.00")) {
		t.Fatalf("expected this_week net 100.00, got %s", week.Net)
	}

	month, err := s.CashSummary(aggregate.PeriodThisMonth, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !month.Net.Equal(dec("60.00")) {
		t.Fatalf("expected this_month net 60.00, got %s", month.Net)
	}

	if balance := s.CashBalance(); !balance.Equal(dec("60.00")) {
		t.Fatalf("expected balance 60.00, got %s", balance)
	}
}
