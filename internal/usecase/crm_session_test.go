package usecase

import (
	"context"
	"errors"
	"testing"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase/interfaces"
	mock_interfaces "atelie_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type sessionMocks struct {
	clients   *mock_interfaces.MockIClientRepository
	services  *mock_interfaces.MockIServiceRepository
	orders    *mock_interfaces.MockIServiceOrderRepository
	entries   *mock_interfaces.MockIFinancialEntryRepository
	movements *mock_interfaces.MockICashMovementRepository
}

func newTestSession(t *testing.T, gateway interfaces.IPaymentGateway) (*CRMSession, sessionMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := sessionMocks{
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		orders:    mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		entries:   mock_interfaces.NewMockIFinancialEntryRepository(ctrl),
		movements: mock_interfaces.NewMockICashMovementRepository(ctrl),
	}
	s := NewCRMSession(m.clients, m.services, m.orders, m.entries, m.movements, gateway, nil)
	return s, m
}

func (m sessionMocks) expectRefresh(
	clients []entities.Client,
	services []entities.Service,
	orders []entities.ServiceOrder,
	entries []entities.FinancialEntry,
	movements []entities.CashMovement,
) {
	m.clients.EXPECT().List(gomock.Any()).Return(clients, nil)
	m.services.EXPECT().List(gomock.Any()).Return(services, nil)
	m.orders.EXPECT().List(gomock.Any()).Return(orders, nil)
	m.entries.EXPECT().List(gomock.Any()).Return(entries, nil)
	m.movements.EXPECT().List(gomock.Any()).Return(movements, nil)
}

func TestCRMSession_Refresh(t *testing.T) {
	t.Run("loads all collections", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.expectRefresh(
			[]entities.Client{{ID: "c1", Name: "Ana"}},
			[]entities.Service{{ID: "s1", Name: "Bainha Simples"}},
			nil, nil, nil,
		)

		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.Clients(); len(got) != 1 || got[0].Name != "Ana" {
			t.Fatalf("unexpected clients: %+v", got)
		}
		if got := s.Services(); len(got) != 1 || got[0].Name != "Bainha Simples" {
			t.Fatalf("unexpected services: %+v", got)
		}
	})

	t.Run("store failure is marked unavailable", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.clients.EXPECT().List(gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))

		err := s.Refresh(context.Background())
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("stale snapshot is discarded when a mutation raced", func(t *testing.T) {
		s, m := newTestSession(t, nil)

		m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "old", Name: "Old"}}, nil)
		m.services.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.orders.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.entries.EXPECT().List(gomock.Any()).Return(nil, nil)
		// while the last fetch is in flight, a mutation lands
		m.movements.EXPECT().List(gomock.Any()).DoAndReturn(
			func(ctx context.Context) ([]entities.CashMovement, error) {
				m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil },
				)
				if _, err := s.AddClient(ctx, NewClient{Name: "Bia", Phone: "11 99999-0000"}); err != nil {
					t.Fatalf("mutation failed: %v", err)
				}
				return nil, nil
			},
		)

		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// the fetched snapshot (containing only "Old") must not clobber the
		// fresher in-memory state
		clients := s.Clients()
		if len(clients) != 1 || clients[0].Name != "Bia" {
			t.Fatalf("stale refresh clobbered local state: %+v", clients)
		}
	})
}
