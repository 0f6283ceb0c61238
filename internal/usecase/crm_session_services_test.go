package usecase

import (
	"context"
	"errors"
	"testing"

	"atelie_crm/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestCRMSession_AddService(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		s, _ := newTestSession(t, nil)
		_, err := s.AddService(context.Background(), NewService{Name: "Bainha", Category: "Ajuste", UnitPrice: dec("-1")})
		if !errors.Is(err, ErrInvalidServicePrice) {
			t.Fatalf("expected ErrInvalidServicePrice, got %v", err)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.services.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, svc entities.Service) (entities.Service, error) { return svc, nil },
		)

		svc, err := s.AddService(context.Background(), NewService{Name: "Orçamento", Category: "Outros", UnitPrice: dec("0")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !svc.UnitPrice.IsZero() {
			t.Fatalf("expected zero price, got %s", svc.UnitPrice)
		}
	})
}

func TestCRMSession_UpdateServicePriceKeepsOrderSnapshots(t *testing.T) {
	s, m := newTestSession(t, nil)
	order := entities.ServiceOrder{
		ID:       "o1",
		ClientID: "c1",
		LineItems: []entities.OrderLineItem{
			{ServiceID: "s1", Quantity: 2, UnitPrice: dec("15.00"), LineTotal: dec("30.00")},
		},
		TotalAmount: dec("30.00"),
		Status:      entities.OrderStatusPending,
	}
	m.expectRefresh(nil, []entities.Service{{ID: "s1", Name: "Bainha Simples", UnitPrice: dec("15.00")}}, []entities.ServiceOrder{order}, nil, nil)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	m.services.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, svc entities.Service) (entities.Service, error) { return svc, nil },
	)

	newPrice := dec("18.00")
	if _, err := s.UpdateService(context.Background(), "s1", ServicePatch{UnitPrice: &newPrice}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// existing order lines keep the price snapshotted at creation time
	orders := s.Orders()
	if !orders[0].LineItems[0].UnitPrice.Equal(dec("15.00")) || !orders[0].TotalAmount.Equal(dec("30.00")) {
		t.Fatalf("catalog edit must not rewrite order lines: %+v", orders[0])
	}
}
