package usecase

import (
	"context"
	"errors"
	"testing"

	"atelie_crm/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestCRMSession_AddClient(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		s, _ := newTestSession(t, nil)
		_, err := s.AddClient(context.Background(), NewClient{Name: "   ", Phone: "11 98888-0000"})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("blank phone", func(t *testing.T) {
		s, _ := newTestSession(t, nil)
		_, err := s.AddClient(context.Background(), NewClient{Name: "Ana", Phone: ""})
		if !errors.Is(err, ErrInvalidClientPhone) {
			t.Fatalf("expected ErrInvalidClientPhone, got %v", err)
		}
	})

	t.Run("create success assigns id and keeps name order", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.expectRefresh([]entities.Client{{ID: "c1", Name: "Zuleica"}}, nil, nil, nil, nil)
		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		m.clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Name != "Ana" || c.RegisteredAt.IsZero() {
					t.Fatalf("unexpected client: %+v", c)
				}
				return c, nil
			},
		)

		created, err := s.AddClient(context.Background(), NewClient{Name: " Ana ", Phone: " 11 98888-0000 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Phone != "11 98888-0000" {
			t.Fatalf("expected trimmed phone, got %q", created.Phone)
		}

		clients := s.Clients()
		if len(clients) != 2 || clients[0].Name != "Ana" || clients[1].Name != "Zuleica" {
			t.Fatalf("expected name-ascending order, got %+v", clients)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, errors.New("db"))

		_, err := s.AddClient(context.Background(), NewClient{Name: "Ana", Phone: "11"})
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
		if len(s.Clients()) != 0 {
			t.Fatalf("failed create must not touch the in-memory set")
		}
	})
}

func TestCRMSession_UpdateClient(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		s, _ := newTestSession(t, nil)
		name := "Ana"
		_, err := s.UpdateClient(context.Background(), "missing", ClientPatch{Name: &name})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.expectRefresh([]entities.Client{{ID: "c1", Name: "Ana", Phone: "11", Email: "ana@example.com"}}, nil, nil, nil, nil)
		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		m.clients.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil },
		)

		phone := " 21 97777-0000 "
		updated, err := s.UpdateClient(context.Background(), "c1", ClientPatch{Phone: &phone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Phone != "21 97777-0000" || updated.Name != "Ana" || updated.Email != "ana@example.com" {
			t.Fatalf("unexpected merge result: %+v", updated)
		}
	})

	t.Run("record deleted behind the session", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.expectRefresh([]entities.Client{{ID: "c1", Name: "Ana", Phone: "11"}}, nil, nil, nil, nil)
		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		// the store's conditional write misses: the record was removed since
		// the last refresh
		m.clients.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Client{}, nil)

		name := "Ana Paula"
		_, err := s.UpdateClient(context.Background(), "c1", ClientPatch{Name: &name})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
		if got := s.Clients(); len(got) != 1 || got[0].Name != "Ana" {
			t.Fatalf("missed update must not touch the in-memory set, got %+v", got)
		}
	})

	t.Run("blank patched name is rejected", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.expectRefresh([]entities.Client{{ID: "c1", Name: "Ana"}}, nil, nil, nil, nil)
		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		blank := "  "
		_, err := s.UpdateClient(context.Background(), "c1", ClientPatch{Name: &blank})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})
}

func TestCRMSession_RemoveClient(t *testing.T) {
	t.Run("delete does not cascade to orders", func(t *testing.T) {
		s, m := newTestSession(t, nil)
		m.expectRefresh(
			[]entities.Client{{ID: "c1", Name: "Ana"}},
			nil,
			[]entities.ServiceOrder{{ID: "o1", ClientID: "c1", Status: entities.OrderStatusPending}},
			nil, nil,
		)
		if err := s.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		m.clients.EXPECT().Delete(gomock.Any(), "c1").Return(nil)

		if err := s.RemoveClient(context.Background(), "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Clients()) != 0 {
			t.Fatalf("client should be gone")
		}
		// the order keeps its dangling client reference
		orders := s.Orders()
		if len(orders) != 1 || orders[0].ClientID != "c1" {
			t.Fatalf("order must keep its client_id, got %+v", orders)
		}
	})

	t.Run("not found", func(t *testing.T) {
		s, _ := newTestSession(t, nil)
		if err := s.RemoveClient(context.Background(), "missing"); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}
