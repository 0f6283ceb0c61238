package localstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase"
)

// Full offline flow over the JSON store: register a client, open an order for
// two hems, bill it, settle the receivable and check the register.
func TestSessionFlowOverLocalStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "crm.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	session := usecase.NewCRMSession(store.Clients(), store.Services(), store.Orders(), store.Entries(), store.Movements(), nil, nil)
	if err := session.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	ana, err := session.AddClient(ctx, usecase.NewClient{Name: "Ana", Phone: "11 98888-0000"})
	if err != nil {
		t.Fatalf("add client: %v", err)
	}

	var hem entities.Service
	for _, svc := range session.Services() {
		if svc.Name == "Bainha Simples" {
			hem = svc
		}
	}
	if hem.ID == "" {
		t.Fatalf("seeded catalog missing Bainha Simples")
	}

	order, err := session.AddOrder(ctx, usecase.NewOrder{
		ClientID: ana.ID,
		Items:    []usecase.NewOrderItem{{ServiceID: hem.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	if !order.TotalAmount.Equal(dec("30.00")) {
		t.Fatalf("expected order total 30.00, got %s", order.TotalAmount)
	}

	entry, err := session.AddEntry(ctx, usecase.NewEntry{
		Kind:          entities.EntryKindReceivable,
		Description:   "Bainha Ana",
		Amount:        order.TotalAmount,
		DueAt:         time.Now().UTC().AddDate(0, 0, 7),
		LinkedOrderID: order.ID,
	})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}

	totals := session.PendingTotals()
	if !totals.Receivable.Equal(dec("30.00")) {
		t.Fatalf("expected pending receivable 30.00, got %s", totals.Receivable)
	}

	paid, movement, err := session.MarkEntryPaid(ctx, entry.ID, nil)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.Status != entities.EntryStatusPaid {
		t.Fatalf("entry not settled: %+v", paid)
	}
	if movement.Kind != entities.MovementKindInflow || movement.Category != entities.CashCategoryReceipt {
		t.Fatalf("unexpected movement: %+v", movement)
	}
	if balance := session.CashBalance(); !balance.Equal(dec("30.00")) {
		t.Fatalf("expected balance 30.00, got %s", balance)
	}
	if totals := session.PendingTotals(); !totals.Receivable.IsZero() {
		t.Fatalf("settled entry must leave the pending total, got %s", totals.Receivable)
	}

	// everything survives a reopen into a brand new session
	store2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	session2 := usecase.NewCRMSession(store2.Clients(), store2.Services(), store2.Orders(), store2.Entries(), store2.Movements(), nil, nil)
	if err := session2.Refresh(ctx); err != nil {
		t.Fatalf("refresh 2: %v", err)
	}
	if balance := session2.CashBalance(); !balance.Equal(dec("30.00")) {
		t.Fatalf("expected persisted balance 30.00, got %s", balance)
	}
	entries := session2.Entries()
	if len(entries) != 1 || entries[0].Status != entities.EntryStatusPaid {
		t.Fatalf("expected persisted paid entry, got %+v", entries)
	}
}

// A record can vanish from the store between refreshes (another process
// writing the same file). An update against it must surface as not-found, not
// as an applied write.
func TestSessionUpdateAfterExternalDelete(t *testing.T) {
	ctx := context.Background()

	store, err := Open(filepath.Join(t.TempDir(), "crm.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	session := usecase.NewCRMSession(store.Clients(), store.Services(), store.Orders(), store.Entries(), store.Movements(), nil, nil)
	if err := session.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	ana, err := session.AddClient(ctx, usecase.NewClient{Name: "Ana", Phone: "11 98888-0000"})
	if err != nil {
		t.Fatalf("add client: %v", err)
	}

	// removed out from under the session, no refresh in between
	if err := store.Clients().Delete(ctx, ana.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	name := "Ana Paula"
	if _, err := session.UpdateClient(ctx, ana.ID, usecase.ClientPatch{Name: &name}); !errors.Is(err, usecase.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
