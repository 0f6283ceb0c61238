package localstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"atelie_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestOpenSeedsCatalogOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	services, err := store.Services().List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(services) != 5 {
		t.Fatalf("expected 5 seeded services, got %d", len(services))
	}

	// name ascending
	for i := 1; i < len(services); i++ {
		if services[i-1].Name > services[i].Name {
			t.Fatalf("services out of order: %q before %q", services[i-1].Name, services[i].Name)
		}
	}

	found := false
	for _, svc := range services {
		if svc.Name == "Bainha Simples" {
			found = true
			if !svc.UnitPrice.Equal(dec("15.00")) {
				t.Fatalf("expected Bainha Simples at 15.00, got %s", svc.UnitPrice)
			}
		}
	}
	if !found {
		t.Fatalf("seed catalog missing Bainha Simples")
	}

	// a second open must load the seeded file, not reseed with new ids
	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	reloaded, err := again.Services().List(context.Background())
	if err != nil {
		t.Fatalf("list after reopen: %v", err)
	}
	if reloaded[0].ID != services[0].ID {
		t.Fatalf("reopen must preserve ids")
	}
}

func TestClientsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.json")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ana := entities.Client{ID: "c1", Name: "Ana", Phone: "11 98888-0000", RegisteredAt: time.Now().UTC()}
	if _, err := store.Clients().Create(ctx, ana); err != nil {
		t.Fatalf("create: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	clients, err := reopened.Clients().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Ana" {
		t.Fatalf("client did not survive reopen: %+v", clients)
	}
}

func TestClientUpdateMissingReturnsZero(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "crm.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	got, err := store.Clients().Update(context.Background(), entities.Client{ID: "missing", Name: "X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero client for missing id, got %+v", got)
	}
}

func TestEntrySetPaidIsConditional(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "crm.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	entry := entities.FinancialEntry{
		ID: "e1", Kind: entities.EntryKindReceivable, Description: "Ajuste",
		Amount: dec("30.00"), DueAt: time.Now().UTC(), Status: entities.EntryStatusPending,
	}
	if _, err := store.Entries().Create(ctx, entry); err != nil {
		t.Fatalf("create: %v", err)
	}

	paid, err := store.Entries().SetPaid(ctx, "e1", time.Now(), "mp-1")
	if err != nil {
		t.Fatalf("set paid: %v", err)
	}
	if paid.Status != entities.EntryStatusPaid || paid.PaidAt == nil || paid.ProviderPaymentID != "mp-1" {
		t.Fatalf("unexpected paid entry: %+v", paid)
	}

	// second flip fails the condition: zero entry, no error
	again, err := store.Entries().SetPaid(ctx, "e1", time.Now(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != "" {
		t.Fatalf("expected zero entry when not pending, got %+v", again)
	}

	// rollback restores pending and clears the settle fields
	pending, err := store.Entries().SetPending(ctx, "e1")
	if err != nil {
		t.Fatalf("set pending: %v", err)
	}
	if pending.Status != entities.EntryStatusPending || pending.PaidAt != nil || pending.ProviderPaymentID != "" {
		t.Fatalf("unexpected rollback result: %+v", pending)
	}
}

func TestMovementListOrdering(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "crm.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"m1", "m2", "m3"} {
		_, err := store.Movements().Create(ctx, entities.CashMovement{
			ID: id, Kind: entities.MovementKindInflow, Amount: dec("10.00"),
			Description: "x", Category: "Outros", OccurredAt: base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	movements, err := store.Movements().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if movements[0].ID != "m3" || movements[2].ID != "m1" {
		t.Fatalf("expected occurred-at descending, got %+v", movements)
	}
}
