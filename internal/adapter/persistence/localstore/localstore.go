// Package localstore is the offline record-store variant: all five
// collections live in one JSON snapshot file that is loaded at session start
// and rewritten after every mutation, mirroring the single local-profile blob
// of the original deployment. It implements the same repository interfaces as
// the DynamoDB store, so the session logic never knows which one is active.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"
	"time"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultFileMode = 0o644

// snapshot is the serialised representation of the whole store, keyed by
// collection name.
type snapshot struct {
	Clients       []entities.Client         `json:"clients"`
	Services      []entities.Service        `json:"services"`
	ServiceOrders []entities.ServiceOrder   `json:"service_orders"`
	Entries       []entities.FinancialEntry `json:"financial_entries"`
	Movements     []entities.CashMovement   `json:"cash_movements"`
}

// Store owns the snapshot file. Operations are synchronous and serialized by
// one mutex; there is no network I/O in this variant.
type Store struct {
	path string

	mu   sync.Mutex
	data snapshot
}

// Open loads the snapshot at path, creating and seeding it with the default
// service catalog when it does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &s.data); err != nil {
			return nil, err
		}
		return s, nil
	case errors.Is(err, os.ErrNotExist):
		s.data.Services = seedServices()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, err
	}
}

// save rewrites the whole blob. Callers hold s.mu.
func (s *Store) save() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, defaultFileMode)
}

// seedServices is the starter catalog the original app ships on first run.
func seedServices() []entities.Service {
	price := func(v string) decimal.Decimal {
		d, _ := decimal.NewFromString(v)
		return d
	}
	return []entities.Service{
		{ID: uuid.NewString(), Name: "Bainha Simples", Category: "Ajuste", UnitPrice: price("15.00"), Description: "Bainha simples em calça ou saia"},
		{ID: uuid.NewString(), Name: "Bainha Invisível", Category: "Ajuste", UnitPrice: price("25.00"), Description: "Bainha invisível em peças delicadas"},
		{ID: uuid.NewString(), Name: "Ajuste na Cintura", Category: "Ajuste", UnitPrice: price("30.00"), Description: "Apertar ou alargar cintura"},
		{ID: uuid.NewString(), Name: "Costura de Vestido", Category: "Confecção", UnitPrice: price("150.00"), Description: "Confecção completa de vestido"},
		{ID: uuid.NewString(), Name: "Aplicação de Zíper", Category: "Conserto", UnitPrice: price("20.00"), Description: "Troca ou aplicação de zíper"},
	}
}

// Repository views. Each implements one of the usecase ports over the shared
// snapshot.

func (s *Store) Clients() interfaces.IClientRepository         { return &clientStore{s} }
func (s *Store) Services() interfaces.IServiceRepository       { return &serviceStore{s} }
func (s *Store) Orders() interfaces.IServiceOrderRepository    { return &orderStore{s} }
func (s *Store) Entries() interfaces.IFinancialEntryRepository { return &entryStore{s} }
func (s *Store) Movements() interfaces.ICashMovementRepository { return &movementStore{s} }

type clientStore struct{ s *Store }

var _ interfaces.IClientRepository = (*clientStore)(nil)

func (r *clientStore) List(_ context.Context) ([]entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Client, len(r.s.data.Clients))
	copy(out, r.s.data.Clients)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *clientStore) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.Clients = append(r.s.data.Clients, c)
	if err := r.s.save(); err != nil {
		r.s.data.Clients = r.s.data.Clients[:len(r.s.data.Clients)-1]
		return entities.Client{}, err
	}
	return c, nil
}

func (r *clientStore) Update(_ context.Context, c entities.Client) (entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Clients {
		if r.s.data.Clients[i].ID == c.ID {
			prev := r.s.data.Clients[i]
			r.s.data.Clients[i] = c
			if err := r.s.save(); err != nil {
				r.s.data.Clients[i] = prev
				return entities.Client{}, err
			}
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (r *clientStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Clients {
		if r.s.data.Clients[i].ID == id {
			r.s.data.Clients = append(r.s.data.Clients[:i], r.s.data.Clients[i+1:]...)
			return r.s.save()
		}
	}
	return nil
}

type serviceStore struct{ s *Store }

var _ interfaces.IServiceRepository = (*serviceStore)(nil)

func (r *serviceStore) List(_ context.Context) ([]entities.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Service, len(r.s.data.Services))
	copy(out, r.s.data.Services)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *serviceStore) Create(_ context.Context, svc entities.Service) (entities.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.Services = append(r.s.data.Services, svc)
	if err := r.s.save(); err != nil {
		r.s.data.Services = r.s.data.Services[:len(r.s.data.Services)-1]
		return entities.Service{}, err
	}
	return svc, nil
}

func (r *serviceStore) Update(_ context.Context, svc entities.Service) (entities.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Services {
		if r.s.data.Services[i].ID == svc.ID {
			prev := r.s.data.Services[i]
			r.s.data.Services[i] = svc
			if err := r.s.save(); err != nil {
				r.s.data.Services[i] = prev
				return entities.Service{}, err
			}
			return svc, nil
		}
	}
	return entities.Service{}, nil
}

func (r *serviceStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Services {
		if r.s.data.Services[i].ID == id {
			r.s.data.Services = append(r.s.data.Services[:i], r.s.data.Services[i+1:]...)
			return r.s.save()
		}
	}
	return nil
}

type orderStore struct{ s *Store }

var _ interfaces.IServiceOrderRepository = (*orderStore)(nil)

func (r *orderStore) List(_ context.Context) ([]entities.ServiceOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.ServiceOrder, len(r.s.data.ServiceOrders))
	copy(out, r.s.data.ServiceOrders)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	return out, nil
}

func (r *orderStore) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.ServiceOrders = append(r.s.data.ServiceOrders, o)
	if err := r.s.save(); err != nil {
		r.s.data.ServiceOrders = r.s.data.ServiceOrders[:len(r.s.data.ServiceOrders)-1]
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *orderStore) Update(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.ServiceOrders {
		if r.s.data.ServiceOrders[i].ID == o.ID {
			prev := r.s.data.ServiceOrders[i]
			r.s.data.ServiceOrders[i] = o
			if err := r.s.save(); err != nil {
				r.s.data.ServiceOrders[i] = prev
				return entities.ServiceOrder{}, err
			}
			return o, nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *orderStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.ServiceOrders {
		if r.s.data.ServiceOrders[i].ID == id {
			r.s.data.ServiceOrders = append(r.s.data.ServiceOrders[:i], r.s.data.ServiceOrders[i+1:]...)
			return r.s.save()
		}
	}
	return nil
}

type entryStore struct{ s *Store }

var _ interfaces.IFinancialEntryRepository = (*entryStore)(nil)

func (r *entryStore) List(_ context.Context) ([]entities.FinancialEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.FinancialEntry, len(r.s.data.Entries))
	copy(out, r.s.data.Entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueAt.After(out[j].DueAt) })
	return out, nil
}

func (r *entryStore) Create(_ context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.Entries = append(r.s.data.Entries, e)
	if err := r.s.save(); err != nil {
		r.s.data.Entries = r.s.data.Entries[:len(r.s.data.Entries)-1]
		return entities.FinancialEntry{}, err
	}
	return e, nil
}

func (r *entryStore) Update(_ context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Entries {
		if r.s.data.Entries[i].ID == e.ID {
			prev := r.s.data.Entries[i]
			r.s.data.Entries[i] = e
			if err := r.s.save(); err != nil {
				r.s.data.Entries[i] = prev
				return entities.FinancialEntry{}, err
			}
			return e, nil
		}
	}
	return entities.FinancialEntry{}, nil
}

func (r *entryStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Entries {
		if r.s.data.Entries[i].ID == id {
			r.s.data.Entries = append(r.s.data.Entries[:i], r.s.data.Entries[i+1:]...)
			return r.s.save()
		}
	}
	return nil
}

func (r *entryStore) SetPaid(_ context.Context, id string, paidAt time.Time, providerPaymentID string) (entities.FinancialEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Entries {
		if r.s.data.Entries[i].ID != id {
			continue
		}
		if r.s.data.Entries[i].Status != entities.EntryStatusPending {
			return entities.FinancialEntry{}, nil
		}
		prev := r.s.data.Entries[i]
		e := prev
		e.Status = entities.EntryStatusPaid
		paidAtUTC := paidAt.UTC()
		e.PaidAt = &paidAtUTC
		if providerPaymentID != "" {
			e.ProviderPaymentID = providerPaymentID
		}
		r.s.data.Entries[i] = e
		if err := r.s.save(); err != nil {
			r.s.data.Entries[i] = prev
			return entities.FinancialEntry{}, err
		}
		return e, nil
	}
	return entities.FinancialEntry{}, nil
}

func (r *entryStore) SetPending(_ context.Context, id string) (entities.FinancialEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Entries {
		if r.s.data.Entries[i].ID != id {
			continue
		}
		prev := r.s.data.Entries[i]
		e := prev
		e.Status = entities.EntryStatusPending
		e.PaidAt = nil
		e.ProviderPaymentID = ""
		r.s.data.Entries[i] = e
		if err := r.s.save(); err != nil {
			r.s.data.Entries[i] = prev
			return entities.FinancialEntry{}, err
		}
		return e, nil
	}
	return entities.FinancialEntry{}, nil
}

type movementStore struct{ s *Store }

var _ interfaces.ICashMovementRepository = (*movementStore)(nil)

func (r *movementStore) List(_ context.Context) ([]entities.CashMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.CashMovement, len(r.s.data.Movements))
	copy(out, r.s.data.Movements)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (r *movementStore) Create(_ context.Context, m entities.CashMovement) (entities.CashMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.Movements = append(r.s.data.Movements, m)
	if err := r.s.save(); err != nil {
		r.s.data.Movements = r.s.data.Movements[:len(r.s.data.Movements)-1]
		return entities.CashMovement{}, err
	}
	return m, nil
}
