package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"atelie_crm/internal/domain/aggregate"
	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ICRMSession is the single owner of the authenticated session's record
// collections. It mediates every create/update/delete, keeps an in-memory copy
// of all five collections and recomputes derived aggregates from that copy on
// every read, so callers never observe a stale total.
//
// A session is constructed on sign-in with the repositories of the configured
// record store and torn down on sign-out; there is no ambient global state.
type ICRMSession interface {
	Refresh(ctx context.Context) error

	Clients() []entities.Client
	AddClient(ctx context.Context, in NewClient) (entities.Client, error)
	UpdateClient(ctx context.Context, id string, patch ClientPatch) (entities.Client, error)
	RemoveClient(ctx context.Context, id string) error

	Services() []entities.Service
	AddService(ctx context.Context, in NewService) (entities.Service, error)
	UpdateService(ctx context.Context, id string, patch ServicePatch) (entities.Service, error)
	RemoveService(ctx context.Context, id string) error

	Orders() []entities.ServiceOrder
	AddOrder(ctx context.Context, in NewOrder) (entities.ServiceOrder, error)
	UpdateOrder(ctx context.Context, id string, patch OrderPatch) (entities.ServiceOrder, error)
	RemoveOrder(ctx context.Context, id string) error
	OrderStats() aggregate.OrderStats

	Entries() []entities.FinancialEntry
	AddEntry(ctx context.Context, in NewEntry) (entities.FinancialEntry, error)
	UpdateEntry(ctx context.Context, id string, patch EntryPatch) (entities.FinancialEntry, error)
	RemoveEntry(ctx context.Context, id string) error
	MarkEntryPaid(ctx context.Context, id string, gatewayPayload json.RawMessage) (entities.FinancialEntry, entities.CashMovement, error)
	OverdueEntries(now time.Time) []entities.FinancialEntry
	PendingTotals() aggregate.PendingTotals

	Movements() []entities.CashMovement
	AddMovement(ctx context.Context, in NewMovement) (entities.CashMovement, error)
	CashBalance() decimal.Decimal
	CashSummary(p aggregate.Period, now time.Time) (aggregate.CashSummary, error)
}

// ErrStoreUnavailable marks failures of the record store itself (network,
// credentials, disk) as opposed to domain conditions.
var ErrStoreUnavailable = errors.New("record store unavailable")

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

type CRMSession struct {
	clientRepo   interfaces.IClientRepository
	serviceRepo  interfaces.IServiceRepository
	orderRepo    interfaces.IServiceOrderRepository
	entryRepo    interfaces.IFinancialEntryRepository
	movementRepo interfaces.ICashMovementRepository
	gateway      interfaces.IPaymentGateway
	log          *logrus.Logger

	// mu serializes mutations and guards the collections below. version is
	// bumped on every applied mutation; Refresh snapshots it before fetching
	// and discards results that raced with a mutation, so a stale refresh
	// never clobbers fresher local state.
	mu          sync.Mutex
	version     uint64
	clientSet   []entities.Client
	serviceSet  []entities.Service
	orderSet    []entities.ServiceOrder
	entrySet    []entities.FinancialEntry
	movementSet []entities.CashMovement
}

var _ ICRMSession = (*CRMSession)(nil)

// NewCRMSession wires a session over the given record-store repositories.
// gateway may be nil; settling receivable entries then skips the provider
// call. Call Refresh once after construction to perform the initial load.
func NewCRMSession(
	clients interfaces.IClientRepository,
	services interfaces.IServiceRepository,
	orders interfaces.IServiceOrderRepository,
	entries interfaces.IFinancialEntryRepository,
	movements interfaces.ICashMovementRepository,
	gateway interfaces.IPaymentGateway,
	log *logrus.Logger,
) *CRMSession {
	if log == nil {
		log = logrus.New()
	}
	return &CRMSession{
		clientRepo:   clients,
		serviceRepo:  services,
		orderRepo:    orders,
		entryRepo:    entries,
		movementRepo: movements,
		gateway:      gateway,
		log:          log,
	}
}

// Refresh re-fetches all collections from the record store. The fetches run
// outside the lock, so prior in-memory data stays visible to readers while a
// refresh is in flight. If any mutation lands between snapshotting the version
// and finishing the fetches, the fetched snapshot is discarded; the next
// Refresh reconciles.
func (s *CRMSession) Refresh(ctx context.Context) error {
	s.mu.Lock()
	v := s.version
	s.mu.Unlock()

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return storeErr(err)
	}
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return storeErr(err)
	}
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return storeErr(err)
	}
	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return storeErr(err)
	}
	movements, err := s.movementRepo.List(ctx)
	if err != nil {
		return storeErr(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != v {
		s.log.WithFields(logrus.Fields{
			"module":   "usecase",
			"funcName": "Refresh",
		}).Debug("discarding stale refresh snapshot")
		return nil
	}
	s.clientSet = clients
	s.serviceSet = services
	s.orderSet = orders
	s.entrySet = entries
	s.movementSet = movements
	return nil
}

// mutate runs fn under the lock and bumps the version so that in-flight
// refreshes know their snapshot went stale.
func (s *CRMSession) mutate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.version++
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
