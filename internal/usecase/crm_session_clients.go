package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"atelie_crm/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrInvalidClientPhone = errors.New("invalid client phone")
)

// NewClient carries the caller-supplied fields of a client; id and
// registered-at are assigned here.
type NewClient struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// ClientPatch is a partial update: nil fields stay unchanged.
type ClientPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

func (s *CRMSession) Clients() []entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.clientSet)
}

func (s *CRMSession) AddClient(ctx context.Context, in NewClient) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return entities.Client{}, ErrInvalidClientPhone
	}

	c := entities.Client{
		ID:           uuid.NewString(),
		Name:         name,
		Phone:        phone,
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		RegisteredAt: time.Now().UTC(),
	}
	created, err := s.clientRepo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, storeErr(err)
	}

	s.mutate(func() {
		s.clientSet = append(s.clientSet, created)
		sortClients(s.clientSet)
	})
	return created, nil
}

func (s *CRMSession) UpdateClient(ctx context.Context, id string, patch ClientPatch) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	s.mu.Lock()
	idx := indexByID(s.clientSet, id, func(c entities.Client) string { return c.ID })
	if idx < 0 {
		s.mu.Unlock()
		return entities.Client{}, ErrClientNotFound
	}
	merged := s.clientSet[idx]
	s.mu.Unlock()

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Client{}, ErrInvalidClientName
		}
		merged.Name = name
	}
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if phone == "" {
			return entities.Client{}, ErrInvalidClientPhone
		}
		merged.Phone = phone
	}
	if patch.Email != nil {
		merged.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Address != nil {
		merged.Address = strings.TrimSpace(*patch.Address)
	}

	updated, err := s.clientRepo.Update(ctx, merged)
	if err != nil {
		return entities.Client{}, storeErr(err)
	}
	if updated.ID == "" {
		// The record vanished from the store since the last refresh.
		return entities.Client{}, ErrClientNotFound
	}

	s.mutate(func() {
		replaceByID(s.clientSet, updated, func(c entities.Client) string { return c.ID })
		sortClients(s.clientSet)
	})
	return updated, nil
}

// RemoveClient hard-deletes the client. Deletes do not cascade: orders keep
// their client_id and readers surface the reference as unknown.
func (s *CRMSession) RemoveClient(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}

	s.mu.Lock()
	idx := indexByID(s.clientSet, id, func(c entities.Client) string { return c.ID })
	s.mu.Unlock()
	if idx < 0 {
		return ErrClientNotFound
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}

	s.mutate(func() {
		s.clientSet = removeByID(s.clientSet, id, func(c entities.Client) string { return c.ID })
	})
	return nil
}

func sortClients(clients []entities.Client) {
	sort.SliceStable(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
}

func indexByID[T any](set []T, id string, idOf func(T) string) int {
	for i, v := range set {
		if idOf(v) == id {
			return i
		}
	}
	return -1
}

func replaceByID[T any](set []T, v T, idOf func(T) string) {
	if i := indexByID(set, idOf(v), idOf); i >= 0 {
		set[i] = v
	}
}

func removeByID[T any](set []T, id string, idOf func(T) string) []T {
	i := indexByID(set, id, idOf)
	if i < 0 {
		return set
	}
	return append(set[:i], set[i+1:]...)
}
