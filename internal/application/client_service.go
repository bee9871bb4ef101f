package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/domain"
	clientDomain "github.com/hotel-desk/service-booking/internal/domain/client"
)

// CreateClientRequest is the request DTO for registering a client.
type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// UpdateClientRequest is the request DTO for a partial client update.
// Omitted fields keep their stored values.
type UpdateClientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// ClientSortKey selects the name a client list is ordered by.
type ClientSortKey string

const (
	SortByFirstName ClientSortKey = "first_name"
	SortByLastName  ClientSortKey = "last_name"
)

// ClientService implements use cases for client management.
type ClientService struct {
	mu     sync.Mutex
	repo   clientDomain.Repository
	logger *zap.Logger
}

// NewClientService creates a new ClientService.
func NewClientService(repo clientDomain.Repository, logger *zap.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// AddClient validates and stores a new client under the next free id.
func (s *ClientService) AddClient(ctx context.Context, req CreateClientRequest) (clientDomain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return clientDomain.Client{}, fmt.Errorf("failed to load clients: %w", err)
	}

	c, err := clientDomain.NewClient(domain.NextID(clients), req.FirstName, req.LastName, req.Phone, req.Email)
	if err != nil {
		return clientDomain.Client{}, err
	}

	if err := save(ctx, append(clients, c)); err != nil {
		return clientDomain.Client{}, fmt.Errorf("failed to save client: %w", err)
	}

	s.logger.Info("client added", zap.Int64("client_id", c.ID))
	return c, nil
}

// DeleteClient removes a client. Bookings that reference it are left in place.
func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	kept, removed := domain.RemoveByID(clients, clientID)
	if !removed {
		return clientDomain.NotFound(clientID)
	}
	if err := save(ctx, kept); err != nil {
		return fmt.Errorf("failed to save clients: %w", err)
	}

	s.logger.Info("client deleted", zap.Int64("client_id", clientID))
	return nil
}

// UpdateClient applies a partial update. Names may be changed but not emptied.
func (s *ClientService) UpdateClient(ctx context.Context, clientID int64, req UpdateClientRequest) (clientDomain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return clientDomain.Client{}, fmt.Errorf("failed to load clients: %w", err)
	}

	current, ok := domain.FindByID(clients, clientID)
	if !ok {
		return clientDomain.Client{}, clientDomain.NotFound(clientID)
	}

	updated, err := current.Apply(clientDomain.Changes{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		return clientDomain.Client{}, err
	}

	domain.ReplaceByID(clients, updated)
	if err := save(ctx, clients); err != nil {
		return clientDomain.Client{}, fmt.Errorf("failed to save client: %w", err)
	}

	s.logger.Info("client updated", zap.Int64("client_id", clientID))
	return updated, nil
}

// GetClient returns a client by id.
func (s *ClientService) GetClient(ctx context.Context, clientID int64) (clientDomain.Client, error) {
	c, ok, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return clientDomain.Client{}, fmt.Errorf("failed to load client: %w", err)
	}
	if !ok {
		return clientDomain.Client{}, clientDomain.NotFound(clientID)
	}
	return c, nil
}

// ListClients returns every client in storage order.
func (s *ClientService) ListClients(ctx context.Context) ([]clientDomain.Client, error) {
	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// SortClientsByFirstName orders the stored clients by first name and persists that order.
func (s *ClientService) SortClientsByFirstName(ctx context.Context) ([]clientDomain.Client, error) {
	return s.SortClients(ctx, SortByFirstName)
}

// SortClientsByLastName orders the stored clients by last name and persists that order.
func (s *ClientService) SortClientsByLastName(ctx context.Context) ([]clientDomain.Client, error) {
	return s.SortClients(ctx, SortByLastName)
}

// SortClients reorders the stored collection by the given name, ignoring case.
// Clients with equal names keep their relative order.
func (s *ClientService) SortClients(ctx context.Context, by ClientSortKey) ([]clientDomain.Client, error) {
	var key func(clientDomain.Client) string
	switch by {
	case SortByFirstName:
		key = func(c clientDomain.Client) string { return strings.ToLower(c.FirstName) }
	case SortByLastName:
		key = func(c clientDomain.Client) string { return strings.ToLower(c.LastName) }
	default:
		return nil, domain.NewValidationError(fmt.Sprintf("unknown sort key %q", by))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clients, save, err := domain.LoadForUpdate(ctx, s.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return key(clients[i]) < key(clients[j])
	})

	if err := save(ctx, clients); err != nil {
		return nil, fmt.Errorf("failed to save sorted clients: %w", err)
	}
	return clients, nil
}

// SearchClients returns clients whose name, phone or email contains keyword,
// ignoring case. A blank keyword returns every client.
func (s *ClientService) SearchClients(ctx context.Context, keyword string) ([]clientDomain.Client, error) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(keyword))
	if key == "" {
		return clients, nil
	}

	result := make([]clientDomain.Client, 0)
	for _, c := range clients {
		if c.Matches(key) {
			result = append(result, c)
		}
	}
	return result, nil
}
