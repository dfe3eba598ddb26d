package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/patanova/groomer-api/internal/domains/clients/domain"
	"github.com/patanova/groomer-api/internal/domains/clients/ports"
)

var (
	_ ports.ClientRepository = (*ClientRepository)(nil)
	_ ports.PetRepository    = (*PetRepository)(nil)
)

// ClientRepository is an in-memory ClientRepository used for demos/tests.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
}

// NewClientRepository constructs an empty in-memory client store.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: map[string]*domain.Client{}}
}

// Save inserts or replaces a client.
func (r *ClientRepository) Save(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if err := client.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *client
	r.clients[client.ID] = &clone
	copied := clone
	return &copied, nil
}

// GetByID fetches a client if present.
func (r *ClientRepository) GetByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *client
	return &clone, nil
}

// Delete removes a client.
func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

// List returns all clients ordered by name.
func (r *ClientRepository) List(_ context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]*domain.Client, 0, len(r.clients))
	for _, client := range r.clients {
		clone := *client
		clients = append(clients, &clone)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

// PetRepository is an in-memory PetRepository used for demos/tests.
type PetRepository struct {
	mu   sync.RWMutex
	pets map[string]*domain.Pet
}

// NewPetRepository constructs an empty in-memory pet store.
func NewPetRepository() *PetRepository {
	return &PetRepository{pets: map[string]*domain.Pet{}}
}

// Save inserts or replaces a pet.
func (r *PetRepository) Save(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := pet.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *pet
	r.pets[pet.ID] = &clone
	copied := clone
	return &copied, nil
}

// GetByID fetches a pet if present.
func (r *PetRepository) GetByID(_ context.Context, id string) (*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *pet
	return &clone, nil
}

// Delete removes a pet.
func (r *PetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

// ListByClient returns the pets owned by a client, ordered by name.
func (r *PetRepository) ListByClient(_ context.Context, clientID string) ([]*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var pets []*domain.Pet
	for _, pet := range r.pets {
		if pet.ClientID == clientID {
			clone := *pet
			pets = append(pets, &clone)
		}
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].Name < pets[j].Name })
	return pets, nil
}

// SearchByName matches the term case-insensitively as a substring.
func (r *PetRepository) SearchByName(_ context.Context, term string) ([]*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(strings.TrimSpace(term))
	var pets []*domain.Pet
	for _, pet := range r.pets {
		if needle == "" || strings.Contains(strings.ToLower(pet.Name), needle) {
			clone := *pet
			pets = append(pets, &clone)
		}
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].Name < pets[j].Name })
	return pets, nil
}
