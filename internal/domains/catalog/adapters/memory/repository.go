package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/patanova/groomer-api/internal/domains/catalog/domain"
	"github.com/patanova/groomer-api/internal/domains/catalog/ports"
)

var (
	_ ports.ServiceRepository = (*ServiceRepository)(nil)
	_ ports.ProductRepository = (*ProductRepository)(nil)
)

// ServiceRepository is an in-memory ServiceRepository used for demos/tests.
type ServiceRepository struct {
	mu       sync.RWMutex
	services map[string]*domain.Service
}

// NewServiceRepository constructs an empty in-memory service store.
func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{services: map[string]*domain.Service{}}
}

// Save inserts or replaces a service.
func (r *ServiceRepository) Save(_ context.Context, service *domain.Service) (*domain.Service, error) {
	if err := service.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *service
	r.services[service.ID] = &clone
	copied := clone
	return &copied, nil
}

// GetByID fetches a service if present.
func (r *ServiceRepository) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	service, ok := r.services[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *service
	return &clone, nil
}

// Delete removes a service.
func (r *ServiceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

// List returns all services ordered by name.
func (r *ServiceRepository) List(_ context.Context) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	services := make([]*domain.Service, 0, len(r.services))
	for _, service := range r.services {
		clone := *service
		services = append(services, &clone)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

// ProductRepository is an in-memory ProductRepository used for demos/tests.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

// NewProductRepository constructs an empty in-memory product store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: map[string]*domain.Product{}}
}

// Save inserts or replaces a product.
func (r *ProductRepository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneProduct(product)
	r.products[product.ID] = clone
	return cloneProduct(clone), nil
}

// GetByID fetches a product if present.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneProduct(product), nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// List returns all products ordered by name.
func (r *ProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, cloneProduct(product))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func cloneProduct(product *domain.Product) *domain.Product {
	clone := *product
	if product.OldPrice != nil {
		oldPrice := *product.OldPrice
		clone.OldPrice = &oldPrice
	}
	return &clone
}
