package ports

import (
	"context"
	"errors"

	"github.com/patanova/groomer-api/internal/domains/catalog/domain"
)

// ErrNotFound signals the referenced catalog entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// ServiceRepository persists grooming services.
type ServiceRepository interface {
	Save(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	// List returns all services ordered by name.
	List(ctx context.Context) ([]*domain.Service, error)
}

// ProductRepository persists retail products.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// List returns all products ordered by name.
	List(ctx context.Context) ([]*domain.Product, error)
}
