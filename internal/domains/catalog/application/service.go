package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/patanova/groomer-api/internal/domains/catalog/domain"
	"github.com/patanova/groomer-api/internal/domains/catalog/ports"
)

// Service orchestrates the catalog bounded context use cases.
type Service struct {
	services ports.ServiceRepository
	products ports.ProductRepository
	newID    func() string
}

// NewService wires the catalog service with its repositories.
func NewService(services ports.ServiceRepository, products ports.ProductRepository) *Service {
	return &Service{services: services, products: products, newID: uuid.NewString}
}

// CreateServiceInput carries the service registration form fields.
type CreateServiceInput struct {
	Name        string
	Category    string
	Description string
	Duration    string
	Price       float64
	ImageURL    string
}

// CreateService persists a new grooming service.
func (s *Service) CreateService(ctx context.Context, in CreateServiceInput) (*domain.Service, error) {
	service, err := domain.NewService(s.newID(), in.Name, in.Price)
	if err != nil {
		return nil, mapError(err)
	}
	service.Category = in.Category
	service.Description = in.Description
	service.Duration = in.Duration
	service.ImageURL = in.ImageURL
	saved, err := s.services.Save(ctx, service)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateServiceInput carries the service edit fields; nil pointers leave the
// current value untouched.
type UpdateServiceInput struct {
	Name        *string
	Category    *string
	Description *string
	Duration    *string
	Price       *float64
	ImageURL    *string
}

// UpdateService applies a partial edit to a grooming service.
func (s *Service) UpdateService(ctx context.Context, id string, in UpdateServiceInput) (*domain.Service, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := service.Rename(*in.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Price != nil {
		if err := service.SetPrice(*in.Price); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Duration != nil {
		service.Duration = *in.Duration
	}
	if in.ImageURL != nil {
		service.ImageURL = *in.ImageURL
	}
	saved, err := s.services.Save(ctx, service)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetService loads a single grooming service.
func (s *Service) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

// ListServices returns all grooming services ordered by name.
func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.services.List(ctx)
}

// DeleteService removes a grooming service. Appointments keep referencing
// services by id only at booking time, so no cascade runs here.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

// CreateProductInput carries the product registration form fields.
type CreateProductInput struct {
	Name        string
	Category    string
	Price       float64
	OldPrice    *float64
	DiscountTag string
	Rating      float64
	Reviews     int
	Tag         string
	ImageURL    string
}

// CreateProduct persists a new retail product.
func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	product, err := domain.NewProduct(s.newID(), in.Name, in.Price)
	if err != nil {
		return nil, mapError(err)
	}
	if err := product.SetRating(in.Rating); err != nil {
		return nil, mapError(err)
	}
	if err := product.SetTag(domain.ProductTag(in.Tag)); err != nil {
		return nil, mapError(err)
	}
	product.Category = in.Category
	product.OldPrice = in.OldPrice
	product.DiscountTag = in.DiscountTag
	product.Reviews = in.Reviews
	product.ImageURL = in.ImageURL
	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateProductInput carries the product edit fields; nil pointers leave the
// current value untouched.
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Price       *float64
	OldPrice    *float64
	DiscountTag *string
	Rating      *float64
	Reviews     *int
	Tag         *string
	ImageURL    *string
}

// UpdateProduct applies a partial edit to a retail product.
func (s *Service) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := product.Rename(*in.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Price != nil {
		if err := product.SetPrice(*in.Price); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Rating != nil {
		if err := product.SetRating(*in.Rating); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Tag != nil {
		if err := product.SetTag(domain.ProductTag(*in.Tag)); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.OldPrice != nil {
		product.OldPrice = in.OldPrice
	}
	if in.DiscountTag != nil {
		product.DiscountTag = *in.DiscountTag
	}
	if in.Reviews != nil {
		product.Reviews = *in.Reviews
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetProduct loads a single retail product.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListProducts returns all retail products ordered by name.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

// DeleteProduct removes a retail product.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
