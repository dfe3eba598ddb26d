package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/patanova/groomer-api/internal/domains/catalog/domain"
	"github.com/patanova/groomer-api/internal/domains/catalog/ports"
)

var (
	_ ports.ServiceRepository = (*ServiceRepository)(nil)
	_ ports.ProductRepository = (*ProductRepository)(nil)
)

type serviceRecord struct {
	ID          string  `gorm:"primaryKey;column:id;size:64"`
	Name        string  `gorm:"column:name;index"`
	Category    string  `gorm:"column:category"`
	Description string  `gorm:"column:description"`
	Duration    string  `gorm:"column:duration;size:32"`
	Price       float64 `gorm:"column:price"`
	ImageURL    string  `gorm:"column:image_url"`
}

func (serviceRecord) TableName() string { return "services" }

type productRecord struct {
	ID          string   `gorm:"primaryKey;column:id;size:64"`
	Name        string   `gorm:"column:name;index"`
	Category    string   `gorm:"column:category"`
	Price       float64  `gorm:"column:price"`
	OldPrice    *float64 `gorm:"column:old_price"`
	DiscountTag string   `gorm:"column:discount_tag;size:32"`
	Rating      float64  `gorm:"column:rating"`
	Reviews     int      `gorm:"column:reviews"`
	Tag         string   `gorm:"column:tag;size:32"`
	ImageURL    string   `gorm:"column:image_url"`
}

func (productRecord) TableName() string { return "products" }

// ServiceRepository persists grooming services in PostgreSQL using GORM.
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository wires a PostgreSQL-backed service repository.
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Save inserts or updates a service keyed by id.
func (r *ServiceRepository) Save(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	if err := service.Validate(); err != nil {
		return nil, err
	}
	record := serviceToRecord(service)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "description", "duration", "price", "image_url"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a service by id.
func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	var record serviceRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a service row.
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&serviceRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all services ordered by name.
func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	var records []serviceRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	services := make([]*domain.Service, 0, len(records))
	for i := range records {
		services = append(services, records[i].toDomain())
	}
	return services, nil
}

// ProductRepository persists retail products in PostgreSQL using GORM.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository wires a PostgreSQL-backed product repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Save inserts or updates a product keyed by id.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	record := productToRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "price", "old_price", "discount_tag", "rating", "reviews", "tag", "image_url"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a product row.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all products ordered by name.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func serviceToRecord(service *domain.Service) serviceRecord {
	return serviceRecord{
		ID:          service.ID,
		Name:        service.Name,
		Category:    service.Category,
		Description: service.Description,
		Duration:    service.Duration,
		Price:       service.Price,
		ImageURL:    service.ImageURL,
	}
}

func (record serviceRecord) toDomain() *domain.Service {
	return &domain.Service{
		ID:          record.ID,
		Name:        record.Name,
		Category:    record.Category,
		Description: record.Description,
		Duration:    record.Duration,
		Price:       record.Price,
		ImageURL:    record.ImageURL,
	}
}

func productToRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		OldPrice:    product.OldPrice,
		DiscountTag: product.DiscountTag,
		Rating:      product.Rating,
		Reviews:     product.Reviews,
		Tag:         string(product.Tag),
		ImageURL:    product.ImageURL,
	}
}

func (record productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:          record.ID,
		Name:        record.Name,
		Category:    record.Category,
		Price:       record.Price,
		OldPrice:    record.OldPrice,
		DiscountTag: record.DiscountTag,
		Rating:      record.Rating,
		Reviews:     record.Reviews,
		Tag:         domain.ProductTag(record.Tag),
		ImageURL:    record.ImageURL,
	}
}
