package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/patanova/groomer-api/internal/domains/clients/domain"
	"github.com/patanova/groomer-api/internal/domains/clients/ports"
)

var (
	_ ports.ClientRepository = (*ClientRepository)(nil)
	_ ports.PetRepository    = (*PetRepository)(nil)
)

type clientRecord struct {
	ID       string `gorm:"primaryKey;column:id;size:64"`
	Name     string `gorm:"column:name;index"`
	Initials string `gorm:"column:initials;size:8"`
	Phone    string `gorm:"column:phone;size:32"`
	Email    string `gorm:"column:email"`
	TaxID    string `gorm:"column:tax_id;size:32"`
	ImageURL string `gorm:"column:image_url"`
}

func (clientRecord) TableName() string { return "clients" }

type petRecord struct {
	ID       string `gorm:"primaryKey;column:id;size:64"`
	ClientID string `gorm:"column:client_id;size:64;not null;index"`
	Name     string `gorm:"column:name;index"`
	Breed    string `gorm:"column:breed"`
	Age      string `gorm:"column:age;size:32"`
	Weight   string `gorm:"column:weight;size:32"`
	Gender   string `gorm:"column:gender;size:16"`
	ImageURL string `gorm:"column:image_url"`
}

func (petRecord) TableName() string { return "pets" }

// ClientRepository persists clients in PostgreSQL using GORM.
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository wires a PostgreSQL-backed client repository. Caller
// manages the DB lifecycle.
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Save inserts or updates a client keyed by id.
func (r *ClientRepository) Save(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := client.Validate(); err != nil {
		return nil, err
	}
	record := clientToRecord(client)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "initials", "phone", "email", "tax_id", "image_url"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a client by id.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var record clientRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a client row.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&clientRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all clients ordered by name.
func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	var records []clientRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	clients := make([]*domain.Client, 0, len(records))
	for i := range records {
		clients = append(clients, records[i].toDomain())
	}
	return clients, nil
}

// PetRepository persists pets in PostgreSQL using GORM.
type PetRepository struct {
	db *gorm.DB
}

// NewPetRepository wires a PostgreSQL-backed pet repository.
func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

// Save inserts or updates a pet keyed by id.
func (r *PetRepository) Save(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := pet.Validate(); err != nil {
		return nil, err
	}
	record := petToRecord(pet)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"client_id", "name", "breed", "age", "weight", "gender", "image_url"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a pet by id.
func (r *PetRepository) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	var record petRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a pet row.
func (r *PetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&petRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// ListByClient returns the pets owned by a client, ordered by name.
func (r *PetRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Pet, error) {
	var records []petRecord
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	pets := make([]*domain.Pet, 0, len(records))
	for i := range records {
		pets = append(pets, records[i].toDomain())
	}
	return pets, nil
}

// SearchByName matches the term case-insensitively as a substring. LOWER +
// LIKE keeps the query portable across PostgreSQL and the sqlite test DB.
func (r *PetRepository) SearchByName(ctx context.Context, term string) ([]*domain.Pet, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	var records []petRecord
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	pets := make([]*domain.Pet, 0, len(records))
	for i := range records {
		pets = append(pets, records[i].toDomain())
	}
	return pets, nil
}

func clientToRecord(client *domain.Client) clientRecord {
	return clientRecord{
		ID:       client.ID,
		Name:     client.Name,
		Initials: client.Initials,
		Phone:    client.Phone,
		Email:    client.Email,
		TaxID:    client.TaxID,
		ImageURL: client.ImageURL,
	}
}

func (record clientRecord) toDomain() *domain.Client {
	return &domain.Client{
		ID:       record.ID,
		Name:     record.Name,
		Initials: record.Initials,
		Phone:    record.Phone,
		Email:    record.Email,
		TaxID:    record.TaxID,
		ImageURL: record.ImageURL,
	}
}

func petToRecord(pet *domain.Pet) petRecord {
	return petRecord{
		ID:       pet.ID,
		ClientID: pet.ClientID,
		Name:     pet.Name,
		Breed:    pet.Breed,
		Age:      pet.Age,
		Weight:   pet.Weight,
		Gender:   string(pet.Gender),
		ImageURL: pet.ImageURL,
	}
}

func (record petRecord) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:       record.ID,
		ClientID: record.ClientID,
		Name:     record.Name,
		Breed:    record.Breed,
		Age:      record.Age,
		Weight:   record.Weight,
		Gender:   domain.Gender(record.Gender),
		ImageURL: record.ImageURL,
	}
}
