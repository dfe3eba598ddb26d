package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
)

var _ ports.Repository = (*Repository)(nil)

type appointmentRecord struct {
	ID                   string    `gorm:"primaryKey;column:id;size:64"`
	PetID                string    `gorm:"column:pet_id;size:64;not null;index:idx_appointments_slot"`
	ServiceID            string    `gorm:"column:service_id;size:64;not null;index"`
	Date                 string    `gorm:"column:date;size:10;index:idx_appointments_slot"`
	TimeRange            string    `gorm:"column:time_range;size:16;index:idx_appointments_slot"`
	Professional         string    `gorm:"column:professional"`
	ProfessionalInitials string    `gorm:"column:professional_initials;size:8"`
	Status               string    `gorm:"column:status;size:16;index"`
	CreatedAt            time.Time `gorm:"column:created_at;index"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (appointmentRecord) TableName() string { return "appointments" }

// Repository persists appointments in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed appointment repository. Caller
// manages the DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts or updates an appointment keyed by id.
func (r *Repository) Save(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if err := appointment.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(appointment)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"pet_id", "service_id", "date", "time_range", "professional", "professional_initials", "status", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an appointment by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var record appointmentRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes an appointment row.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&appointmentRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// DeleteByPet removes every appointment referencing the pet. Zero affected
// rows is a success so cascade retries stay idempotent.
func (r *Repository) DeleteByPet(ctx context.Context, petID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&appointmentRecord{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// List returns all appointments ordered by date ascending, creation time
// breaking ties.
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	var records []appointmentRecord
	if err := r.db.WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	appointments := make([]*domain.Appointment, 0, len(records))
	for i := range records {
		appointments = append(appointments, records[i].toDomain())
	}
	return appointments, nil
}

// FindBySlot returns every appointment for the pet at (date, timeRange),
// regardless of status.
func (r *Repository) FindBySlot(ctx context.Context, petID, date, timeRange string) ([]*domain.Appointment, error) {
	var records []appointmentRecord
	if err := r.db.WithContext(ctx).
		Where("pet_id = ? AND date = ? AND time_range = ?", petID, date, timeRange).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	appointments := make([]*domain.Appointment, 0, len(records))
	for i := range records {
		appointments = append(appointments, records[i].toDomain())
	}
	return appointments, nil
}

func toRecord(appointment *domain.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:                   appointment.ID,
		PetID:                appointment.PetID,
		ServiceID:            appointment.ServiceID,
		Date:                 appointment.Date,
		TimeRange:            appointment.TimeRange,
		Professional:         appointment.Professional,
		ProfessionalInitials: appointment.ProfessionalInitials,
		Status:               string(appointment.Status),
		UpdatedAt:            time.Now(),
	}
}

func (record appointmentRecord) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:                   record.ID,
		PetID:                record.PetID,
		ServiceID:            record.ServiceID,
		Date:                 record.Date,
		TimeRange:            record.TimeRange,
		Professional:         record.Professional,
		ProfessionalInitials: record.ProfessionalInitials,
		Status:               domain.Status(record.Status),
	}
}
