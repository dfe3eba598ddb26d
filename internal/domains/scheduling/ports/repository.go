package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
)

var (
	// ErrNotFound signals the referenced appointment, pet or service does
	// not exist.
	ErrNotFound = errors.New("appointment not found")
	// ErrConstraintViolation signals a booking references a missing pet or
	// service.
	ErrConstraintViolation = errors.New("booking references a missing record")
	// ErrSlotConflict signals the pet already holds a live booking for the
	// requested date and time range.
	ErrSlotConflict = errors.New("slot already booked for this pet")
)

// SlotConflictError names the colliding appointment so callers can surface
// it. It matches ErrSlotConflict under errors.Is.
type SlotConflictError struct {
	AppointmentID string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot already booked for this pet by appointment %s", e.AppointmentID)
}

func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}

// Repository persists appointments. List and FindBySlot return rows ordered
// by date ascending with stable ties.
type Repository interface {
	Save(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	// DeleteByPet removes every appointment referencing the pet and reports
	// how many rows went away. Zero rows is a success, which keeps cascade
	// retries idempotent.
	DeleteByPet(ctx context.Context, petID string) (int64, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	// FindBySlot returns all appointments for the pet at (date, timeRange)
	// regardless of status; the caller applies the cancellation policy.
	FindBySlot(ctx context.Context, petID, date, timeRange string) ([]*domain.Appointment, error)
}

// PetRef is the denormalized pet projection the scheduler needs: enough to
// render a booking row without reaching into the clients context.
type PetRef struct {
	ID         string
	Name       string
	ImageURL   string
	ClientID   string
	ClientName string
}

// ServiceRef is the denormalized service projection for booking rows.
type ServiceRef struct {
	ID   string
	Name string
}

// PetDirectory resolves pet references at booking and listing time.
type PetDirectory interface {
	Lookup(ctx context.Context, id string) (PetRef, error)
}

// ServiceDirectory resolves catalog service references.
type ServiceDirectory interface {
	Lookup(ctx context.Context, id string) (ServiceRef, error)
}
