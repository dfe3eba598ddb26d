package ports

import (
	"context"
	"errors"

	"github.com/patanova/groomer-api/internal/domains/clients/domain"
)

var (
	// ErrNotFound signals the referenced client or pet does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation signals a write would leave a dangling reference.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ClientRepository persists client rows. Every read is a live query; the
// store keeps no cache.
type ClientRepository interface {
	Save(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	// List returns all clients ordered by name.
	List(ctx context.Context) ([]*domain.Client, error)
}

// PetRepository persists pet rows.
type PetRepository interface {
	Save(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string) ([]*domain.Pet, error)
	// SearchByName matches the term case-insensitively as a substring.
	SearchByName(ctx context.Context, term string) ([]*domain.Pet, error)
}

// AppointmentPurger removes every appointment referencing a pet. It is the
// outbound edge of the cascade into the scheduling context and must be
// idempotent: purging a pet with no appointments succeeds with zero removed.
type AppointmentPurger interface {
	DeleteByPet(ctx context.Context, petID string) (int64, error)
}
