package ports

import (
	"context"

	"github.com/patanova/groomer-api/internal/domains/scheduling/application/types"
	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
)

// Service defines the scheduling use cases exposed to adapters (inbound
// driving port).
type Service interface {
	Book(ctx context.Context, input types.BookInput) (*domain.Appointment, error)
	Reschedule(ctx context.Context, input types.RescheduleInput) (*domain.Appointment, error)
	Transition(ctx context.Context, input types.TransitionInput) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	DeleteByPet(ctx context.Context, petID string) (int64, error)
	List(ctx context.Context, input types.ListInput) (*types.Page, error)
}
