package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/patanova/groomer-api/internal/domains/scheduling/application/types"
	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
)

const defaultPageSize = 20

var _ ports.Service = (*Service)(nil)

// Service orchestrates the appointment book: slot conflict resolution, the
// status state machine, and the filtered dashboard listing.
type Service struct {
	repo     ports.Repository
	pets     ports.PetDirectory
	services ports.ServiceDirectory
	newID    func() string
}

// NewService wires the scheduling service with its dependencies.
func NewService(repo ports.Repository, pets ports.PetDirectory, services ports.ServiceDirectory) *Service {
	return &Service{repo: repo, pets: pets, services: services, newID: uuid.NewString}
}

// Book validates a booking request, resolves slot conflicts, and persists a
// Pending appointment stamped with the session professional.
func (s *Service) Book(ctx context.Context, input types.BookInput) (*domain.Appointment, error) {
	appointment, err := domain.NewAppointment(s.newID(), input.PetID, input.ServiceID, input.Date, input.TimeRange)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.resolveReferences(ctx, appointment.PetID, appointment.ServiceID); err != nil {
		return nil, err
	}
	if err := s.ensureSlotFree(ctx, appointment.PetID, appointment.Date, appointment.TimeRange, ""); err != nil {
		return nil, err
	}
	appointment.Professional = strings.TrimSpace(input.Professional)
	appointment.ProfessionalInitials = strings.TrimSpace(input.ProfessionalInitials)
	if appointment.ProfessionalInitials == "" {
		appointment.ProfessionalInitials = initials(appointment.Professional)
	}
	saved, err := s.repo.Save(ctx, appointment)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Reschedule edits the target pet/service and slot of an existing booking.
// The conflict check excludes the appointment's own prior slot, and neither
// status nor professional change.
func (s *Service) Reschedule(ctx context.Context, input types.RescheduleInput) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := appointment.SetPet(input.PetID); err != nil {
		return nil, mapError(err)
	}
	if err := appointment.SetService(input.ServiceID); err != nil {
		return nil, mapError(err)
	}
	if err := appointment.SetSlot(input.Date, input.TimeRange); err != nil {
		return nil, mapError(err)
	}
	if err := s.resolveReferences(ctx, appointment.PetID, appointment.ServiceID); err != nil {
		return nil, err
	}
	if err := s.ensureSlotFree(ctx, appointment.PetID, appointment.Date, appointment.TimeRange, appointment.ID); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, appointment)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Transition moves an appointment along the status state machine.
func (s *Service) Transition(ctx context.Context, input types.TransitionInput) (*domain.Appointment, error) {
	next, err := domain.ParseStatus(input.Status)
	if err != nil {
		return nil, mapError(err)
	}
	appointment, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := appointment.Transition(next); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, appointment)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetByID loads a single appointment.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes an appointment. Nothing cascades onto appointments.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteByPet purges every appointment referencing the pet. It backs the
// clients-context cascade and succeeds with zero rows when none exist.
func (s *Service) DeleteByPet(ctx context.Context, petID string) (int64, error) {
	return s.repo.DeleteByPet(ctx, petID)
}

// List returns a page of the appointment book, filtered by tab and search
// term, ordered by date ascending, denormalized with pet, client and
// service names.
func (s *Service) List(ctx context.Context, input types.ListInput) (*types.Page, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(input.Search))
	views := make([]*types.AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		if !matchesTab(appointment.Status, input.Tab) {
			continue
		}
		view, err := s.project(ctx, appointment)
		if err != nil {
			return nil, err
		}
		if view == nil {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(view.PetName), needle) &&
			!strings.Contains(strings.ToLower(view.ClientName), needle) {
			continue
		}
		views = append(views, view)
	}
	total := len(views)
	return &types.Page{Items: slicePage(views, input.Limit, input.Offset), Total: total}, nil
}

// project joins an appointment with its pet, owner and service names. Rows
// whose pet vanished mid-cascade are dropped rather than rendered dangling.
func (s *Service) project(ctx context.Context, appointment *domain.Appointment) (*types.AppointmentView, error) {
	pet, err := s.pets.Lookup(ctx, appointment.PetID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	view := &types.AppointmentView{
		Appointment: appointment,
		PetName:     pet.Name,
		PetImageURL: pet.ImageURL,
		ClientName:  pet.ClientName,
	}
	service, err := s.services.Lookup(ctx, appointment.ServiceID)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
	} else {
		view.ServiceName = service.Name
	}
	return view, nil
}

// resolveReferences verifies the booked pet and service exist. A missing
// reference is a constraint violation, never a dangling insert.
func (s *Service) resolveReferences(ctx context.Context, petID, serviceID string) error {
	if _, err := s.pets.Lookup(ctx, petID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("%w: pet %s", ports.ErrConstraintViolation, petID)
		}
		return err
	}
	if _, err := s.services.Lookup(ctx, serviceID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("%w: service %s", ports.ErrConstraintViolation, serviceID)
		}
		return err
	}
	return nil
}

// ensureSlotFree enforces the single live booking per (pet, date, slot)
// rule. Cancelled appointments do not hold their slot; excludeID skips the
// appointment's own prior booking on reschedule.
func (s *Service) ensureSlotFree(ctx context.Context, petID, date, timeRange, excludeID string) error {
	existing, err := s.repo.FindBySlot(ctx, petID, date, timeRange)
	if err != nil {
		return err
	}
	for _, appointment := range existing {
		if appointment.ID == excludeID {
			continue
		}
		if appointment.Status == domain.StatusCancelled {
			continue
		}
		return &ports.SlotConflictError{AppointmentID: appointment.ID}
	}
	return nil
}

func matchesTab(status domain.Status, tab types.Tab) bool {
	switch tab {
	case types.TabPending:
		return status == domain.StatusPending
	case types.TabClosed:
		return status == domain.StatusCompleted || status == domain.StatusConfirmed
	default:
		return true
	}
}

func slicePage(views []*types.AppointmentView, limit, offset int) []*types.AppointmentView {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(views) {
		return []*types.AppointmentView{}
	}
	end := offset + limit
	if end > len(views) {
		end = len(views)
	}
	return views[offset:end]
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		out = append(out, unicode.ToUpper(runes[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
