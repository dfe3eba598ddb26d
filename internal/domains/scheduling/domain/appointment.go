package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Status represents the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrEmptyPetID        = errors.New("appointment pet id is required")
	ErrEmptyServiceID    = errors.New("appointment service id is required")
	ErrInvalidStatus     = errors.New("appointment status is invalid")
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the edge s -> next is legal. Pending may
// move to any other state; Confirmed may complete or cancel; the terminal
// states allow nothing.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Appointment books a grooming service for a pet at a date/slot. The
// professional is free text stamped from the session, not a managed
// resource, and carries no scheduling authority.
type Appointment struct {
	ID                   string
	PetID                string
	ServiceID            string
	Date                 string
	TimeRange            string
	Professional         string
	ProfessionalInitials string
	Status               Status
}

// NewAppointment validates the invariants and builds a Pending appointment.
func NewAppointment(id, petID, serviceID, date, timeRange string) (*Appointment, error) {
	appointment := &Appointment{ID: id, Status: StatusPending}
	if err := appointment.SetPet(petID); err != nil {
		return nil, err
	}
	if err := appointment.SetService(serviceID); err != nil {
		return nil, err
	}
	if err := appointment.SetSlot(date, timeRange); err != nil {
		return nil, err
	}
	return appointment, nil
}

// SetPet binds the appointment to a pet.
func (a *Appointment) SetPet(petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrEmptyPetID
	}
	a.PetID = petID
	return nil
}

// SetService binds the appointment to a catalog service.
func (a *Appointment) SetService(serviceID string) error {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return ErrEmptyServiceID
	}
	a.ServiceID = serviceID
	return nil
}

// SetSlot validates and stores the date and hour slot.
func (a *Appointment) SetSlot(date, timeRange string) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if err := ValidateSlot(timeRange); err != nil {
		return err
	}
	a.Date = date
	a.TimeRange = timeRange
	return nil
}

// Transition moves the appointment along a legal state-machine edge.
// Completed and Cancelled are terminal; any move out of them fails.
func (a *Appointment) Transition(next Status) error {
	if _, err := ParseStatus(string(next)); err != nil {
		return err
	}
	if !a.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, a.Status, next)
	}
	a.Status = next
	return nil
}

// Validate enforces invariants on the aggregate.
func (a *Appointment) Validate() error {
	if strings.TrimSpace(a.PetID) == "" {
		return ErrEmptyPetID
	}
	if strings.TrimSpace(a.ServiceID) == "" {
		return ErrEmptyServiceID
	}
	if err := ValidateDate(a.Date); err != nil {
		return err
	}
	if err := ValidateSlot(a.TimeRange); err != nil {
		return err
	}
	if _, err := ParseStatus(string(a.Status)); err != nil {
		return err
	}
	return nil
}
