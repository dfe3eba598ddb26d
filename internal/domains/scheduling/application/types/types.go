// Package types carries the scheduling use-case inputs and projections
// shared between the application service, its decorators, and transports.
package types

import "github.com/patanova/groomer-api/internal/domains/scheduling/domain"

// Tab enumerates the appointment book filter tabs. Closed merges Completed
// and Confirmed into one bucket, matching the console's tab layout.
type Tab string

const (
	TabAll     Tab = "all"
	TabPending Tab = "pending"
	TabClosed  Tab = "closed"
)

// BookInput carries a booking request. Professional is the session actor's
// display name; initials are derived when empty.
type BookInput struct {
	PetID                string
	ServiceID            string
	Date                 string
	TimeRange            string
	Professional         string
	ProfessionalInitials string
}

// RescheduleInput edits an existing booking's target, date and slot. Status
// and professional are untouched by edits.
type RescheduleInput struct {
	ID        string
	PetID     string
	ServiceID string
	Date      string
	TimeRange string
}

// TransitionInput moves an appointment along the status state machine.
type TransitionInput struct {
	ID     string
	Status string
}

// ListInput selects a page of the appointment book. Limit defaults to 20
// when zero; Search matches pet or client names case-insensitively.
type ListInput struct {
	Tab    Tab
	Search string
	Limit  int
	Offset int
}

// AppointmentView denormalizes an appointment with the pet, client and
// service names the dashboard renders.
type AppointmentView struct {
	Appointment *domain.Appointment
	PetName     string
	PetImageURL string
	ClientName  string
	ServiceName string
}

// Page is a slice of the filtered, ordered appointment book plus the total
// before slicing.
type Page struct {
	Items []*AppointmentView
	Total int
}
