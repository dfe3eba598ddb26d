package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppointmentStartsPending(t *testing.T) {
	appointment, err := NewAppointment("a-1", "pet-1", "svc-1", "2024-05-01", "14:00 - 15:00")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, appointment.Status)
	assert.Equal(t, "pet-1", appointment.PetID)
	assert.Equal(t, "svc-1", appointment.ServiceID)
}

func TestNewAppointmentValidation(t *testing.T) {
	tests := []struct {
		name      string
		petID     string
		serviceID string
		date      string
		timeRange string
		wantErr   error
	}{
		{"missing pet", "", "svc-1", "2024-05-01", "14:00 - 15:00", ErrEmptyPetID},
		{"missing service", "pet-1", "  ", "2024-05-01", "14:00 - 15:00", ErrEmptyServiceID},
		{"bad date", "pet-1", "svc-1", "01/05/2024", "14:00 - 15:00", ErrInvalidDate},
		{"impossible date", "pet-1", "svc-1", "2024-02-31", "14:00 - 15:00", ErrInvalidDate},
		{"slot outside grid", "pet-1", "svc-1", "2024-05-01", "21:00 - 22:00", ErrInvalidSlot},
		{"malformed slot", "pet-1", "svc-1", "2024-05-01", "14h00", ErrInvalidSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAppointment("a-1", tt.petID, tt.serviceID, tt.date, tt.timeRange)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("  Confirmed ")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTransitionRejectsTerminalStates(t *testing.T) {
	appointment, err := NewAppointment("a-1", "pet-1", "svc-1", "2024-05-01", "14:00 - 15:00")
	require.NoError(t, err)

	require.NoError(t, appointment.Transition(StatusConfirmed))
	require.NoError(t, appointment.Transition(StatusCompleted))
	assert.True(t, appointment.Status.Terminal())

	err = appointment.Transition(StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCompleted, appointment.Status)
}

func TestTransitionSelfLoopRejected(t *testing.T) {
	appointment, err := NewAppointment("a-1", "pet-1", "svc-1", "2024-05-01", "14:00 - 15:00")
	require.NoError(t, err)
	assert.ErrorIs(t, appointment.Transition(StatusPending), ErrInvalidTransition)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	appointment, err := NewAppointment("a-1", "pet-1", "svc-1", "2024-05-01", "14:00 - 15:00")
	require.NoError(t, err)
	assert.ErrorIs(t, appointment.Transition(Status("archived")), ErrInvalidStatus)
}
