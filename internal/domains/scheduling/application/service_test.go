package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patanova/groomer-api/internal/domains/scheduling/adapters/memory"
	"github.com/patanova/groomer-api/internal/domains/scheduling/application/types"
	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
)

type fakePetDirectory struct {
	pets map[string]ports.PetRef
}

func (d *fakePetDirectory) Lookup(_ context.Context, id string) (ports.PetRef, error) {
	ref, ok := d.pets[id]
	if !ok {
		return ports.PetRef{}, ports.ErrNotFound
	}
	return ref, nil
}

type fakeServiceDirectory struct {
	services map[string]ports.ServiceRef
}

func (d *fakeServiceDirectory) Lookup(_ context.Context, id string) (ports.ServiceRef, error) {
	ref, ok := d.services[id]
	if !ok {
		return ports.ServiceRef{}, ports.ErrNotFound
	}
	return ref, nil
}

func newTestService(t *testing.T) (*Service, *fakePetDirectory) {
	t.Helper()
	pets := &fakePetDirectory{pets: map[string]ports.PetRef{
		"pet-1": {ID: "pet-1", Name: "Thor", ClientID: "client-1", ClientName: "Ana Silva"},
		"pet-2": {ID: "pet-2", Name: "Luna", ClientID: "client-2", ClientName: "Bruno Costa"},
	}}
	services := &fakeServiceDirectory{services: map[string]ports.ServiceRef{
		"svc-1": {ID: "svc-1", Name: "Banho"},
		"svc-2": {ID: "svc-2", Name: "Tosa"},
	}}
	service := NewService(memory.NewRepository(), pets, services)
	var seq int
	service.newID = func() string {
		seq++
		return fmt.Sprintf("a-%d", seq)
	}
	return service, pets
}

func book(t *testing.T, s *Service, petID, date, timeRange string) *domain.Appointment {
	t.Helper()
	appointment, err := s.Book(context.Background(), types.BookInput{
		PetID:        petID,
		ServiceID:    "svc-1",
		Date:         date,
		TimeRange:    timeRange,
		Professional: "Ana Silva",
	})
	require.NoError(t, err)
	return appointment
}

func TestBook(t *testing.T) {
	service, _ := newTestService(t)

	appointment := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	assert.Equal(t, domain.StatusPending, appointment.Status)
	assert.Equal(t, "Ana Silva", appointment.Professional)
	assert.Equal(t, "AS", appointment.ProfessionalInitials)
}

func TestBookKeepsExplicitInitials(t *testing.T) {
	service, _ := newTestService(t)

	appointment, err := service.Book(context.Background(), types.BookInput{
		PetID:                "pet-1",
		ServiceID:            "svc-1",
		Date:                 "2024-05-01",
		TimeRange:            "14:00 - 15:00",
		Professional:         "Ana Silva",
		ProfessionalInitials: "DR",
	})
	require.NoError(t, err)
	assert.Equal(t, "DR", appointment.ProfessionalInitials)
}

func TestBookRejectsMissingReferences(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Book(ctx, types.BookInput{PetID: "ghost", ServiceID: "svc-1", Date: "2024-05-01", TimeRange: "14:00 - 15:00"})
	assert.ErrorIs(t, err, ports.ErrConstraintViolation)

	_, err = service.Book(ctx, types.BookInput{PetID: "pet-1", ServiceID: "ghost", Date: "2024-05-01", TimeRange: "14:00 - 15:00"})
	assert.ErrorIs(t, err, ports.ErrConstraintViolation)
}

func TestBookRejectsInvalidInput(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Book(ctx, types.BookInput{PetID: "pet-1", ServiceID: "svc-1", Date: "01/05/2024", TimeRange: "14:00 - 15:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Book(ctx, types.BookInput{PetID: "pet-1", ServiceID: "svc-1", Date: "2024-05-01", TimeRange: "22:00 - 23:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookRejectsSlotConflict(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")

	_, err := service.Book(ctx, types.BookInput{PetID: "pet-1", ServiceID: "svc-2", Date: "2024-05-01", TimeRange: "14:00 - 15:00"})
	require.ErrorIs(t, err, ports.ErrSlotConflict)
	var conflict *ports.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.AppointmentID)
}

func TestBookAllowsSameSlotDifferentPet(t *testing.T) {
	service, _ := newTestService(t)

	book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	book(t, service, "pet-2", "2024-05-01", "14:00 - 15:00")
}

func TestCancelledBookingFreesSlot(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	_, err := service.Transition(ctx, types.TransitionInput{ID: first.ID, Status: "cancelled"})
	require.NoError(t, err)

	book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
}

func TestReschedule(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	appointment := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	_, err := service.Transition(ctx, types.TransitionInput{ID: appointment.ID, Status: "confirmed"})
	require.NoError(t, err)

	moved, err := service.Reschedule(ctx, types.RescheduleInput{
		ID:        appointment.ID,
		PetID:     "pet-1",
		ServiceID: "svc-2",
		Date:      "2024-05-02",
		TimeRange: "09:00 - 10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", moved.Date)
	assert.Equal(t, "svc-2", moved.ServiceID)
	assert.Equal(t, domain.StatusConfirmed, moved.Status)
	assert.Equal(t, "Ana Silva", moved.Professional)
}

func TestRescheduleExcludesOwnSlot(t *testing.T) {
	service, _ := newTestService(t)

	appointment := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")

	// Same slot, only the service changes; the prior booking must not
	// collide with itself.
	_, err := service.Reschedule(context.Background(), types.RescheduleInput{
		ID:        appointment.ID,
		PetID:     "pet-1",
		ServiceID: "svc-2",
		Date:      "2024-05-01",
		TimeRange: "14:00 - 15:00",
	})
	assert.NoError(t, err)
}

func TestRescheduleIntoTakenSlotConflicts(t *testing.T) {
	service, _ := newTestService(t)

	first := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	second := book(t, service, "pet-1", "2024-05-01", "15:00 - 16:00")

	_, err := service.Reschedule(context.Background(), types.RescheduleInput{
		ID:        second.ID,
		PetID:     "pet-1",
		ServiceID: "svc-1",
		Date:      "2024-05-01",
		TimeRange: "14:00 - 15:00",
	})
	require.ErrorIs(t, err, ports.ErrSlotConflict)
	var conflict *ports.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.AppointmentID)
}

func TestRescheduleMissingAppointment(t *testing.T) {
	service, _ := newTestService(t)
	_, err := service.Reschedule(context.Background(), types.RescheduleInput{
		ID:        "ghost",
		PetID:     "pet-1",
		ServiceID: "svc-1",
		Date:      "2024-05-01",
		TimeRange: "14:00 - 15:00",
	})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestTransitionLifecycle(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	appointment := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")

	confirmed, err := service.Transition(ctx, types.TransitionInput{ID: appointment.ID, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)

	completed, err := service.Transition(ctx, types.TransitionInput{ID: appointment.ID, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)

	_, err = service.Transition(ctx, types.TransitionInput{ID: appointment.ID, Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	service, _ := newTestService(t)

	appointment := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	_, err := service.Transition(context.Background(), types.TransitionInput{ID: appointment.ID, Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransitionMissingAppointment(t *testing.T) {
	service, _ := newTestService(t)
	_, err := service.Transition(context.Background(), types.TransitionInput{ID: "ghost", Status: "confirmed"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListOrdersByDate(t *testing.T) {
	service, _ := newTestService(t)

	late := book(t, service, "pet-1", "2024-05-03", "14:00 - 15:00")
	early := book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	middle := book(t, service, "pet-2", "2024-05-02", "14:00 - 15:00")

	page, err := service.List(context.Background(), types.ListInput{Tab: types.TabAll})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, early.ID, page.Items[0].Appointment.ID)
	assert.Equal(t, middle.ID, page.Items[1].Appointment.ID)
	assert.Equal(t, late.ID, page.Items[2].Appointment.ID)
}

func TestListSameDateKeepsBookingOrder(t *testing.T) {
	service, _ := newTestService(t)

	first := book(t, service, "pet-1", "2024-05-01", "09:00 - 10:00")
	second := book(t, service, "pet-2", "2024-05-01", "07:00 - 08:00")

	page, err := service.List(context.Background(), types.ListInput{Tab: types.TabAll})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, first.ID, page.Items[0].Appointment.ID)
	assert.Equal(t, second.ID, page.Items[1].Appointment.ID)
}

func TestListTabs(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	pending := book(t, service, "pet-1", "2024-05-01", "07:00 - 08:00")
	confirmed := book(t, service, "pet-1", "2024-05-01", "08:00 - 09:00")
	completed := book(t, service, "pet-1", "2024-05-01", "09:00 - 10:00")
	cancelled := book(t, service, "pet-1", "2024-05-01", "10:00 - 11:00")

	_, err := service.Transition(ctx, types.TransitionInput{ID: confirmed.ID, Status: "confirmed"})
	require.NoError(t, err)
	_, err = service.Transition(ctx, types.TransitionInput{ID: completed.ID, Status: "completed"})
	require.NoError(t, err)
	_, err = service.Transition(ctx, types.TransitionInput{ID: cancelled.ID, Status: "cancelled"})
	require.NoError(t, err)

	all, err := service.List(ctx, types.ListInput{Tab: types.TabAll})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)

	pendingPage, err := service.List(ctx, types.ListInput{Tab: types.TabPending})
	require.NoError(t, err)
	require.Len(t, pendingPage.Items, 1)
	assert.Equal(t, pending.ID, pendingPage.Items[0].Appointment.ID)

	// Closed merges Completed and Confirmed; Cancelled shows only on All.
	closed, err := service.List(ctx, types.ListInput{Tab: types.TabClosed})
	require.NoError(t, err)
	require.Len(t, closed.Items, 2)
	ids := []string{closed.Items[0].Appointment.ID, closed.Items[1].Appointment.ID}
	assert.Contains(t, ids, confirmed.ID)
	assert.Contains(t, ids, completed.ID)
}

func TestListSearchMatchesPetAndClientNames(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	thor := book(t, service, "pet-1", "2024-05-01", "07:00 - 08:00")
	luna := book(t, service, "pet-2", "2024-05-01", "08:00 - 09:00")

	byPet, err := service.List(ctx, types.ListInput{Tab: types.TabAll, Search: "tho"})
	require.NoError(t, err)
	require.Len(t, byPet.Items, 1)
	assert.Equal(t, thor.ID, byPet.Items[0].Appointment.ID)

	byClient, err := service.List(ctx, types.ListInput{Tab: types.TabAll, Search: "BRUNO"})
	require.NoError(t, err)
	require.Len(t, byClient.Items, 1)
	assert.Equal(t, luna.ID, byClient.Items[0].Appointment.ID)

	none, err := service.List(ctx, types.ListInput{Tab: types.TabAll, Search: "rex"})
	require.NoError(t, err)
	assert.Empty(t, none.Items)
	assert.Zero(t, none.Total)
}

func TestListDenormalizesNames(t *testing.T) {
	service, _ := newTestService(t)

	book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")

	page, err := service.List(context.Background(), types.ListInput{Tab: types.TabAll})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	view := page.Items[0]
	assert.Equal(t, "Thor", view.PetName)
	assert.Equal(t, "Ana Silva", view.ClientName)
	assert.Equal(t, "Banho", view.ServiceName)
}

func TestListPagination(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	slots := domain.Slots()
	for i := 0; i < 5; i++ {
		book(t, service, "pet-1", "2024-05-01", slots[i])
	}

	page, err := service.List(ctx, types.ListInput{Tab: types.TabAll, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Total)

	tail, err := service.List(ctx, types.ListInput{Tab: types.TabAll, Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, tail.Items, 1)

	beyond, err := service.List(ctx, types.ListInput{Tab: types.TabAll, Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 5, beyond.Total)
}

func TestListDropsRowsForVanishedPets(t *testing.T) {
	service, pets := newTestService(t)

	book(t, service, "pet-1", "2024-05-01", "14:00 - 15:00")
	book(t, service, "pet-2", "2024-05-01", "15:00 - 16:00")

	delete(pets.pets, "pet-1")

	page, err := service.List(context.Background(), types.ListInput{Tab: types.TabAll})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Luna", page.Items[0].PetName)
}

func TestDeleteByPetPurges(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	book(t, service, "pet-1", "2024-05-01", "07:00 - 08:00")
	book(t, service, "pet-1", "2024-05-02", "07:00 - 08:00")
	keep := book(t, service, "pet-2", "2024-05-01", "07:00 - 08:00")

	removed, err := service.DeleteByPet(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	// Purging again is a no-op success.
	removed, err = service.DeleteByPet(ctx, "pet-1")
	require.NoError(t, err)
	assert.Zero(t, removed)

	page, err := service.List(ctx, types.ListInput{Tab: types.TabAll})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, keep.ID, page.Items[0].Appointment.ID)
}

func TestDeleteMissingAppointment(t *testing.T) {
	service, _ := newTestService(t)
	assert.ErrorIs(t, service.Delete(context.Background(), "ghost"), ports.ErrNotFound)
}
