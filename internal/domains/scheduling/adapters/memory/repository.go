package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory appointment store used for demos/tests.
type Repository struct {
	mu           sync.RWMutex
	appointments map[string]*storedAppointment
	seq          uint64
}

// storedAppointment tracks insertion order so same-date rows list stably.
type storedAppointment struct {
	appointment *domain.Appointment
	seq         uint64
}

// NewRepository constructs an empty in-memory appointment store.
func NewRepository() *Repository {
	return &Repository{appointments: map[string]*storedAppointment{}}
}

// Save inserts or replaces an appointment.
func (r *Repository) Save(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if err := appointment.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	seq := r.seq
	if entry, ok := r.appointments[appointment.ID]; ok {
		seq = entry.seq
	} else {
		r.seq++
	}
	clone := *appointment
	r.appointments[appointment.ID] = &storedAppointment{appointment: &clone, seq: seq}
	copied := clone
	return &copied, nil
}

// GetByID fetches an appointment if present.
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.appointments[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *entry.appointment
	return &clone, nil
}

// Delete removes an appointment.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

// DeleteByPet removes every appointment referencing the pet. Zero removals
// is a success.
func (r *Repository) DeleteByPet(_ context.Context, petID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, entry := range r.appointments {
		if entry.appointment.PetID == petID {
			delete(r.appointments, id)
			removed++
		}
	}
	return removed, nil
}

// List returns all appointments ordered by date ascending, insertion order
// breaking ties.
func (r *Repository) List(_ context.Context) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*storedAppointment, 0, len(r.appointments))
	for _, entry := range r.appointments {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].appointment.Date != entries[j].appointment.Date {
			return entries[i].appointment.Date < entries[j].appointment.Date
		}
		return entries[i].seq < entries[j].seq
	})
	appointments := make([]*domain.Appointment, 0, len(entries))
	for _, entry := range entries {
		clone := *entry.appointment
		appointments = append(appointments, &clone)
	}
	return appointments, nil
}

// FindBySlot returns every appointment for the pet at (date, timeRange),
// regardless of status.
func (r *Repository) FindBySlot(_ context.Context, petID, date, timeRange string) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []*domain.Appointment
	for _, entry := range r.appointments {
		a := entry.appointment
		if a.PetID == petID && a.Date == date && a.TimeRange == timeRange {
			clone := *a
			matches = append(matches, &clone)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}
