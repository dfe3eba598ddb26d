package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
	"github.com/patanova/groomer-api/internal/platform/migrations"
)

// setupDB runs the shared schema against an in-memory sqlite database. The
// queries stay portable, so the fast tests cover the same SQL paths as the
// postgres integration tests.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newAppointment(t *testing.T, id, petID, date, timeRange string) *domain.Appointment {
	t.Helper()
	appointment, err := domain.NewAppointment(id, petID, "svc-1", date, timeRange)
	require.NoError(t, err)
	return appointment
}

func TestSaveAndGetByID(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	appointment := newAppointment(t, "a-1", "pet-1", "2024-05-01", "14:00 - 15:00")
	appointment.Professional = "Ana Silva"
	appointment.ProfessionalInitials = "AS"

	saved, err := repo.Save(ctx, appointment)
	require.NoError(t, err)
	assert.Equal(t, "a-1", saved.ID)
	assert.Equal(t, domain.StatusPending, saved.Status)

	fetched, err := repo.GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", fetched.Professional)
	assert.Equal(t, "14:00 - 15:00", fetched.TimeRange)
}

func TestSaveUpserts(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	appointment := newAppointment(t, "a-1", "pet-1", "2024-05-01", "14:00 - 15:00")
	_, err := repo.Save(ctx, appointment)
	require.NoError(t, err)

	require.NoError(t, appointment.Transition(domain.StatusConfirmed))
	updated, err := repo.Save(ctx, appointment)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewRepository(setupDB(t))
	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, newAppointment(t, "a-1", "pet-1", "2024-05-01", "14:00 - 15:00"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "a-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "a-1"), ports.ErrNotFound)
}

func TestDeleteByPet(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, newAppointment(t, "a-1", "pet-1", "2024-05-01", "07:00 - 08:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newAppointment(t, "a-2", "pet-1", "2024-05-02", "07:00 - 08:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newAppointment(t, "a-3", "pet-2", "2024-05-01", "07:00 - 08:00"))
	require.NoError(t, err)

	removed, err := repo.DeleteByPet(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = repo.DeleteByPet(ctx, "pet-1")
	require.NoError(t, err)
	assert.Zero(t, removed)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "a-3", remaining[0].ID)
}

func TestListOrdersByDate(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, newAppointment(t, "a-1", "pet-1", "2024-05-03", "07:00 - 08:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newAppointment(t, "a-2", "pet-1", "2024-05-01", "07:00 - 08:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newAppointment(t, "a-3", "pet-1", "2024-05-02", "07:00 - 08:00"))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a-2", all[0].ID)
	assert.Equal(t, "a-3", all[1].ID)
	assert.Equal(t, "a-1", all[2].ID)
}

func TestFindBySlot(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, newAppointment(t, "a-1", "pet-1", "2024-05-01", "14:00 - 15:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newAppointment(t, "a-2", "pet-1", "2024-05-01", "15:00 - 16:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newAppointment(t, "a-3", "pet-2", "2024-05-01", "14:00 - 15:00"))
	require.NoError(t, err)

	matches, err := repo.FindBySlot(ctx, "pet-1", "2024-05-01", "14:00 - 15:00")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "a-1", matches[0].ID)

	none, err := repo.FindBySlot(ctx, "pet-1", "2024-05-02", "14:00 - 15:00")
	require.NoError(t, err)
	assert.Empty(t, none)
}
