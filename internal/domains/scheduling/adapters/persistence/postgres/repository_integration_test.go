//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
	"github.com/patanova/groomer-api/internal/platform/migrations"
)

func setupSchedulingPostgresContainer(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("groomer_test"),
		tcpostgres.WithUsername("groomer"),
		tcpostgres.WithPassword("groomer"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})
	return db
}

func mustAppointment(t *testing.T, id, petID, date, timeRange string) *domain.Appointment {
	t.Helper()
	appointment, err := domain.NewAppointment(id, petID, "svc-1", date, timeRange)
	require.NoError(t, err)
	return appointment
}

func TestIntegrationSaveRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	repo := NewRepository(setupSchedulingPostgresContainer(t))
	ctx := context.Background()

	appointment := mustAppointment(t, "a-1", "pet-1", "2024-05-01", "14:00 - 15:00")
	appointment.Professional = "Ana Silva"
	appointment.ProfessionalInitials = "AS"

	saved, err := repo.Save(ctx, appointment)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, saved.Status)

	require.NoError(t, appointment.Transition(domain.StatusConfirmed))
	updated, err := repo.Save(ctx, appointment)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	fetched, err := repo.GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", fetched.Professional)
	assert.Equal(t, domain.StatusConfirmed, fetched.Status)
}

func TestIntegrationSlotAndPurgeQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	repo := NewRepository(setupSchedulingPostgresContainer(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, mustAppointment(t, "a-1", "pet-1", "2024-05-02", "07:00 - 08:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, mustAppointment(t, "a-2", "pet-1", "2024-05-01", "14:00 - 15:00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, mustAppointment(t, "a-3", "pet-2", "2024-05-01", "14:00 - 15:00"))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-05-01", all[0].Date)

	matches, err := repo.FindBySlot(ctx, "pet-1", "2024-05-01", "14:00 - 15:00")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "a-2", matches[0].ID)

	removed, err := repo.DeleteByPet(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "a-3", remaining[0].ID)

	require.NoError(t, repo.Delete(ctx, "a-3"))
	assert.ErrorIs(t, repo.Delete(ctx, "a-3"), ports.ErrNotFound)
}
