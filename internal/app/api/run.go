package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	catalogmemory "github.com/patanova/groomer-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/patanova/groomer-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/patanova/groomer-api/internal/domains/catalog/application"
	catalogports "github.com/patanova/groomer-api/internal/domains/catalog/ports"
	clientsmemory "github.com/patanova/groomer-api/internal/domains/clients/adapters/memory"
	clientspostgres "github.com/patanova/groomer-api/internal/domains/clients/adapters/persistence/postgres"
	clientsapp "github.com/patanova/groomer-api/internal/domains/clients/application"
	clientsports "github.com/patanova/groomer-api/internal/domains/clients/ports"
	"github.com/patanova/groomer-api/internal/domains/scheduling/adapters/directory"
	schedmemory "github.com/patanova/groomer-api/internal/domains/scheduling/adapters/memory"
	schedobs "github.com/patanova/groomer-api/internal/domains/scheduling/adapters/observability"
	schedpostgres "github.com/patanova/groomer-api/internal/domains/scheduling/adapters/persistence/postgres"
	schedapp "github.com/patanova/groomer-api/internal/domains/scheduling/application"
	schedports "github.com/patanova/groomer-api/internal/domains/scheduling/ports"
	"github.com/patanova/groomer-api/internal/platform/blob"
	"github.com/patanova/groomer-api/internal/platform/migrations"
	platformobservability "github.com/patanova/groomer-api/internal/platform/observability"
	platformpostgres "github.com/patanova/groomer-api/internal/platform/postgres"
	transporthttp "github.com/patanova/groomer-api/internal/transport/http"
)

// Run boots the grooming shop HTTP API with observability, repositories, and
// the cross-context wiring in place.
func Run(ctx context.Context) error {
	const serviceName = "groomer-api"
	cfg := LoadConfig()

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.TryConnect(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	var (
		clientRepo      clientsports.ClientRepository
		petRepo         clientsports.PetRepository
		serviceRepo     catalogports.ServiceRepository
		productRepo     catalogports.ProductRepository
		appointmentRepo schedports.Repository
	)
	if db != nil {
		clientRepo = clientspostgres.NewClientRepository(db)
		petRepo = clientspostgres.NewPetRepository(db)
		serviceRepo = catalogpostgres.NewServiceRepository(db)
		productRepo = catalogpostgres.NewProductRepository(db)
		appointmentRepo = schedpostgres.NewRepository(db)
	} else {
		clientRepo = clientsmemory.NewClientRepository()
		petRepo = clientsmemory.NewPetRepository()
		serviceRepo = catalogmemory.NewServiceRepository()
		productRepo = catalogmemory.NewProductRepository()
		appointmentRepo = schedmemory.NewRepository()
	}

	catalogService := catalogapp.NewService(serviceRepo, productRepo)

	// The clients and scheduling contexts reference each other: scheduling
	// looks pets up through the directory, and the clients cascade purges
	// appointments through the scheduling service. Build clients first
	// without the purger, then close the loop.
	clientsService := clientsapp.NewService(clientRepo, petRepo, nil)
	coreScheduling := schedapp.NewService(
		appointmentRepo,
		directory.NewPetDirectory(clientsService),
		directory.NewServiceDirectory(catalogService),
	)
	schedulingService := schedobs.New(
		coreScheduling,
		schedobs.WithLogger(logger),
		schedobs.WithTracer(instruments.Tracer("internal.scheduling.application")),
		schedobs.WithMeter(instruments.Meter("internal.scheduling.application")),
	)
	clientsService = clientsapp.NewService(clientRepo, petRepo, schedulingService)

	blobStore, err := buildBlobStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	router := transporthttp.NewRouter(
		transporthttp.RouterConfig{
			ServiceName:    serviceName,
			JWTSecret:      cfg.JWTSecret,
			AllowedOrigins: cfg.AllowedOrigins,
		},
		transporthttp.NewClientsAPI(clientsService),
		transporthttp.NewCatalogAPI(catalogService),
		transporthttp.NewSchedulingAPI(schedulingService),
		transporthttp.NewMediaAPI(blobStore),
	)

	addr := ":" + cfg.Port
	logger.Info("groomer API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("groomer API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildBlobStore(ctx context.Context, cfg Config, logger *slog.Logger) (blob.Store, error) {
	if cfg.S3Bucket == "" {
		logger.Warn("BLOB_S3_BUCKET not set, media uploads use the in-memory store")
		return blob.NewMemoryStore(), nil
	}
	store, err := blob.NewS3Store(ctx, blob.S3Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKey,
		SecretAccessKey: cfg.S3SecretKey,
		PathStyle:       cfg.S3PathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3 blob store: %w", err)
	}
	logger.Info("media uploads stored in S3", slog.String("bucket", cfg.S3Bucket))
	return store, nil
}
