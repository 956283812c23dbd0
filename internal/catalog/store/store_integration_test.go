package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const skipIntegrationTests = "STOREFRONT_SKIP_INTEGRATION_TESTS"

// CatalogStoreSuite exercises the PostgreSQL-backed ProductStore against a
// disposable container.
type CatalogStoreSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	store       ProductStore
	logger      *slog.Logger
	ctx         context.Context
}

// SetupSuite starts a PostgreSQL container, applies migrations and seeds the
// wholesale lineup.
func (s *CatalogStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dbName := "catalog"
	dbUser := "user"
	dbPassword := "password"

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	s.dbPool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to create pgxpool")

	for i := range 10 {
		s.logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		err = s.dbPool.Ping(s.ctx)
		if err == nil {
			break
		}
		time.Sleep(time.Second * 2)
	}
	require.NoError(s.T(), err, "Failed to connect to PostgreSQL after retries")

	wd, _ := os.Getwd()
	migrationsPath := filepath.Join(wd, "migrations")
	sourceURL := "file://" + migrationsPath
	m, err := migrate.New(sourceURL, connStr)
	require.NoError(s.T(), err, "Failed to create migrate instance")
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		_, _ = m.Close()
		require.NoError(s.T(), err, "Failed to apply migrations")
	}
	s.logger.Info("Migrations applied for integration tests")

	for i, p := range SeedProducts() {
		_, err = s.dbPool.Exec(s.ctx, `
			INSERT INTO products (id, name, category, price, description, image_url,
			                      storage_options, colors, display_spec, camera_spec,
			                      stock_quantity, rating, review_count, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			p.ID, p.Name, p.Category, p.Price, p.Description, p.ImageURL,
			p.Specs.Storage, p.Specs.Colors, p.Specs.Display, p.Specs.Camera,
			p.StockQuantity, p.Rating, p.ReviewCount, i,
		)
		require.NoError(s.T(), err, "Failed to seed product %s", p.Name)
	}

	s.store = NewPgStore(s.dbPool)
	s.logger.Info("Initialization complete for CatalogStoreSuite")
}

// TearDownSuite cleans up resources after all tests in the suite have run.
func (s *CatalogStoreSuite) TearDownSuite() {
	s.logger.Info("Tearing down suite...")
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}

func (s *CatalogStoreSuite) TestFindAll_ReturnsSeedOrder() {
	products, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)

	seed := SeedProducts()
	require.Len(s.T(), products, len(seed))
	for i := range seed {
		assert.Equal(s.T(), seed[i].ID, products[i].ID)
		assert.Equal(s.T(), seed[i].Name, products[i].Name)
		assert.Equal(s.T(), seed[i].Price, products[i].Price)
		assert.Equal(s.T(), seed[i].Specs.Storage, products[i].Specs.Storage)
		assert.Equal(s.T(), seed[i].Specs.Colors, products[i].Specs.Colors)
	}
}

func (s *CatalogStoreSuite) TestFindByID() {
	want := SeedProducts()[0]

	product, err := s.store.FindByID(s.ctx, want.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), want.Name, product.Name)
	assert.Equal(s.T(), want.Specs.Camera, product.Specs.Camera)
	assert.Equal(s.T(), want.StockQuantity, product.StockQuantity)
}

func (s *CatalogStoreSuite) TestFindByID_NotFound() {
	_, err := s.store.FindByID(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, ErrProductNotFound)
}

func TestCatalogStoreSuite(t *testing.T) {
	if os.Getenv(skipIntegrationTests) != "" {
		t.Skipf("skipping integration tests: %s is set", skipIntegrationTests)
	}
	suite.Run(t, new(CatalogStoreSuite))
}
