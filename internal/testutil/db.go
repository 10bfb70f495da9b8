//go:build integration

// Package testutil starts throwaway Postgres and Redis containers for
// integration tests. Containers are shared across the test run; every
// test works inside its own fixture namespace instead of its own
// database.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"finvox/internal/config"
	"finvox/internal/repositories"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresImage ships Postgres 16 with the pgvector extension compiled
// in, which the schema's vector columns require.
const PostgresImage = "pgvector/pgvector:pg16"

// TestStore holds the shared database container and an open store with
// tables migrated.
type TestStore struct {
	Container testcontainers.Container
	Store     *repositories.Store
	ConnStr   string
}

var (
	sharedStore     *TestStore
	sharedStoreOnce sync.Once
	sharedStoreErr  error
)

// GetTestStore returns the shared Postgres-backed store. The container
// is created once and reused across all tests in the run.
func GetTestStore(t *testing.T) *TestStore {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode (requires Docker)")
	}

	sharedStoreOnce.Do(func() {
		sharedStore, sharedStoreErr = setupStore()
	})

	if sharedStoreErr != nil {
		t.Fatalf("failed to set up test store: %v", sharedStoreErr)
	}

	return sharedStore
}

func setupStore() (*TestStore, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        PostgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "finvox_test",
			"POSTGRES_USER":     "finvox",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	connStr := fmt.Sprintf("postgres://finvox:test_password@%s:%s/finvox_test?sslmode=disable",
		host, port.Port())

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	cfg := &config.Config{
		DatabaseURL:     connStr,
		MaxIdleConns:    2,
		MaxOpenConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}

	var store *repositories.Store
	for i := 0; i < 10; i++ {
		store, err = repositories.Open(cfg, log)
		if err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := store.CreateTables(ctx); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &TestStore{
		Container: container,
		Store:     store,
		ConnStr:   connStr,
	}, nil
}
