package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/config"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Tables in dependency order, children first.
var galleryTables = []string{
	"orders",
	"client_selections",
	"photos",
	"galleries",
	"clients",
	"photographers",
}

// TestDatabase is a throwaway PostgreSQL 16 container with the schema applied.
type TestDatabase struct {
	Container testcontainers.Container
	DB        *postgres.DB
	Config    *config.DatabaseConfig
}

func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "gallery",
				"POSTGRES_PASSWORD": "gallery",
				"POSTGRES_DB":       "gallery_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dbConfig := &config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "gallery",
		Password:        "gallery",
		Name:            "gallery_test",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	db, err := postgres.Connect(ctx, dbConfig, NopLogger())
	require.NoError(t, err)
	require.NoError(t, applyMigrations(ctx, db))

	return &TestDatabase{
		Container: container,
		DB:        db,
		Config:    dbConfig,
	}
}

func (td *TestDatabase) Cleanup(t *testing.T) {
	td.DB.Close()
	require.NoError(t, td.Container.Terminate(context.Background()))
}

func (td *TestDatabase) CleanTables(t *testing.T) {
	_, err := td.DB.Pool.Exec(context.Background(),
		"TRUNCATE TABLE "+strings.Join(galleryTables, ", ")+" CASCADE")
	require.NoError(t, err)
}

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	// testhelpers -> services -> application -> internal -> module root
	root := filepath.Join(filepath.Dir(filename), "..", "..", "..", "..")
	return filepath.Join(root, "db", "migrations")
}

// applyMigrations runs every *.up.sql file in lexical order.
func applyMigrations(ctx context.Context, db *postgres.DB) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir(), "*.up.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found in %s", migrationsDir())
	}
	sort.Strings(files)

	for _, file := range files {
		migration, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", filepath.Base(file), err)
		}
		if _, err := db.Pool.Exec(ctx, string(migration)); err != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}
