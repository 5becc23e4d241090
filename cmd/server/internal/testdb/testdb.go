// Package testdb starts disposable postgres instances for tests.
package testdb

import (
	"context"
	"fmt"
	"time"

	sloggorm "github.com/imdatngo/slog-gorm/v2"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/internal/identity"
	"github.com/aquaria-id/contest-api/internal/migrations"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Runs postgres with every migration applied
func Start(ctx context.Context) (*Database, error) {
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16.4-alpine",
		postgres.WithDatabase("contestapi"),
		postgres.WithUsername("contestapi"),
		postgres.WithPassword("contestapi"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string to container: %w", err)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:         sloggorm.New(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = migrations.Up(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to migrate db: %w", err)
	}

	return &Database{Container: postgresContainer, DB: db, DSN: dsn}, nil
}

func (d *Database) Terminate() error {
	return testcontainers.TerminateContainer(d.Container)
}

// Creates the account rows referenced by registrations and scores
func SeedAccount(ctx context.Context, db *gorm.DB, id int64, role identity.Role) (*models.Account, error) {
	account := &models.Account{
		ID:    id,
		Name:  fmt.Sprintf("Peserta %d", id),
		Email: fmt.Sprintf("peserta%d@example.com", id),
		Role:  role,
	}
	if err := models.UpsertAccount(ctx, db, account); err != nil {
		return nil, err
	}

	return account, nil
}
