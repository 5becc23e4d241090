package cmds

import (
	"context"
	"fmt"
	"log/slog"

	sloggorm "github.com/orandin/slog-gorm"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/internal/config"
	"github.com/aquaria-id/contest-api/internal/exitcode"
	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigration(cmd, "migrateUp", migrations.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration. Destroys all data.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigration(cmd, "migrateDown", migrations.Down)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigration(cmd, "migrateVersion", func(ctx context.Context, db *gorm.DB) error {
			version, err := migrations.Version(ctx, db)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		})
	},
}

func runMigration(
	cmd *cobra.Command,
	spanName string,
	migrate func(context.Context, *gorm.DB) error,
) error {
	ctx, span := tracer.Start(cmd.Context(), spanName)
	defer span.End()

	cfg, err := config.GetConfig()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load config")
		return exitcode.Wrap(exitcode.Config, err)
	}

	span.SetAttributes(
		attribute.String("postgres.host", cfg.Postgres.Host),
		attribute.String("postgres.database", cfg.Postgres.Database),
	)

	db, err := openDatabase(cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open database")
		return exitcode.Wrap(exitcode.Database, err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err = migrate(ctx, db); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "migration failed")
		return exitcode.Wrap(exitcode.Database, err)
	}

	logger.Logger.InfoContext(ctx, "migration finished", "command", cmd.CommandPath())

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "migration finished")
	return nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := sloggorm.New(
		sloggorm.WithHandler(logger.Handler),
		sloggorm.SetLogLevel(sloggorm.DefaultLogType, slog.Level(cfg.Logging.Gorm.Level)),
	)

	db, err := gorm.Open(
		postgres.Open(cfg.PostgresDSN()),
		&gorm.Config{Logger: gormLogger, TranslateError: true},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, nil
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
