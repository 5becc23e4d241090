package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	sloggorm "github.com/orandin/slog-gorm"
	"github.com/redis/go-redis/v9"
	otellib "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormtracing "gorm.io/plugin/opentelemetry/tracing"

	_ "github.com/aquaria-id/contest-api/cmd/server/docs"
	servermiddleware "github.com/aquaria-id/contest-api/cmd/server/internal/middleware"
	"github.com/aquaria-id/contest-api/cmd/server/internal/routes"
	"github.com/aquaria-id/contest-api/cmd/server/internal/routes/competitions"
	"github.com/aquaria-id/contest-api/cmd/server/internal/taskrunner"
	"github.com/aquaria-id/contest-api/internal/config"
	"github.com/aquaria-id/contest-api/internal/identity"
	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/migrations"
	"github.com/aquaria-id/contest-api/internal/otel"
	"github.com/aquaria-id/contest-api/internal/upload"
)

const name string = "github.com/aquaria-id/contest-api/cmd/server"

var tracer = otellib.Tracer(name)

type server struct {
	router       *echo.Echo
	config       *config.Config
	db           *gorm.DB
	redis        *redis.Client
	taskRunner   *taskrunner.Client
	otelShutdown func(context.Context) error
}

func openDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	ctx, span := tracer.Start(ctx, "openDatabase")
	defer span.End()

	gormLogger := slog.New(logger.Handler)
	opts := []sloggorm.Option{
		sloggorm.WithHandler(gormLogger.Handler()),
		sloggorm.SetLogLevel(sloggorm.DefaultLogType, slog.Level(cfg.Logging.Gorm.Level)),
	}
	if cfg.Logging.Gorm.TraceQueries {
		opts = append(opts, sloggorm.WithTraceAll())
	}

	db, err := gorm.Open(
		postgres.Open(cfg.PostgresDSN()),
		&gorm.Config{Logger: sloggorm.New(opts...), TranslateError: true},
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to initialize database")
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to acquire underlying database connection")
		return nil, fmt.Errorf("failed to acquire underlying database connection: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConnections)
	sqlDB.SetConnMaxLifetime(cfg.Postgres.ConnectionTTL)

	if err = db.Use(gormtracing.NewPlugin()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to add otel plugin to gorm")
		return nil, fmt.Errorf("failed to add otel plugin to gorm: %w", err)
	}

	span.AddEvent("added the otel plugin to gorm")

	if err = migrations.Up(ctx, db); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to perform database migrations")
		return nil, fmt.Errorf("failed to perform database migrations: %w", err)
	}

	span.AddEvent("migrated database to latest version")

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "opened database")
	return db, nil
}

// nil when no limit is configured
func openRedis(cfg *config.RateLimitConfig) *redis.Client {
	if cfg == nil || (cfg.GlobalPerMinute <= 0 && cfg.SubmitPerMinute <= 0) {
		return nil
	}

	addr := cfg.RedisHost
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "6379")
	}

	logger.Logger.Debug("setting up rate limiter with redis", "redis", addr)
	return redis.NewClient(&redis.Options{Addr: addr})
}

func initServer(ctx context.Context) (*server, error) {
	server := new(server)

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize server config: %w", err)
	}
	server.config = cfg

	shutdownOTel, err := otel.SetupOTelSDK(ctx, "contest-api", cfg.Logging.UseOTLP)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OTEL SDK: %w", err)
	}
	defer func() {
		// Something failed to initialize, make sure everything gets flushed to the server
		if server.otelShutdown == nil {
			otelShutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				time.Second*time.Duration(cfg.GracefulShutdownSecs),
			)
			defer cancel()

			if err = shutdownOTel(otelShutdownCtx); err != nil {
				logger.Logger.Error("failed to flush otel data", "error", err)
			}
		}
	}()

	ctx, span := tracer.Start(ctx, "initServer")
	defer span.End()

	logger.SetLevel(cfg.Logging.App.Level)

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open database")
		return nil, err
	}

	span.AddEvent("initialized database")

	archiver, err := upload.FromConfig(cfg.Archive)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to construct archiver")
		return nil, fmt.Errorf("failed to construct archiver: %w", err)
	}
	if archiver == nil {
		logger.Logger.Warn("score sheet archiving is disabled")
	}

	rdb := openRedis(cfg.RateLimit)
	taskRunnerClient := taskrunner.Create()

	middlewareHandler := servermiddleware.Handler{
		DB:       db,
		Identity: identity.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
	}

	// a nil *redis.Client must not become a non-nil interface
	var limiterStore redis.Cmdable
	if rdb != nil {
		limiterStore = rdb
	}
	competitionsHandler := competitions.Create(db, taskRunnerClient, archiver, limiterStore, cfg.RateLimit)

	e, err := routes.BuildEcho(logger.Logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "error building router")
		return nil, fmt.Errorf("error building router: %w", err)
	}

	competitionsHandler.AddRoutes(e, &middlewareHandler)

	span.AddEvent("created echo router")

	server.otelShutdown = shutdownOTel
	server.router = e
	server.db = db
	server.redis = rdb
	server.taskRunner = taskRunnerClient

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "initialized server")
	return server, nil
}

func (s *server) Start() error {
	logger.Logger.Info("starting services", "address", s.config.ListenAddress)

	err := s.router.Start(s.config.ListenAddress)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *server) Shutdown() error {
	var errs error

	ctx, cancelTimeout := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(s.config.GracefulShutdownSecs),
	)
	defer cancelTimeout()

	// stop taking requests before draining the archive uploads they started
	if err := s.router.Shutdown(ctx); err != nil {
		errs = errors.Join(errs, err)
	}

	if err := s.taskRunner.Shutdown(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("failed to shutdown taskRunner gracefully: %w", err))
	}

	if s.redis != nil {
		errs = errors.Join(errs, s.redis.Close())
	}

	if sqlDB, err := s.db.DB(); err == nil {
		errs = errors.Join(errs, sqlDB.Close())
	}

	if s.otelShutdown != nil {
		errs = errors.Join(errs, s.otelShutdown(ctx))
	}

	return errs
}

// @title						Contest API
// @version					1.0
// @description				Competition enrollment and judging
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	ctx, cancelSignal := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)

	logger.InitSlog()

	server, err := initServer(ctx)
	if err != nil {
		logger.Logger.Error(err.Error())
		cancelSignal()
		os.Exit(1)
	}

	errch := make(chan error, 1)
	go func() {
		<-ctx.Done()
		logger.Logger.Info("got shutdown signal")
		errch <- server.Shutdown()
		close(errch)
	}()

	if err := server.Start(); err != nil {
		logger.Logger.Error(err.Error())
		cancelSignal()
		os.Exit(1)
	}

	if err := <-errch; err != nil {
		logger.Logger.Error("error shutting down server", "error", err)
	}

	cancelSignal()
}
