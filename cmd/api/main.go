package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/config"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/audit"
	appHTTP "github.com/cmlabs-hris/hris-overtime-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/slack"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/telemetry"
	"github.com/cmlabs-hris/hris-overtime-go/internal/repository/postgresql"
	auditService "github.com/cmlabs-hris/hris-overtime-go/internal/service/audit"
	departmentService "github.com/cmlabs-hris/hris-overtime-go/internal/service/department"
	overtimeService "github.com/cmlabs-hris/hris-overtime-go/internal/service/overtime"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", cfg.App.Name)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Environment: cfg.App.Env,
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	loc, err := cfg.App.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	directoryRepo := postgresql.NewDirectoryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRequestRepo := postgresql.NewOvertimeRequestRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)

	var sinks []audit.Sink
	if cfg.Slack.Enabled() {
		sinks = append(sinks, slack.NewNotifier(cfg.Slack.BotToken, cfg.Slack.AuditChannelID))
		slog.Info("slack audit sink enabled", "channel", cfg.Slack.AuditChannelID)
	}
	auditRecorder := auditService.NewRecorder(auditLogRepo, auditService.Config{
		BatchSize:     cfg.Audit.BatchSize,
		FlushInterval: cfg.Audit.FlushInterval,
		WorkerCount:   cfg.Audit.WorkerCount,
		QueueSize:     cfg.Audit.QueueSize,
	}, sinks...)
	defer auditRecorder.Close()

	gate := departmentService.NewGate(directoryRepo, employeeRepo)
	teamSvc := departmentService.NewTeamService(gate, employeeRepo, attendanceRepo)
	reconciler := overtimeService.NewReconciler(attendanceRepo, loc)
	overtimeSvc := overtimeService.NewOvertimeService(
		postgresql.NewTransactor(db),
		overtimeRequestRepo,
		employeeRepo,
		gate,
		auditRecorder,
	)
	workflow := overtimeService.NewWorkflow(overtimeRequestRepo, gate, reconciler, auditRecorder)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc, workflow)
	teamHandler := appHTTP.NewTeamHandler(teamSvc, loc)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	}, JWTService, overtimeHandler, teamHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
