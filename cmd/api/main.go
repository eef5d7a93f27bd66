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

	"github.com/cmlabs-hris/attendance-portal/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-portal/internal/handler/http"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/cache"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-portal/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-portal/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-portal/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/attendance-portal/internal/service/employee"
	reportService "github.com/cmlabs-hris/attendance-portal/internal/service/report"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", "attendance-portal"), slog.String("env", cfg.App.Env)))

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.App.RunMigrations {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
	}

	var viewCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			// The portal still works without a cache, just slower
			slog.Warn("Redis unavailable, caching disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			viewCache = redisCache
		}
	}
	defer viewCache.Close()

	now := func() time.Time { return time.Now().In(loc) }
	withTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, viewCache, cfg.Redis.TTL)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, viewCache, withTx)
	reportSvc := reportService.NewReportService(employeeSvc, employeeRepo, attendanceRepo, viewCache, 0, now)

	scheduler := cron.NewScheduler()
	if cfg.App.CacheWarmInterval > 0 {
		if err := cron.NewCacheJobs(employeeSvc, reportSvc).RegisterJobs(scheduler, cfg.App.CacheWarmInterval); err != nil {
			return err
		}
		scheduler.Start()
	}
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Version:        version,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	}, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, reportSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", server.Addr, "version", version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
