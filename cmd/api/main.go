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

	"github.com/bunkops/bunk-backend-go/internal/config"
	appHTTP "github.com/bunkops/bunk-backend-go/internal/handler/http"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/middleware"
	"github.com/bunkops/bunk-backend-go/internal/pkg/cache"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/cron"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bunkops/bunk-backend-go/internal/service/attendance"
	serviceAuth "github.com/bunkops/bunk-backend-go/internal/service/auth"
	dailySalesService "github.com/bunkops/bunk-backend-go/internal/service/dailysales"
	dashboardService "github.com/bunkops/bunk-backend-go/internal/service/dashboard"
	dutyService "github.com/bunkops/bunk-backend-go/internal/service/duty"
	salaryService "github.com/bunkops/bunk-backend-go/internal/service/salary"
	stationService "github.com/bunkops/bunk-backend-go/internal/service/station"
	workerService "github.com/bunkops/bunk-backend-go/internal/service/worker"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bunk-backend"),
		slog.String("env", cfg.App.Env),
	)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(dsn); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	var dashboardCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		dashboardCache = cache.NewRedisCache(client, "bunk:")
		logger.Info("dashboard cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	accessExp, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("parse JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	clk := clock.New(cfg.Location())
	tx := postgresql.NewTransactor(db)

	stationRepo := postgresql.NewStationRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	helperRepo := postgresql.NewHelperRepository(db)
	dutyRepo := postgresql.NewDutyRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dailySalesRepo := postgresql.NewDailySalesRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, accessExp)

	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, workerRepo, helperRepo, clk, logger)
	authSvc := serviceAuth.NewAuthService(tx, stationRepo, workerRepo, JWTService, attendanceSvc, clk, logger)
	stationSvc := stationService.NewStationService(stationRepo, logger)
	workerSvc := workerService.NewWorkerService(workerRepo, helperRepo, logger)
	dutySvc := dutyService.NewDutyService(dutyRepo, stationRepo, workerRepo, dashboardCache, clk, logger)
	dashboardSvc := dashboardService.NewDashboardService(dutyRepo, dashboardCache, cfg.Redis.StatsTTL, clk, logger)
	salarySvc := salaryService.NewSalaryService(workerRepo, helperRepo, dutyRepo, attendanceRepo)
	dailySalesSvc := dailySalesService.NewDailySalesService(dailySalesRepo, workerRepo, clk, logger)

	loginLimit, err := middleware.RateLimit(cfg.RateLimit.Login)
	if err != nil {
		return err
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
		LoginRateLimit: loginLimit,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Station:    appHTTP.NewStationHandler(stationSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Duty:       appHTTP.NewDutyHandler(dutySvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc, salarySvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		DailySales: appHTTP.NewDailySalesHandler(dailySalesSvc),
	})

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler(logger)
		cron.NewDutyJobs(dutyRepo, cfg.Cron.StaleDutyAfter, cfg.Cron.Interval, logger).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
