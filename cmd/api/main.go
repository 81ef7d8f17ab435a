package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/config"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/hris-attendance-leave/internal/handler/http"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-attendance-leave/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/hris-attendance-leave/internal/service/leave"
)

func main() {
	runJobs := flag.Bool("run-jobs", false, "run the scheduled jobs once and exit")
	flag.Parse()

	if err := run(*runJobs); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run(runJobs bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(logger)

	location, err := clock.LoadZone(cfg.Attendance.Timezone)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgresql.Migrate(ctx, db); err != nil {
			return err
		}
		slog.Info("Database schema applied")
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	systemClock := clock.System{}

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		userRepo,
		systemClock,
		location,
		attendance.DefaultSchedule,
	)
	leaveSvc := leaveService.NewLeaveService(
		transactor,
		leaveRequestRepo,
		leaveBalanceRepo,
		userRepo,
		systemClock,
		location,
		cfg.Leave.AnnualAllotment,
	)

	scheduler := cron.NewScheduler(ctx)
	cron.NewAttendanceJobs(attendanceSvc, cfg.Attendance.AbsenceJobInterval).RegisterJobs(scheduler)
	if runJobs {
		return scheduler.RunOnce(ctx)
	}
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		logger,
		JWTService,
		cfg.App.AllowedOrigins,
		attendanceHandler,
		leaveHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("Shutting down server")
	return server.Shutdown(shutdownCtx)
}
