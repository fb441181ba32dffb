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

	"github.com/cmlabs-hris/employee-entry/internal/config"
	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/employee-entry/internal/handler/http"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/database"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/logger"
	"github.com/cmlabs-hris/employee-entry/internal/repository/postgresql"
	"github.com/cmlabs-hris/employee-entry/internal/repository/sqlite"
	employeeService "github.com/cmlabs-hris/employee-entry/internal/service/employee"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.NewJSON(os.Stdout, cfg.App.LogLevel, cfg.App.Env, version)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	transactor, employeeRepo, closeDB, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	employeeSvc := employeeService.NewEmployeeService(transactor, employeeRepo)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		BasePath:       cfg.HTTP.BasePath,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Logger:         log,
	}, employeeHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server running", "addr", server.Addr, "base_path", cfg.HTTP.BasePath, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStorage(ctx context.Context, cfg *config.Config) (employee.Transactor, employee.EmployeeRepository, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return sqlite.NewTransactor(db), sqlite.NewSqliteEmployeeRepo(db), func() { db.Close() }, nil
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return postgresql.NewTransactor(db), postgresql.NewEmployeeRepository(db), db.Close, nil
	}
}
