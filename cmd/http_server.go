package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/auth"
	authPostgres "github.com/frahmantamala/people-management/internal/auth/postgres"
	"github.com/frahmantamala/people-management/internal/database"
	"github.com/frahmantamala/people-management/internal/department"
	departmentPostgres "github.com/frahmantamala/people-management/internal/department/postgres"
	"github.com/frahmantamala/people-management/internal/employee"
	employeePostgres "github.com/frahmantamala/people-management/internal/employee/postgres"
	"github.com/frahmantamala/people-management/internal/file"
	filePostgres "github.com/frahmantamala/people-management/internal/file/postgres"
	"github.com/frahmantamala/people-management/internal/objectstorage"
	"github.com/frahmantamala/people-management/internal/transport/rest"
	"github.com/frahmantamala/people-management/internal/user"
	userPostgres "github.com/frahmantamala/people-management/internal/user/postgres"
	"github.com/frahmantamala/people-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	GormDB *gorm.DB
	SQLDB  *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.SQLDB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)
	log := logger.LoggerWrapper()

	gormDB, sqlDB, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	storageClient, err := objectstorage.NewClient(context.Background(), cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	tokenGen := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.TokenDuration)
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen, cfg.Security.BCryptCost, log)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userPostgres.NewUserRepository(gormDB), log)
	userHandler := user.NewHandler(userService)

	departmentService := department.NewService(departmentPostgres.NewDepartmentRepository(gormDB), log)
	departmentHandler := department.NewHandler(departmentService, cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)

	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(gormDB), log)
	employeeHandler := employee.NewHandler(employeeService, cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)

	fileService := file.NewService(storageClient, filePostgres.NewFileRepository(gormDB), cfg.Storage.MaxFileBytes, log)
	fileHandler := file.NewHandler(fileService)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, sqlDB.DB, authHandler, userHandler, departmentHandler, employeeHandler, fileHandler, cfg.Server.AllowedOrigins, log)

	return &Dependencies{
		Config: cfg,
		GormDB: gormDB,
		SQLDB:  sqlDB,
		Router: router,
		Logger: log,
	}, nil
}
