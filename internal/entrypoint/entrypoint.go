package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/groceries/internal/audit"
	"github.com/mrlokans/groceries/internal/config"
	"github.com/mrlokans/groceries/internal/database"
	auditRepo "github.com/mrlokans/groceries/internal/database/audit"
	"github.com/mrlokans/groceries/internal/database/groceries"
	"github.com/mrlokans/groceries/internal/database/groceryitems"
	"github.com/mrlokans/groceries/internal/database/items"
	"github.com/mrlokans/groceries/internal/database/itemtypes"
	http_controllers "github.com/mrlokans/groceries/internal/http"
	"github.com/mrlokans/groceries/internal/logging"
	"github.com/mrlokans/groceries/internal/readonly"
)

// App holds everything the server needs, wired from a Config.
type App struct {
	Config   *config.Config
	Database *database.Database
	Audit    *audit.Service
	Router   *gin.Engine
}

// Build opens the database, prunes and seeds it as configured, and creates
// the router. The caller owns the returned App and must Close it.
func Build(ctx context.Context, cfg *config.Config, logger *logging.Logger, version string) (*App, error) {
	db, err := OpenDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Database: db}

	if cfg.Audit.Enabled {
		events := auditRepo.NewRepository(db.DB)
		events.SetMaxPageSize(cfg.API.MaxPageSize)
		app.Audit = audit.NewService(events)
		if cfg.Audit.RetentionDays > 0 {
			retention := time.Duration(cfg.Audit.RetentionDays) * 24 * time.Hour
			deleted, err := app.Audit.DeleteOldEvents(ctx, retention)
			if err != nil {
				slog.Warn("failed to prune audit events", "error", err)
			} else if deleted > 0 {
				slog.Info("pruned audit events", "deleted", deleted, "retention_days", cfg.Audit.RetentionDays)
			}
		}
	}

	if cfg.Seed.OnStartup && !cfg.Mode.ReadOnly {
		if _, err := seed(ctx, db, app.Audit); err != nil {
			db.Close()
			return nil, err
		}
	}

	itemTypesRepo := itemtypes.NewRepository(db.DB)
	itemsRepo := items.NewRepository(db.DB)
	groceriesRepo := groceries.NewRepository(db.DB)
	groceryItemsRepo := groceryitems.NewRepository(db.DB)
	for _, repo := range []interface{ SetMaxPageSize(int) }{itemTypesRepo, itemsRepo, groceriesRepo, groceryItemsRepo} {
		repo.SetMaxPageSize(cfg.API.MaxPageSize)
	}

	if cfg.Mode.ReadOnly {
		slog.Info("read-only mode enabled - write operations will be blocked")
	}

	var accessLog *slog.Logger
	if logger != nil {
		accessLog = logger.Logger
	}
	app.Router = http_controllers.NewRouter(http_controllers.RouterConfig{
		ItemTypes:      itemTypesRepo,
		Items:          itemsRepo,
		Groceries:      groceriesRepo,
		GroceryItems:   groceryItemsRepo,
		Database:       db,
		AuditService:   app.Audit,
		ReadOnly:       readonly.NewMiddleware(cfg.Mode.ReadOnly, cfg.Mode.AllowedPaths...),
		AllowedOrigins: cfg.API.AllowedOrigins,
		Logger:         accessLog,
		Version:        version,
	})

	return app, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.Database.Close()
}

// OpenDatabase opens the configured database, sending GORM's log output to
// the process log writer.
func OpenDatabase(cfg *config.Config, logger *logging.Logger) (*database.Database, error) {
	opts := []database.Option{database.WithLogLevel(cfg.Database.LogLevel)}
	if logger != nil {
		opts = append(opts, database.WithLogWriter(logger.Writer))
	}
	db, err := database.NewDatabase(cfg.Database.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Database.Path, err)
	}
	return db, nil
}

// Seed creates the default catalog in the configured database.
func Seed(ctx context.Context, cfg *config.Config, logger *logging.Logger) (database.SeedResult, error) {
	db, err := OpenDatabase(cfg, logger)
	if err != nil {
		return database.SeedResult{}, err
	}
	defer db.Close()

	var auditService *audit.Service
	if cfg.Audit.Enabled {
		auditService = audit.NewService(auditRepo.NewRepository(db.DB))
	}
	return seed(ctx, db, auditService)
}

func seed(ctx context.Context, db *database.Database, auditService *audit.Service) (database.SeedResult, error) {
	result, err := db.SeedDefaults(ctx)
	if result.TypesCreated > 0 || result.ItemsCreated > 0 || err != nil {
		auditService.LogSeed(ctx, result.TypesCreated, result.ItemsCreated, err)
	}
	if err != nil {
		return result, fmt.Errorf("seed default catalog: %w", err)
	}
	return result, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down,
// waiting up to the configured timeout for in-flight requests.
func Serve(ctx context.Context, router http.Handler, cfg *config.Config) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server", "timeout", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server exiting")
	return nil
}

// Run builds the application and serves it until SIGINT or SIGTERM.
func Run(cfg *config.Config, logger *logging.Logger, version string) error {
	slog.Info("starting grocery API", "version", version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if logger != nil {
		gin.DefaultWriter = logger.Writer
		gin.DefaultErrorWriter = logger.Writer
	}

	app, err := Build(ctx, cfg, logger, version)
	if err != nil {
		return err
	}
	defer app.Close()

	return Serve(ctx, app.Router, cfg)
}
