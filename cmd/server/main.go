// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/subscription-index/internal/catalog"
	"github.com/javajoker/subscription-index/internal/config"
	"github.com/javajoker/subscription-index/internal/database"
	"github.com/javajoker/subscription-index/internal/i18n"
	"github.com/javajoker/subscription-index/internal/router"
	"github.com/javajoker/subscription-index/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg.Log)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	ctx := context.Background()

	source, db, err := newCatalogSource(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up catalog source: ", err)
	}
	if db != nil {
		defer database.Close(db)
	}

	// A bad dataset at startup is fatal; later reloads keep the last good one.
	catalogService := services.NewCatalogService(source)
	if err := catalogService.Reload(ctx); err != nil {
		logrus.Fatal("Failed to load catalog: ", err)
	}

	if cfg.Catalog.Source == config.CatalogSourceFile && cfg.Catalog.WatchInterval > 0 {
		watcher := catalog.NewFileWatcher([]string{cfg.Catalog.Path}, cfg.Catalog.WatchInterval, func(path string) {
			logrus.WithField("path", path).Info("Catalog file changed, reloading")
			_ = catalogService.Reload(context.Background())
		})
		watcher.Start()
		defer watcher.Stop()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(cfg, catalogService)
	defer r.Close()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r.Engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// SIGHUP reloads the catalog; SIGINT and SIGTERM shut down
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	for sig := range signals {
		if sig != syscall.SIGHUP {
			break
		}
		logrus.Info("Received SIGHUP, reloading catalog")
		_ = catalogService.Reload(ctx)
	}
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

func setupLogging(cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// newCatalogSource picks where the catalog is read from. The database handle
// is returned for the postgres source so the caller can close it.
func newCatalogSource(ctx context.Context, cfg *config.Config) (catalog.Source, *gorm.DB, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return catalog.FileSource{Path: cfg.Catalog.Path}, nil, nil

	case config.CatalogSourceS3:
		storage, err := services.NewStorageService(cfg)
		if err != nil {
			return nil, nil, err
		}
		return catalog.ObjectSource{Fetcher: storage, Key: cfg.Catalog.S3Key}, nil, nil

	case config.CatalogSourcePostgres:
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		store := database.NewCatalogStore(db)
		if cfg.Catalog.SeedDatabase {
			seed, err := catalog.EmbeddedSource{}.Load(ctx)
			if err != nil {
				database.Close(db)
				return nil, nil, fmt.Errorf("failed to load seed catalog: %w", err)
			}
			if err := store.Seed(ctx, seed); err != nil {
				database.Close(db)
				return nil, nil, fmt.Errorf("failed to seed catalog: %w", err)
			}
		}
		return store, db, nil

	default:
		return catalog.EmbeddedSource{}, nil, nil
	}
}
