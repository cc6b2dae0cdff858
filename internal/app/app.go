package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"uniadvisor_backend/database"
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/config"
	"uniadvisor_backend/internal/events"
	"uniadvisor_backend/internal/handlers"
	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/internal/middleware"
	"uniadvisor_backend/internal/reference"
	"uniadvisor_backend/internal/repositories"
	"uniadvisor_backend/internal/routes"
	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/storage"
	"uniadvisor_backend/internal/validator"
	"uniadvisor_backend/internal/workers"
	"uniadvisor_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Catalog - источник каталога и провайдер снимков, собранные по конфигурации
type Catalog struct {
	Source   catalog.Source
	Provider catalog.Provider
	// Store - кэширующий провайдер; nil в live-режиме
	Store *catalog.Store
	// DB открыта только для source=database
	DB *gorm.DB
}

// Close освобождает соединение с базой, если оно было открыто
func (c *Catalog) Close() {
	database.Close(c.DB)
}

// NewStorageOpener открывает файлы каталога с диска или из S3/R2
func NewStorageOpener(cfg *config.Config) *storage.Opener {
	return storage.NewOpener(storage.Config{
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
}

// FileSource - источник без базы: встроенный каталог или пара CSV
func FileSource(cfg *config.Config) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case config.SourceSeed:
		return catalog.SeedSource{}, nil
	case config.SourceCSV:
		return catalog.NewCSVSource(NewStorageOpener(cfg), cfg.Catalog.UniversitiesPath, cfg.Catalog.ScholarshipsPath), nil
	default:
		return nil, fmt.Errorf("catalog source %q is not file based", cfg.Catalog.Source)
	}
}

// OpenDatabase подключается к базе из конфигурации
func OpenDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	return database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, cfg.Database.PingRetries)
}

// NewCatalog выбирает источник (seed, csv, database) и режим выдачи (cached, live)
func NewCatalog(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	c := &Catalog{}

	if cfg.Catalog.Source == config.SourceDatabase {
		gormDB, err := OpenDatabase(ctx, cfg)
		if err != nil {
			return nil, apperrors.CatalogUnavailable(err, "Catalog database is unavailable")
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			database.Close(gormDB)
			return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
		}
		c.DB = gormDB
		c.Source = repositories.NewCatalogRepository(sqlDB, cfg.Database.Driver)
	} else {
		src, err := FileSource(cfg)
		if err != nil {
			return nil, err
		}
		c.Source = src
	}

	if cfg.Catalog.Mode == config.ModeLive {
		c.Provider = catalog.NewLive(c.Source)
	} else {
		c.Store = catalog.NewStore(c.Source)
		c.Provider = c.Store
	}

	logger.Info("Catalog provider configured", "source", c.Source.Describe(), "mode", cfg.Catalog.Mode)
	return c, nil
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх провайдера каталога
func SetupRouter(cfg *config.Config, provider catalog.Provider) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(
		provider,
		cfg.Catalog.Mode,
		reference.DefaultKnowledgeBase(),
		reference.DefaultVisaCatalog(),
	)

	// 2. Инициализируем хэндлеры
	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := handlers.NewAppHandlers(baseHandler, serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, provider)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	return router
}

// eventSource - слушатель событий перезагрузки по конфигурации; nil, если не настроен
func eventSource(cfg *config.Config) workers.EventSource {
	switch cfg.Events.Listener {
	case config.ListenerPostgres:
		return events.NewPGListener(cfg.Database.DSN, cfg.Events.Channel)
	case config.ListenerAMQP:
		return events.NewAMQPConsumer(cfg.Events.AMQPURL, cfg.Events.AMQPExchange)
	default:
		return nil
	}
}

// Run поднимает HTTP-сервер и фоновые воркеры; возвращается после отмены ctx
func Run(ctx context.Context, cfg *config.Config) error {
	apperrors.SetDebug(cfg.Server.Env != "production")

	cat, err := NewCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer cat.Close()

	if cat.Store != nil {
		// Без первого снимка сервер всё равно стартует: каталожные маршруты отвечают 503
		// до успешной перезагрузки воркером или через /admin/catalog/reload
		if _, err := cat.Store.Reload(ctx); err != nil {
			logger.Error("Initial catalog load failed", "error", err)
		}
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           SetupRouter(cfg, cat.Provider),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server startup error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down server...")
		return server.Shutdown(shutdownCtx)
	})

	if cat.Store != nil {
		refresher := workers.NewCatalogWorker(cat.Store, cfg.Catalog.RefreshInterval)
		g.Go(func() error { return refresher.Run(gctx) })

		if src := eventSource(cfg); src != nil {
			listener := workers.NewEventWorker(cfg.Events.Listener, src, cat.Store)
			g.Go(func() error {
				// Отказ слушателя не должен останавливать HTTP-сервер
				if err := listener.Run(gctx); err != nil {
					logger.WorkerLog(cfg.Events.Listener, "listen", err)
				}
				return nil
			})
		}
	} else if cfg.Events.Listener != config.ListenerNone {
		logger.Warn("Events listener ignored in live mode", "listener", cfg.Events.Listener)
	}

	return g.Wait()
}
