package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/weiawesome/bestiary-search/internal/cache"
	"github.com/weiawesome/bestiary-search/internal/config"
	"github.com/weiawesome/bestiary-search/internal/consumer"
	"github.com/weiawesome/bestiary-search/internal/domain"
	"github.com/weiawesome/bestiary-search/internal/handler"
	"github.com/weiawesome/bestiary-search/internal/repository"
	"github.com/weiawesome/bestiary-search/internal/service"
	"github.com/weiawesome/bestiary-search/pkg/database"
	pkglog "github.com/weiawesome/bestiary-search/pkg/log"
)

const serviceName = "bestiary-search"

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// 2. Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: serviceName,
	})
	logger := pkglog.L()

	// 3. Open the record store
	repo, closeStore, err := newRepository(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer closeStore()

	// 4. Open the cache
	searchCache, err := newCache(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Cache.Driver).Msg("failed to open cache")
	}
	defer searchCache.Close()

	// 5. Service + HTTP
	searchService := service.NewSearchService(repo, searchCache, cfg.Cache.TTL)
	httpHandler := handler.NewHandler(searchService, cfg.Server.BasePath)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	// 6. Run until SIGINT/SIGTERM or a component fails
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", addr).Msg(serviceName + " starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Invalidation.Enabled {
		kc, err := consumer.NewConfluentConsumer(
			cfg.Invalidation.Brokers,
			cfg.Invalidation.Topic,
			cfg.Invalidation.GroupID,
			consumer.NewInvalidationHandler(searchService),
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create kafka consumer")
		}
		if err := kc.Start(gCtx); err != nil {
			logger.Fatal().Err(err).Msg("failed to start kafka consumer")
		}

		g.Go(func() error {
			<-gCtx.Done()
			return kc.Close()
		})
	} else {
		logger.Info().Msg("cache invalidation consumer disabled")
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg(serviceName + " stopped with error")
		return
	}
	logger.Info().Msg(serviceName + " stopped")
}

func newRepository(cfg *config.Config, logger zerolog.Logger) (repository.BestiaryRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDatabase:
		db, err := database.New(cfg.Database.ToDatabaseConfig())
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}

		if cfg.Database.AutoMigrate {
			if err := database.AutoMigrate(db, &domain.UserModel{}, &domain.BestiaryModel{}); err != nil {
				sqlDB.Close()
				return nil, nil, fmt.Errorf("failed to auto-migrate: %w", err)
			}
			logger.Info().Msg("database migration completed")
		}

		logger.Info().Str("driver", cfg.Database.Driver).Msg("database connected")
		return repository.NewGormBestiaryRepository(db), func() { sqlDB.Close() }, nil

	case config.StoreElasticsearch:
		esClient, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: cfg.Elasticsearch.Addresses,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
		}

		res, err := esClient.Info()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
		}
		res.Body.Close()
		logger.Info().Strs("addresses", cfg.Elasticsearch.Addresses).Msg("elasticsearch connected")

		repo := repository.NewESBestiaryRepository(esClient, cfg.Elasticsearch.Index, cfg.Elasticsearch.PageSize)
		return repo, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func newCache(cfg *config.Config, logger zerolog.Logger) (cache.SearchCache, error) {
	switch cfg.Cache.Driver {
	case config.CacheRedis:
		c, err := cache.NewRedisSearchCache(cfg.Redis, cfg.Cache.Prefix)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
		return c, nil

	case config.CacheMemory:
		logger.Info().Int("size", cfg.Cache.MemorySize).Msg("using in-process cache")
		return cache.NewMemorySearchCache(cfg.Cache.MemorySize, cfg.Cache.TTL, cfg.Cache.Prefix), nil

	default:
		return nil, fmt.Errorf("unsupported cache driver: %s", cfg.Cache.Driver)
	}
}
