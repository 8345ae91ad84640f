package main

import (
	"fmt"
	"net/http"

	"github.com/italoandres/eshop-backend/internal/config"
	"github.com/italoandres/eshop-backend/internal/handlers"
	"github.com/italoandres/eshop-backend/internal/middleware"
	"github.com/italoandres/eshop-backend/internal/repositories/interfaces"
	"github.com/italoandres/eshop-backend/internal/repositories/mongodb"
	"github.com/italoandres/eshop-backend/internal/services"
	"github.com/italoandres/eshop-backend/pkg/cache"
	"github.com/italoandres/eshop-backend/pkg/database"
	"github.com/italoandres/eshop-backend/pkg/logger"
	"github.com/italoandres/eshop-backend/pkg/storage"
	"github.com/italoandres/eshop-backend/routes"

	rulecache "github.com/italoandres/eshop-backend/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Debug,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := database.EnsureIndexes(db.Database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Redis memoizes catalog and settings documents; the server runs without
	// it if the connection fails.
	var docCache interfaces.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, document caching disabled")
		} else {
			docCache = redisCache
			defer redisCache.Close()
		}
	}

	// Image storage
	var provider storage.StorageProvider
	switch cfg.Storage.Provider {
	case "aws":
		provider, err = storage.NewAWSS3Storage(cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.CDNDomain)
	default:
		provider, err = storage.NewLocalStorage(cfg.Storage.Local.BasePath, cfg.Storage.Local.BaseURL)
	}
	if err != nil {
		log.Fatalf("Failed to initialize storage provider: %v", err)
	}

	// Repositories
	ruleRepo := mongodb.NewDiscountRuleRepository(db.Database)
	productRepo := mongodb.NewProductRepository(db.Database, docCache)
	bannerRepo := mongodb.NewBannerRepository(db.Database)
	settingsRepo := mongodb.NewStoreSettingsRepository(db.Database, docCache)

	// Services
	ruleCache := rulecache.NewRuleCache(cfg.App.RuleCacheTTL, nil)
	uploadService := services.NewUploadService(provider, log)
	discountService := services.NewDiscountService(ruleRepo, ruleCache, log)
	productService := services.NewProductService(productRepo, log)
	bannerService := services.NewBannerService(bannerRepo, uploadService, log)
	settingsService := services.NewStoreSettingsService(settingsRepo, uploadService, log)

	// Router
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))

	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			log.Fatalf("Failed to set trusted proxies: %v", err)
		}
	}

	routes.SetupRoutes(router, &routes.Handlers{
		DiscountRules: handlers.NewDiscountRuleHandler(discountService),
		Banners:       handlers.NewBannerHandler(bannerService),
		Products:      handlers.NewProductHandler(productService),
		StoreSettings: handlers.NewStoreSettingsHandler(settingsService),
	}, cfg.Security)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.WithField("addr", addr).Info("Starting server")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
