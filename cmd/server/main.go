package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/config"
	"github.com/haghnazari/Havirkesht/internal/handler"
	"github.com/haghnazari/Havirkesht/internal/middleware"
	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"github.com/haghnazari/Havirkesht/internal/service"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env is optional; container deployments set real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting havirkesht service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := migrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := service.SeedRoles(db); err != nil {
		zapLogger.Fatal("Failed to seed roles", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, service.NewRedisTokenStore(rdb), cfg)
	handlers := handler.NewHandlers(services)

	if err := services.User.EnsureAdmin(context.Background(),
		cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword, cfg.Bootstrap.AdminEmail); err != nil {
		zapLogger.Fatal("Failed to bootstrap admin user", zap.Error(err))
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Province{},
		&entity.City{},
		&entity.Village{},
		&entity.MeasureUnit{},
		&entity.Seed{},
		&entity.Pesticide{},
		&entity.Factory{},
		&entity.CropYear{},
		&entity.FactorySeed{},
		&entity.FactoryPesticide{},
		&entity.Car{},
		&entity.Driver{},
		&entity.Role{},
		&entity.User{},
	)
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// Authentication (no token required)
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
	admin := middleware.RequireScope(entity.ScopeAdmin)
	{
		authorized.GET("/auth/me", h.Auth.Me)
		authorized.POST("/auth/logout", h.Auth.Logout)

		provinces := authorized.Group("/provinces")
		{
			provinces.GET("", h.Province.List)
			provinces.POST("", admin, h.Province.Create)
			provinces.DELETE("/:id", admin, h.Province.Delete)
		}

		cities := authorized.Group("/cities")
		{
			cities.GET("", h.City.List)
			cities.POST("", admin, h.City.Create)
			cities.DELETE("/:id", admin, h.City.Delete)
		}

		villages := authorized.Group("/villages")
		{
			villages.GET("", h.Village.List)
			villages.POST("", admin, h.Village.Create)
			villages.DELETE("/:id", admin, h.Village.Delete)
		}

		measureUnits := authorized.Group("/measure_units")
		{
			measureUnits.GET("", h.MeasureUnit.List)
			measureUnits.POST("", admin, h.MeasureUnit.Create)
			measureUnits.DELETE("/:id", admin, h.MeasureUnit.Delete)
		}

		seeds := authorized.Group("/seeds")
		{
			seeds.GET("", h.Seed.List)
			seeds.POST("", admin, h.Seed.Create)
			seeds.DELETE("/:id", admin, h.Seed.Delete)
		}

		pesticides := authorized.Group("/pesticides")
		{
			pesticides.GET("", h.Pesticide.List)
			pesticides.POST("", admin, h.Pesticide.Create)
			pesticides.DELETE("/:id", admin, h.Pesticide.Delete)
		}

		factories := authorized.Group("/factories")
		{
			factories.GET("", h.Factory.List)
			factories.POST("", admin, h.Factory.Create)
			factories.DELETE("/:id", admin, h.Factory.Delete)
		}

		cropYears := authorized.Group("/crop-years")
		{
			cropYears.GET("", h.CropYear.List)
			cropYears.POST("", admin, h.CropYear.Create)
			cropYears.DELETE("/:id", admin, h.CropYear.Delete)
		}

		factorySeeds := authorized.Group("/factory_seeds")
		{
			factorySeeds.GET("", h.FactorySeed.List)
			factorySeeds.POST("", admin, h.FactorySeed.Create)
			factorySeeds.PUT("/:id", admin, h.FactorySeed.Update)
			factorySeeds.DELETE("/:id", admin, h.FactorySeed.Delete)
		}

		factoryPesticides := authorized.Group("/factory_pesticides")
		{
			factoryPesticides.GET("", h.FactoryPesticide.List)
			factoryPesticides.POST("", admin, h.FactoryPesticide.Create)
			factoryPesticides.PUT("/:id", admin, h.FactoryPesticide.Update)
			factoryPesticides.DELETE("/:id", admin, h.FactoryPesticide.Delete)
		}

		cars := authorized.Group("/cars")
		{
			cars.GET("", h.Car.List)
			cars.GET("/:id", h.Car.Get)
			cars.POST("", admin, h.Car.Create)
			cars.PUT("/:id", admin, h.Car.Update)
			cars.DELETE("/:id", admin, h.Car.Delete)
		}

		drivers := authorized.Group("/drivers")
		{
			drivers.GET("", h.Driver.List)
			drivers.GET("/:id", h.Driver.Get)
			drivers.POST("", admin, h.Driver.Create)
			drivers.PUT("/:id", admin, h.Driver.Update)
			drivers.DELETE("/:id", admin, h.Driver.Delete)
		}

		users := authorized.Group("/users")
		{
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.POST("/admin", admin, h.User.CreateAdmin)
			users.PUT("/:id", admin, h.User.Update)
			users.PATCH("/:id/disable", admin, h.User.Disable)
			users.PATCH("/:id/enable", admin, h.User.Enable)
			users.DELETE("/:id", admin, h.User.Delete)
		}
	}
}
