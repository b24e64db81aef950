package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"luyona.backend/internal/config"
	"luyona.backend/internal/infrastructure/media"
	"luyona.backend/internal/infrastructure/repositories"
	"luyona.backend/internal/interfaces/http/handlers"
	"luyona.backend/internal/interfaces/http/middleware"
	"luyona.backend/internal/usecases"
	"luyona.backend/pkg/jwt"
	"luyona.backend/pkg/logger"
	"luyona.backend/pkg/redis"
)

const statsCacheTTL = time.Minute

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(driver, dsn string) (*gorm.DB, error) {
		if driver == "mysql" {
			return gorm.Open(mysql.Open(dsn), &gorm.Config{})
		}
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newMediaStore = func(cfg config.MediaConfig) (media.Store, error) {
		if cfg.Driver == "s3" {
			return media.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region, cfg.S3BaseURL)
		}
		return media.NewCloudinaryStore(cfg.CloudinaryURL)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.Driver, cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Printf("connected to %s via GORM", cfg.Database.Driver)
	}

	mediaStore, err := newMediaStore(cfg.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media store: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	userRepo := repositories.NewUserRepository(db)

	statsCache := redis.NewStatsCache(statsCacheTTL)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, cfg.Admin.Emails)
	profileUsecase := usecases.NewProfileUsecase(userRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, statsCache)
	uploadUsecase := usecases.NewUploadUsecase(mediaStore)

	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	uploadHandler := handlers.NewUploadHandler(uploadUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	adminMiddleware := middleware.RequireAdmin(userRepo, cfg.Admin.Emails)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerRoutes(r, routeDeps{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		adminHandler:    adminHandler,
		uploadHandler:   uploadHandler,
		authMiddleware:  authMiddleware,
		adminMiddleware: adminMiddleware,
	})

	log.Printf("luyona backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
