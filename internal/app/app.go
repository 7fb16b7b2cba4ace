package app

import (
	"errors"
	"fmt"

	"neads_backend/database"
	"neads_backend/internal/auth"
	"neads_backend/internal/config"
	"neads_backend/internal/email"
	"neads_backend/internal/handlers"
	"neads_backend/internal/imageprocessor"
	"neads_backend/internal/logger"
	"neads_backend/internal/middleware"
	"neads_backend/internal/models"
	"neads_backend/internal/repositories"
	"neads_backend/internal/routes"
	"neads_backend/internal/services"
	"neads_backend/internal/storage"
	"neads_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := handlers.NewAppHandlers(validator.New(), serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		provider, err := email.NewSMTPProvider(email.Config{
			Host:       cfg.Email.SMTPHost,
			Port:       cfg.Email.SMTPPort,
			Username:   cfg.Email.SMTPUsername,
			Password:   cfg.Email.SMTPPassword,
			FromEmail:  cfg.Email.FromEmail,
			FromName:   cfg.Email.FromName,
			AppBaseURL: cfg.Email.AppBaseURL,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = provider
	} else {
		logger.Warn("SMTP is not configured, outgoing email is mocked")
		emailProvider = email.NewMockProvider()
	}

	userRepo := repositories.NewUserRepository()
	creatorRepo := repositories.NewCreatorRepository()
	taxonomyRepo := repositories.NewTaxonomyRepository()
	mediaRepo := repositories.NewMediaRepository()
	ratingRepo := repositories.NewRatingRepository()
	favoriteRepo := repositories.NewFavoriteRepository()

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)
	limits := services.UploadLimits{
		MaxImageSize:      cfg.Upload.MaxImageSize,
		MaxVideoSize:      cfg.Upload.MaxVideoSize,
		AllowedImageTypes: cfg.Upload.AllowedImageTypes,
		AllowedVideoTypes: cfg.Upload.AllowedVideoTypes,
	}

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, creatorRepo, emailProvider),
		UserService:     services.NewUserService(userRepo, creatorRepo, storageInstance),
		CreatorService:  services.NewCreatorService(creatorRepo, taxonomyRepo, favoriteRepo, storageInstance),
		SearchService:   services.NewSearchService(creatorRepo, favoriteRepo, storageInstance),
		GeoService:      services.NewGeoService(creatorRepo, favoriteRepo, storageInstance),
		MediaService:    services.NewMediaService(mediaRepo, creatorRepo, storageInstance, processor, limits),
		RatingService:   services.NewRatingService(ratingRepo, creatorRepo),
		FavoriteService: services.NewFavoriteService(favoriteRepo, creatorRepo, storageInstance),
		TaxonomyService: services.NewTaxonomyService(taxonomyRepo),
		EmailProvider:   emailProvider,
		Storage:         storageInstance,
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account on first start.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		FirstName:    "Admin",
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
