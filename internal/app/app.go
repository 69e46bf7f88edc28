package app

import (
	"fmt"

	"github.com/innovelous/agency/internal/config"
	"github.com/innovelous/agency/internal/db"
	"github.com/innovelous/agency/internal/markdown"
	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/service"
	"github.com/innovelous/agency/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Storage          storage.Storage
	AuthService      *service.AuthService
	PortfolioService *service.PortfolioService
	CategoryService  *service.CategoryService
	ExpertiseService *service.ExpertiseService
	DownloadService  *service.DownloadService
	OrderService     *service.OrderService
	EmailService     *service.EmailService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	projectRepository := repository.NewProjectRepository(database)
	categoryRepository := repository.NewCategoryRepository(database)
	serviceRepository := repository.NewServiceRepository(database)
	downloadRepository := repository.NewDownloadRepository(database)
	orderRepository := repository.NewOrderRepository(database)
	settingsRepository := repository.NewSettingsRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	renderer := markdown.NewRenderer()

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.SupportEmail,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		settingsRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.SessionExpiry,
	)
	portfolioService := service.NewPortfolioService(projectRepository, fileStorage, renderer)
	categoryService := service.NewCategoryService(categoryRepository)
	expertiseService := service.NewExpertiseService(serviceRepository, renderer)
	downloadService := service.NewDownloadService(downloadRepository, fileStorage)
	orderService := service.NewOrderService(orderRepository, fileStorage, emailService)

	return &App{
		Cfg:              cfg,
		DB:               database,
		Storage:          fileStorage,
		AuthService:      authService,
		PortfolioService: portfolioService,
		CategoryService:  categoryService,
		ExpertiseService: expertiseService,
		DownloadService:  downloadService,
		OrderService:     orderService,
		EmailService:     emailService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
