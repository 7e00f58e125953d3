package main

import (
	"log"
	"time"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/infrastructure/postgres"
	httphandlers "fintrack/internal/interfaces/http"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	TransactionHandler *httphandlers.TransactionHandler
	DashboardHandler   *httphandlers.DashboardHandler

	// Auth
	JWT      *auth.JWT
	UserRepo *postgres.UserRepository
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	// Initialize domain services
	transactionService := transaction.NewService(transactionRepo, time.Now)

	// Initialize auth components
	jwt := auth.NewJWT(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Initialize handlers
	authHandler := httphandlers.NewAuthHandler(userRepo, jwt)
	transactionHandler := httphandlers.NewTransactionHandler(transactionService)
	dashboardHandler := httphandlers.NewDashboardHandler(transactionService)

	return &Dependencies{
		DB:                 db,
		AuthHandler:        authHandler,
		TransactionHandler: transactionHandler,
		DashboardHandler:   dashboardHandler,
		JWT:                jwt,
		UserRepo:           userRepo,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
