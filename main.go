package main

import (
	"log"

	api "contactbook-backend/cmd/api"
	authdomain "contactbook-backend/internal/auth/domain"
	authRepo "contactbook-backend/internal/auth/repository"
	"contactbook-backend/internal/auth/token"
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactdomain "contactbook-backend/internal/contact/domain"
	contactRepo "contactbook-backend/internal/contact/repository"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/pkg/config"
	"contactbook-backend/pkg/database"
	"contactbook-backend/pkg/imagestore"
	"contactbook-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &contactdomain.Contact{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	contactRepository := contactRepo.NewGormContactRepository(db)

	// Initialize token service and collaborators
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry, cfg.JWTEmailExpiry)
	mailService := mailer.New(cfg)

	avatarStore, err := imagestore.NewS3Store(cfg)
	if err != nil {
		log.Fatal("Failed to initialize avatar storage:", err)
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenService, mailService, avatarStore)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(contactRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, contactUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
