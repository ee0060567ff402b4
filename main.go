package main

import (
	"os"

	api "storefront-backend/cmd/api"
	authdomain "storefront-backend/internal/auth/domain"
	authRepo "storefront-backend/internal/auth/repository"
	"storefront-backend/internal/auth/token"
	authUsecase "storefront-backend/internal/auth/usecase"
	productdomain "storefront-backend/internal/product/domain"
	productRepo "storefront-backend/internal/product/repository"
	productUsecase "storefront-backend/internal/product/usecase"
	"storefront-backend/pkg/config"
	"storefront-backend/pkg/database"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &productdomain.Product{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	productRepository := productRepo.NewGormProductRepository(db)

	// Token service holds the signing secret and expiry explicitly
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenService)
	productUsecaseInstance := productUsecase.NewProductUsecase(productRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, productUsecaseInstance, cfg)

	logger.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
