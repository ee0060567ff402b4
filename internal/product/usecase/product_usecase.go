package usecase

import (
	"os"

	"storefront-backend/internal/product/domain"
	"storefront-backend/internal/product/repository"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// productUsecase implements ProductUsecase interface
type productUsecase struct {
	productRepo repository.ProductRepository
}

// NewProductUsecase creates a new instance of productUsecase
func NewProductUsecase(productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
	}
}

// AddProduct stamps the owner id and persists the product.
func (u *productUsecase) AddProduct(userID, name string, price float64) (*domain.Product, error) {
	product := &domain.Product{
		Name:   name,
		Price:  price,
		UserID: userID,
	}

	if err := u.productRepo.Create(product); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Error creating product")
		return nil, err
	}

	return product, nil
}

func (u *productUsecase) GetUserProducts(userID string) ([]*domain.Product, error) {
	products, err := u.productRepo.FindByUserID(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Error listing products")
		return nil, err
	}
	return products, nil
}

// DeleteProduct removes the product if it belongs to the user. Deleting a
// missing id or another user's product succeeds without effect.
func (u *productUsecase) DeleteProduct(id, userID string) error {
	if err := u.productRepo.DeleteByIDAndUserID(id, userID); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Str("product_id", id).Msg("Error deleting product")
		return err
	}
	return nil
}
