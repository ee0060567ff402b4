package usecase

import "storefront-backend/internal/product/domain"

// ProductUsecase defines product business logic
type ProductUsecase interface {
	AddProduct(userID, name string, price float64) (*domain.Product, error)
	GetUserProducts(userID string) ([]*domain.Product, error)
	DeleteProduct(id, userID string) error
}
