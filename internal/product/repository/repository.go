package repository

import "storefront-backend/internal/product/domain"

// ProductRepository defines the owner-scoped resource store operations.
// Every read and delete is filtered by the owning user id.
type ProductRepository interface {
	Create(product *domain.Product) error
	FindByUserID(userID string) ([]*domain.Product, error)
	DeleteByIDAndUserID(id, userID string) error
}
