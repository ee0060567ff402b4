package repository

import (
	"time"

	"storefront-backend/internal/product/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormProductRepository implements ProductRepository using GORM
type gormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based ProductRepository
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) Create(product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	return r.db.Create(product).Error
}

func (r *gormProductRepository) FindByUserID(userID string) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0)
	err := r.db.Where("user_id = ?", userID).Find(&products).Error
	return products, err
}

// DeleteByIDAndUserID removes the product only if it belongs to the user.
// No rows matching is not an error; the delete is idempotent.
func (r *gormProductRepository) DeleteByIDAndUserID(id, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Product{}).Error
}
