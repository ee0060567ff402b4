package repository

import authdomain "storefront-backend/internal/auth/domain"

// UserRepository defines the credential store operations.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
}
