package usecase

import (
	authdomain "storefront-backend/internal/auth/domain"
	authdto "storefront-backend/internal/auth/dto"
)

// AuthUsecase defines authentication operations
type AuthUsecase interface {
	Signup(req *authdto.SignupRequest) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	VerifyToken(tokenString string) (string, error)
	GetUserByID(id string) (*authdomain.User, error)
}
