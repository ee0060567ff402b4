package usecase

import (
	"errors"
	"os"

	authdomain "storefront-backend/internal/auth/domain"
	authdto "storefront-backend/internal/auth/dto"
	"storefront-backend/internal/auth/repository"
	"storefront-backend/internal/auth/token"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound indicates the user behind a valid token no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup hashes the password and stores the new user. Email uniqueness is
// not enforced; lookup by email returns the first match.
func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdomain.User, error) {
	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Error looking up user by email")
		return nil, err
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: signed}, nil
}

// VerifyToken returns the user id embedded in a valid token.
func (u *authUsecase) VerifyToken(tokenString string) (string, error) {
	return u.tokens.Verify(tokenString)
}

func (u *authUsecase) GetUserByID(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
