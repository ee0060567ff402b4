// Package token issues and verifies signed bearer tokens. Tokens are
// stateless: validity is purely a function of signature and expiry at
// verification time, with no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a bad signature or malformed payload.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the standard registered claims plus the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Service signs and verifies tokens with a process-wide secret.
type Service struct {
	secret []byte
	expiry time.Duration
}

// NewService creates a token service. The secret and expiry are explicit
// constructor parameters, not ambient globals.
func NewService(secret string, expiry time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs an HS256 token encoding the user id, valid for the
// configured expiry from now.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		UserID: userID,
	})
	return tok.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded user id.
// Expired tokens yield ErrTokenExpired; any other failure ErrTokenInvalid.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !tok.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}

	return claims.UserID, nil
}
