package auth

import (
	"fmt"
	"time"

	apperrors "org-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = time.Hour

// Claims represents JWT token claims
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens. It holds no state
// beyond the signing secret.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate creates a signed JWT for the user, expiring in one hour
func (s *TokenService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "org-portal-backend",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a JWT and returns its claims. Bad signatures, wrong
// algorithms, malformed tokens and expired tokens all fail.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
