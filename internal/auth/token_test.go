package auth

import (
	"testing"
	"time"

	apperrors "org-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	tokens *TokenService
}

// SetupTest sets up the test suite
func (suite *TokenServiceTestSuite) SetupTest() {
	suite.tokens = NewTokenService("test-secret")
}

// TestGenerateAndValidate tests the round trip of issuing and verifying a token
func (suite *TokenServiceTestSuite) TestGenerateAndValidate() {
	userID := uuid.New()

	tokenString, err := suite.tokens.Generate(userID)
	suite.NoError(err)
	suite.NotEmpty(tokenString)

	claims, err := suite.tokens.Validate(tokenString)
	suite.NoError(err)
	suite.NotNil(claims)
	suite.Equal(userID, claims.UserID)
	suite.Equal(userID.String(), claims.Subject)
}

// TestGenerateSetsExpiry tests that issued tokens expire one hour out
func (suite *TokenServiceTestSuite) TestGenerateSetsExpiry() {
	tokenString, err := suite.tokens.Generate(uuid.New())
	suite.NoError(err)

	claims, err := suite.tokens.Validate(tokenString)
	suite.NoError(err)

	remaining := time.Until(claims.ExpiresAt.Time)
	suite.Greater(remaining, 55*time.Minute)
	suite.LessOrEqual(remaining, TokenTTL)
}

// TestValidateWrongSecret tests that a token signed with another secret is rejected
func (suite *TokenServiceTestSuite) TestValidateWrongSecret() {
	other := NewTokenService("other-secret")
	tokenString, err := other.Generate(uuid.New())
	suite.NoError(err)

	claims, err := suite.tokens.Validate(tokenString)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(claims)
}

// TestValidateMalformedToken tests that garbage input is rejected
func (suite *TokenServiceTestSuite) TestValidateMalformedToken() {
	claims, err := suite.tokens.Validate("not-a-jwt")
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(claims)
}

// TestValidateExpiredToken tests that an expired token is rejected
func (suite *TokenServiceTestSuite) TestValidateExpiredToken() {
	now := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	suite.NoError(err)

	parsed, err := suite.tokens.Validate(signed)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(parsed)
}

// TestValidateUnsignedToken tests that alg=none tokens are rejected
func (suite *TokenServiceTestSuite) TestValidateUnsignedToken() {
	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	suite.NoError(err)

	parsed, err := suite.tokens.Validate(signed)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(parsed)
}

// TestValidateMissingUserID tests that a token without a user ID is rejected
func (suite *TokenServiceTestSuite) TestValidateMissingUserID() {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	suite.NoError(err)

	parsed, err := suite.tokens.Validate(signed)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(parsed)
}

// TestTokenServiceTestSuite runs the test suite
func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
