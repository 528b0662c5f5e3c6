package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "org-portal-backend/internal/errors"
	"org-portal-backend/internal/mocks"
	"org-portal-backend/internal/service"
	"org-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAuthService *mocks.MockAuthServiceInterface
	handler         *AuthHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAuthService = mocks.NewMockAuthServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewAuthHandler(suite.mockAuthService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	authGroup := suite.httpSuite.Router.Group("/auth")
	{
		authGroup.POST("/register", suite.handler.Register)
		authGroup.POST("/login", suite.handler.Login)
	}
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// validationFailure builds the wrapped validator error the service layer produces
func validationFailure(req interface{}) error {
	err := validator.New().Struct(req)
	return fmt.Errorf("validation failed: %w", err)
}

// TestRegister tests a successful registration
func (suite *AuthHandlerTestSuite) TestRegister() {
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane.doe@test.com",
		"password":  "a-long-enough-password",
	}

	expectedResponse := &service.AuthResponse{
		AccessToken: "signed.jwt.token",
		User: service.UserProfile{
			UserID:    userID,
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@test.com",
		},
	}

	suite.mockAuthService.EXPECT().
		Register(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", requestBody)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated, "Registration successful")

	var response struct {
		Data service.AuthResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "signed.jwt.token", response.Data.AccessToken)
	assert.Equal(suite.T(), userID, response.Data.User.UserID)
}

// TestRegisterEmailInUse tests registering with an email that is taken
func (suite *AuthHandlerTestSuite) TestRegisterEmailInUse() {
	requestBody := map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "taken@test.com",
		"password":  "a-long-enough-password",
	}

	suite.mockAuthService.EXPECT().
		Register(gomock.Any()).
		Return(nil, apperrors.ErrEmailInUse).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Email already in use")
}

// TestRegisterValidationError tests that validator failures come back as 422
// with per-field detail
func (suite *AuthHandlerTestSuite) TestRegisterValidationError() {
	requestBody := map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "not-an-email",
		"password":  "short",
	}

	badReq := &service.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
		Password:  "short",
	}

	suite.mockAuthService.EXPECT().
		Register(gomock.Any()).
		Return(nil, validationFailure(badReq)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)

	var response struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Errors, 2)
}

// TestRegisterMalformedBody tests registering with a body that is not JSON
func (suite *AuthHandlerTestSuite) TestRegisterMalformedBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", "not-an-object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestLogin tests a successful login
func (suite *AuthHandlerTestSuite) TestLogin() {
	requestBody := map[string]interface{}{
		"email":    "jane.doe@test.com",
		"password": "a-long-enough-password",
	}

	expectedResponse := &service.AuthResponse{
		AccessToken: "signed.jwt.token",
		User: service.UserProfile{
			UserID: uuid.New(),
			Email:  "jane.doe@test.com",
		},
	}

	suite.mockAuthService.EXPECT().
		Login(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", requestBody)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, "Login successful")
}

// TestLoginInvalidCredentials tests that bad credentials return 401 with the
// same message for unknown email and wrong password
func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	requestBody := map[string]interface{}{
		"email":    "jane.doe@test.com",
		"password": "a-wrong-password",
	}

	suite.mockAuthService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication failed")
}

// TestLoginValidationError tests logging in with a malformed email
func (suite *AuthHandlerTestSuite) TestLoginValidationError() {
	requestBody := map[string]interface{}{
		"email":    "not-an-email",
		"password": "a-long-enough-password",
	}

	badReq := &service.LoginRequest{
		Email:    "not-an-email",
		Password: "a-long-enough-password",
	}

	suite.mockAuthService.EXPECT().
		Login(gomock.Any()).
		Return(nil, validationFailure(badReq)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
