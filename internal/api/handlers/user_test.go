package handlers

import (
	"net/http"
	"testing"

	apperrors "org-portal-backend/internal/errors"
	"org-portal-backend/internal/mocks"
	"org-portal-backend/internal/service"
	"org-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
	callerID        uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.callerID = uuid.New()

	// Create handler with mock service
	suite.handler = NewUserHandler(suite.mockUserService)

	// Setup HTTP test suite with an authenticated caller on the context
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Next()
	})

	// Register routes
	suite.httpSuite.Router.GET("/api/users/:id", suite.handler.GetUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetUser tests retrieving a visible user's profile
func (suite *UserHandlerTestSuite) TestGetUser() {
	targetID := uuid.New()
	profile := &service.UserProfile{
		UserID:    targetID,
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john.smith@test.com",
	}

	suite.mockUserService.EXPECT().
		GetVisibleUser(targetID, suite.callerID).
		Return(profile, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/"+targetID.String(), nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, "User retrieved successfully")

	var response struct {
		Data service.UserProfile `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), targetID, response.Data.UserID)
	assert.Equal(suite.T(), "john.smith@test.com", response.Data.Email)
}

// TestGetUserNotFound tests that a hidden or missing user reads as not found
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	targetID := uuid.New()

	suite.mockUserService.EXPECT().
		GetVisibleUser(targetID, suite.callerID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/"+targetID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "User not found")
}

// TestGetUserBadID tests that a non-UUID path segment reads as not found
func (suite *UserHandlerTestSuite) TestGetUserBadID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "User not found")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
