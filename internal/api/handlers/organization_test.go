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

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
	callerID                uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.callerID = uuid.New()

	// Create handler with mock service
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	// Setup HTTP test suite with an authenticated caller on the context
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Next()
	})

	// Register routes
	orgs := suite.httpSuite.Router.Group("/api/organizations")
	{
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("/:orgId", suite.handler.GetOrganization)
		orgs.POST("/:orgId/users", suite.handler.AddMember)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":        "Acme Corp",
		"description": "Test description",
	}

	expectedResponse := &service.OrganizationResponse{
		OrgID:       orgID,
		Name:        "Acme Corp",
		Description: "Test description",
	}

	suite.mockOrganizationService.EXPECT().
		Create(suite.callerID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/organizations", requestBody)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated, "Organization created successfully")

	var response struct {
		Data service.OrganizationResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), orgID, response.Data.OrgID)
	assert.Equal(suite.T(), "Acme Corp", response.Data.Name)
}

// TestCreateOrganizationValidationError tests creating an organization without a description
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationValidationError() {
	requestBody := map[string]interface{}{
		"name": "Acme Corp",
	}

	badReq := &service.CreateOrganizationRequest{Name: "Acme Corp"}

	suite.mockOrganizationService.EXPECT().
		Create(suite.callerID, gomock.Any()).
		Return(nil, validationFailure(badReq)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestListOrganizations tests listing the caller's organizations
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	orgs := []service.OrganizationResponse{
		{OrgID: uuid.New(), Name: "First Org", Description: "first"},
		{OrgID: uuid.New(), Name: "Second Org", Description: "second"},
	}

	suite.mockOrganizationService.EXPECT().
		ListForUser(suite.callerID).
		Return(orgs, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/organizations", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, "Organizations retrieved successfully")

	var response struct {
		Data struct {
			Organizations []service.OrganizationResponse `json:"organizations"`
		} `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Data.Organizations, 2)
}

// TestListOrganizationsEmpty tests that no memberships yields 200 with an empty list
func (suite *OrganizationHandlerTestSuite) TestListOrganizationsEmpty() {
	suite.mockOrganizationService.EXPECT().
		ListForUser(suite.callerID).
		Return([]service.OrganizationResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Data struct {
			Organizations []service.OrganizationResponse `json:"organizations"`
		} `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Empty(suite.T(), response.Data.Organizations)
}

// TestGetOrganization tests retrieving an organization by ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()
	expectedResponse := &service.OrganizationResponse{
		OrgID:       orgID,
		Name:        "Acme Corp",
		Description: "Test description",
	}

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/organizations/"+orgID.String(), nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, "Organization retrieved successfully")
}

// TestGetOrganizationNotFound tests retrieving a non-existent organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/organizations/"+orgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Organization not found")
}

// TestGetOrganizationBadID tests that a non-UUID path segment reads as not found
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationBadID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/organizations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Organization not found")
}

// TestAddMember tests adding a user to an organization
func (suite *OrganizationHandlerTestSuite) TestAddMember() {
	orgID := uuid.New()
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"userId": userID.String(),
	}

	expectedResponse := &service.MembershipResponse{
		ID:     uuid.New(),
		UserID: userID,
		OrgID:  orgID,
	}

	suite.mockOrganizationService.EXPECT().
		AddMember(orgID, userID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/organizations/"+orgID.String()+"/users", requestBody)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated, "User added to organization successfully")

	var response struct {
		Data service.MembershipResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), userID, response.Data.UserID)
	assert.Equal(suite.T(), orgID, response.Data.OrgID)
}

// TestAddMemberOrganizationNotFound tests adding to a non-existent organization
func (suite *OrganizationHandlerTestSuite) TestAddMemberOrganizationNotFound() {
	orgID := uuid.New()
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"userId": userID.String(),
	}

	suite.mockOrganizationService.EXPECT().
		AddMember(orgID, userID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/organizations/"+orgID.String()+"/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestAddMemberUserNotFound tests adding a non-existent user
func (suite *OrganizationHandlerTestSuite) TestAddMemberUserNotFound() {
	orgID := uuid.New()
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"userId": userID.String(),
	}

	suite.mockOrganizationService.EXPECT().
		AddMember(orgID, userID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/organizations/"+orgID.String()+"/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestAddMemberMissingUserID tests adding a member without a userId in the body
func (suite *OrganizationHandlerTestSuite) TestAddMemberMissingUserID() {
	orgID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("POST", "/api/organizations/"+orgID.String()+"/users", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
