package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	return &HTTPTestSuite{
		Router: router,
	}
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error envelope with a specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["message"], expectedMessage)
	}
	assert.EqualValues(t, expectedStatus, errorResponse["statusCode"])
}

// AssertSuccessResponse asserts a success envelope with a specific message
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var response map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "success", response["status"])
	if expectedMessage != "" {
		assert.Equal(t, expectedMessage, response["message"])
	}
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}

// CreateTestGinContext creates a test Gin context
func CreateTestGinContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	return ctx, recorder
}

// SetJSONBody sets JSON body for a Gin context
func SetJSONBody(ctx *gin.Context, body interface{}) {
	jsonBytes, _ := json.Marshal(body)
	ctx.Request = httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBytes))
	ctx.Request.Header.Set("Content-Type", "application/json")
}

// SetURLParam sets URL parameter for a Gin context
func SetURLParam(ctx *gin.Context, key, value string) {
	ctx.Params = append(ctx.Params, gin.Param{Key: key, Value: value})
}
