package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panicRouter(env string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(env))
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})
	return router
}

type recoveredResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func TestRecoveryMiddlewareRendersEnvelope(t *testing.T) {
	router := panicRouter("development")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp recoveredResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Internal Server Error", resp.Message)
	assert.Equal(t, "kaboom", resp.Error)
}

func TestRecoveryMiddlewareHidesDetailInProduction(t *testing.T) {
	router := panicRouter("production")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp recoveredResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal Server Error", resp.Message)
	assert.Empty(t, resp.Error)
}

func TestLoggingMiddlewareInjectsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggingMiddleware())

	var requestID string
	router.GET("/probe", func(c *gin.Context) {
		requestID = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, requestID, 8)
}
