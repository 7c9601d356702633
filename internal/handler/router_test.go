package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Uptime    int    `json:"uptime"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "UP", health.Status)
	assert.NotEmpty(t, health.Timestamp)
	assert.GreaterOrEqual(t, health.Uptime, 0)
}

func TestIndexListsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Products API", resp.Message)

	var data struct {
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "POST /api/products", data.Endpoints["createProduct"])
	assert.Equal(t, "GET /health", data.Endpoints["health"])
}

func TestUnknownRouteEnvelope(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Route /api/nope not found", resp.Message)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodOptions, "/api/products", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}
