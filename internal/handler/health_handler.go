package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth handles GET /health. The response is a bare status object, not
// the API envelope, so probes stay decoupled from the API contract.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "UP",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    int(time.Since(startTime).Seconds()),
	})
}
