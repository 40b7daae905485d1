package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler handles health and readiness endpoints.
type HealthHandler struct {
	logger *logrus.Logger
	ready  func() bool
}

// NewHealthHandler creates a new health handler. ready reports whether the
// service can serve ratings.
func NewHealthHandler(logger *logrus.Logger, ready func() bool) *HealthHandler {
	return &HealthHandler{logger: logger, ready: ready}
}

// GetHealth returns the basic health status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "nfelounits",
		"timestamp": time.Now(),
	})
}

// GetReady returns the readiness status. The model runs in-process, so
// readiness only requires that game data was loaded and a run completed.
func (h *HealthHandler) GetReady(c *gin.Context) {
	if h.ready != nil && !h.ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not_ready",
			"service":   "nfelounits",
			"timestamp": time.Now(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"service":   "nfelounits",
		"timestamp": time.Now(),
	})
}
