package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ndagen/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	templates service.TemplateService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(templates service.TemplateService) *HealthHandler {
	return &HealthHandler{templates: templates}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.templates == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "template not loaded"})
		return
	}
	if status := h.templates.Status(); status == nil || !status.PlaceholdersReady {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "template placeholders missing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
