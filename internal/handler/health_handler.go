package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeCom0/InvoiceAIService/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	analyzerCfg *config.AnalyzerConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(analyzerCfg *config.AnalyzerConfig) *HealthHandler {
	return &HealthHandler{analyzerCfg: analyzerCfg}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.analyzerCfg.Validate(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "analyzer not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
