package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diapredict/diapredict/internal/predictor"
)

type MetricsHandler struct {
	svc *predictor.Service
}

func NewMetricsHandler(svc *predictor.Service) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

// Metrics returns the full persisted selection record: feature order, winner,
// display names and per-model evaluation metrics.
func (h *MetricsHandler) Metrics(c *gin.Context) {
	if !h.svc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metadata not loaded"})
		return
	}

	c.JSON(http.StatusOK, h.svc.Metadata())
}
