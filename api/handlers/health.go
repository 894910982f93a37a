package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diapredict/diapredict/internal/predictor"
)

type HealthHandler struct {
	svc *predictor.Service
}

func NewHealthHandler(svc *predictor.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

type HealthResponse struct {
	OK        bool   `json:"ok"`
	BestModel string `json:"best_model,omitempty"`
}

// Health reports 200 with the winner's display name once artifacts are
// loaded, 503 otherwise. The server normally refuses to start without them,
// but the handler guards anyway so tests can exercise the not-ready path.
func (h *HealthHandler) Health(c *gin.Context) {
	if !h.svc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		OK:        true,
		BestModel: h.svc.BestModelName(),
	})
}
