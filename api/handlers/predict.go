package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diapredict/diapredict/internal/predictor"
	"github.com/diapredict/diapredict/internal/schema"
)

type PredictHandler struct {
	svc *predictor.Service
}

func NewPredictHandler(svc *predictor.Service) *PredictHandler {
	return &PredictHandler{svc: svc}
}

// Predict scores one request with the winning pipeline. Malformed input is a
// 400 isolated to this request; a classifier failure is a 500 — there is no
// fallback probability.
func (h *PredictHandler) Predict(c *gin.Context) {
	if !h.svc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
		return
	}

	var req schema.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	pred, err := h.svc.Predict(req.Vector())
	if err != nil {
		if errors.Is(err, predictor.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, pred)
}
