package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billtracker/internal/models"
	"billtracker/internal/services"
)

// TrackingHandler handles budget tracking requests.
type TrackingHandler struct {
	trackingService services.TrackingServicer
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService services.TrackingServicer) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// CreateTracking appends one actual-spend observation.
func (h *TrackingHandler) CreateTracking(c *gin.Context) {
	var tracking models.Tracking
	if err := c.ShouldBindJSON(&tracking); err != nil {
		respondInternalError(c, err)
		return
	}

	if err := h.trackingService.CreateTracking(&tracking); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tracking created successfully"})
}

// GetTrackingByMonth returns the budget reconciliation for a period. The
// month "current" resolves to the previous calendar month.
func (h *TrackingHandler) GetTrackingByMonth(c *gin.Context) {
	data, err := h.trackingService.GetTrackingByMonth(c.Param("month"))
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
