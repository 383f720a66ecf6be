package handler

import (
	"net/http"

	"waypoint/internal/middleware"
	"waypoint/internal/service"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	proximity *service.ProximityService
}

func NewLocationHandler(proximity *service.ProximityService) *LocationHandler {
	return &LocationHandler{proximity: proximity}
}

// UpdateLocation stores the caller's position and evaluates their proximity
// alerts in the same request.
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	notifications, err := h.proximity.Evaluate(userID, *req.Latitude, *req.Longitude)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"notifications_sent": len(notifications),
	})
}
