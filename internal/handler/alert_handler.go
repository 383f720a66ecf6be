package handler

import (
	"net/http"
	"strconv"

	"waypoint/internal/middleware"
	"waypoint/internal/service"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alerts *service.AlertService
}

func NewAlertHandler(alerts *service.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

func (h *AlertHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.alerts.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": list})
}

// Update changes the threshold or active flag of one of the caller's alerts.
func (h *AlertHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}
	var req struct {
		DistanceThresholdKm *float64 `json:"distance_threshold_km"`
		Active              *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert, err := h.alerts.Update(uint(id), userID, req.DistanceThresholdKm, req.Active)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}
