package handler

import (
	"net/http"
	"strconv"

	"waypoint/internal/service"

	"github.com/gin-gonic/gin"
)

// MarkerHandler serves the unauthenticated map-marker endpoints. Markers have
// no owner, so anyone can add or remove them.
type MarkerHandler struct {
	markers *service.MarkerService
}

func NewMarkerHandler(markers *service.MarkerService) *MarkerHandler {
	return &MarkerHandler{markers: markers}
}

func (h *MarkerHandler) List(c *gin.Context) {
	list, err := h.markers.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"markers": list})
}

func (h *MarkerHandler) Create(c *gin.Context) {
	var req struct {
		Latitude    *float64 `json:"latitude" binding:"required"`
		Longitude   *float64 `json:"longitude" binding:"required"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing coordinates"})
		return
	}
	m, err := h.markers.Create(*req.Latitude, *req.Longitude, req.Title, req.Description)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"id":        m.ID,
		"latitude":  m.Latitude,
		"longitude": m.Longitude,
	})
}

func (h *MarkerHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid marker id"})
		return
	}
	if err := h.markers.Delete(uint(id)); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MarkerHandler) Clear(c *gin.Context) {
	if err := h.markers.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "clear failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
