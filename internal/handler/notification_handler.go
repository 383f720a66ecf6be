package handler

import (
	"net/http"
	"strconv"

	"waypoint/internal/middleware"
	"waypoint/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns notifications newest first. It never changes read state;
// clients that want the unread badge cleared call MarkAllRead explicitly.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	unreadOnly := c.Query("unread") == "true"
	list, err := h.notifications.List(userID, unreadOnly, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// Poll returns up to 10 unread notifications for lightweight polling clients,
// each carrying the peer's username.
func (h *NotificationHandler) Poll(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.notifications.Poll(userID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, n := range list {
		out = append(out, gin.H{
			"id":            n.ID,
			"friend_id":     n.FriendID,
			"peer_username": n.Friend.Username,
			"distance_km":   n.DistanceKm,
			"message":       n.Message,
			"created_at":    n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}
	if err := h.notifications.MarkRead(uint(id), userID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.notifications.MarkAllRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
