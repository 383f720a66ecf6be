package handler

import (
	"net/http"

	"waypoint/internal/middleware"
	"waypoint/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Search finds users by username substring and annotates each hit with the
// friendship status relative to the caller.
func (h *UserHandler) Search(c *gin.Context) {
	userID := middleware.GetUserID(c)
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"users": []gin.H{}})
		return
	}
	results, err := h.users.Search(userID, q, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": results, "query": q})
}
