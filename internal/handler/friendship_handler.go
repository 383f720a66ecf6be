package handler

import (
	"net/http"
	"strconv"

	"waypoint/internal/middleware"
	"waypoint/internal/repository"
	"waypoint/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendshipHandler struct {
	svc            *service.FriendshipService
	friendshipRepo *repository.FriendshipRepository
}

func NewFriendshipHandler(svc *service.FriendshipService, friendshipRepo *repository.FriendshipRepository) *FriendshipHandler {
	return &FriendshipHandler{svc: svc, friendshipRepo: friendshipRepo}
}

func (h *FriendshipHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		AddresseeID uint `json:"addressee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fr, err := h.svc.Request(userID, req.AddresseeID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": fr})
}

func (h *FriendshipHandler) Accept(c *gin.Context) {
	h.respond(c, true)
}

func (h *FriendshipHandler) Decline(c *gin.Context) {
	h.respond(c, false)
}

func (h *FriendshipHandler) respond(c *gin.Context, accept bool) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	fr, err := h.svc.Respond(uint(id), userID, accept)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": fr})
}

func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID := middleware.GetUserID(c)
	friends, err := h.svc.ListFriends(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

func (h *FriendshipHandler) ListPending(c *gin.Context) {
	userID := middleware.GetUserID(c)
	pending, err := h.friendshipRepo.ListPendingForAddressee(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": pending})
}
