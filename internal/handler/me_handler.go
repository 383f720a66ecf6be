package handler

import (
	"net/http"

	"waypoint/internal/middleware"
	"waypoint/internal/repository"
	"waypoint/internal/service"
	"waypoint/pkg/geo"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	profileRepo    *repository.ProfileRepository
	friendshipRepo *repository.FriendshipRepository
	friendshipSvc  *service.FriendshipService
}

func NewMeHandler(profileRepo *repository.ProfileRepository, friendshipRepo *repository.FriendshipRepository, friendshipSvc *service.FriendshipService) *MeHandler {
	return &MeHandler{profileRepo: profileRepo, friendshipRepo: friendshipRepo, friendshipSvc: friendshipSvc}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	p, err := h.profileRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

func (h *MeHandler) ToggleSharing(c *gin.Context) {
	userID := middleware.GetUserID(c)
	enabled, err := h.profileRepo.ToggleSharing(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sharing_enabled": enabled})
}

func (h *MeHandler) ToggleNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	enabled, err := h.profileRepo.ToggleNotifications(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications_enabled": enabled})
}

// Dashboard returns the caller's sharing friends with their distance from the
// caller, plus pending incoming friend requests.
func (h *MeHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)
	me, err := h.profileRepo.GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	friends, err := h.friendshipSvc.ListFriends(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "friends lookup failed"})
		return
	}
	type friendEntry struct {
		ID         uint     `json:"id"`
		Username   string   `json:"username"`
		Latitude   float64  `json:"latitude"`
		Longitude  float64  `json:"longitude"`
		DistanceKm *float64 `json:"distance_km"`
	}
	entries := make([]friendEntry, 0, len(friends))
	for _, f := range friends {
		p, err := h.profileRepo.GetByUserID(f.ID)
		if err != nil || !p.SharingEnabled || !p.HasCoordinates() {
			continue
		}
		e := friendEntry{ID: f.ID, Username: f.Username, Latitude: *p.Latitude, Longitude: *p.Longitude}
		if me.HasCoordinates() {
			d := geo.RoundKm(geo.HaversineKm(*me.Latitude, *me.Longitude, *p.Latitude, *p.Longitude))
			e.DistanceKm = &d
		}
		entries = append(entries, e)
	}
	pending, err := h.friendshipRepo.ListPendingForAddressee(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "requests lookup failed"})
		return
	}
	type pendingEntry struct {
		ID                uint   `json:"id"`
		RequesterID       uint   `json:"requester_id"`
		RequesterUsername string `json:"requester_username"`
	}
	pendingOut := make([]pendingEntry, 0, len(pending))
	for _, fr := range pending {
		pendingOut = append(pendingOut, pendingEntry{
			ID:                fr.ID,
			RequesterID:       fr.RequesterID,
			RequesterUsername: fr.Requester.Username,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":          me,
		"friends":          entries,
		"pending_requests": pendingOut,
	})
}
