package service

import (
	"fmt"
	"log"
	"math"
	"time"

	"waypoint/internal/domain"
	"waypoint/internal/models"
	"waypoint/pkg/geo"
)

// ProfileStore is the profile access the evaluator needs.
type ProfileStore interface {
	GetOrCreate(userID uint) (*models.Profile, error)
	GetByUserID(userID uint) (*models.Profile, error)
	UpdateCoordinates(userID uint, lat, lng float64, at time.Time) (*models.Profile, error)
}

// AlertStore is the alert access the evaluator needs. ListActiveByUserID must
// return alerts with Friend populated.
type AlertStore interface {
	ListActiveByUserID(userID uint) ([]models.ProximityAlert, error)
	Touch(alertID uint, at time.Time) error
}

// NotificationStore persists notifications. CreateIfNoneSince must be atomic
// per (user, friend) pair: it either creates the row or reports that one
// already exists inside the window, never both under concurrency.
type NotificationStore interface {
	CreateIfNoneSince(n *models.ProximityNotification, since time.Time) (bool, error)
}

// ProximityService evaluates a user's active alerts whenever their location
// changes and emits deduplicated notifications.
type ProximityService struct {
	profiles      ProfileStore
	alerts        AlertStore
	notifications NotificationStore
}

func NewProximityService(profiles ProfileStore, alerts AlertStore, notifications NotificationStore) *ProximityService {
	return &ProximityService{profiles: profiles, alerts: alerts, notifications: notifications}
}

// Evaluate stores the user's new position and walks their active alerts,
// returning the notifications created by this call.
//
// The coordinate write always happens, even when evaluation is skipped. A
// failure on any single alert (missing or ineligible target profile) skips
// that alert only; one friend's broken profile must not block the others.
func (s *ProximityService) Evaluate(userID uint, lat, lng float64) ([]models.ProximityNotification, error) {
	if err := geo.Validate(lat, lng); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOperation, err)
	}

	prev, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	prevLat, prevLng := prev.Latitude, prev.Longitude

	now := time.Now()
	profile, err := s.profiles.UpdateCoordinates(userID, lat, lng, now)
	if err != nil {
		return nil, fmt.Errorf("update coordinates: %w", err)
	}

	if !profile.NotificationsEnabled {
		return nil, nil
	}
	if prevLat != nil && prevLng != nil &&
		math.Abs(*prevLat-lat) <= domain.MinMoveDegrees &&
		math.Abs(*prevLng-lng) <= domain.MinMoveDegrees {
		// Position barely changed since the last fix; nothing new to evaluate.
		return nil, nil
	}

	alerts, err := s.alerts.ListActiveByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	var emitted []models.ProximityNotification
	for _, alert := range alerts {
		target, err := s.profiles.GetByUserID(alert.FriendID)
		if err != nil || target == nil {
			continue
		}
		if !target.SharingEnabled || !target.HasCoordinates() {
			continue
		}
		dist := geo.HaversineKm(lat, lng, *target.Latitude, *target.Longitude)
		if dist > alert.DistanceThresholdKm {
			continue
		}
		rounded := geo.RoundKm(dist)
		n := &models.ProximityNotification{
			UserID:     userID,
			FriendID:   alert.FriendID,
			DistanceKm: rounded,
			Message:    fmt.Sprintf("%s is %.2fkm away from you!", alert.Friend.Username, rounded),
		}
		created, err := s.notifications.CreateIfNoneSince(n, now.Add(-domain.NotificationCooldown))
		if err != nil {
			log.Printf("[proximity] notify user=%d friend=%d: %v", userID, alert.FriendID, err)
			continue
		}
		if !created {
			// Still inside the cooldown window for this pair.
			continue
		}
		if err := s.alerts.Touch(alert.ID, now); err != nil {
			log.Printf("[proximity] touch alert=%d: %v", alert.ID, err)
		}
		emitted = append(emitted, *n)
	}
	return emitted, nil
}
