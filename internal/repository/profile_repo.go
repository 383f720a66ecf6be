package repository

import (
	"time"

	"waypoint/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the user's profile, creating it with default state
// (sharing off, notifications on, no coordinates) when missing.
func (r *ProfileRepository) GetOrCreate(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Where("user_id = ?", userID).
		Attrs(models.Profile{UserID: userID, NotificationsEnabled: true}).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByUserID(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateCoordinates sets the profile's position and update timestamp
// together, creating the profile first when needed.
func (r *ProfileRepository) UpdateCoordinates(userID uint, lat, lng float64, at time.Time) (*models.Profile, error) {
	p, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	p.Latitude = &lat
	p.Longitude = &lng
	p.LastLocationUpdate = &at
	if err := r.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ToggleSharing flips the sharing opt-in and returns the new state.
func (r *ProfileRepository) ToggleSharing(userID uint) (bool, error) {
	p, err := r.GetOrCreate(userID)
	if err != nil {
		return false, err
	}
	p.SharingEnabled = !p.SharingEnabled
	if err := r.db.Model(p).Update("sharing_enabled", p.SharingEnabled).Error; err != nil {
		return false, err
	}
	return p.SharingEnabled, nil
}

// ToggleNotifications flips the notification opt-in and returns the new state.
func (r *ProfileRepository) ToggleNotifications(userID uint) (bool, error) {
	p, err := r.GetOrCreate(userID)
	if err != nil {
		return false, err
	}
	p.NotificationsEnabled = !p.NotificationsEnabled
	if err := r.db.Model(p).Update("notifications_enabled", p.NotificationsEnabled).Error; err != nil {
		return false, err
	}
	return p.NotificationsEnabled, nil
}
