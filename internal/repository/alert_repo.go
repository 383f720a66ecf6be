package repository

import (
	"time"

	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// EnsurePair creates alerts in both directions between two users inside one
// transaction. Idempotent: existing alerts are left untouched, so repeated
// acceptance attempts never produce duplicates.
func (r *AlertRepository) EnsurePair(a, b uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, pair := range [][2]uint{{a, b}, {b, a}} {
			var alert models.ProximityAlert
			err := tx.Where("user_id = ? AND friend_id = ?", pair[0], pair[1]).
				Attrs(models.ProximityAlert{
					UserID:              pair[0],
					FriendID:            pair[1],
					DistanceThresholdKm: domain.DefaultThresholdKm,
					Active:              true,
				}).
				FirstOrCreate(&alert).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ListActiveByUserID returns the user's active alerts with the watched friend
// preloaded for message rendering.
func (r *AlertRepository) ListActiveByUserID(userID uint) ([]models.ProximityAlert, error) {
	var list []models.ProximityAlert
	err := r.db.Where("user_id = ? AND active = ?", userID, true).
		Preload("Friend").Find(&list).Error
	return list, err
}

func (r *AlertRepository) ListByUserID(userID uint) ([]models.ProximityAlert, error) {
	var list []models.ProximityAlert
	err := r.db.Where("user_id = ?", userID).Preload("Friend").Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *AlertRepository) GetByID(id uint) (*models.ProximityAlert, error) {
	var alert models.ProximityAlert
	err := r.db.First(&alert, id).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepository) Update(alert *models.ProximityAlert) error {
	return r.db.Save(alert).Error
}

// Touch records when the alert last produced a notification.
func (r *AlertRepository) Touch(id uint, at time.Time) error {
	return r.db.Model(&models.ProximityAlert{}).Where("id = ?", id).
		Update("last_triggered_at", at).Error
}
