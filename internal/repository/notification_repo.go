package repository

import (
	"errors"
	"fmt"
	"time"

	"waypoint/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateIfNoneSince inserts the notification unless one already exists for
// the same (user, friend) pair created at or after since. The check and the
// insert run on one pinned connection under a MySQL advisory lock keyed by
// the pair, so concurrent evaluations cannot produce duplicates inside the
// cooldown window. Returns whether a row was created.
func (r *NotificationRepository) CreateIfNoneSince(n *models.ProximityNotification, since time.Time) (bool, error) {
	created := false
	key := fmt.Sprintf("proximity_notification:%d:%d", n.UserID, n.FriendID)
	err := r.db.Connection(func(tx *gorm.DB) error {
		var got int
		if err := tx.Raw("SELECT GET_LOCK(?, 5)", key).Scan(&got).Error; err != nil {
			return err
		}
		if got != 1 {
			return errors.New("advisory lock timeout")
		}
		defer tx.Exec("SELECT RELEASE_LOCK(?)", key)

		var count int64
		err := tx.Model(&models.ProximityNotification{}).
			Where("user_id = ? AND friend_id = ? AND created_at >= ?", n.UserID, n.FriendID, since).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(n).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// ListByUserID returns the user's notifications newest first. unreadOnly
// restricts the list to unread rows. Listing never mutates read state.
func (r *NotificationRepository) ListByUserID(userID uint, unreadOnly bool, limit int) ([]models.ProximityNotification, error) {
	q := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var list []models.ProximityNotification
	err := q.Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

// ListUnreadWithFriend returns unread notifications newest first with the
// Friend relation populated, for responses that name the peer.
func (r *NotificationRepository) ListUnreadWithFriend(userID uint, limit int) ([]models.ProximityNotification, error) {
	var list []models.ProximityNotification
	err := r.db.Where("user_id = ? AND is_read = ?", userID, false).
		Preload("Friend").Order("created_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *NotificationRepository) GetByID(id uint) (*models.ProximityNotification, error) {
	var n models.ProximityNotification
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) SetRead(id uint) error {
	return r.db.Model(&models.ProximityNotification{}).Where("id = ?", id).
		Update("is_read", true).Error
}

// SetAllRead marks every unread notification of the user as read.
func (r *NotificationRepository) SetAllRead(userID uint) error {
	return r.db.Model(&models.ProximityNotification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
