package service

import (
	"errors"

	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

// NotificationOutboxStore is the notification access the read-state
// operations need. SetAllRead must only touch rows of the given user.
type NotificationOutboxStore interface {
	GetByID(id uint) (*models.ProximityNotification, error)
	SetRead(id uint) error
	SetAllRead(userID uint) error
	ListByUserID(userID uint, unreadOnly bool, limit int) ([]models.ProximityNotification, error)
	ListUnreadWithFriend(userID uint, limit int) ([]models.ProximityNotification, error)
}

// NotificationService owns the read-state rules of the notification outbox:
// only the recipient may mark a notification, and marking is idempotent.
type NotificationService struct {
	store NotificationOutboxStore
}

func NewNotificationService(store NotificationOutboxStore) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) List(userID uint, unreadOnly bool, limit int) ([]models.ProximityNotification, error) {
	return s.store.ListByUserID(userID, unreadOnly, limit)
}

// Poll returns unread notifications with the Friend relation populated.
func (s *NotificationService) Poll(userID uint, limit int) ([]models.ProximityNotification, error) {
	return s.store.ListUnreadWithFriend(userID, limit)
}

// MarkRead marks one notification read. Fails with domain.ErrForbidden when
// the notification belongs to someone else; marking an already-read
// notification succeeds without another write.
func (s *NotificationService) MarkRead(id, userID uint) error {
	n, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if n.UserID != userID {
		return domain.ErrForbidden
	}
	if n.IsRead {
		return nil
	}
	return s.store.SetRead(id)
}

// MarkAllRead marks every unread notification of the caller as read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.store.SetAllRead(userID)
}
