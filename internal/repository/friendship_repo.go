package repository

import (
	"errors"

	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

func (r *FriendshipRepository) Create(fr *models.FriendRequest) error {
	return r.db.Create(fr).Error
}

func (r *FriendshipRepository) GetByID(id uint) (*models.FriendRequest, error) {
	var fr models.FriendRequest
	err := r.db.First(&fr, id).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

// ExistsBetween reports whether any request exists between the two users,
// in either direction and regardless of status.
func (r *FriendshipRepository) ExistsBetween(a, b uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.FriendRequest{}).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)", a, b, b, a).
		Count(&c).Error
	return c > 0, err
}

// StatusBetween returns the status of the request between two users, or ""
// when none exists.
func (r *FriendshipRepository) StatusBetween(a, b uint) (string, error) {
	var fr models.FriendRequest
	err := r.db.
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)", a, b, b, a).
		First(&fr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return fr.Status, nil
}

func (r *FriendshipRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.FriendRequest{}).Where("id = ?", id).Update("status", status).Error
}

// ListPendingForAddressee returns pending incoming requests, requester preloaded.
func (r *FriendshipRepository) ListPendingForAddressee(userID uint) ([]models.FriendRequest, error) {
	var list []models.FriendRequest
	err := r.db.Where("addressee_id = ? AND status = ?", userID, domain.RequestStatusPending).
		Preload("Requester").Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListFriendIDs returns the ids of users connected to userID by an accepted
// request in either direction.
func (r *FriendshipRepository) ListFriendIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Raw(`
		SELECT CASE WHEN requester_id = ? THEN addressee_id ELSE requester_id END
		FROM friend_requests
		WHERE status = ? AND (requester_id = ? OR addressee_id = ?)`,
		userID, domain.RequestStatusAccepted, userID, userID).Scan(&ids).Error
	return ids, err
}

// ListFriends resolves the symmetric friend set to user records.
func (r *FriendshipRepository) ListFriends(userID uint) ([]models.User, error) {
	ids, err := r.ListFriendIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	var users []models.User
	err = r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
