package service

import (
	"errors"
	"fmt"

	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

// FriendshipStore is the friend-request access the service needs.
type FriendshipStore interface {
	Create(fr *models.FriendRequest) error
	GetByID(id uint) (*models.FriendRequest, error)
	ExistsBetween(a, b uint) (bool, error)
	UpdateStatus(id uint, status string) error
	ListFriends(userID uint) ([]models.User, error)
}

// AlertPairStore creates the mutual alert pair on acceptance. EnsurePair must
// be atomic and idempotent.
type AlertPairStore interface {
	EnsurePair(a, b uint) error
}

// UserStore resolves user identities.
type UserStore interface {
	GetByID(id uint) (*models.User, error)
}

// FriendshipService owns the request/accept/decline lifecycle of the
// friendship graph.
type FriendshipService struct {
	friendships FriendshipStore
	alerts      AlertPairStore
	users       UserStore
}

func NewFriendshipService(friendships FriendshipStore, alerts AlertPairStore, users UserStore) *FriendshipService {
	return &FriendshipService{friendships: friendships, alerts: alerts, users: users}
}

// Request creates a pending request from requester to addressee. A request
// between the pair in either direction, whatever its status, blocks a new
// one; a declined request is terminal for the pair.
func (s *FriendshipService) Request(requesterID, addresseeID uint) (*models.FriendRequest, error) {
	if requesterID == addresseeID {
		return nil, fmt.Errorf("%w: cannot befriend yourself", domain.ErrInvalidOperation)
	}
	if _, err := s.users.GetByID(addresseeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, addresseeID)
		}
		return nil, err
	}
	exists, err := s.friendships.ExistsBetween(requesterID, addresseeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: friend request between these users", domain.ErrAlreadyExists)
	}
	fr := &models.FriendRequest{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      domain.RequestStatusPending,
	}
	if err := s.friendships.Create(fr); err != nil {
		// The unique (requester, addressee) index backstops concurrent sends.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: friend request between these users", domain.ErrAlreadyExists)
		}
		return nil, err
	}
	return fr, nil
}

// Respond lets the addressee accept or decline a pending request. Accepting
// creates the alert pair in both directions; EnsurePair is idempotent, so a
// retried acceptance never duplicates alerts.
func (s *FriendshipService) Respond(requestID, responderID uint, accept bool) (*models.FriendRequest, error) {
	fr, err := s.friendships.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: friend request %d", domain.ErrNotFound, requestID)
		}
		return nil, err
	}
	if fr.AddresseeID != responderID {
		return nil, fmt.Errorf("%w: only the addressee may respond", domain.ErrForbidden)
	}
	if !fr.IsPending() {
		return nil, fmt.Errorf("%w: request is not pending", domain.ErrInvalidOperation)
	}
	status := domain.RequestStatusDeclined
	if accept {
		status = domain.RequestStatusAccepted
	}
	if err := s.friendships.UpdateStatus(fr.ID, status); err != nil {
		return nil, err
	}
	fr.Status = status
	if accept {
		if err := s.alerts.EnsurePair(fr.RequesterID, fr.AddresseeID); err != nil {
			return nil, fmt.Errorf("create alert pair: %w", err)
		}
	}
	return fr, nil
}

// ListFriends returns the symmetric-closure friend set.
func (s *FriendshipService) ListFriends(userID uint) ([]models.User, error) {
	return s.friendships.ListFriends(userID)
}
