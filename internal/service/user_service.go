package service

import "waypoint/internal/models"

// UserSearchStore is the user lookup the search operation needs.
type UserSearchStore interface {
	SearchByUsername(q string, limit int) ([]models.User, error)
}

// FriendStatusStore reports the friend-request status between two users, or
// "" when no request exists in either direction.
type FriendStatusStore interface {
	StatusBetween(a, b uint) (string, error)
}

// UserSearchResult is one search hit with the friendship status relative to
// the caller.
type UserSearchResult struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	FriendshipStatus string `json:"friendship_status,omitempty"`
}

// UserService answers user searches. The caller never appears in their own
// results.
type UserService struct {
	users       UserSearchStore
	friendships FriendStatusStore
}

func NewUserService(users UserSearchStore, friendships FriendStatusStore) *UserService {
	return &UserService{users: users, friendships: friendships}
}

// Search finds users by username substring, drops the caller from the hits,
// and annotates each with the friendship status relative to the caller.
func (s *UserService) Search(callerID uint, q string, limit int) ([]UserSearchResult, error) {
	// Fetch one extra row so the caller matching their own name does not
	// consume a result slot.
	users, err := s.users.SearchByUsername(q, limit+1)
	if err != nil {
		return nil, err
	}
	out := make([]UserSearchResult, 0, len(users))
	for _, u := range users {
		if u.ID == callerID {
			continue
		}
		if len(out) == limit {
			break
		}
		status, err := s.friendships.StatusBetween(callerID, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, UserSearchResult{ID: u.ID, Username: u.Username, FriendshipStatus: status})
	}
	return out, nil
}
