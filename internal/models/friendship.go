package models

import (
	"time"

	"waypoint/internal/domain"
)

// FriendRequest is a directed requester -> addressee edge. At most one
// request may exist per ordered pair; duplicates in the reverse direction
// are rejected at the service layer. Status transitions only from PENDING,
// only by the addressee, and are terminal.
type FriendRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequesterID uint      `gorm:"not null;index:idx_request_pair,unique" json:"requester_id"`
	AddresseeID uint      `gorm:"not null;index:idx_request_pair,unique" json:"addressee_id"`
	Status      string    `gorm:"size:10;not null;default:'PENDING';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Requester User `gorm:"foreignKey:RequesterID" json:"-"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"-"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}

func (r *FriendRequest) IsPending() bool { return r.Status == domain.RequestStatusPending }
