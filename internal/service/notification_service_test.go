package service

import (
	"errors"
	"testing"

	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

type stubOutboxStore struct {
	rows         map[uint]*models.ProximityNotification
	setReadCalls []uint
}

func newStubOutboxStore() *stubOutboxStore {
	return &stubOutboxStore{rows: make(map[uint]*models.ProximityNotification)}
}

func (s *stubOutboxStore) GetByID(id uint) (*models.ProximityNotification, error) {
	n, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (s *stubOutboxStore) SetRead(id uint) error {
	s.setReadCalls = append(s.setReadCalls, id)
	n, ok := s.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.IsRead = true
	return nil
}

func (s *stubOutboxStore) SetAllRead(userID uint) error {
	for _, n := range s.rows {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (s *stubOutboxStore) ListByUserID(userID uint, unreadOnly bool, limit int) ([]models.ProximityNotification, error) {
	var out []models.ProximityNotification
	for _, n := range s.rows {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, *n)
	}
	return out, nil
}

func (s *stubOutboxStore) ListUnreadWithFriend(userID uint, limit int) ([]models.ProximityNotification, error) {
	return s.ListByUserID(userID, true, limit)
}

func (s *stubOutboxStore) add(id, userID, friendID uint, read bool, friendName string) {
	s.rows[id] = &models.ProximityNotification{
		ID:       id,
		UserID:   userID,
		FriendID: friendID,
		IsRead:   read,
		Friend:   models.User{ID: friendID, Username: friendName},
	}
}

func TestMarkReadUnknownNotification(t *testing.T) {
	svc := NewNotificationService(newStubOutboxStore())
	if err := svc.MarkRead(42, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkReadOtherUsersNotificationForbidden(t *testing.T) {
	store := newStubOutboxStore()
	store.add(10, 2, 3, false, "carol")
	svc := NewNotificationService(store)

	if err := svc.MarkRead(10, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.rows[10].IsRead {
		t.Fatal("foreign notification must stay unread")
	}
}

func TestMarkReadMarksUnreadNotification(t *testing.T) {
	store := newStubOutboxStore()
	store.add(10, 1, 2, false, "bob")
	svc := NewNotificationService(store)

	if err := svc.MarkRead(10, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.rows[10].IsRead {
		t.Fatal("notification not marked read")
	}
	if len(store.setReadCalls) != 1 {
		t.Fatalf("expected 1 write, got %d", len(store.setReadCalls))
	}
}

func TestMarkReadAlreadyReadSucceedsWithoutWrite(t *testing.T) {
	store := newStubOutboxStore()
	store.add(10, 1, 2, true, "bob")
	svc := NewNotificationService(store)

	if err := svc.MarkRead(10, 1); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if len(store.setReadCalls) != 0 {
		t.Fatalf("already-read mark must not write, got %d writes", len(store.setReadCalls))
	}
}

func TestMarkAllReadScopedToCaller(t *testing.T) {
	store := newStubOutboxStore()
	store.add(10, 1, 2, false, "bob")
	store.add(11, 1, 3, false, "carol")
	store.add(12, 2, 1, false, "alice")
	svc := NewNotificationService(store)

	if err := svc.MarkAllRead(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.rows[10].IsRead || !store.rows[11].IsRead {
		t.Fatal("caller's notifications not all marked read")
	}
	if store.rows[12].IsRead {
		t.Fatal("other user's notification must stay unread")
	}
}

func TestPollReturnsUnreadWithFriend(t *testing.T) {
	store := newStubOutboxStore()
	store.add(10, 1, 2, false, "bob")
	store.add(11, 1, 3, true, "carol")
	svc := NewNotificationService(store)

	list, err := svc.Poll(1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 unread notification, got %d", len(list))
	}
	if list[0].Friend.Username != "bob" {
		t.Fatalf("expected friend bob, got %q", list[0].Friend.Username)
	}
}
