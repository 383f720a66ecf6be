package service

import (
	"strings"
	"testing"

	"waypoint/internal/domain"
	"waypoint/internal/models"
)

type stubSearchStore struct {
	users []models.User
}

func (s *stubSearchStore) SearchByUsername(q string, limit int) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		if !strings.Contains(u.Username, q) {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, u)
	}
	return out, nil
}

type stubStatusStore struct {
	statuses map[[2]uint]string
}

func (s *stubStatusStore) StatusBetween(a, b uint) (string, error) {
	if st, ok := s.statuses[[2]uint{a, b}]; ok {
		return st, nil
	}
	if st, ok := s.statuses[[2]uint{b, a}]; ok {
		return st, nil
	}
	return "", nil
}

func newUserService(users ...models.User) (*UserService, *stubStatusStore) {
	statuses := &stubStatusStore{statuses: make(map[[2]uint]string)}
	return NewUserService(&stubSearchStore{users: users}, statuses), statuses
}

func TestSearchExcludesCaller(t *testing.T) {
	svc, _ := newUserService(
		models.User{ID: 1, Username: "alice"},
		models.User{ID: 2, Username: "alice_b"},
	)

	results, err := svc.Search(1, "alice", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID != 2 {
		t.Fatalf("expected user 2, got %d", results[0].ID)
	}
}

func TestSearchAnnotatesFriendshipStatus(t *testing.T) {
	svc, statuses := newUserService(
		models.User{ID: 2, Username: "bob"},
		models.User{ID: 3, Username: "bobby"},
	)
	statuses.statuses[[2]uint{1, 2}] = domain.RequestStatusAccepted

	results, err := svc.Search(1, "bob", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	byID := make(map[uint]UserSearchResult)
	for _, r := range results {
		byID[r.ID] = r
	}
	if byID[2].FriendshipStatus != domain.RequestStatusAccepted {
		t.Fatalf("expected ACCEPTED for user 2, got %q", byID[2].FriendshipStatus)
	}
	if byID[3].FriendshipStatus != "" {
		t.Fatalf("expected no status for user 3, got %q", byID[3].FriendshipStatus)
	}
}

func TestSearchCallerDoesNotConsumeLimit(t *testing.T) {
	svc, _ := newUserService(
		models.User{ID: 1, Username: "bob"},
		models.User{ID: 2, Username: "bob_a"},
		models.User{ID: 3, Username: "bob_b"},
		models.User{ID: 4, Username: "bob_c"},
	)

	results, err := svc.Search(1, "bob", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected full limit of 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.ID == 1 {
			t.Fatal("caller must not appear in results")
		}
	}
}
