package service

import (
	"errors"
	"testing"

	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

type stubAlertAdminStore struct {
	alerts  map[uint]*models.ProximityAlert
	updates int
}

func newStubAlertAdminStore() *stubAlertAdminStore {
	return &stubAlertAdminStore{alerts: make(map[uint]*models.ProximityAlert)}
}

func (s *stubAlertAdminStore) ListByUserID(userID uint) ([]models.ProximityAlert, error) {
	var out []models.ProximityAlert
	for _, a := range s.alerts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *stubAlertAdminStore) GetByID(id uint) (*models.ProximityAlert, error) {
	a, ok := s.alerts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *stubAlertAdminStore) Update(alert *models.ProximityAlert) error {
	s.updates++
	cp := *alert
	s.alerts[alert.ID] = &cp
	return nil
}

func (s *stubAlertAdminStore) add(id, userID, friendID uint, thresholdKm float64, active bool) {
	s.alerts[id] = &models.ProximityAlert{
		ID:                  id,
		UserID:              userID,
		FriendID:            friendID,
		DistanceThresholdKm: thresholdKm,
		Active:              active,
	}
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestAlertUpdateNotFound(t *testing.T) {
	svc := NewAlertService(newStubAlertAdminStore())
	_, err := svc.Update(42, 1, floatPtr(2.0), nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAlertUpdateNonOwnerForbidden(t *testing.T) {
	store := newStubAlertAdminStore()
	store.add(10, 2, 3, 1.0, true)
	svc := NewAlertService(store)

	_, err := svc.Update(10, 1, floatPtr(2.0), nil)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.updates != 0 {
		t.Fatalf("foreign alert must not be written, got %d updates", store.updates)
	}
	if store.alerts[10].DistanceThresholdKm != 1.0 {
		t.Fatalf("threshold changed to %v", store.alerts[10].DistanceThresholdKm)
	}
}

func TestAlertUpdateRejectsNonPositiveThreshold(t *testing.T) {
	store := newStubAlertAdminStore()
	store.add(10, 1, 2, 1.0, true)
	svc := NewAlertService(store)

	for _, v := range []float64{0, -0.5} {
		if _, err := svc.Update(10, 1, floatPtr(v), nil); !errors.Is(err, domain.ErrInvalidOperation) {
			t.Fatalf("threshold %v: expected ErrInvalidOperation, got %v", v, err)
		}
	}
	if store.updates != 0 {
		t.Fatalf("invalid threshold must not be written, got %d updates", store.updates)
	}
}

func TestAlertUpdateThresholdOnly(t *testing.T) {
	store := newStubAlertAdminStore()
	store.add(10, 1, 2, 1.0, true)
	svc := NewAlertService(store)

	alert, err := svc.Update(10, 1, floatPtr(2.5), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alert.DistanceThresholdKm != 2.5 {
		t.Fatalf("expected threshold 2.5, got %v", alert.DistanceThresholdKm)
	}
	if !alert.Active {
		t.Fatal("active flag must be untouched")
	}
}

func TestAlertUpdateActiveOnly(t *testing.T) {
	store := newStubAlertAdminStore()
	store.add(10, 1, 2, 1.0, true)
	svc := NewAlertService(store)

	alert, err := svc.Update(10, 1, nil, boolPtr(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alert.Active {
		t.Fatal("expected alert deactivated")
	}
	if alert.DistanceThresholdKm != 1.0 {
		t.Fatalf("threshold must be untouched, got %v", alert.DistanceThresholdKm)
	}
}
