package service

import (
	"errors"
	"fmt"

	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

// AlertAdminStore is the alert access the management operations need.
type AlertAdminStore interface {
	ListByUserID(userID uint) ([]models.ProximityAlert, error)
	GetByID(id uint) (*models.ProximityAlert, error)
	Update(alert *models.ProximityAlert) error
}

// AlertService owns the rules for managing alerts: only the owner may change
// one, and the threshold must stay positive.
type AlertService struct {
	store AlertAdminStore
}

func NewAlertService(store AlertAdminStore) *AlertService {
	return &AlertService{store: store}
}

func (s *AlertService) List(userID uint) ([]models.ProximityAlert, error) {
	return s.store.ListByUserID(userID)
}

// Update patches the threshold and/or active flag of one of the caller's
// alerts. Nil fields are left unchanged.
func (s *AlertService) Update(alertID, userID uint, thresholdKm *float64, active *bool) (*models.ProximityAlert, error) {
	if thresholdKm != nil && *thresholdKm <= 0 {
		return nil, fmt.Errorf("%w: distance threshold must be positive", domain.ErrInvalidOperation)
	}
	alert, err := s.store.GetByID(alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if alert.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if thresholdKm != nil {
		alert.DistanceThresholdKm = *thresholdKm
	}
	if active != nil {
		alert.Active = *active
	}
	if err := s.store.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}
