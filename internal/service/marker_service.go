package service

import (
	"fmt"

	"waypoint/internal/domain"
	"waypoint/internal/models"
	"waypoint/pkg/geo"
)

// MarkerStore is the marker access the map layer needs.
type MarkerStore interface {
	Create(m *models.Marker) error
	List() ([]models.Marker, error)
	Delete(id uint) error
	Clear() error
}

// MarkerService manages the shared map layer. Markers have no owner; anyone
// may add or remove them.
type MarkerService struct {
	store MarkerStore
}

func NewMarkerService(store MarkerStore) *MarkerService {
	return &MarkerService{store: store}
}

func (s *MarkerService) List() ([]models.Marker, error) {
	return s.store.List()
}

// Create validates the coordinates and applies the default title when none
// is given.
func (s *MarkerService) Create(lat, lng float64, title, description string) (*models.Marker, error) {
	if err := geo.Validate(lat, lng); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOperation, err)
	}
	if title == "" {
		title = domain.DefaultMarkerTitle
	}
	m := &models.Marker{
		Title:       title,
		Description: description,
		Latitude:    lat,
		Longitude:   lng,
	}
	if err := s.store.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MarkerService) Delete(id uint) error {
	return s.store.Delete(id)
}

func (s *MarkerService) Clear() error {
	return s.store.Clear()
}
