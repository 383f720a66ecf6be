package repository

import (
	"waypoint/internal/domain"
	"waypoint/internal/models"

	"gorm.io/gorm"
)

type MarkerRepository struct {
	db *gorm.DB
}

func NewMarkerRepository(db *gorm.DB) *MarkerRepository {
	return &MarkerRepository{db: db}
}

func (r *MarkerRepository) Create(m *models.Marker) error {
	return r.db.Create(m).Error
}

func (r *MarkerRepository) List() ([]models.Marker, error) {
	var list []models.Marker
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *MarkerRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Marker{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MarkerRepository) Clear() error {
	return r.db.Where("1 = 1").Delete(&models.Marker{}).Error
}
