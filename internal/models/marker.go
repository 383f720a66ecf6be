package models

import "time"

// Marker is a labeled point of interest on the shared map. Markers have no
// owner; any visitor may create or remove them.
type Marker struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null;default:'Location Point'" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Latitude    float64   `gorm:"type:decimal(10,7);not null" json:"latitude"`
	Longitude   float64   `gorm:"type:decimal(10,7);not null" json:"longitude"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (Marker) TableName() string {
	return "markers"
}
