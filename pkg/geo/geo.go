package geo

import (
	"errors"
	"math"
)

// EarthRadiusKm is the Earth radius in kilometers for Haversine.
const EarthRadiusKm = 6371.0

var ErrOutOfRange = errors.New("coordinate out of range")

// Validate rejects coordinates outside the valid lat/lng domain.
// Out-of-range input is rejected rather than clamped.
func Validate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return ErrOutOfRange
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrOutOfRange
	}
	return nil
}

// HaversineKm returns the great-circle distance in km between two points
// (lat/lng in degrees). Symmetric in its arguments; zero for identical points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	φ1, φ2 := rad(lat1), rad(lat2)
	Δφ := rad(lat2 - lat1)
	Δλ := rad(lng2 - lng1)
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for display and storage.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
