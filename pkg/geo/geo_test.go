package geo

import (
	"math"
	"testing"
)

func TestHaversineKmZeroForIdenticalPoints(t *testing.T) {
	if d := HaversineKm(40.0, -74.0, 40.0, -74.0); d != 0 {
		t.Fatalf("expected 0 for identical points, got %v", d)
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
	}{
		{name: "short hop", lat1: 40.0, lng1: -74.0, lat2: 40.005, lng2: -74.0},
		{name: "cross equator", lat1: -1.5, lng1: 36.8, lat2: 1.2, lng2: 36.9},
		{name: "antimeridian", lat1: 10.0, lng1: 179.9, lat2: 10.0, lng2: -179.9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab := HaversineKm(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			ba := HaversineKm(tc.lat2, tc.lng2, tc.lat1, tc.lng1)
			if math.Abs(ab-ba) > 1e-9 {
				t.Fatalf("not symmetric: %v vs %v", ab, ba)
			}
		})
	}
}

func TestHaversineKmKnownDistance(t *testing.T) {
	// 0.005 degrees of latitude is roughly 556 meters.
	d := HaversineKm(40.0, -74.0, 40.005, -74.0)
	if d < 0.55 || d > 0.56 {
		t.Fatalf("expected ~0.556 km, got %v", d)
	}
	if got := RoundKm(d); got != 0.56 {
		t.Fatalf("expected 0.56 after rounding, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{name: "valid", lat: 40.0, lng: -74.0, wantErr: false},
		{name: "poles", lat: 90, lng: 180, wantErr: false},
		{name: "lat too high", lat: 90.1, lng: 0, wantErr: true},
		{name: "lat too low", lat: -90.1, lng: 0, wantErr: true},
		{name: "lng too high", lat: 0, lng: 180.1, wantErr: true},
		{name: "lng too low", lat: 0, lng: -180.1, wantErr: true},
		{name: "nan", lat: math.NaN(), lng: 0, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.lat, tc.lng)
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRoundKm(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5559, 0.56},
		{0.554, 0.55},
		{1.006, 1.01},
		{0, 0},
	}
	for _, tc := range tests {
		if got := RoundKm(tc.in); got != tc.want {
			t.Fatalf("RoundKm(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
