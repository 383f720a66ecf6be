package domain

import "time"

const (
	RequestStatusPending  = "PENDING"
	RequestStatusAccepted = "ACCEPTED"
	RequestStatusDeclined = "DECLINED"
)

// DefaultThresholdKm is the alert distance applied when a friendship is
// accepted. Thresholds are per-alert and can be changed afterwards.
const DefaultThresholdKm = 1.0

// NotificationCooldown is the fixed suppression window: at most one proximity
// notification per (user, friend) pair within this period.
const NotificationCooldown = 30 * time.Minute

// MinMoveDegrees is the smallest coordinate change (on either axis) that
// triggers alert evaluation. Smaller moves still update the stored position.
const MinMoveDegrees = 0.001

const DefaultMarkerTitle = "Location Point"
