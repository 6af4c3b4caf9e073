package models

import "time"

// ============================================================================
// NDVI TIME-SERIES
// ============================================================================

type NDVISample struct {
	FarmID int       `json:"farm_id"`
	Date   time.Time `json:"date"`
	NDVI   float64   `json:"ndvi"`
}

// DisasterEvent describes an injected disaster window over a generated
// series. It is a transform input, never persisted. The window covers day
// indices [StartDayOffset, StartDayOffset+DurationDays).
type DisasterEvent struct {
	Type           DisasterType `json:"type"`
	StartDayOffset int          `json:"start_day_offset"`
	DurationDays   int          `json:"duration_days"`
	Severity       float64      `json:"severity"` // 0..1, drop ≈ severity × 50%
}
