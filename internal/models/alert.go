package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// MONITORING ALERTS
// ============================================================================

type Alert struct {
	ID             uuid.UUID     `json:"id"`
	FarmID         int           `json:"farm_id"`
	FarmerName     string        `json:"farmer_name"`
	CurrentNDVI    float64       `json:"current_ndvi"`
	BaselineNDVI   float64       `json:"baseline_ndvi"`
	DropPercentage float64       `json:"drop_percentage"`
	Severity       AlertSeverity `json:"severity"`
	Status         AlertStatus   `json:"status"`
	EstimatedCause DisasterType  `json:"estimated_cause"`
	Message        string        `json:"message"`
	CreatedAt      time.Time     `json:"created_at"`
}

// MonitoringResult is the outcome of one batch monitoring sweep. A single
// farm failing does not abort the sweep; its error is collected here.
type MonitoringResult struct {
	FarmsChecked    int      `json:"farms_checked"`
	AlertsGenerated int      `json:"alerts_generated"`
	NewAlerts       []Alert  `json:"new_alerts"`
	Errors          []string `json:"errors"`
}
