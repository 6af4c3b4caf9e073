package services

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"cropwatch/internal/models"
	"cropwatch/internal/repository"

	"github.com/google/uuid"
)

// Severity thresholds on NDVI drop percentage. First match wins.
const (
	dropAlertThreshold = 30.0
	dropCriticalCutoff = 50.0
	dropSevereCutoff   = 75.0
)

// MonitorService compares latest NDVI readings against each farm's baseline
// and raises classified alerts. A farm with an unresolved alert is never
// alerted again, so repeated sweeps over unchanged data are idempotent.
type MonitorService struct {
	farms  *repository.FarmRepository
	ndvi   *repository.NDVIRepository
	alerts *repository.AlertRepository

	mu sync.Mutex // serializes sweeps so dedup holds under concurrent runs
}

func NewMonitorService(farms *repository.FarmRepository, ndvi *repository.NDVIRepository, alerts *repository.AlertRepository) *MonitorService {
	return &MonitorService{farms: farms, ndvi: ndvi, alerts: alerts}
}

// MonitorFarm evaluates one farm against its series. Returns nil when the
// farm is healthy or already has an active alert; errors only on unusable
// input (no samples, zero baseline).
func (s *MonitorService) MonitorFarm(farm *models.Farm, series []models.NDVISample) (*models.Alert, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("farm %d has no ndvi samples", farm.ID)
	}
	if farm.BaselineNDVI <= 0 {
		return nil, fmt.Errorf("farm %d has no baseline ndvi", farm.ID)
	}

	current := series[len(series)-1].NDVI
	drop := (farm.BaselineNDVI - current) / farm.BaselineNDVI * 100

	severity, alerting := classifySeverity(drop)
	if !alerting {
		return nil, nil
	}

	if s.alerts.HasActive(farm.ID) {
		return nil, nil
	}

	cause := estimateCause(farm.BaselineNDVI, series)
	alert := models.Alert{
		ID:             uuid.New(),
		FarmID:         farm.ID,
		FarmerName:     farm.FarmerName,
		CurrentNDVI:    math.Round(current*1000) / 1000,
		BaselineNDVI:   farm.BaselineNDVI,
		DropPercentage: math.Round(drop*100) / 100,
		Severity:       severity,
		Status:         models.AlertActive,
		EstimatedCause: cause,
		Message: fmt.Sprintf("NDVI dropped %.1f%% below baseline for %s (likely %s)",
			drop, farm.FarmerName, cause),
		CreatedAt: time.Now(),
	}

	// Create re-checks the active invariant under the store lock.
	if !s.alerts.Create(alert) {
		return nil, nil
	}
	return &alert, nil
}

// MonitorAllFarms sweeps the whole roster. Per-farm failures are collected
// into the result instead of aborting the batch.
func (s *MonitorService) MonitorAllFarms() models.MonitoringResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := models.MonitoringResult{NewAlerts: []models.Alert{}, Errors: []string{}}

	for _, farm := range s.farms.GetAll() {
		result.FarmsChecked++

		series, err := s.ndvi.GetSeries(farm.ID)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		alert, err := s.MonitorFarm(&farm, series)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		if alert != nil {
			result.NewAlerts = append(result.NewAlerts, *alert)
			result.AlertsGenerated++
		}
	}

	slog.Info("monitoring sweep finished",
		"farms_checked", result.FarmsChecked,
		"alerts_generated", result.AlertsGenerated,
		"errors", len(result.Errors))

	return result
}

// classifySeverity maps an NDVI drop percentage onto an alert tier. Drops
// under 30% are healthy and raise no alert.
func classifySeverity(drop float64) (models.AlertSeverity, bool) {
	switch {
	case drop < dropAlertThreshold:
		return "", false
	case drop < dropCriticalCutoff:
		return models.SeverityModerate, true
	case drop < dropSevereCutoff:
		return models.SeverityCritical, true
	default:
		return models.SeveritySevere, true
	}
}

// estimateCause infers a likely disaster type from the shape of the recent
// decline: a collapse within about a week reads as flood damage, a shallow
// sustained slide as drought stress, anything else as pest pressure.
func estimateCause(baseline float64, series []models.NDVISample) models.DisasterType {
	healthyCutoff := baseline * 0.85

	daysDepressed := 0
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].NDVI >= healthyCutoff {
			break
		}
		daysDepressed++
	}

	current := series[len(series)-1].NDVI
	drop := (baseline - current) / baseline * 100

	switch {
	case daysDepressed <= 7 && drop >= dropCriticalCutoff:
		return models.DisasterFlood
	case daysDepressed >= 14:
		return models.DisasterDrought
	default:
		return models.DisasterPest
	}
}
