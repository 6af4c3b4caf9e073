package services

import (
	"fmt"
	"math"

	"cropwatch/internal/models"
)

// YieldLossService maps an NDVI drop to an estimated yield loss through a
// fixed linear formula. The formula is the load-bearing input to every
// downstream claim decision, so all rounding here is exact and stable.
type YieldLossService struct{}

func NewYieldLossService() *YieldLossService {
	return &YieldLossService{}
}

// EstimateYieldLoss derives yield loss, confidence and severity status from
// the drop of current NDVI below baseline. Drops under 30% are treated as
// healthy variation: no loss, fixed 95% confidence. Beyond that the loss is
// drop x 1.5 capped at 100, and confidence is 85 + drop/10 capped at 98.
func (s *YieldLossService) EstimateYieldLoss(currentNDVI, baselineNDVI float64, disasterType models.DisasterType) models.YieldLossEstimate {
	drop := (baselineNDVI - currentNDVI) / baselineNDVI * 100

	if drop < dropAlertThreshold {
		cause := disasterType
		if cause == "" {
			cause = models.DisasterNone
		}
		return models.YieldLossEstimate{
			Affected:       false,
			YieldLoss:      0,
			Confidence:     95,
			Status:         models.HealthUnaffected,
			NDVIDrop:       round2(drop),
			Message:        "Crop health is within acceptable range",
			DisasterType:   cause,
			Recommendation: "Continue normal monitoring",
		}
	}

	rawYieldLoss := drop * 1.5
	yieldLoss := math.Min(rawYieldLoss, 100)
	confidence := math.Min(85+drop/10, 98)

	var status models.CropHealthStatus
	switch {
	case yieldLoss >= 75:
		status = models.HealthSevere
	case yieldLoss >= 50:
		status = models.HealthCritical
	default:
		status = models.HealthAffected
	}

	var recommendation string
	switch {
	case yieldLoss > 70:
		recommendation = "Immediate field inspection and expert assessment required"
	case yieldLoss > 50:
		recommendation = "Field verification recommended within 48 hours"
	default:
		recommendation = "Standard claim processing - Document review sufficient"
	}

	cause := disasterType
	if cause == "" {
		cause = models.DisasterUnknown
	}

	message := fmt.Sprintf("Estimated %.1f%% yield loss based on %.1f%% NDVI decline", yieldLoss, drop)
	if cause != models.DisasterUnknown {
		message += fmt.Sprintf(" (%s)", cause)
	}

	return models.YieldLossEstimate{
		Affected:       true,
		YieldLoss:      round2(yieldLoss),
		Confidence:     round1(confidence),
		Status:         status,
		NDVIDrop:       round2(drop),
		Message:        message,
		DisasterType:   cause,
		Recommendation: recommendation,
		Calculation: &models.YieldLossCalculation{
			Formula:      "Yield Loss = NDVI Drop x 1.5, capped at 100%",
			NDVIDrop:     fmt.Sprintf("%.2f%%", drop),
			Multiplier:   1.5,
			RawResult:    fmt.Sprintf("%.2f%%", rawYieldLoss),
			CappedResult: fmt.Sprintf("%.2f%%", yieldLoss),
		},
	}
}

// FarmReading is one farm's latest NDVI observation for batch estimation.
type FarmReading struct {
	FarmID       int
	FarmerName   string
	CurrentNDVI  float64
	BaselineNDVI float64
	DisasterType models.DisasterType
}

// BatchEstimate runs the estimator over a set of farm readings.
func (s *YieldLossService) BatchEstimate(readings []FarmReading) []models.FarmYieldLoss {
	out := make([]models.FarmYieldLoss, 0, len(readings))
	for _, r := range readings {
		out = append(out, models.FarmYieldLoss{
			FarmID:            r.FarmID,
			FarmerName:        r.FarmerName,
			YieldLossEstimate: s.EstimateYieldLoss(r.CurrentNDVI, r.BaselineNDVI, r.DisasterType),
		})
	}
	return out
}

// YieldLossCategory buckets a loss percentage for dashboard colouring.
func (s *YieldLossService) YieldLossCategory(yieldLoss float64) models.YieldLossCategory {
	switch {
	case yieldLoss == 0:
		return models.YieldLossCategory{Category: "none", Label: "No Loss", Color: "#10b981"}
	case yieldLoss < 25:
		return models.YieldLossCategory{Category: "minor", Label: "Minor Loss", Color: "#f59e0b"}
	case yieldLoss < 50:
		return models.YieldLossCategory{Category: "moderate", Label: "Moderate Loss", Color: "#f97316"}
	case yieldLoss < 75:
		return models.YieldLossCategory{Category: "severe", Label: "Severe Loss", Color: "#ef4444"}
	default:
		return models.YieldLossCategory{Category: "critical", Label: "Total Loss", Color: "#991b1b"}
	}
}

// ActualYield applies a loss percentage to an expected yield in quintals.
func (s *YieldLossService) ActualYield(expectedYield, yieldLossPercentage float64) models.ActualYield {
	actual := expectedYield * (1 - yieldLossPercentage/100)
	return models.ActualYield{
		ExpectedYield:  round2(expectedYield),
		ActualYield:    round2(actual),
		LossAmount:     round2(expectedYield - actual),
		LossPercentage: round2(yieldLossPercentage),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
