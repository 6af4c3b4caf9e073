package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwatch/internal/models"
)

func TestEstimateYieldLoss_HealthyCrop(t *testing.T) {
	svc := NewYieldLossService()

	estimate := svc.EstimateYieldLoss(0.75, 0.75, "")

	assert.False(t, estimate.Affected)
	assert.Zero(t, estimate.YieldLoss)
	assert.Equal(t, 95.0, estimate.Confidence)
	assert.Equal(t, models.HealthUnaffected, estimate.Status)
	assert.Equal(t, models.DisasterNone, estimate.DisasterType)
	assert.Equal(t, "Crop health is within acceptable range", estimate.Message)
	assert.Equal(t, "Continue normal monitoring", estimate.Recommendation)
	assert.Nil(t, estimate.Calculation, "healthy estimates carry no breakdown")
}

func TestEstimateYieldLoss_BelowThresholdDrop(t *testing.T) {
	svc := NewYieldLossService()

	// 20% drop is still under the 30% alerting threshold.
	estimate := svc.EstimateYieldLoss(0.60, 0.75, models.DisasterDrought)

	assert.False(t, estimate.Affected)
	assert.Equal(t, 20.0, estimate.NDVIDrop)
	assert.Equal(t, models.DisasterDrought, estimate.DisasterType, "supplied cause is kept")
}

func TestEstimateYieldLoss_FloodDamage(t *testing.T) {
	svc := NewYieldLossService()

	// 0.75 -> 0.45 is a 40% drop: loss 60%, confidence 89.
	estimate := svc.EstimateYieldLoss(0.45, 0.75, models.DisasterFlood)

	assert.True(t, estimate.Affected)
	assert.Equal(t, 40.0, estimate.NDVIDrop)
	assert.Equal(t, 60.0, estimate.YieldLoss)
	assert.Equal(t, 89.0, estimate.Confidence)
	assert.Equal(t, models.HealthCritical, estimate.Status)
	assert.Equal(t, models.DisasterFlood, estimate.DisasterType)
	assert.Equal(t, "Field verification recommended within 48 hours", estimate.Recommendation)
	assert.Contains(t, estimate.Message, "60.0% yield loss")
	assert.Contains(t, estimate.Message, "flood")

	require.NotNil(t, estimate.Calculation)
	assert.Equal(t, 1.5, estimate.Calculation.Multiplier)
	assert.Equal(t, "60.00%", estimate.Calculation.RawResult)
	assert.Equal(t, "60.00%", estimate.Calculation.CappedResult)
}

func TestEstimateYieldLoss_CappedAtTotal(t *testing.T) {
	svc := NewYieldLossService()

	// 0.75 -> 0.10 is a ~86.7% drop; raw loss 130% caps at 100%.
	estimate := svc.EstimateYieldLoss(0.10, 0.75, models.DisasterFlood)

	assert.Equal(t, 100.0, estimate.YieldLoss)
	assert.Equal(t, models.HealthSevere, estimate.Status)
	assert.Equal(t, "Immediate field inspection and expert assessment required", estimate.Recommendation)
	require.NotNil(t, estimate.Calculation)
	assert.Equal(t, "130.00%", estimate.Calculation.RawResult)
	assert.Equal(t, "100.00%", estimate.Calculation.CappedResult)
}

func TestEstimateYieldLoss_ConfidenceCap(t *testing.T) {
	svc := NewYieldLossService()

	// Even a total collapse never claims more than 98% confidence.
	estimate := svc.EstimateYieldLoss(0.0, 1.0, models.DisasterFlood)
	assert.LessOrEqual(t, estimate.Confidence, 98.0)
}

func TestEstimateYieldLoss_UnknownCause(t *testing.T) {
	svc := NewYieldLossService()

	estimate := svc.EstimateYieldLoss(0.45, 0.75, "")

	assert.Equal(t, models.DisasterUnknown, estimate.DisasterType)
	assert.NotContains(t, estimate.Message, "(", "unknown cause is not echoed in the message")
}

func TestBatchEstimate(t *testing.T) {
	svc := NewYieldLossService()

	results := svc.BatchEstimate([]FarmReading{
		{FarmID: 1, FarmerName: "rajaram mane", CurrentNDVI: 0.45, BaselineNDVI: 0.75, DisasterType: models.DisasterFlood},
		{FarmID: 2, FarmerName: "sunita patil", CurrentNDVI: 0.74, BaselineNDVI: 0.75},
	})

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].FarmID)
	assert.True(t, results[0].Affected)
	assert.Equal(t, 2, results[1].FarmID)
	assert.False(t, results[1].Affected)
}

func TestYieldLossCategory(t *testing.T) {
	svc := NewYieldLossService()

	tests := []struct {
		loss     float64
		category string
	}{
		{0, "none"},
		{10, "minor"},
		{25, "moderate"},
		{49.9, "moderate"},
		{60, "severe"},
		{75, "critical"},
		{100, "critical"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.category, svc.YieldLossCategory(tc.loss).Category, "loss %.1f", tc.loss)
	}
}

func TestActualYield(t *testing.T) {
	svc := NewYieldLossService()

	result := svc.ActualYield(20, 25)

	assert.Equal(t, 20.0, result.ExpectedYield)
	assert.Equal(t, 15.0, result.ActualYield)
	assert.Equal(t, 5.0, result.LossAmount)
	assert.Equal(t, 25.0, result.LossPercentage)
}
