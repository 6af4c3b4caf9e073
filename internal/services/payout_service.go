package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cropwatch/internal/models"
)

// Fixed adjustment factors. Government and market apply to every payout;
// weather applies on flood conditions.
const (
	weatherFactorFlood    = 1.1
	governmentFactor      = 1.0
	marketFactor          = 0.95
	seniorApprovalLimit   = 200000
	standardApprovalLimit = 100000
)

// PayoutService turns a yield-loss estimate and a farm's insured value into
// a final payout through a chain of named factors, recording every step so
// the decision can be replayed in front of the farmer.
type PayoutService struct{}

func NewPayoutService() *PayoutService {
	return &PayoutService{}
}

// CalculatePayout computes insuranceValue x yieldLoss% adjusted by the
// weather, government and market factors, rounded to whole rupees.
func (s *PayoutService) CalculatePayout(farm *models.Farm, estimate models.YieldLossEstimate, disasterCtx models.DisasterContext) models.PayoutCalculation {
	flood := disasterCtx.HeavyRainfall || estimate.DisasterType == models.DisasterFlood

	weather := models.PayoutFactor{Value: 1.0, Label: "Normal Weather Conditions", Applied: false}
	if flood {
		weather = models.PayoutFactor{Value: weatherFactorFlood, Label: "Heavy Rainfall Recorded (+10%)", Applied: true}
	}
	government := models.PayoutFactor{Value: governmentFactor, Label: "Standard MSP (Minimum Support Price)", Applied: true}
	market := models.PayoutFactor{Value: marketFactor, Label: "Current Market Adjustment (-5%)", Applied: true}

	basePayout := farm.InsuranceValue * (estimate.YieldLoss / 100)
	afterWeather := basePayout * weather.Value
	afterGovernment := afterWeather * government.Value
	finalPayout := afterGovernment * market.Value

	var recommendation string
	switch {
	case finalPayout > seniorApprovalLimit:
		recommendation = "Requires senior officer approval (>₹2 Lakh)"
	case finalPayout > standardApprovalLimit:
		recommendation = "Standard approval process"
	default:
		recommendation = "Fast-track approval eligible"
	}

	steps := []models.CalculationStep{
		{
			Step:        1,
			Description: "Base Payout Calculation",
			Formula:     fmt.Sprintf("₹%s × %.1f%% yield loss", formatINR(roundRupees(farm.InsuranceValue)), estimate.YieldLoss),
			Result:      "₹" + formatINR(roundRupees(basePayout)),
		},
		{
			Step:        2,
			Description: "Weather Factor",
			Formula:     fmt.Sprintf("₹%s × %s (%s)", formatINR(roundRupees(basePayout)), formatFactor(weather.Value), weather.Label),
			Result:      "₹" + formatINR(roundRupees(afterWeather)),
		},
		{
			Step:        3,
			Description: "Government Rate",
			Formula:     fmt.Sprintf("× %s (%s)", formatFactor(government.Value), government.Label),
			Result:      "₹" + formatINR(roundRupees(afterGovernment)),
		},
		{
			Step:        4,
			Description: "Market Adjustment",
			Formula:     fmt.Sprintf("× %s (%s)", formatFactor(market.Value), market.Label),
			Result:      "₹" + formatINR(roundRupees(finalPayout)),
		},
	}

	return models.PayoutCalculation{
		FarmID:           farm.ID,
		FarmerName:       farm.FarmerName,
		BasePayout:       roundRupees(basePayout),
		Factors:          models.PayoutFactors{Weather: weather, Government: government, Market: market},
		FinalPayout:      roundRupees(finalPayout),
		CalculationSteps: steps,
		Breakdown: models.PayoutBreakdown{
			InsuranceValue:      farm.InsuranceValue,
			YieldLossPercentage: estimate.YieldLoss,
			NDVIDrop:            estimate.NDVIDrop,
			WeatherFactor:       weather.Value,
			GovtFactor:          government.Value,
			MarketFactor:        market.Value,
		},
		Recommendation: recommendation,
		Summary: fmt.Sprintf("Final Payout: ₹%s (%.1f%% yield loss)",
			formatINR(roundRupees(finalPayout)), estimate.YieldLoss),
	}
}

// BatchCalculate computes payouts for every affected farm in the batch.
func (s *PayoutService) BatchCalculate(farms []models.Farm, estimates map[int]models.YieldLossEstimate, disasterCtx models.DisasterContext) []models.PayoutCalculation {
	out := make([]models.PayoutCalculation, 0, len(farms))
	for i := range farms {
		estimate, ok := estimates[farms[i].ID]
		if !ok || !estimate.Affected {
			continue
		}
		out = append(out, s.CalculatePayout(&farms[i], estimate, disasterCtx))
	}
	return out
}

// CalculateRegionalPayout reduces individual payouts into regional totals
// and a 4-bucket size distribution.
func (s *PayoutService) CalculateRegionalPayout(payouts []models.PayoutCalculation) models.RegionalPayout {
	var total, max, min int64
	for i, p := range payouts {
		total += p.FinalPayout
		if i == 0 || p.FinalPayout > max {
			max = p.FinalPayout
		}
		if i == 0 || p.FinalPayout < min {
			min = p.FinalPayout
		}
	}

	var average int64
	if len(payouts) > 0 {
		average = int64(math.Round(float64(total) / float64(len(payouts))))
	}

	var dist models.PayoutDistribution
	for _, p := range payouts {
		switch {
		case p.FinalPayout < 100000:
			dist.Range1++
		case p.FinalPayout < 200000:
			dist.Range2++
		case p.FinalPayout < 300000:
			dist.Range3++
		default:
			dist.Range4++
		}
	}

	return models.RegionalPayout{
		TotalPayout:       total,
		TotalPayoutCrores: fmt.Sprintf("%.2f", float64(total)/10000000),
		AveragePayout:     average,
		MaxPayout:         max,
		MinPayout:         min,
		FarmsWithPayout:   len(payouts),
		Distribution:      dist,
		FormattedTotal:    "₹" + formatINR(total),
		FormattedAverage:  "₹" + formatINR(average),
	}
}

// PayoutCategory buckets a payout amount for map colouring.
func (s *PayoutService) PayoutCategory(payout int64) models.PayoutCategory {
	switch {
	case payout < 100000:
		return models.PayoutCategory{Category: "low", Label: "< ₹1 Lakh", Color: "#10b981", Range: "0-1L"}
	case payout < 200000:
		return models.PayoutCategory{Category: "medium", Label: "₹1-2 Lakh", Color: "#f59e0b", Range: "1-2L"}
	case payout < 300000:
		return models.PayoutCategory{Category: "high", Label: "₹2-3 Lakh", Color: "#f97316", Range: "2-3L"}
	default:
		return models.PayoutCategory{Category: "critical", Label: "> ₹3 Lakh", Color: "#ef4444", Range: "3L+"}
	}
}

// OfficerSummary builds the dashboard card for one payout.
func (s *PayoutService) OfficerSummary(farm *models.Farm, payout models.PayoutCalculation) models.PayoutSummary {
	priority := "normal"
	if payout.FinalPayout > seniorApprovalLimit {
		priority = "high"
	}
	return models.PayoutSummary{
		FarmID:            farm.ID,
		FarmerName:        farm.FarmerName,
		Village:           farm.AdministrativeData.Village,
		Area:              fmt.Sprintf("%.1f Ha", farm.AreaHectares),
		YieldLoss:         fmt.Sprintf("%.1f%%", payout.Breakdown.YieldLossPercentage),
		NDVIDrop:          fmt.Sprintf("%.1f%%", payout.Breakdown.NDVIDrop),
		InsuranceValue:    "₹" + formatINR(roundRupees(farm.InsuranceValue)),
		RecommendedPayout: "₹" + formatINR(payout.FinalPayout),
		Status:            string(models.ClaimPending),
		Priority:          priority,
	}
}

func roundRupees(v float64) int64 {
	return int64(math.Round(v))
}

// formatFactor prints a factor without trailing zeros (1, 1.1, 0.95).
func formatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatINR groups digits in the Indian numbering system: the last three
// digits, then groups of two (1,50,000).
func formatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	head := digits[:len(digits)-3]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return sign + strings.Join(groups, ",") + "," + digits[len(digits)-3:]
}
