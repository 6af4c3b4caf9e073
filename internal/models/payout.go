package models

// ============================================================================
// PAYOUT CALCULATION
// ============================================================================

// PayoutFactor is one named multiplicative adjustment in the payout chain.
type PayoutFactor struct {
	Value   float64 `json:"value"`
	Label   string  `json:"label"`
	Applied bool    `json:"applied"`
}

type PayoutFactors struct {
	Weather    PayoutFactor `json:"weather"`
	Government PayoutFactor `json:"government"`
	Market     PayoutFactor `json:"market"`
}

// CalculationStep is one line of the replayable payout breakdown. The step
// list is a contractual output, not a debug aid.
type CalculationStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	Formula     string `json:"formula"`
	Result      string `json:"result"`
}

// PayoutBreakdown snapshots the inputs that produced a payout.
type PayoutBreakdown struct {
	InsuranceValue      float64 `json:"insurance_value"`
	YieldLossPercentage float64 `json:"yield_loss_percentage"`
	NDVIDrop            float64 `json:"ndvi_drop"`
	WeatherFactor       float64 `json:"weather_factor"`
	GovtFactor          float64 `json:"govt_factor"`
	MarketFactor        float64 `json:"market_factor"`
}

// PayoutCalculation is a derived value object; claims embed a snapshot.
type PayoutCalculation struct {
	FarmID           int               `json:"farm_id"`
	FarmerName       string            `json:"farmer_name"`
	BasePayout       int64             `json:"base_payout"`
	Factors          PayoutFactors     `json:"factors"`
	FinalPayout      int64             `json:"final_payout"`
	CalculationSteps []CalculationStep `json:"calculation_steps"`
	Breakdown        PayoutBreakdown   `json:"breakdown"`
	Recommendation   string            `json:"recommendation"`
	Summary          string            `json:"summary"`
}

// DisasterContext carries external conditions that influence the weather
// adjustment factor.
type DisasterContext struct {
	HeavyRainfall bool `json:"heavy_rainfall"`
}

// PayoutDistribution buckets payouts by size (L = lakh = 100,000).
type PayoutDistribution struct {
	Range1 int `json:"range1"` // < 1L
	Range2 int `json:"range2"` // 1-2L
	Range3 int `json:"range3"` // 2-3L
	Range4 int `json:"range4"` // >= 3L
}

// RegionalPayout aggregates individual payouts for a region.
type RegionalPayout struct {
	TotalPayout       int64              `json:"total_payout"`
	TotalPayoutCrores string             `json:"total_payout_crores"`
	AveragePayout     int64              `json:"average_payout"`
	MaxPayout         int64              `json:"max_payout"`
	MinPayout         int64              `json:"min_payout"`
	FarmsWithPayout   int                `json:"farms_with_payout"`
	Distribution      PayoutDistribution `json:"distribution"`
	FormattedTotal    string             `json:"formatted_total"`
	FormattedAverage  string             `json:"formatted_average"`
}

// PayoutCategory buckets a single payout amount for display.
type PayoutCategory struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Range    string `json:"range"`
}

// PayoutSummary is the officer dashboard card for one farm's payout.
type PayoutSummary struct {
	FarmID            int    `json:"farm_id"`
	FarmerName        string `json:"farmer_name"`
	Village           string `json:"village"`
	Area              string `json:"area"`
	YieldLoss         string `json:"yield_loss"`
	NDVIDrop          string `json:"ndvi_drop"`
	InsuranceValue    string `json:"insurance_value"`
	RecommendedPayout string `json:"recommended_payout"`
	Status            string `json:"status"`
	Priority          string `json:"priority"`
}
