package models

// ============================================================================
// YIELD LOSS ESTIMATION
// ============================================================================

// YieldLossEstimate is a derived value object, never persisted on its own.
// A claim captures a snapshot of it at submission time.
type YieldLossEstimate struct {
	Affected       bool                  `json:"affected"`
	YieldLoss      float64               `json:"yield_loss"` // percent, 0-100
	Confidence     float64               `json:"confidence"` // percent, capped at 98
	Status         CropHealthStatus      `json:"status"`
	NDVIDrop       float64               `json:"ndvi_drop"` // percent
	Message        string                `json:"message"`
	DisasterType   DisasterType          `json:"disaster_type"`
	Recommendation string                `json:"recommendation"`
	Calculation    *YieldLossCalculation `json:"calculation,omitempty"`
}

// YieldLossCalculation is the replayable formula breakdown shown to
// officers. Absent on unaffected farms.
type YieldLossCalculation struct {
	Formula      string  `json:"formula"`
	NDVIDrop     string  `json:"ndvi_drop"`
	Multiplier   float64 `json:"multiplier"`
	RawResult    string  `json:"raw_result"`
	CappedResult string  `json:"capped_result"`
}

// FarmYieldLoss pairs a batch estimate with the farm it belongs to.
type FarmYieldLoss struct {
	FarmID     int    `json:"farm_id"`
	FarmerName string `json:"farmer_name"`
	YieldLossEstimate
}

// YieldLossCategory buckets a loss percentage for map/dashboard display.
type YieldLossCategory struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Color    string `json:"color"`
}

// ActualYield compares expected output against the estimated loss.
type ActualYield struct {
	ExpectedYield  float64 `json:"expected_yield"` // quintals
	ActualYield    float64 `json:"actual_yield"`
	LossAmount     float64 `json:"loss_amount"`
	LossPercentage float64 `json:"loss_percentage"`
}
