package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// INSURANCE CLAIMS
// ============================================================================

// Claim binds a farm, an optional triggering alert, and the yield-loss and
// payout snapshots taken at submission time. The snapshots are never
// recomputed after creation so the audit trail survives later formula
// changes.
type Claim struct {
	ID            uuid.UUID         `json:"id"`
	FarmID        int               `json:"farm_id"`
	FarmerName    string            `json:"farmer_name"`
	AlertID       *uuid.UUID        `json:"alert_id,omitempty"`
	YieldLossData YieldLossEstimate `json:"yield_loss_data"`
	PayoutData    PayoutCalculation `json:"payout_data"`
	Status        ClaimStatus       `json:"status"`
	SubmittedAt   time.Time         `json:"submitted_at"`
	ReviewedAt    *time.Time        `json:"reviewed_at"`
	ReviewedBy    *string           `json:"reviewed_by"`
	OfficerNotes  *string           `json:"officer_notes"`
	Metadata      ClaimMetadata     `json:"metadata"`
}

// ClaimMetadata snapshots farm attributes at submission time.
type ClaimMetadata struct {
	Village        string  `json:"village"`
	AreaHectares   float64 `json:"area_hectares"`
	InsuranceValue float64 `json:"insurance_value"`
}

// ClaimInput is the creation payload for a claim.
type ClaimInput struct {
	FarmID         int               `json:"farm_id"`
	FarmerName     string            `json:"farmer_name"`
	AlertID        *uuid.UUID        `json:"alert_id,omitempty"`
	YieldLossData  YieldLossEstimate `json:"yield_loss_data"`
	PayoutData     PayoutCalculation `json:"payout_data"`
	Village        string            `json:"village"`
	AreaHectares   float64           `json:"area_hectares"`
	InsuranceValue float64           `json:"insurance_value"`
}

type ClaimStats struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Approved      int     `json:"approved"`
	Rejected      int     `json:"rejected"`
	Flagged       int     `json:"flagged"`
	TotalPayout   int64   `json:"total_payout"`
	PendingPayout int64   `json:"pending_payout"`
	ApprovalRate  float64 `json:"approval_rate"`
}
