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

const defaultOfficerName = "System Officer"

// ClaimService drives the claim lifecycle: pending -> approved | rejected |
// flagged. Approved and rejected are terminal; flagged claims stay
// reviewable through the same approve/reject entry points.
type ClaimService struct {
	claims    *repository.ClaimRepository
	farms     *repository.FarmRepository
	estimator *YieldLossService
	payouts   *PayoutService

	mu sync.Mutex // single writer across creation and auto-generation
}

func NewClaimService(claims *repository.ClaimRepository, farms *repository.FarmRepository, estimator *YieldLossService, payouts *PayoutService) *ClaimService {
	return &ClaimService{
		claims:    claims,
		farms:     farms,
		estimator: estimator,
		payouts:   payouts,
	}
}

// CreateClaim validates the input, snapshots the supplied yield-loss and
// payout data, and files a pending claim.
func (s *ClaimService) CreateClaim(input models.ClaimInput) (*models.Claim, error) {
	if input.FarmID <= 0 {
		return nil, fmt.Errorf("badrequest: farm_id is required")
	}
	if input.FarmerName == "" {
		return nil, fmt.Errorf("badrequest: farmer_name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	claim := s.claims.Create(models.Claim{
		ID:            uuid.New(),
		FarmID:        input.FarmID,
		FarmerName:    input.FarmerName,
		AlertID:       input.AlertID,
		YieldLossData: input.YieldLossData,
		PayoutData:    input.PayoutData,
		Status:        models.ClaimPending,
		SubmittedAt:   time.Now(),
		Metadata: models.ClaimMetadata{
			Village:        input.Village,
			AreaHectares:   input.AreaHectares,
			InsuranceValue: input.InsuranceValue,
		},
	})
	return &claim, nil
}

func (s *ClaimService) GetClaims(status string) []models.Claim {
	return s.claims.GetAll(status)
}

func (s *ClaimService) GetClaimByID(id uuid.UUID) (*models.Claim, error) {
	return s.claims.GetByID(id)
}

func (s *ClaimService) GetClaimsByFarm(farmID int) []models.Claim {
	return s.claims.GetByFarmID(farmID)
}

// Approve finalizes a pending or flagged claim.
func (s *ClaimService) Approve(id uuid.UUID, officerName string) (*models.Claim, error) {
	notes := "Claim approved"
	return s.transition(id, models.ClaimApproved, officerName, &notes)
}

// Reject finalizes a pending or flagged claim with a reason.
func (s *ClaimService) Reject(id uuid.UUID, officerName, reason string) (*models.Claim, error) {
	if reason == "" {
		reason = "Insufficient evidence"
	}
	return s.transition(id, models.ClaimRejected, officerName, &reason)
}

// Flag marks a claim for field inspection. The claim stays reviewable.
func (s *ClaimService) Flag(id uuid.UUID, officerName, reason string) (*models.Claim, error) {
	if reason == "" {
		reason = "Requires field inspection"
	}
	return s.transition(id, models.ClaimFlagged, officerName, &reason)
}

func (s *ClaimService) transition(id uuid.UUID, status models.ClaimStatus, officerName string, notes *string) (*models.Claim, error) {
	if officerName == "" {
		officerName = defaultOfficerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	claim, err := s.claims.Transition(id, status, officerName, notes)
	if err != nil {
		return nil, err
	}

	slog.Info("claim reviewed", "claim_id", id, "status", status, "reviewed_by", officerName)
	return claim, nil
}

// Stats aggregates claim counts and payout totals. Approval rate is
// approved/total x 100, zero for an empty store.
func (s *ClaimService) Stats() models.ClaimStats {
	all := s.claims.GetAll("all")

	stats := models.ClaimStats{Total: len(all)}
	for _, c := range all {
		switch c.Status {
		case models.ClaimPending:
			stats.Pending++
			stats.PendingPayout += c.PayoutData.FinalPayout
		case models.ClaimApproved:
			stats.Approved++
			stats.TotalPayout += c.PayoutData.FinalPayout
		case models.ClaimRejected:
			stats.Rejected++
		case models.ClaimFlagged:
			stats.Flagged++
		}
	}

	if stats.Total > 0 {
		stats.ApprovalRate = math.Round(float64(stats.Approved)/float64(stats.Total)*100*10) / 10
	}
	return stats
}

// AutoGenerateFromAlerts files one claim per alerted farm. Moderate alerts
// are left for manual filing; a farm that already has any claim is skipped
// (dedup is per farm, not per alert), as is an alert whose farm cannot be
// resolved. Individual failures never abort the batch.
func (s *ClaimService) AutoGenerateFromAlerts(alerts []models.Alert) []models.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()

	generated := []models.Claim{}

	for _, alert := range alerts {
		if alert.Severity == models.SeverityModerate {
			continue
		}

		farm, err := s.farms.GetByID(alert.FarmID)
		if err != nil {
			slog.Warn("skipping alert without matching farm", "alert_id", alert.ID, "farm_id", alert.FarmID)
			continue
		}

		if s.claims.ExistsForFarm(farm.ID) {
			continue
		}

		cause := alert.EstimatedCause
		if cause == "" {
			cause = models.DisasterFlood
		}

		estimate := s.estimator.EstimateYieldLoss(alert.CurrentNDVI, alert.BaselineNDVI, cause)
		payout := s.payouts.CalculatePayout(farm, estimate, models.DisasterContext{
			HeavyRainfall: cause == models.DisasterFlood,
		})

		alertID := alert.ID
		claim := s.claims.Create(models.Claim{
			ID:            uuid.New(),
			FarmID:        farm.ID,
			FarmerName:    farm.FarmerName,
			AlertID:       &alertID,
			YieldLossData: estimate,
			PayoutData:    payout,
			Status:        models.ClaimPending,
			SubmittedAt:   time.Now(),
			Metadata: models.ClaimMetadata{
				Village:        farm.AdministrativeData.Village,
				AreaHectares:   farm.AreaHectares,
				InsuranceValue: farm.InsuranceValue,
			},
		})
		generated = append(generated, claim)
	}

	slog.Info("auto-generated claims from alerts", "alerts", len(alerts), "claims", len(generated))
	return generated
}
