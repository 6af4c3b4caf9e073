package repository

import (
	"fmt"
	"sync"
	"time"

	"cropwatch/internal/models"

	"github.com/google/uuid"
)

// ClaimRepository owns the in-memory claim store. Status transitions run
// under the store lock so a refused transition never leaves a claim
// half-updated.
type ClaimRepository struct {
	mu     sync.RWMutex
	claims []models.Claim
}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{}
}

func (r *ClaimRepository) Create(claim models.Claim) models.Claim {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.claims = append(r.claims, claim)
	return claim
}

// GetAll returns claims, optionally filtered by status ("" or "all" returns
// everything).
func (r *ClaimRepository) GetAll(status string) []models.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Claim, 0, len(r.claims))
	for _, c := range r.claims {
		if status == "" || status == "all" || string(c.Status) == status {
			out = append(out, c)
		}
	}
	return out
}

func (r *ClaimRepository) GetByID(id uuid.UUID) (*models.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.claims {
		if c.ID == id {
			claim := c
			return &claim, nil
		}
	}
	return nil, fmt.Errorf("claim %s: %w", id, ErrNotFound)
}

func (r *ClaimRepository) GetByFarmID(farmID int) []models.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Claim
	for _, c := range r.claims {
		if c.FarmID == farmID {
			out = append(out, c)
		}
	}
	return out
}

// ExistsForFarm reports whether any claim has been filed for the farm.
func (r *ClaimRepository) ExistsForFarm(farmID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.claims {
		if c.FarmID == farmID {
			return true
		}
	}
	return false
}

// Transition moves a claim into the given status, stamping the review
// fields. Claims already approved or rejected are terminal; the transition
// is refused before anything is written, so reviewedAt/reviewedBy stay
// untouched on failure. Flagged claims remain reviewable.
func (r *ClaimRepository) Transition(id uuid.UUID, status models.ClaimStatus, reviewedBy string, notes *string) (*models.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.claims {
		if r.claims[i].ID != id {
			continue
		}
		if r.claims[i].Status == models.ClaimApproved || r.claims[i].Status == models.ClaimRejected {
			return nil, fmt.Errorf("badrequest: claim %s already finalized as %s", id, r.claims[i].Status)
		}

		now := time.Now()
		r.claims[i].Status = status
		r.claims[i].ReviewedAt = &now
		r.claims[i].ReviewedBy = &reviewedBy
		if notes != nil {
			r.claims[i].OfficerNotes = notes
		}
		claim := r.claims[i]
		return &claim, nil
	}
	return nil, fmt.Errorf("claim %s: %w", id, ErrNotFound)
}

// Clear empties the store. Test helper.
func (r *ClaimRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims = nil
}
