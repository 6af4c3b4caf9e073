package repository

import (
	"fmt"
	"sync"

	"cropwatch/internal/models"

	"github.com/google/uuid"
)

// AlertRepository owns monitoring alerts. Resolution flips status, it never
// deletes; the invariant "at most one active alert per farm" is enforced at
// creation time under the store lock.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts []models.Alert
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

// Create stores the alert unless the farm already has an active one, in
// which case it reports ok=false and stores nothing. Check and insert run
// under one lock so concurrent monitoring sweeps cannot double-alert a farm.
func (r *AlertRepository) Create(alert models.Alert) (ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.alerts {
		if a.FarmID == alert.FarmID && a.Status == models.AlertActive {
			return false
		}
	}
	r.alerts = append(r.alerts, alert)
	return true
}

// HasActive reports whether the farm has an unresolved alert.
func (r *AlertRepository) HasActive(farmID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.alerts {
		if a.FarmID == farmID && a.Status == models.AlertActive {
			return true
		}
	}
	return false
}

// GetActive returns all unresolved alerts.
func (r *AlertRepository) GetActive() []models.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Alert
	for _, a := range r.alerts {
		if a.Status == models.AlertActive {
			out = append(out, a)
		}
	}
	return out
}

// GetAll returns every alert regardless of status.
func (r *AlertRepository) GetAll() []models.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Alert, len(r.alerts))
	copy(out, r.alerts)
	return out
}

// Resolve flips an alert to resolved. The alert record is kept.
func (r *AlertRepository) Resolve(id uuid.UUID) (*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Status = models.AlertResolved
			resolved := r.alerts[i]
			return &resolved, nil
		}
	}
	return nil, fmt.Errorf("alert %s: %w", id, ErrNotFound)
}
