package repository

import (
	"fmt"
	"sync"

	"cropwatch/internal/models"
)

// FarmRepository owns the in-memory farm roster. The roster is seeded once
// at process start and farms are never deleted in normal operation.
type FarmRepository struct {
	mu    sync.RWMutex
	farms []models.Farm
	byID  map[int]int // farm id -> index into farms
}

func NewFarmRepository() *FarmRepository {
	return &FarmRepository{byID: make(map[int]int)}
}

// Seed replaces the roster. Insertion order is preserved for GetAll.
func (r *FarmRepository) Seed(farms []models.Farm) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.farms = make([]models.Farm, len(farms))
	copy(r.farms, farms)
	r.byID = make(map[int]int, len(farms))
	for i, f := range r.farms {
		r.byID[f.ID] = i
	}
}

// GetAll returns the full ordered roster.
func (r *FarmRepository) GetAll() []models.Farm {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Farm, len(r.farms))
	copy(out, r.farms)
	return out
}

func (r *FarmRepository) GetByID(id int) (*models.Farm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("farm %d: %w", id, ErrNotFound)
	}
	farm := r.farms[i]
	return &farm, nil
}

func (r *FarmRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.farms)
}
