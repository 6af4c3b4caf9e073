package repository

import (
	"fmt"
	"sync"

	"cropwatch/internal/models"
)

// NDVIRepository stores per-farm NDVI time series. A generation run fully
// replaces a farm's series; samples within a run are stored time-ascending.
type NDVIRepository struct {
	mu     sync.RWMutex
	series map[int][]models.NDVISample
}

func NewNDVIRepository() *NDVIRepository {
	return &NDVIRepository{series: make(map[int][]models.NDVISample)}
}

// ReplaceSeries stores samples grouped by farm, replacing whatever series
// each farm had before. All samples for one farm must share its FarmID.
func (r *NDVIRepository) ReplaceSeries(samples []models.NDVISample) {
	grouped := make(map[int][]models.NDVISample)
	for _, s := range samples {
		grouped[s.FarmID] = append(grouped[s.FarmID], s)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for farmID, farmSamples := range grouped {
		r.series[farmID] = farmSamples
	}
}

// GetSeries returns a farm's full time-ascending series.
func (r *NDVIRepository) GetSeries(farmID int) ([]models.NDVISample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	series, ok := r.series[farmID]
	if !ok || len(series) == 0 {
		return nil, fmt.Errorf("ndvi series for farm %d: %w", farmID, ErrNotFound)
	}
	out := make([]models.NDVISample, len(series))
	copy(out, series)
	return out, nil
}

// GetLatest returns the most recent sample for a farm.
func (r *NDVIRepository) GetLatest(farmID int) (*models.NDVISample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	series, ok := r.series[farmID]
	if !ok || len(series) == 0 {
		return nil, fmt.Errorf("ndvi series for farm %d: %w", farmID, ErrNotFound)
	}
	latest := series[len(series)-1]
	return &latest, nil
}
