package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwatch/internal/models"
)

func sampleSeries(farmID, days int, value float64) []models.NDVISample {
	today := time.Now().Truncate(24 * time.Hour)
	out := make([]models.NDVISample, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, models.NDVISample{
			FarmID: farmID,
			Date:   today.AddDate(0, 0, i-days+1),
			NDVI:   value,
		})
	}
	return out
}

func TestNDVIRepository_ReplaceSeries(t *testing.T) {
	repo := NewNDVIRepository()

	repo.ReplaceSeries(sampleSeries(1, 60, 0.75))
	repo.ReplaceSeries(sampleSeries(1, 30, 0.45))

	series, err := repo.GetSeries(1)
	require.NoError(t, err)
	assert.Len(t, series, 30, "regeneration replaces the previous series")
	assert.Equal(t, 0.45, series[0].NDVI)
}

func TestNDVIRepository_ReplaceSeriesGroupsByFarm(t *testing.T) {
	repo := NewNDVIRepository()

	mixed := append(sampleSeries(1, 10, 0.75), sampleSeries(2, 10, 0.60)...)
	repo.ReplaceSeries(mixed)

	first, err := repo.GetSeries(1)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := repo.GetSeries(2)
	require.NoError(t, err)
	assert.Equal(t, 0.60, second[0].NDVI)
}

func TestNDVIRepository_GetLatest(t *testing.T) {
	repo := NewNDVIRepository()
	series := sampleSeries(1, 10, 0.75)
	series[9].NDVI = 0.42
	repo.ReplaceSeries(series)

	latest, err := repo.GetLatest(1)
	require.NoError(t, err)
	assert.Equal(t, 0.42, latest.NDVI)
}

func TestNDVIRepository_UnknownFarm(t *testing.T) {
	repo := NewNDVIRepository()

	_, err := repo.GetSeries(99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetLatest(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFarmRepository_Seed(t *testing.T) {
	repo := NewFarmRepository()
	repo.Seed([]models.Farm{
		{ID: 1, FarmerName: "rajaram mane"},
		{ID: 2, FarmerName: "sunita patil"},
	})

	assert.Equal(t, 2, repo.Count())

	all := repo.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID, "insertion order preserved")

	farm, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "sunita patil", farm.FarmerName)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
