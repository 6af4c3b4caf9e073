package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwatch/internal/geo"
)

// Shahuwadi pilot boundary used by the demo roster.
var testPlacementBoundary = []geo.Point{
	{Lat: 16.713014674656513, Lng: 74.19346219529133},
	{Lat: 16.71129990029675, Lng: 74.19827199353445},
	{Lat: 16.707171881293117, Lng: 74.19143287244015},
	{Lat: 16.705647478823355, Lng: 74.19729933576573},
}

func TestGeneratePlacements_Constraints(t *testing.T) {
	svc := NewPlacementService(42)

	placements := svc.GeneratePlacements(20, testPlacementBoundary)
	require.NotEmpty(t, placements)

	for i, p := range placements {
		assert.True(t, geo.PointInPolygon(p.Center, testPlacementBoundary), "center %d inside boundary", i)
		assert.Len(t, p.Plot, 4)
		assert.GreaterOrEqual(t, p.AreaHectares, 1.5)
		assert.LessOrEqual(t, p.AreaHectares, 5.0)

		for j := i + 1; j < len(placements); j++ {
			dist := geo.Distance(p.Center, placements[j].Center)
			assert.GreaterOrEqual(t, dist, 0.0005, "centers %d and %d too close", i, j)
		}
	}
}

func TestGeneratePlacements_Reproducible(t *testing.T) {
	first := NewPlacementService(7).GeneratePlacements(10, testPlacementBoundary)
	second := NewPlacementService(7).GeneratePlacements(10, testPlacementBoundary)

	assert.Equal(t, first, second)
}

func TestGeneratePlacements_SoftCapOnDenseBoundary(t *testing.T) {
	svc := NewPlacementService(42)

	// A boundary this small cannot hold 100 farms at the minimum spacing.
	tiny := []geo.Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.001},
		{Lat: 0.001, Lng: 0.001},
		{Lat: 0.001, Lng: 0},
	}

	placements := svc.GeneratePlacements(100, tiny)

	assert.NotEmpty(t, placements)
	assert.Less(t, len(placements), 100, "budget exhaustion returns a short roster, not an error")
}

func TestSeedFarms(t *testing.T) {
	svc := NewPlacementService(42)

	farms := svc.SeedFarms(10, testPlacementBoundary)
	require.Len(t, farms, 10)

	for i, farm := range farms {
		assert.Equal(t, i+1, farm.ID, "ids are sequential from 1")
		assert.NotEmpty(t, farm.FarmerName)
		assert.Equal(t, "Soybean", farm.Crop)
		assert.Equal(t, "Kolhapur", farm.Location)
		assert.Len(t, farm.Plot, 4)

		assert.GreaterOrEqual(t, farm.BaselineNDVI, 0.70)
		assert.LessOrEqual(t, farm.BaselineNDVI, 0.80)

		assert.InDelta(t, farm.AreaHectares*100000, farm.InsuranceValue, 0.5, "insured at 1 lakh per hectare")
		assert.Equal(t, farm.SowingDate.AddDate(0, 0, 115), farm.ExpectedHarvestDate)

		assert.Equal(t, "Maharashtra", farm.AdministrativeData.State)
		assert.NotEmpty(t, farm.AdministrativeData.Village)
		assert.NotEmpty(t, farm.ContactInfo.Phone)
	}
}

func TestSeedFarms_Reproducible(t *testing.T) {
	first := NewPlacementService(7).SeedFarms(5, testPlacementBoundary)
	second := NewPlacementService(7).SeedFarms(5, testPlacementBoundary)

	assert.Equal(t, first, second)
}
