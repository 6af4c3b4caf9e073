package services

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"cropwatch/internal/geo"
	"cropwatch/internal/models"
)

const (
	// Minimum separation between farm centers in degree terms, ~50 m.
	minCenterDistance = 0.0005
	// Sampling budget per requested farm before giving up.
	attemptsPerFarm = 150
)

// Placement is one accepted farm site: a center inside the boundary and an
// irregular plot polygon around it.
type Placement struct {
	Center       geo.Point   `json:"center"`
	Plot         []geo.Point `json:"plot"`
	AreaHectares float64     `json:"area_hectares"`
}

// PlacementService rejection-samples farm sites inside a boundary polygon.
type PlacementService struct {
	rng *rand.Rand
}

// NewPlacementService builds a placement generator. seed 0 means
// time-seeded; any other value gives a reproducible layout.
func NewPlacementService(seed int64) *PlacementService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PlacementService{rng: rand.New(rand.NewSource(seed))}
}

// GeneratePlacements draws up to count farm sites inside boundary. Every
// accepted center is strictly inside the boundary and at least
// minCenterDistance from every other accepted center. The attempt budget is
// a soft cap: when dense boundaries exhaust it the result is simply shorter
// than requested, never an error.
func (s *PlacementService) GeneratePlacements(count int, boundary []geo.Point) []Placement {
	bounds := geo.PolygonBounds(boundary)
	placements := make([]Placement, 0, count)

	attempts := 0
	maxAttempts := count * attemptsPerFarm

	for len(placements) < count && attempts < maxAttempts {
		attempts++

		candidate := geo.Point{
			Lat: bounds.MinLat + s.rng.Float64()*(bounds.MaxLat-bounds.MinLat),
			Lng: bounds.MinLng + s.rng.Float64()*(bounds.MaxLng-bounds.MinLng),
		}

		if !geo.PointInPolygon(candidate, boundary) {
			continue
		}

		tooClose := false
		for _, p := range placements {
			if geo.Distance(candidate, p.Center) < minCenterDistance {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		area := 1.5 + s.rng.Float64()*3.5
		area = math.Round(area*10) / 10
		skew := 0.7 + s.rng.Float64()*0.6

		placements = append(placements, Placement{
			Center:       candidate,
			Plot:         geo.PlotQuadrilateral(candidate, area, skew),
			AreaHectares: area,
		})
	}

	if len(placements) < count {
		slog.Warn("placement budget exhausted, returning short roster",
			"requested", count, "placed", len(placements), "attempts", attempts)
	}

	return placements
}

// Roster seeding pools, drawn from the Shahuwadi/Kolhapur pilot region.
var (
	rosterFirstNames = []string{
		"rajaram", "sarjerao", "vishal", "ramesh", "sunita", "baburao",
		"shantabai", "dattatray", "prakash", "mangal", "tanaji", "savita",
	}
	rosterLastNames = []string{
		"mane", "rane", "patil", "jadhav", "desai", "chavan", "shinde", "pawar",
	}
	rosterVarieties = []string{
		"Soybean (JS 335 variety)", "Soybean (MAUS 71 variety)", "Soybean (JS 9305 variety)",
	}
	rosterVillages = []struct {
		Tehsil  string
		Village string
		Pincode string
	}{
		{"Shahuwadi", "Nesari", "416213"},
		{"Radhanagari", "Kasba Walva", "416211"},
		{"Karveer", "Nigave", "416207"},
	}
)

// SeedFarms generates a full farm roster placed inside boundary. The roster
// may be shorter than count when placement runs out of room.
func (s *PlacementService) SeedFarms(count int, boundary []geo.Point) []models.Farm {
	placements := s.GeneratePlacements(count, boundary)
	farms := make([]models.Farm, 0, len(placements))

	sowingBase := time.Date(2025, time.July, 12, 0, 0, 0, 0, time.UTC)

	for i, p := range placements {
		id := i + 1
		name := fmt.Sprintf("%s %s",
			rosterFirstNames[s.rng.Intn(len(rosterFirstNames))],
			rosterLastNames[s.rng.Intn(len(rosterLastNames))])
		admin := rosterVillages[s.rng.Intn(len(rosterVillages))]
		sowing := sowingBase.AddDate(0, 0, s.rng.Intn(10))

		baseline := 0.70 + s.rng.Float64()*0.10
		baseline = math.Round(baseline*100) / 100

		farms = append(farms, models.Farm{
			ID:                  id,
			FarmerName:          name,
			Crop:                "Soybean",
			CropVariety:         rosterVarieties[s.rng.Intn(len(rosterVarieties))],
			Location:            "Kolhapur",
			Plot:                p.Plot,
			AreaHectares:        p.AreaHectares,
			SowingDate:          sowing,
			ExpectedHarvestDate: sowing.AddDate(0, 0, 115),
			BaselineNDVI:        baseline,
			InsuranceValue:      math.Round(p.AreaHectares * 100000),
			ContactInfo: models.ContactInfo{
				Phone:  fmt.Sprintf("+91-98765%05d", 43210+id),
				Aadhar: fmt.Sprintf("1234-5678-%04d", 9011+id),
			},
			AdministrativeData: models.AdministrativeData{
				State:    "Maharashtra",
				District: "Kolhapur",
				Tehsil:   admin.Tehsil,
				Village:  admin.Village,
				Pincode:  admin.Pincode,
			},
		})
	}

	return farms
}
