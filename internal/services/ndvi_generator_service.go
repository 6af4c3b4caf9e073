package services

import (
	"math"
	"math/rand"
	"time"

	"cropwatch/internal/models"
)

const (
	ndviFloor   = 0.1
	ndviCeiling = 0.95
)

// NDVIGeneratorService synthesizes daily NDVI series. Randomness lives only
// in the base synthesis; disaster injection is a deterministic transform so
// scenario tests reproduce their expected drop.
type NDVIGeneratorService struct {
	rng *rand.Rand
}

func NewNDVIGeneratorService(seed int64) *NDVIGeneratorService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &NDVIGeneratorService{rng: rand.New(rand.NewSource(seed))}
}

// GenerateSeries produces `days` consecutive daily samples ending today:
// the farm's baseline plus a shallow seasonal swell and bounded noise,
// clamped to the sensor's plausible range.
func (s *NDVIGeneratorService) GenerateSeries(farm *models.Farm, days int) []models.NDVISample {
	samples := make([]models.NDVISample, 0, days)
	today := time.Now().Truncate(24 * time.Hour)
	phase := s.rng.Float64() * 2 * math.Pi

	for i := 0; i < days; i++ {
		seasonal := 0.02 * math.Sin(2*math.Pi*float64(i)/45+phase)
		noise := (s.rng.Float64() - 0.5) * 0.04

		samples = append(samples, models.NDVISample{
			FarmID: farm.ID,
			Date:   today.AddDate(0, 0, i-days+1),
			NDVI:   clampNDVI(farm.BaselineNDVI + seasonal + noise),
		})
	}

	return samples
}

// InjectDisaster overlays a disaster window on a copy of the series. Days
// outside [StartDayOffset, StartDayOffset+DurationDays) keep their
// synthesized value. Within the window the curve dips to the full factor
// 1 - severity/2 after a one-day onset ramp; a window that ends before the
// series does climbs halfway back in its tail quarter (partial recovery),
// while a window running through the final day holds the full dip so the
// latest sample shows a drop of severity x 50 percent. The transform is
// deterministic for a given series and event.
func (s *NDVIGeneratorService) InjectDisaster(series []models.NDVISample, event models.DisasterEvent) []models.NDVISample {
	out := make([]models.NDVISample, len(series))
	copy(out, series)

	start := event.StartDayOffset
	if start < 0 {
		start = 0
	}
	end := event.StartDayOffset + event.DurationDays
	if end > len(out) {
		end = len(out)
	}
	if start >= end {
		return out
	}

	dip := event.Severity * 0.5
	duration := end - start
	interior := event.StartDayOffset+event.DurationDays < len(out)
	tailStart := start + duration*3/4

	for i := start; i < end; i++ {
		factor := dip
		if i == start && duration > 1 {
			factor = dip * 0.5 // onset ramp
		}
		if interior && duration >= 4 && i >= tailStart {
			recovered := float64(i-tailStart+1) / float64(end-tailStart)
			factor = dip * (1 - 0.5*recovered)
		}
		out[i].NDVI = clampNDVI(out[i].NDVI * (1 - factor))
	}

	return out
}

func clampNDVI(v float64) float64 {
	return math.Min(ndviCeiling, math.Max(ndviFloor, v))
}
