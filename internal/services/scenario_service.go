package services

import (
	"log/slog"
	"math/rand"
	"time"

	"cropwatch/internal/models"
	"cropwatch/internal/repository"
)

// ScenarioService regenerates NDVI test data for the whole roster: either a
// healthy season or a regional flood hitting most farms. Each run fully
// replaces the stored series.
type ScenarioService struct {
	farms     *repository.FarmRepository
	ndvi      *repository.NDVIRepository
	generator *NDVIGeneratorService
	rng       *rand.Rand
}

func NewScenarioService(farms *repository.FarmRepository, ndvi *repository.NDVIRepository, generator *NDVIGeneratorService, seed int64) *ScenarioService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &ScenarioService{
		farms:     farms,
		ndvi:      ndvi,
		generator: generator,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// GenerateHealthy regenerates a disaster-free series for every farm.
// Returns the number of samples stored.
func (s *ScenarioService) GenerateHealthy(days int) int {
	total := 0
	for _, farm := range s.farms.GetAll() {
		series := s.generator.GenerateSeries(&farm, days)
		s.ndvi.ReplaceSeries(series)
		total += len(series)
	}

	slog.Info("generated healthy ndvi data", "farms", s.farms.Count(), "samples", total)
	return total
}

// GenerateFloodScenario regenerates series with a regional flood: 80% of
// farms get an injected flood of severity 0.6-0.9 whose window runs through
// today, the rest stay healthy. Returns (affected, healthy) farm counts.
func (s *ScenarioService) GenerateFloodScenario(days int) (affected, healthy int) {
	farms := s.farms.GetAll()

	shuffled := make([]models.Farm, len(farms))
	copy(shuffled, farms)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	affectedCount := len(shuffled) * 8 / 10

	for i, farm := range shuffled {
		series := s.generator.GenerateSeries(&farm, days)

		if i < affectedCount {
			severity := 0.6 + s.rng.Float64()*0.3
			series = s.generator.InjectDisaster(series, models.DisasterEvent{
				Type:           models.DisasterFlood,
				StartDayOffset: days - 7,
				DurationDays:   7, // through today, so the latest sample carries the dip
				Severity:       severity,
			})
			affected++
		} else {
			healthy++
		}

		s.ndvi.ReplaceSeries(series)
	}

	slog.Info("generated flood scenario", "affected", affected, "healthy", healthy, "days", days)
	return affected, healthy
}
