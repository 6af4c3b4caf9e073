package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cropwatch/internal/config"
	"cropwatch/internal/geo"
	"cropwatch/internal/handlers"
	"cropwatch/internal/repository"
	"cropwatch/internal/scheduler"
	"cropwatch/internal/services"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
)

// Pilot region boundary: Shahuwadi tehsil, Kolhapur district.
var pilotBoundary = []geo.Point{
	{Lat: 16.713014674656513, Lng: 74.19346219529133},
	{Lat: 16.71129990029675, Lng: 74.19827199353445},
	{Lat: 16.707171881293117, Lng: 74.19143287244015},
	{Lat: 16.705647478823355, Lng: 74.19729933576573},
}

func setupLogging(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	logFileName := fmt.Sprintf("log_%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))

	return file, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment defaults")
	}
	cfg := config.New()

	logFile, err := setupLogging(cfg.LogDir)
	if err != nil {
		fmt.Printf("File logging unavailable, using stderr: %v\n", err)
	} else {
		defer logFile.Close()
	}

	// Stores
	farmRepo := repository.NewFarmRepository()
	ndviRepo := repository.NewNDVIRepository()
	alertRepo := repository.NewAlertRepository()
	claimRepo := repository.NewClaimRepository()

	// Services
	placement := services.NewPlacementService(cfg.RandomSeed)
	generator := services.NewNDVIGeneratorService(cfg.RandomSeed)
	scenarios := services.NewScenarioService(farmRepo, ndviRepo, generator, cfg.RandomSeed)
	monitor := services.NewMonitorService(farmRepo, ndviRepo, alertRepo)
	estimator := services.NewYieldLossService()
	payouts := services.NewPayoutService()
	claims := services.NewClaimService(claimRepo, farmRepo, estimator, payouts)

	// Bootstrap: seed the roster, run the demo flood scenario, take an
	// initial monitoring sweep so the dashboard opens with live alerts.
	farms := placement.SeedFarms(cfg.FarmCount, pilotBoundary)
	farmRepo.Seed(farms)
	slog.Info("farm roster seeded", "requested", cfg.FarmCount, "placed", len(farms))

	affected, healthy := scenarios.GenerateFloodScenario(cfg.SeriesDays)
	slog.Info("demo scenario ready", "affected", affected, "healthy", healthy)

	sweep := monitor.MonitorAllFarms()
	slog.Info("initial monitoring sweep", "alerts", sweep.AlertsGenerated)

	// Scheduler
	sched := scheduler.NewScheduler(monitor, cfg.MonitorCron)
	if err := sched.Start(); err != nil {
		slog.Error("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	// HTTP surface
	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Cropwatch service is healthy")
	})

	handlers.NewFarmHandler(farmRepo, ndviRepo, alertRepo, monitor, scenarios).Register(app)
	handlers.NewClaimHandler(claims, alertRepo).Register(app)

	slog.Info("cropwatch listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
