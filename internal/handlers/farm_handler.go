package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"cropwatch/internal/models"
	"cropwatch/internal/repository"
	"cropwatch/internal/services"
	"cropwatch/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// FarmHandler serves the farm roster, NDVI data and the monitoring entry
// points.
type FarmHandler struct {
	farmRepo  *repository.FarmRepository
	ndviRepo  *repository.NDVIRepository
	alertRepo *repository.AlertRepository
	monitor   *services.MonitorService
	scenarios *services.ScenarioService
}

func NewFarmHandler(farmRepo *repository.FarmRepository, ndviRepo *repository.NDVIRepository, alertRepo *repository.AlertRepository, monitor *services.MonitorService, scenarios *services.ScenarioService) *FarmHandler {
	return &FarmHandler{
		farmRepo:  farmRepo,
		ndviRepo:  ndviRepo,
		alertRepo: alertRepo,
		monitor:   monitor,
		scenarios: scenarios,
	}
}

func (h *FarmHandler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/farms", h.GetFarms)
	api.Get("/ndvi/:farmId", h.GetNDVISeries)
	api.Post("/ndvi/generate", h.GenerateNDVIData)
	api.Post("/monitoring/run", h.RunMonitoring)
	api.Get("/alerts", h.GetActiveAlerts)
}

type farmView struct {
	models.Farm
	PlotGeoJSON *models.GeoJSONPolygon `json:"plot_geojson,omitempty"`
}

// GetFarms returns the full ordered roster with GeoJSON plot polygons for
// the map layer.
func (h *FarmHandler) GetFarms(c fiber.Ctx) error {
	farms := h.farmRepo.GetAll()

	views := make([]farmView, 0, len(farms))
	for _, farm := range farms {
		view := farmView{Farm: farm}
		if geoJSON, err := models.PlotToGeoJSON(farm.Plot); err == nil {
			view.PlotGeoJSON = geoJSON
		} else {
			slog.Warn("failed to encode farm plot", "farm_id", farm.ID, "error", err)
		}
		views = append(views, view)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"count": len(views),
		"farms": views,
	}))
}

func (h *FarmHandler) GetNDVISeries(c fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farmId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, "Invalid farm ID format"))
	}

	series, err := h.ndviRepo.GetSeries(farmID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse(utils.CodeNotFound, "No NDVI data for farm"))
		}
		slog.Error("Failed to fetch NDVI series", "farm_id", farmID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse(utils.CodeInternal, "Failed to fetch NDVI series"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"farm_id": farmID,
		"count":   len(series),
		"series":  series,
	}))
}

// GenerateNDVIData regenerates the roster's series, optionally with the
// regional flood scenario.
func (h *FarmHandler) GenerateNDVIData(c fiber.Ctx) error {
	req := models.GenerateNDVIRequest{Days: 60, Scenario: "healthy"}
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(
				utils.CreateErrorResponse(utils.CodeValidationFailed, "Invalid request body"))
		}
	}
	if req.Days <= 0 {
		req.Days = 60
	}

	switch req.Scenario {
	case "", "healthy":
		samples := h.scenarios.GenerateHealthy(req.Days)
		return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
			"scenario": "healthy",
			"samples":  samples,
		}))
	case "flood":
		affected, healthy := h.scenarios.GenerateFloodScenario(req.Days)
		return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
			"scenario": "flood",
			"affected": affected,
			"healthy":  healthy,
		}))
	default:
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, "Unknown scenario: "+req.Scenario))
	}
}

func (h *FarmHandler) RunMonitoring(c fiber.Ctx) error {
	result := h.monitor.MonitorAllFarms()
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(result))
}

func (h *FarmHandler) GetActiveAlerts(c fiber.Ctx) error {
	alerts := h.alertRepo.GetActive()
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"count":  len(alerts),
		"alerts": alerts,
	}))
}
