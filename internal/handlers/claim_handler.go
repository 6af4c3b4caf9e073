package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"cropwatch/internal/models"
	"cropwatch/internal/repository"
	"cropwatch/internal/services"
	"cropwatch/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimService *services.ClaimService
	alertRepo    *repository.AlertRepository
}

func NewClaimHandler(claimService *services.ClaimService, alertRepo *repository.AlertRepository) *ClaimHandler {
	return &ClaimHandler{claimService: claimService, alertRepo: alertRepo}
}

func (h *ClaimHandler) Register(app *fiber.App) {
	claims := app.Group("/api/claims")

	claims.Get("/", h.GetClaims)
	claims.Get("/stats", h.GetClaimsStats)
	claims.Get("/farm/:farmId", h.GetClaimsByFarm)
	claims.Get("/:id", h.GetClaimByID)
	claims.Post("/", h.CreateClaim)
	claims.Put("/:id/approve", h.ApproveClaim)
	claims.Put("/:id/reject", h.RejectClaim)
	claims.Put("/:id/flag", h.FlagClaim)
	claims.Post("/auto-generate", h.AutoGenerateClaims)
}

// GetClaims returns all claims, optionally filtered by ?status=.
func (h *ClaimHandler) GetClaims(c fiber.Ctx) error {
	status := c.Query("status", "all")
	claims := h.claimService.GetClaims(status)

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"count":  len(claims),
		"claims": claims,
	}))
}

func (h *ClaimHandler) GetClaimsStats(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.claimService.Stats()))
}

func (h *ClaimHandler) GetClaimByID(c fiber.Ctx) error {
	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, "Invalid claim ID format"))
	}

	claim, err := h.claimService.GetClaimByID(claimID)
	if err != nil {
		return respondClaimError(c, claimID, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) GetClaimsByFarm(c fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farmId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, "Invalid farm ID format"))
	}

	claims := h.claimService.GetClaimsByFarm(farmID)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"count":  len(claims),
		"claims": claims,
	}))
}

func (h *ClaimHandler) CreateClaim(c fiber.Ctx) error {
	var input models.ClaimInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, "Invalid request body"))
	}

	claim, err := h.claimService.CreateClaim(input)
	if err != nil {
		if strings.Contains(err.Error(), "badrequest") {
			return c.Status(http.StatusBadRequest).JSON(
				utils.CreateErrorResponse(utils.CodeValidationFailed, err.Error()))
		}
		slog.Error("Failed to create claim", "farm_id", input.FarmID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse(utils.CodeInternal, "Failed to create claim"))
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) ApproveClaim(c fiber.Ctx) error {
	return h.review(c, func(id uuid.UUID, req models.ReviewClaimRequest) (*models.Claim, error) {
		return h.claimService.Approve(id, req.OfficerName)
	})
}

func (h *ClaimHandler) RejectClaim(c fiber.Ctx) error {
	return h.review(c, func(id uuid.UUID, req models.ReviewClaimRequest) (*models.Claim, error) {
		return h.claimService.Reject(id, req.OfficerName, req.Reason)
	})
}

func (h *ClaimHandler) FlagClaim(c fiber.Ctx) error {
	return h.review(c, func(id uuid.UUID, req models.ReviewClaimRequest) (*models.Claim, error) {
		return h.claimService.Flag(id, req.OfficerName, req.Reason)
	})
}

func (h *ClaimHandler) review(c fiber.Ctx, apply func(uuid.UUID, models.ReviewClaimRequest) (*models.Claim, error)) error {
	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, "Invalid claim ID format"))
	}

	var req models.ReviewClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, "Invalid request body"))
	}

	claim, err := apply(claimID, req)
	if err != nil {
		return respondClaimError(c, claimID, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"message": fmt.Sprintf("Claim %s for %s", claim.Status, claim.FarmerName),
		"claim":   claim,
	}))
}

// AutoGenerateClaims files claims for every active alert above the lowest
// severity tier.
func (h *ClaimHandler) AutoGenerateClaims(c fiber.Ctx) error {
	alerts := h.alertRepo.GetActive()
	claims := h.claimService.AutoGenerateFromAlerts(alerts)

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"message": fmt.Sprintf("Generated %d claims from active alerts", len(claims)),
		"count":   len(claims),
		"claims":  claims,
	}))
}

func respondClaimError(c fiber.Ctx, claimID uuid.UUID, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse(utils.CodeNotFound, "Claim not found"))
	}
	if strings.Contains(err.Error(), "badrequest") {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse(utils.CodeValidationFailed, err.Error()))
	}
	slog.Error("Claim operation failed", "claim_id", claimID, "error", err)
	return c.Status(http.StatusInternalServerError).JSON(
		utils.CreateErrorResponse(utils.CodeInternal, "Claim operation failed"))
}
