package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mattia9203/RunApp-Server/internal/models"
)

type runStore interface {
	Create(ctx context.Context, run *models.Run) error
	ListByUserID(ctx context.Context, userID string) ([]models.RunSummary, error)
	Delete(ctx context.Context, runID int64) (int64, error)
}

type RunHandler struct {
	runRepo runStore
}

func NewRunHandler(runRepo runStore) *RunHandler {
	return &RunHandler{runRepo: runRepo}
}

type createRunRequest struct {
	UID        string             `json:"uid"`
	Timestamp  *int64             `json:"timestamp"`
	Duration   *float64           `json:"duration"`
	Distance   *float64           `json:"distance"`
	Calories   *float64           `json:"calories"`
	Speed      *float64           `json:"speed"`
	PathPoints []models.PathPoint `json:"path_points"`
	ImageURL   *string            `json:"image_url"`
}

// CreateRun stores one finished run. Every call inserts a new row, so a
// client retry after a dropped response produces a duplicate.
func (h *RunHandler) CreateRun(c *fiber.Ctx) error {
	var req createRunRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing User ID"})
	}
	// Timestamps are epoch milliseconds from the phone's clock.
	if req.Timestamp != nil && *req.Timestamp <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timestamp"})
	}

	run := &models.Run{
		UserID:     req.UID,
		Timestamp:  req.Timestamp,
		Duration:   req.Duration,
		DistanceKM: req.Distance,
		Calories:   req.Calories,
		AvgSpeed:   req.Speed,
		PathPoints: req.PathPoints,
		ImageURL:   req.ImageURL,
	}
	if err := h.runRepo.Create(c.Context(), run); err != nil {
		log.Printf("create_run: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("run %d saved for user %s", run.ID, req.UID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

// GetRuns lists a user's runs newest first. A user with no runs gets an
// empty array, not an error.
func (h *RunHandler) GetRuns(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing User ID"})
	}

	runs, err := h.runRepo.ListByUserID(c.Context(), uid)
	if err != nil {
		log.Printf("get_runs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

// DeleteRun removes a run by its id. The delete is keyed on run_id alone;
// there is no ownership check, matching the mobile client's contract.
// Deleting an id that does not exist still reports success.
func (h *RunHandler) DeleteRun(c *fiber.Ctx) error {
	runIDParam := c.Query("run_id")
	if runIDParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing Run ID"})
	}
	runID, err := strconv.ParseInt(runIDParam, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid Run ID"})
	}

	deleted, err := h.runRepo.Delete(c.Context(), runID)
	if err != nil {
		log.Printf("delete_run: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if deleted > 0 {
		log.Printf("run %d deleted", runID)
	}

	return c.JSON(fiber.Map{"status": "success"})
}
