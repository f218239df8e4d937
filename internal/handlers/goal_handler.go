package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mattia9203/RunApp-Server/internal/models"
)

type goalStore interface {
	Upsert(ctx context.Context, goal *models.WeeklyGoal) error
	Get(ctx context.Context, userID, weekStartDate string) (*models.WeeklyGoal, error)
}

type GoalHandler struct {
	goalRepo goalStore
}

func NewGoalHandler(goalRepo goalStore) *GoalHandler {
	return &GoalHandler{goalRepo: goalRepo}
}

type setWeeklyGoalRequest struct {
	UID            string   `json:"uid"`
	WeekStartDate  string   `json:"week_start_date"`
	TargetKM       *float64 `json:"target_km"`
	TargetCalories *float64 `json:"target_calories"`
}

// SetWeeklyGoal writes the goal for one (uid, week) pair. The upsert is a
// single atomic statement, so two phones racing on the same week cannot
// produce a duplicate-key failure; the last write wins.
func (h *GoalHandler) SetWeeklyGoal(c *fiber.Ctx) error {
	var req setWeeklyGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UID == "" || req.WeekStartDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing User ID or Date"})
	}

	goal := &models.WeeklyGoal{
		UserID:         req.UID,
		WeekStartDate:  req.WeekStartDate,
		TargetKM:       req.TargetKM,
		TargetCalories: req.TargetCalories,
	}
	if err := h.goalRepo.Upsert(c.Context(), goal); err != nil {
		log.Printf("set_weekly_goal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// GetWeeklyGoal returns the targets for one (uid, week) pair. A 404 tells
// the app this user has no goal for that week yet, which is different from
// a server error.
func (h *GoalHandler) GetWeeklyGoal(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing User ID"})
	}
	weekStartDate := c.Query("week_start_date")

	goal, err := h.goalRepo.Get(c.Context(), uid, weekStartDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No goals found"})
		}
		log.Printf("get_weekly_goal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"target_km":       goal.TargetKM,
		"target_calories": goal.TargetCalories,
	})
}
