package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mattia9203/RunApp-Server/internal/models"
)

type userStore interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

type UserHandler struct {
	userRepo userStore
}

func NewUserHandler(userRepo userStore) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

type createUserRequest struct {
	UID    string   `json:"uid"`
	Name   *string  `json:"name"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}

// CreateUser syncs the app's profile for a uid. Repeated calls overwrite the
// stored name, weight and height with whatever the app sent, absent fields
// included.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing User ID"})
	}

	user := &models.User{
		UserID: req.UID,
		Name:   req.Name,
		Weight: req.Weight,
		Height: req.Height,
	}
	if err := h.userRepo.Upsert(c.Context(), user); err != nil {
		log.Printf("create_user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

// GetUser returns name, weight and height for a uid. Missing measurements
// come back as the documented defaults so the client can always render a
// numeric profile.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing UID"})
	}

	user, err := h.userRepo.GetByID(c.Context(), uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		log.Printf("get_user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	weight := models.DefaultWeightKG
	if user.Weight != nil {
		weight = *user.Weight
	}
	height := models.DefaultHeightCM
	if user.Height != nil {
		height = *user.Height
	}

	return c.JSON(fiber.Map{
		"name":   user.Name,
		"weight": weight,
		"height": height,
	})
}
