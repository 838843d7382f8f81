package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/service"
)

type WeeklyHandler struct {
	weekly *service.WeeklyService
}

func NewWeeklyHandler(weekly *service.WeeklyService) *WeeklyHandler {
	return &WeeklyHandler{weekly: weekly}
}

// Current handles GET /api/competitions/current
func (h *WeeklyHandler) Current(c fiber.Ctx) error {
	resp, err := h.weekly.GetOrCreateCurrentWeekly(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load weekly competition")
	}
	return c.JSON(resp)
}

// Badges handles GET /api/users/:userId/badges
func (h *WeeklyHandler) Badges(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	badges, err := h.weekly.GetUserBadges(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "badges", err, fiber.Map{"badges": []model.WeeklyBadge{}})
	}
	return c.JSON(fiber.Map{"badges": badges})
}
