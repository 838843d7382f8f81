package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/service"
)

type AchievementHandler struct {
	achievements *service.AchievementService
}

func NewAchievementHandler(achievements *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// List handles GET /api/users/:userId/achievements
func (h *AchievementHandler) List(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	unlocked, err := h.achievements.GetUserAchievements(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "achievements", err, fiber.Map{"achievements": []model.UnlockedAchievement{}})
	}
	return c.JSON(fiber.Map{"achievements": unlocked})
}

// Progress handles GET /api/users/:userId/achievements/progress
func (h *AchievementHandler) Progress(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	progress, err := h.achievements.GetAchievementProgress(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "achievement progress", err, fiber.Map{"progress": []model.AchievementProgress{}})
	}
	return c.JSON(fiber.Map{"progress": progress})
}

// Next handles GET /api/users/:userId/achievements/next
func (h *AchievementHandler) Next(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	next, err := h.achievements.GetNextAchievements(c.Context(), userID, 3)
	if err != nil {
		return degradedRead(c, "next achievements", err, fiber.Map{"next": []model.AchievementProgress{}})
	}
	return c.JSON(fiber.Map{"next": next})
}
