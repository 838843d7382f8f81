package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/service"
)

type ChallengeHandler struct {
	challenges *service.ChallengeService
}

func NewChallengeHandler(challenges *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges}
}

// Active handles GET /api/challenges/active
func (h *ChallengeHandler) Active(c fiber.Ctx) error {
	challenges, err := h.challenges.GetActiveChallenges(c.Context())
	if err != nil {
		return degradedRead(c, "active challenges", err, fiber.Map{"challenges": []model.Challenge{}})
	}
	return c.JSON(fiber.Map{"challenges": challenges})
}

// Progress handles GET /api/users/:userId/challenges
func (h *ChallengeHandler) Progress(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	progress, err := h.challenges.GetUserChallengeProgress(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "challenge progress", err, fiber.Map{"progress": []model.ChallengeProgress{}})
	}
	return c.JSON(fiber.Map{"progress": progress})
}

// Completed handles GET /api/users/:userId/challenges/completed
func (h *ChallengeHandler) Completed(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	completed, err := h.challenges.GetCompletedChallenges(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "completed challenges", err, fiber.Map{"completed": []model.ChallengeProgress{}})
	}
	return c.JSON(fiber.Map{"completed": completed})
}

// Notifications handles GET /api/users/:userId/challenges/notifications
func (h *ChallengeHandler) Notifications(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	notifications, err := h.challenges.GetChallengeNotifications(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "challenge notifications", err, fiber.Map{"notifications": []model.ChallengeNotification{}})
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}
