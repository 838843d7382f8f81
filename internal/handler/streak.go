package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/service"
)

type StreakHandler struct {
	streaks *service.StreakService
}

func NewStreakHandler(streaks *service.StreakService) *StreakHandler {
	return &StreakHandler{streaks: streaks}
}

// Get handles GET /api/users/:userId/streak
func (h *StreakHandler) Get(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	streak, err := h.streaks.GetUserStreak(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "streak", err, model.Streak{UserID: userID})
	}
	if streak == nil {
		// A user with no votes has an empty streak, not a missing one.
		return c.JSON(model.Streak{UserID: userID})
	}
	return c.JSON(streak)
}

// Leaderboard handles GET /api/streaks/leaderboard
func (h *StreakHandler) Leaderboard(c fiber.Ctx) error {
	limit, errMsg := middleware.ValidateLimit(c.Query("limit"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	entries, err := h.streaks.GetLeaderboard(c.Context(), limit)
	if err != nil {
		return degradedRead(c, "streak leaderboard", err, fiber.Map{"leaderboard": []model.StreakLeaderboardEntry{}})
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}
