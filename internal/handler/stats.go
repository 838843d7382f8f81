package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

type StatsHandler struct {
	users *repository.UserRepo
}

func NewStatsHandler(users *repository.UserRepo) *StatsHandler {
	return &StatsHandler{users: users}
}

// Get handles GET /api/stats
func (h *StatsHandler) Get(c fiber.Ctx) error {
	stats, err := h.users.GetStats(c.Context())
	if err != nil {
		return degradedRead(c, "stats", err, model.StatsResponse{})
	}
	return c.JSON(stats)
}
