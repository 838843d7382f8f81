package handler

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/service"
)

type ParkHandler struct {
	votes *service.VoteService
}

func NewParkHandler(votes *service.VoteService) *ParkHandler {
	return &ParkHandler{votes: votes}
}

// Matchup handles GET /api/parks/matchup
func (h *ParkHandler) Matchup(c fiber.Ctx) error {
	matchup, err := h.votes.GetMatchup(c.Context())
	if err != nil {
		// No matchup to serve is the same answer whether the table is
		// short or the read failed.
		log.Printf("matchup: serving degraded read: %v", err)
		matchup = nil
	}
	if matchup == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_ENOUGH_PARKS", "Need at least two parks to build a matchup")
	}
	return c.JSON(matchup)
}

// Rankings handles GET /api/parks/rankings
func (h *ParkHandler) Rankings(c fiber.Ctx) error {
	parks, err := h.votes.GetRankings(c.Context())
	if err != nil {
		return degradedRead(c, "rankings", err, fiber.Map{"parks": []model.Park{}})
	}
	return c.JSON(fiber.Map{"parks": parks})
}
