package handler

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
	"github.com/ngys9919/manus-voting-ranking/internal/service"
)

type VoteHandler struct {
	votes        *service.VoteService
	streaks      *service.StreakService
	achievements *service.AchievementService
	challenges   *service.ChallengeService
}

func NewVoteHandler(votes *service.VoteService, streaks *service.StreakService, achievements *service.AchievementService, challenges *service.ChallengeService) *VoteHandler {
	return &VoteHandler{
		votes:        votes,
		streaks:      streaks,
		achievements: achievements,
		challenges:   challenges,
	}
}

// Submit handles POST /api/votes
func (h *VoteHandler) Submit(c fiber.Ctx) error {
	var req model.VoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if err := service.ValidateVotePair(req.Park1ID, req.Park2ID, req.WinnerID); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_VOTE", err.Error())
	}

	// Attribution is optional: anonymous votes still move ratings, they
	// just skip the gamification follow-ups.
	var userID *int
	if raw := c.Get("X-User-ID"); raw != "" {
		id, errMsg := middleware.ValidateID(raw, "X-User-ID")
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		userID = &id
	}

	park1, park2, err := h.votes.RecordVote(c.Context(), req.Park1ID, req.Park2ID, req.WinnerID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrParkNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "PARK_NOT_FOUND", "One or both parks do not exist")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record vote")
	}

	Metrics.VotesTotal.WithLabelValues("park_matchup").Inc()

	resp := model.VoteResponse{Park1: *park1, Park2: *park2}
	if userID != nil {
		h.runFollowUps(c.Context(), *userID, &resp)
	}

	return c.JSON(resp)
}

// runFollowUps evaluates streaks, achievements, and challenges after a
// committed vote. The vote itself already succeeded, so failures here are
// logged and the corresponding response fields left empty rather than
// failing the request.
func (h *VoteHandler) runFollowUps(ctx context.Context, userID int, resp *model.VoteResponse) {
	streakNotif, err := h.streaks.UpdateVotingStreak(ctx, userID)
	if err != nil {
		log.Printf("vote follow-up: streak update error for user %d: %v", userID, err)
	} else {
		resp.Streak = streakNotif
	}

	unlocked, err := h.achievements.CheckAndUnlockAchievements(ctx, userID)
	if err != nil {
		log.Printf("vote follow-up: achievement check error for user %d: %v", userID, err)
	} else if len(unlocked) > 0 {
		resp.Achievements = unlocked
		Metrics.AchievementsUnlocked.Add(float64(len(unlocked)))
	}

	if err := h.challenges.UpdateActiveVoteChallenges(ctx, userID); err != nil {
		log.Printf("vote follow-up: challenge update error for user %d: %v", userID, err)
	}

	streak, err := h.streaks.GetUserStreak(ctx, userID)
	if err != nil {
		log.Printf("vote follow-up: streak read error for user %d: %v", userID, err)
		return
	}
	if streak != nil {
		if err := h.challenges.SyncStreakChallenges(ctx, userID, streak.CurrentStreak); err != nil {
			log.Printf("vote follow-up: streak challenge sync error for user %d: %v", userID, err)
		}
	}
}

// Recent handles GET /api/votes/recent
func (h *VoteHandler) Recent(c fiber.Ctx) error {
	limit, errMsg := middleware.ValidateLimit(c.Query("limit"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	votes, err := h.votes.GetRecentVotes(c.Context(), limit)
	if err != nil {
		return degradedRead(c, "recent votes", err, fiber.Map{"votes": []model.RecentVote{}})
	}

	return c.JSON(fiber.Map{"votes": votes})
}
