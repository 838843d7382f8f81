package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

// ChallengeService tracks per-user progress on time-boxed challenges and
// classifies progress into near-completion and completion notifications.
type ChallengeService struct {
	repo *repository.ChallengeRepo
}

func NewChallengeService(repo *repository.ChallengeRepo) *ChallengeService {
	return &ChallengeService{repo: repo}
}

// Challenge codes encode their metric: monthly_votes_25 counts votes,
// seasonal_streak_14 tracks the streak high-water mark.
func countsVotes(code string) bool {
	return strings.Contains(code, "_votes_")
}

func tracksStreak(code string) bool {
	return strings.Contains(code, "_streak_")
}

// UpdateChallengeProgress adds increment to the user's progress on the
// challenge and reports whether this update completed it. Completion is
// recorded exactly once; progress keeps accumulating past the target.
func (s *ChallengeService) UpdateChallengeProgress(ctx context.Context, userID, challengeID, increment int) (bool, error) {
	challenge, err := s.repo.FindByID(ctx, challengeID)
	if err != nil {
		return false, err
	}

	progress, err := s.repo.AddProgress(ctx, userID, challengeID, increment, challenge.TargetValue)
	if err != nil {
		return false, err
	}

	before := progress.Progress - increment
	return before < challenge.TargetValue && progress.Progress >= challenge.TargetValue, nil
}

// UpdateActiveVoteChallenges bumps every vote-counting challenge currently
// in window by one. Called by the vote pipeline after each attributed vote.
func (s *ChallengeService) UpdateActiveVoteChallenges(ctx context.Context, userID int) error {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, challenge := range active {
		if !countsVotes(challenge.Code) {
			continue
		}
		if _, err := s.UpdateChallengeProgress(ctx, userID, challenge.ID, 1); err != nil {
			return err
		}
	}
	return nil
}

// SyncStreakChallenges raises the user's streak challenge progress to the
// given streak length. Streak progress is a high-water mark, not a counter,
// so the increment is the gap between stored progress and the streak.
func (s *ChallengeService) SyncStreakChallenges(ctx context.Context, userID, streakDays int) error {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, challenge := range active {
		if !tracksStreak(challenge.Code) {
			continue
		}
		existing, err := s.repo.FindProgress(ctx, userID, challenge.ID)
		if err != nil {
			return err
		}
		current := 0
		if existing != nil {
			current = existing.Progress
		}
		if streakDays <= current {
			continue
		}
		if _, err := s.UpdateChallengeProgress(ctx, userID, challenge.ID, streakDays-current); err != nil {
			return err
		}
	}
	return nil
}

// GetActiveChallenges returns challenges whose window contains now.
func (s *ChallengeService) GetActiveChallenges(ctx context.Context) ([]model.Challenge, error) {
	return s.repo.ListActive(ctx)
}

// GetUserChallengeProgress returns the user's progress rows.
func (s *ChallengeService) GetUserChallengeProgress(ctx context.Context, userID int) ([]model.ChallengeProgress, error) {
	return s.repo.ListProgress(ctx, userID, false)
}

// GetCompletedChallenges returns only the user's completed progress rows.
func (s *ChallengeService) GetCompletedChallenges(ctx context.Context, userID int) ([]model.ChallengeProgress, error) {
	return s.repo.ListProgress(ctx, userID, true)
}

// GetChallengeNotifications classifies the user's progress on every active
// challenge, returning at most one notification per challenge.
func (s *ChallengeService) GetChallengeNotifications(ctx context.Context, userID int) ([]model.ChallengeNotification, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var notifications []model.ChallengeNotification
	for _, challenge := range active {
		progress, err := s.repo.FindProgress(ctx, userID, challenge.ID)
		if err != nil {
			return nil, err
		}
		if progress == nil {
			continue
		}
		if n := classifyProgress(challenge, progress.Progress); n != nil {
			notifications = append(notifications, *n)
		}
	}
	return notifications, nil
}

// classifyProgress maps progress on a challenge to a notification, or nil
// below the 75% band. Bands are evaluated on the rounded percentage.
func classifyProgress(challenge model.Challenge, progress int) *model.ChallengeNotification {
	pct := progressPercentage(progress, challenge.TargetValue)

	switch {
	case pct >= 100:
		return &model.ChallengeNotification{
			Type:        "completion",
			ChallengeID: challenge.ID,
			Title:       "Challenge Completed",
			Message:     fmt.Sprintf("You completed %q!", challenge.Name),
			Icon:        "🏆",
			Percentage:  pct,
		}
	case pct >= 90:
		return &model.ChallengeNotification{
			Type:        "milestone",
			ChallengeID: challenge.ID,
			Title:       "Nearly done",
			Message:     fmt.Sprintf("%d%% of the way through %q. One last push!", pct, challenge.Name),
			Icon:        "🔥",
			Percentage:  pct,
		}
	case pct >= 75:
		return &model.ChallengeNotification{
			Type:        "milestone",
			ChallengeID: challenge.ID,
			Title:       "Almost there",
			Message:     fmt.Sprintf("%d%% of the way through %q. Keep going!", pct, challenge.Name),
			Icon:        "⚡",
			Percentage:  pct,
		}
	default:
		return nil
	}
}
