package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

// Streak milestone lengths and their notification icons.
var streakMilestones = map[int]string{
	3:  "🔥",
	7:  "⭐",
	14: "💎",
	30: "👑",
}

// StreakService maintains the per-user day-streak state machine.
type StreakService struct {
	repo *repository.StreakRepo

	// Now is the clock used for "today". Overridable in tests.
	Now func() time.Time
}

func NewStreakService(repo *repository.StreakRepo) *StreakService {
	return &StreakService{repo: repo, Now: time.Now}
}

// UpdateVotingStreak advances a user's streak for a vote cast "today".
// It returns a milestone notification when the new streak length is one of
// {3, 7, 14, 30}, and nil otherwise. The first-ever vote and repeat votes
// on the same calendar day never produce a notification.
func (s *StreakService) UpdateVotingStreak(ctx context.Context, userID int) (*model.StreakNotification, error) {
	today := dateOnly(s.Now())

	streak, err := s.repo.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if streak == nil {
		streak = &model.Streak{
			UserID:          userID,
			CurrentStreak:   1,
			LongestStreak:   1,
			LastVoteDate:    today,
			StreakStartDate: today,
		}
		if err := s.repo.Upsert(ctx, streak); err != nil {
			return nil, err
		}
		return nil, nil
	}

	advanced := advanceStreak(streak, today)
	if !advanced {
		return nil, nil
	}

	if err := s.repo.Upsert(ctx, streak); err != nil {
		return nil, err
	}
	return milestoneFor(streak.CurrentStreak), nil
}

// GetUserStreak returns a user's streak row, or nil if they've never voted.
func (s *StreakService) GetUserStreak(ctx context.Context, userID int) (*model.Streak, error) {
	return s.repo.Find(ctx, userID)
}

// GetLeaderboard returns the top current streaks.
func (s *StreakService) GetLeaderboard(ctx context.Context, limit int) ([]model.StreakLeaderboardEntry, error) {
	return s.repo.Leaderboard(ctx, limit)
}

// advanceStreak applies the calendar-day transition to an existing streak
// in place. It returns false when today matches the stored last vote date
// (no mutation). A one-day step extends the streak; any larger gap resets
// it to 1. longestStreak never decreases.
func advanceStreak(s *model.Streak, today time.Time) bool {
	gap := daysBetween(dateOnly(s.LastVoteDate), today)
	if gap <= 0 {
		return false
	}

	if gap == 1 {
		s.CurrentStreak++
	} else {
		s.CurrentStreak = 1
		s.StreakStartDate = today
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastVoteDate = today
	return true
}

// milestoneFor returns the notification payload for a milestone streak
// length, or nil for non-milestone lengths.
func milestoneFor(days int) *model.StreakNotification {
	icon, ok := streakMilestones[days]
	if !ok {
		return nil
	}
	return &model.StreakNotification{
		Type:       "streak_milestone",
		StreakDays: days,
		Icon:       icon,
		Message:    fmt.Sprintf("%s Amazing! You're on a %d-day voting streak!", icon, days),
	}
}

// dateOnly truncates a timestamp to midnight of its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b by comparing the dates
// themselves. The stored last vote date is a Postgres DATE decoded at UTC
// midnight while "today" is local midnight, so comparing wall-clock
// durations would drift in zones far from UTC; pinning both dates to UTC
// sidesteps that and DST oddities alike.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}
