package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

// rotationLockKey is the advisory lock guarding the weekly rotation so
// only one instance ever closes a window.
const rotationLockKey int64 = 7_2001

const topStreakerCount = 3

var badgeNames = map[int]string{
	1: "Weekly Champion",
	2: "Weekly Runner-Up",
	3: "Weekly Third Place",
}

var badgeIcons = map[int]string{
	1: "🥇",
	2: "🥈",
	3: "🥉",
}

var winnerTitles = map[int]string{
	1: "🥇 You're the Weekly Champion!",
	2: "🥈 You're the Weekly Runner-Up!",
	3: "🥉 You earned a Weekly Third Place Badge!",
}

// WeeklyService runs the weekly streak competition: a rolling Monday-to-Monday
// window whose top three streakers get badges when it closes.
type WeeklyService struct {
	weekly        *repository.WeeklyRepo
	streaks       *repository.StreakRepo
	users         *repository.UserRepo
	notifications *repository.NotificationRepo
	cache         *CacheService

	// Now is replaceable in tests.
	Now func() time.Time
	// OnRotate fires after each successful rotation, set once at startup.
	OnRotate func()
}

func NewWeeklyService(weekly *repository.WeeklyRepo, streaks *repository.StreakRepo, users *repository.UserRepo, notifications *repository.NotificationRepo, cache *CacheService) *WeeklyService {
	return &WeeklyService{
		weekly:        weekly,
		streaks:       streaks,
		users:         users,
		notifications: notifications,
		cache:         cache,
		Now:           time.Now,
	}
}

// weekStart returns the most recent Monday at midnight, in now's location.
func weekStart(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// GetOrCreateCurrentWeekly returns the active competition with live
// standings, creating a window for the current week when none is active.
// Standings are served cache-aside with a short TTL.
func (s *WeeklyService) GetOrCreateCurrentWeekly(ctx context.Context) (*model.WeeklyCompetitionResponse, error) {
	if s.cache != nil {
		var cached model.WeeklyCompetitionResponse
		ok, err := s.cache.GetWeeklyStandings(ctx, &cached)
		if err != nil {
			log.Printf("cache: weekly standings get error: %v", err)
		} else if ok {
			return &cached, nil
		}
	}

	competition, err := s.weekly.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if competition == nil {
		start := weekStart(s.Now())
		competition, err = s.weekly.Create(ctx, start, start.AddDate(0, 0, 7))
		if err != nil {
			return nil, err
		}
	}

	standings, err := s.currentStandings(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.WeeklyCompetitionResponse{
		WeeklyCompetition: *competition,
		TopStreakers:      standings,
	}

	if s.cache != nil {
		if err := s.cache.SetWeeklyStandings(ctx, resp); err != nil {
			log.Printf("cache: weekly standings set error: %v", err)
		}
	}
	return resp, nil
}

func (s *WeeklyService) currentStandings(ctx context.Context) ([]model.WeeklyStanding, error) {
	entries, err := s.streaks.Leaderboard(ctx, topStreakerCount)
	if err != nil {
		return nil, err
	}
	return rankStreaks(entries), nil
}

// rankStreaks orders leaderboard entries by current streak, longest first,
// ties broken by the lower user id, and assigns sequential ranks starting
// at 1. The leaderboard query returns rows in this order already; sorting
// here keeps the rule explicit for any caller.
func rankStreaks(entries []model.StreakLeaderboardEntry) []model.WeeklyStanding {
	sorted := make([]model.StreakLeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CurrentStreak != sorted[j].CurrentStreak {
			return sorted[i].CurrentStreak > sorted[j].CurrentStreak
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	standings := make([]model.WeeklyStanding, 0, len(sorted))
	for i, e := range sorted {
		standings = append(standings, model.WeeklyStanding{
			Rank:          i + 1,
			UserID:        e.UserID,
			UserName:      e.UserName,
			CurrentStreak: e.CurrentStreak,
		})
	}
	return standings
}

// GetUserBadges returns every weekly badge a user has earned.
func (s *WeeklyService) GetUserBadges(ctx context.Context, userID int) ([]model.WeeklyBadge, error) {
	return s.weekly.ListBadgesForUser(ctx, userID)
}

// RotateWeeklyCompetition closes the active window and opens the next one:
// award top-3 badges, notify the winners, broadcast the new challenge to
// everyone, deactivate the old window, create the new one. Closing-side
// notifications reference the window being closed; the very first rotation
// has nothing to close and sends no broadcast. The whole sequence runs
// under a Postgres advisory lock so concurrent instances can't rotate the
// same window twice; when the lock is held elsewhere the call returns
// without doing anything.
func (s *WeeklyService) RotateWeeklyCompetition(ctx context.Context) error {
	conn, err := s.weekly.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	locked, err := s.weekly.TryAdvisoryLock(ctx, conn, rotationLockKey)
	if err != nil {
		return err
	}
	if !locked {
		log.Println("weekly: rotation already running elsewhere, skipping")
		return nil
	}
	defer func() {
		if err := s.weekly.AdvisoryUnlock(ctx, conn, rotationLockKey); err != nil {
			log.Printf("weekly: advisory unlock error: %v", err)
		}
	}()

	active, err := s.weekly.FindActive(ctx)
	if err != nil {
		return err
	}

	if active != nil {
		if err := s.closeWindow(ctx, active); err != nil {
			return err
		}
	}

	start := weekStart(s.Now())
	if _, err := s.weekly.Create(ctx, start, start.AddDate(0, 0, 7)); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateWeeklyStandings(ctx); err != nil {
			log.Printf("cache: weekly standings invalidate error: %v", err)
		}
	}

	if s.OnRotate != nil {
		s.OnRotate()
	}
	log.Printf("weekly: rotated competition, new window starts %s", start.Format("2006-01-02"))
	return nil
}

// closeWindow awards badges to the current top three streakers, notifies
// them, broadcasts the new challenge, and deactivates the window. All of
// the notifications carry the id of the window being closed.
func (s *WeeklyService) closeWindow(ctx context.Context, active *model.WeeklyCompetition) error {
	entries, err := s.streaks.Leaderboard(ctx, topStreakerCount)
	if err != nil {
		return err
	}

	for _, st := range rankStreaks(entries) {
		badge := &model.WeeklyBadge{
			CompetitionID: active.ID,
			UserID:        st.UserID,
			Rank:          st.Rank,
			StreakLength:  st.CurrentStreak,
			BadgeIcon:     badgeIcons[st.Rank],
			BadgeName:     badgeNames[st.Rank],
		}
		if err := s.weekly.AwardBadge(ctx, badge); err != nil {
			return err
		}

		n := winnerNotification(active.ID, st)
		if err := s.notifications.Insert(ctx, &n); err != nil {
			return err
		}
	}

	if err := s.broadcastChallengeStart(ctx, active.ID); err != nil {
		return err
	}

	if _, err := s.weekly.Deactivate(ctx, active.ID); err != nil {
		return err
	}
	return nil
}

// winnerNotification builds the top_3_ranking notification for one of the
// closing window's podium finishers.
func winnerNotification(competitionID int, st model.WeeklyStanding) model.Notification {
	rank := st.Rank
	icon := badgeIcons[rank]
	return model.Notification{
		UserID:        st.UserID,
		CompetitionID: &competitionID,
		Type:          model.NotificationTop3Ranking,
		Title:         winnerTitles[rank],
		Message: fmt.Sprintf(
			"Congratulations! Your %d-day voting streak earned you a %s badge. Keep it up!",
			st.CurrentStreak, badgeNames[rank]),
		Rank:      &rank,
		BadgeIcon: &icon,
	}
}

// challengeStartNotification builds the per-user challenge_start broadcast
// sent while a window is being closed.
func challengeStartNotification(competitionID, userID int) model.Notification {
	return model.Notification{
		UserID:        userID,
		CompetitionID: &competitionID,
		Type:          model.NotificationChallengeStart,
		Title:         "🏆 New Weekly Streak Challenge Started!",
		Message:       "A new weekly challenge has begun! Vote daily to build your streak and compete for top 3 badges.",
	}
}

// broadcastChallengeStart fans a challenge_start notification out to every
// user.
func (s *WeeklyService) broadcastChallengeStart(ctx context.Context, competitionID int) error {
	userIDs, err := s.users.ListIDs(ctx)
	if err != nil {
		return err
	}
	for _, userID := range userIDs {
		n := challengeStartNotification(competitionID, userID)
		if err := s.notifications.Insert(ctx, &n); err != nil {
			return err
		}
	}
	return nil
}
