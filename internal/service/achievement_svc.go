package service

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

// voteCountThresholds maps exact lifetime vote counts to the achievement
// they unlock. Crossing is detected by equality at evaluation time, so the
// evaluator must run after every attributed vote.
var voteCountThresholds = map[int]string{
	1:   "first_vote",
	10:  "ten_votes",
	50:  "fifty_votes",
	100: "hundred_votes",
}

// favoriteTiers are the favorite-park rank rules, ordered best tier first.
// Only the single best-matching tier is evaluated per call.
var favoriteTiers = []struct {
	MaxRank int
	Code    string
}{
	{1, "favorite_number_one"},
	{5, "favorite_top_five"},
	{10, "favorite_top_ten"},
}

// AchievementService evaluates the fixed achievement rule set against
// lifetime stats recomputed fresh on every call.
type AchievementService struct {
	repo  *repository.AchievementRepo
	votes *repository.VoteRepo
	parks *repository.ParkRepo
}

func NewAchievementService(repo *repository.AchievementRepo, votes *repository.VoteRepo, parks *repository.ParkRepo) *AchievementService {
	return &AchievementService{repo: repo, votes: votes, parks: parks}
}

// CheckAndUnlockAchievements recomputes the user's lifetime stats and
// unlocks any achievement whose rule now matches. It returns only the
// achievements newly unlocked during this call; a repeat call with no
// intervening votes returns an empty slice. Unlock write failures
// propagate; a failed unlock must not be silently dropped.
func (s *AchievementService) CheckAndUnlockAchievements(ctx context.Context, userID int) ([]model.Achievement, error) {
	totalVotes, favoriteParkID, err := s.votes.UserVoteStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	var codes []string
	if code, ok := voteCountThresholds[totalVotes]; ok {
		codes = append(codes, code)
	}

	if favoriteParkID != 0 {
		rank, err := s.parks.RankOf(ctx, favoriteParkID)
		if err != nil {
			return nil, err
		}
		if code := favoriteTierCode(rank); code != "" {
			codes = append(codes, code)
		}
	}

	newlyUnlocked := make([]model.Achievement, 0, len(codes))
	for _, code := range codes {
		created, err := s.repo.Unlock(ctx, userID, code)
		if err != nil {
			return nil, err
		}
		if !created {
			continue
		}
		def, err := s.repo.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if def != nil {
			newlyUnlocked = append(newlyUnlocked, *def)
		}
	}
	return newlyUnlocked, nil
}

// favoriteTierCode returns the achievement code for the best tier the
// given 1-based rank qualifies for, or "" for ranks outside the top 10.
func favoriteTierCode(rank int) string {
	for _, tier := range favoriteTiers {
		if rank <= tier.MaxRank {
			return tier.Code
		}
	}
	return ""
}

// GetUserAchievements returns the user's unlocked achievements.
func (s *AchievementService) GetUserAchievements(ctx context.Context, userID int) ([]model.UnlockedAchievement, error) {
	return s.repo.ListForUser(ctx, userID)
}

// GetAchievementProgress returns every achievement definition annotated
// with the user's progress toward it.
func (s *AchievementService) GetAchievementProgress(ctx context.Context, userID int) ([]model.AchievementProgress, error) {
	defs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.repo.UnlockedCodes(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalVotes, favoriteParkID, err := s.votes.UserVoteStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	favoriteRank := 0
	if favoriteParkID != 0 {
		favoriteRank, err = s.parks.RankOf(ctx, favoriteParkID)
		if err != nil {
			log.Printf("achievements: favorite rank lookup error: %v", err)
			favoriteRank = 0
		}
	}

	progress := make([]model.AchievementProgress, 0, len(defs))
	for _, def := range defs {
		p := achievementProgressFor(def, totalVotes, favoriteRank)
		p.IsUnlocked = unlocked[def.Code]
		if p.IsUnlocked {
			p.CurrentProgress = p.TargetValue
			p.ProgressPercentage = 100
		}
		progress = append(progress, p)
	}
	return progress, nil
}

// achievementProgressFor computes progress for one definition from the
// user's stats. Vote-count achievements count votes toward the threshold;
// favorite-rank achievements are all-or-nothing (rank either qualifies for
// the tier or it doesn't).
func achievementProgressFor(def model.Achievement, totalVotes, favoriteRank int) model.AchievementProgress {
	p := model.AchievementProgress{Achievement: def}

	switch def.Code {
	case "first_vote":
		p.TargetValue = 1
	case "ten_votes":
		p.TargetValue = 10
	case "fifty_votes":
		p.TargetValue = 50
	case "hundred_votes":
		p.TargetValue = 100
	case "favorite_top_ten":
		p.TargetValue = 10
	case "favorite_top_five":
		p.TargetValue = 5
	case "favorite_number_one":
		p.TargetValue = 1
	default:
		p.TargetValue = 1
	}

	switch def.Code {
	case "first_vote", "ten_votes", "fifty_votes", "hundred_votes":
		p.CurrentProgress = min(totalVotes, p.TargetValue)
	case "favorite_top_ten", "favorite_top_five", "favorite_number_one":
		if favoriteRank > 0 && favoriteRank <= p.TargetValue {
			p.CurrentProgress = p.TargetValue
		}
	}

	p.ProgressPercentage = progressPercentage(p.CurrentProgress, p.TargetValue)
	return p
}

// progressPercentage is round(current/target*100), 0 for a zero target.
func progressPercentage(current, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(target) * 100))
}

// GetLockedAchievements returns the achievements the user hasn't unlocked,
// sorted by progress percentage descending.
func (s *AchievementService) GetLockedAchievements(ctx context.Context, userID int) ([]model.AchievementProgress, error) {
	all, err := s.GetAchievementProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	locked := make([]model.AchievementProgress, 0, len(all))
	for _, p := range all {
		if !p.IsUnlocked {
			locked = append(locked, p)
		}
	}
	sort.SliceStable(locked, func(i, j int) bool {
		return locked[i].ProgressPercentage > locked[j].ProgressPercentage
	})
	return locked, nil
}

// GetNextAchievements returns the closest locked achievements, up to limit.
func (s *AchievementService) GetNextAchievements(ctx context.Context, userID, limit int) ([]model.AchievementProgress, error) {
	locked, err := s.GetLockedAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(locked) > limit {
		locked = locked[:limit]
	}
	return locked, nil
}
