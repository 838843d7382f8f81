package service

import (
	"testing"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

func TestVoteCountThresholds_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		votes int
		want  string
	}{
		{0, ""},
		{1, "first_vote"},
		{2, ""},
		{9, ""},
		{10, "ten_votes"},
		{11, ""},
		{50, "fifty_votes"},
		{51, ""},
		{100, "hundred_votes"},
		{101, ""},
	}

	for _, tt := range tests {
		got := voteCountThresholds[tt.votes]
		if got != tt.want {
			t.Errorf("voteCountThresholds[%d] = %q, want %q", tt.votes, got, tt.want)
		}
	}
}

func TestFavoriteTierCode(t *testing.T) {
	tests := []struct {
		rank int
		want string
	}{
		{1, "favorite_number_one"},
		{2, "favorite_top_five"},
		{5, "favorite_top_five"},
		{6, "favorite_top_ten"},
		{10, "favorite_top_ten"},
		{11, ""},
		{50, ""},
	}

	for _, tt := range tests {
		if got := favoriteTierCode(tt.rank); got != tt.want {
			t.Errorf("favoriteTierCode(%d) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestAchievementProgressFor_VoteCounts(t *testing.T) {
	def := model.Achievement{Code: "fifty_votes"}

	p := achievementProgressFor(def, 30, 0)
	if p.TargetValue != 50 || p.CurrentProgress != 30 {
		t.Errorf("30/50 votes: got %d/%d", p.CurrentProgress, p.TargetValue)
	}
	if p.ProgressPercentage != 60 {
		t.Errorf("30/50 votes: percentage = %d, want 60", p.ProgressPercentage)
	}

	// Progress is clamped at the target even when votes keep accumulating.
	p = achievementProgressFor(def, 130, 0)
	if p.CurrentProgress != 50 || p.ProgressPercentage != 100 {
		t.Errorf("130/50 votes: got %d (%d%%), want 50 (100%%)", p.CurrentProgress, p.ProgressPercentage)
	}
}

func TestAchievementProgressFor_FavoriteRankAllOrNothing(t *testing.T) {
	def := model.Achievement{Code: "favorite_top_five"}

	// Rank 3 qualifies for top five: full progress.
	p := achievementProgressFor(def, 200, 3)
	if p.CurrentProgress != 5 || p.ProgressPercentage != 100 {
		t.Errorf("rank 3 top-five: got %d (%d%%), want 5 (100%%)", p.CurrentProgress, p.ProgressPercentage)
	}

	// Rank 7 does not: zero progress regardless of vote volume.
	p = achievementProgressFor(def, 200, 7)
	if p.CurrentProgress != 0 || p.ProgressPercentage != 0 {
		t.Errorf("rank 7 top-five: got %d (%d%%), want 0 (0%%)", p.CurrentProgress, p.ProgressPercentage)
	}

	// No favorite park yet.
	p = achievementProgressFor(def, 0, 0)
	if p.CurrentProgress != 0 {
		t.Errorf("no favorite: got %d, want 0", p.CurrentProgress)
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		current, target, want int
	}{
		{0, 10, 0},
		{1, 10, 10},
		{1, 3, 33},
		{2, 3, 67},
		{5, 10, 50},
		{10, 10, 100},
		{7, 0, 0},
	}

	for _, tt := range tests {
		if got := progressPercentage(tt.current, tt.target); got != tt.want {
			t.Errorf("progressPercentage(%d, %d) = %d, want %d", tt.current, tt.target, got, tt.want)
		}
	}
}
