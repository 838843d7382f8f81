package service

import (
	"testing"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

func TestClassifyProgress_Bands(t *testing.T) {
	challenge := model.Challenge{ID: 1, Name: "Vote Machine", TargetValue: 100}

	tests := []struct {
		name     string
		progress int
		wantType string
		wantIcon string
		wantNil  bool
	}{
		{"zero", 0, "", "", true},
		{"below band", 74, "", "", true},
		{"enters 75 band", 75, "milestone", "⚡", false},
		{"top of 75 band", 89, "milestone", "⚡", false},
		{"enters 90 band", 90, "milestone", "🔥", false},
		{"top of 90 band", 99, "milestone", "🔥", false},
		{"complete", 100, "completion", "🏆", false},
		{"past target", 140, "completion", "🏆", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyProgress(challenge, tt.progress)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("classifyProgress(%d) = %+v, want nil", tt.progress, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("classifyProgress(%d) = nil, want %s", tt.progress, tt.wantType)
			}
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Icon != tt.wantIcon {
				t.Errorf("icon = %q, want %q", got.Icon, tt.wantIcon)
			}
			if got.ChallengeID != challenge.ID {
				t.Errorf("challengeId = %d, want %d", got.ChallengeID, challenge.ID)
			}
		})
	}
}

func TestClassifyProgress_RoundedPercentage(t *testing.T) {
	// 22 of 25 is 88%: still the 75 band. 23 of 25 is 92%: the 90 band.
	challenge := model.Challenge{ID: 2, Name: "Vote Machine", TargetValue: 25}

	got := classifyProgress(challenge, 22)
	if got == nil || got.Icon != "⚡" || got.Percentage != 88 {
		t.Errorf("22/25: got %+v, want ⚡ at 88%%", got)
	}

	got = classifyProgress(challenge, 23)
	if got == nil || got.Icon != "🔥" || got.Percentage != 92 {
		t.Errorf("23/25: got %+v, want 🔥 at 92%%", got)
	}
}

func TestChallengeCodeMetrics(t *testing.T) {
	tests := []struct {
		code   string
		votes  bool
		streak bool
	}{
		{"monthly_votes_25", true, false},
		{"monthly_votes_50", true, false},
		{"monthly_streak_7", false, true},
		{"seasonal_votes_100", true, false},
		{"seasonal_votes_250", true, false},
		{"seasonal_streak_14", false, true},
		{"seasonal_streak_30", false, true},
	}

	for _, tt := range tests {
		if got := countsVotes(tt.code); got != tt.votes {
			t.Errorf("countsVotes(%q) = %v, want %v", tt.code, got, tt.votes)
		}
		if got := tracksStreak(tt.code); got != tt.streak {
			t.Errorf("tracksStreak(%q) = %v, want %v", tt.code, got, tt.streak)
		}
	}
}
