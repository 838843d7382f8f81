package db

import (
	"testing"
	"time"
)

func TestChallengeWindow_Monthly(t *testing.T) {
	now := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
	start, end := challengeWindow("monthly", now)

	if !start.Equal(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monthly start = %v, want 2026-09-01", start)
	}
	if !end.Equal(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monthly end = %v, want 2026-10-01", end)
	}
}

func TestChallengeWindow_Seasonal(t *testing.T) {
	tests := []struct {
		month     time.Month
		wantStart time.Month
		wantEnd   time.Month
	}{
		{time.January, time.January, time.April},
		{time.March, time.January, time.April},
		{time.April, time.April, time.July},
		{time.August, time.July, time.October},
		{time.December, time.October, time.January},
	}

	for _, tt := range tests {
		now := time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC)
		start, end := challengeWindow("seasonal", now)
		if start.Month() != tt.wantStart {
			t.Errorf("season containing %v starts %v, want %v", tt.month, start.Month(), tt.wantStart)
		}
		if end.Month() != tt.wantEnd {
			t.Errorf("season containing %v ends %v, want %v", tt.month, end.Month(), tt.wantEnd)
		}
	}
}

func TestSeedDefinitionsComplete(t *testing.T) {
	if len(AchievementDefinitions) != 7 {
		t.Errorf("achievement definitions = %d, want 7", len(AchievementDefinitions))
	}
	if len(ChallengeDefinitions) != 7 {
		t.Errorf("challenge definitions = %d, want 7", len(ChallengeDefinitions))
	}

	monthly, seasonal := 0, 0
	for _, c := range ChallengeDefinitions {
		switch c.Type {
		case "monthly":
			monthly++
		case "seasonal":
			seasonal++
		default:
			t.Errorf("challenge %s has unknown type %q", c.Code, c.Type)
		}
	}
	if monthly != 3 || seasonal != 4 {
		t.Errorf("challenge mix = %d monthly / %d seasonal, want 3/4", monthly, seasonal)
	}

	codes := make(map[string]bool)
	for _, a := range AchievementDefinitions {
		if codes[a.Code] {
			t.Errorf("duplicate achievement code %s", a.Code)
		}
		codes[a.Code] = true
	}
}
