package service

import (
	"testing"
	"time"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceStreak_SameDayNoOp(t *testing.T) {
	s := &model.Streak{
		UserID:          1,
		CurrentStreak:   4,
		LongestStreak:   6,
		LastVoteDate:    day(2026, time.March, 10),
		StreakStartDate: day(2026, time.March, 7),
	}

	if advanceStreak(s, day(2026, time.March, 10)) {
		t.Fatal("same-day vote should not advance the streak")
	}
	if s.CurrentStreak != 4 || s.LongestStreak != 6 {
		t.Errorf("streak mutated on same-day vote: %+v", s)
	}
}

func TestAdvanceStreak_ConsecutiveDayIncrements(t *testing.T) {
	s := &model.Streak{
		UserID:          1,
		CurrentStreak:   2,
		LongestStreak:   2,
		LastVoteDate:    day(2026, time.March, 10),
		StreakStartDate: day(2026, time.March, 9),
	}

	if !advanceStreak(s, day(2026, time.March, 11)) {
		t.Fatal("next-day vote should advance the streak")
	}
	if s.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", s.LongestStreak)
	}
	if !s.LastVoteDate.Equal(day(2026, time.March, 11)) {
		t.Errorf("last vote date = %v, want 2026-03-11", s.LastVoteDate)
	}
	if !s.StreakStartDate.Equal(day(2026, time.March, 9)) {
		t.Errorf("streak start moved on increment: %v", s.StreakStartDate)
	}
}

func TestAdvanceStreak_GapResets(t *testing.T) {
	s := &model.Streak{
		UserID:          1,
		CurrentStreak:   9,
		LongestStreak:   9,
		LastVoteDate:    day(2026, time.March, 10),
		StreakStartDate: day(2026, time.March, 2),
	}

	if !advanceStreak(s, day(2026, time.March, 13)) {
		t.Fatal("vote after a gap should still mutate the streak")
	}
	if s.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1 after reset", s.CurrentStreak)
	}
	if s.LongestStreak != 9 {
		t.Errorf("longest streak = %d, want 9 (never decreases)", s.LongestStreak)
	}
	if !s.StreakStartDate.Equal(day(2026, time.March, 13)) {
		t.Errorf("streak start = %v, want reset to 2026-03-13", s.StreakStartDate)
	}
}

func TestAdvanceStreak_LongestTracksCurrent(t *testing.T) {
	s := &model.Streak{
		UserID:          1,
		CurrentStreak:   1,
		LongestStreak:   1,
		LastVoteDate:    day(2026, time.June, 1),
		StreakStartDate: day(2026, time.June, 1),
	}

	for d := 2; d <= 8; d++ {
		advanceStreak(s, day(2026, time.June, d))
	}
	if s.CurrentStreak != 8 || s.LongestStreak != 8 {
		t.Errorf("after 8 consecutive days: current=%d longest=%d, want 8/8", s.CurrentStreak, s.LongestStreak)
	}
}

func TestMilestoneFor(t *testing.T) {
	tests := []struct {
		days     int
		wantIcon string
		wantNil  bool
	}{
		{1, "", true},
		{2, "", true},
		{3, "🔥", false},
		{4, "", true},
		{7, "⭐", false},
		{14, "💎", false},
		{30, "👑", false},
		{31, "", true},
	}

	for _, tt := range tests {
		got := milestoneFor(tt.days)
		if tt.wantNil {
			if got != nil {
				t.Errorf("milestoneFor(%d) = %+v, want nil", tt.days, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("milestoneFor(%d) = nil, want notification", tt.days)
			continue
		}
		if got.Type != "streak_milestone" {
			t.Errorf("milestoneFor(%d).Type = %q, want streak_milestone", tt.days, got.Type)
		}
		if got.Icon != tt.wantIcon {
			t.Errorf("milestoneFor(%d).Icon = %q, want %q", tt.days, got.Icon, tt.wantIcon)
		}
		if got.StreakDays != tt.days {
			t.Errorf("milestoneFor(%d).StreakDays = %d", tt.days, got.StreakDays)
		}
	}
}

func TestDaysBetween_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// The spring-forward day (2026-03-08) is only 23 hours long; the
	// count must still be one calendar day.
	a := time.Date(2026, time.March, 8, 0, 0, 0, 0, loc)
	b := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)
	if got := daysBetween(a, b); got != 1 {
		t.Errorf("daysBetween across spring forward = %d, want 1", got)
	}

	// The fall-back day (2026-11-01) is 25 hours.
	a = time.Date(2026, time.November, 1, 0, 0, 0, 0, loc)
	b = time.Date(2026, time.November, 2, 0, 0, 0, 0, loc)
	if got := daysBetween(a, b); got != 1 {
		t.Errorf("daysBetween across fall back = %d, want 1", got)
	}
}

func TestDaysBetween_MixedZones(t *testing.T) {
	// A DATE column decodes at UTC midnight while "today" comes from the
	// server's local clock. In a zone 13 hours ahead of UTC the two
	// midnights are only 11 hours apart even though the calendar moved a
	// full day.
	auckland := time.FixedZone("UTC+13", 13*60*60)

	stored := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 11, 0, 0, 0, 0, auckland)
	if got := daysBetween(stored, today); got != 1 {
		t.Errorf("daysBetween(UTC date, UTC+13 next day) = %d, want 1", got)
	}

	// Same calendar day in both zones is a zero gap.
	sameDay := time.Date(2026, time.March, 10, 0, 0, 0, 0, auckland)
	if got := daysBetween(stored, sameDay); got != 0 {
		t.Errorf("daysBetween on the same calendar day = %d, want 0", got)
	}

	// Two-day gaps still reset regardless of zone.
	later := time.Date(2026, time.March, 12, 0, 0, 0, 0, auckland)
	if got := daysBetween(stored, later); got != 2 {
		t.Errorf("daysBetween two days apart = %d, want 2", got)
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, time.May, 14, 23, 59, 58, 123, time.UTC)
	got := dateOnly(ts)
	if !got.Equal(day(2026, time.May, 14)) {
		t.Errorf("dateOnly = %v, want midnight of the same day", got)
	}
}
