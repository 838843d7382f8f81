package repository

import (
	"testing"
	"time"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

// applyAddProgress mirrors the upsert in AddProgress so the completion
// transition can be checked without a database: progress accumulates,
// is_completed flips when the target is reached and never flips back, and
// completed_at is set exactly once.
func applyAddProgress(p *model.ChallengeProgress, userID, challengeID, increment, target int, now time.Time) model.ChallengeProgress {
	if p == nil {
		row := model.ChallengeProgress{
			UserID:      userID,
			ChallengeID: challengeID,
			Progress:    increment,
		}
		if increment >= target {
			row.IsCompleted = true
			row.CompletedAt = &now
		}
		return row
	}

	row := *p
	row.Progress += increment
	row.IsCompleted = row.Progress >= target || row.IsCompleted
	if row.CompletedAt == nil && row.Progress >= target {
		row.CompletedAt = &now
	}
	return row
}

func TestApplyAddProgress_CompletionIsSetOnce(t *testing.T) {
	day1 := time.Date(2026, time.July, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.July, 2, 10, 0, 0, 0, time.UTC)
	target := 5

	// First touch creates the row short of the target.
	row := applyAddProgress(nil, 1, 7, 3, target, day1)
	if row.Progress != 3 || row.IsCompleted || row.CompletedAt != nil {
		t.Fatalf("after first touch: progress=%d completed=%v at=%v", row.Progress, row.IsCompleted, row.CompletedAt)
	}

	// Crossing the target completes and stamps completed_at.
	row = applyAddProgress(&row, 1, 7, 3, target, day1)
	if row.Progress != 6 || !row.IsCompleted {
		t.Fatalf("after crossing: progress=%d completed=%v", row.Progress, row.IsCompleted)
	}
	if row.CompletedAt == nil || !row.CompletedAt.Equal(day1) {
		t.Fatalf("completed_at = %v, want %v", row.CompletedAt, day1)
	}

	// Further increments keep accumulating but never restamp completed_at.
	row = applyAddProgress(&row, 1, 7, 4, target, day2)
	if row.Progress != 10 {
		t.Errorf("progress = %d, want 10", row.Progress)
	}
	if !row.IsCompleted {
		t.Error("completion must not flip back")
	}
	if row.CompletedAt == nil || !row.CompletedAt.Equal(day1) {
		t.Errorf("completed_at = %v, want the original %v", row.CompletedAt, day1)
	}
}

func TestApplyAddProgress_FirstTouchCanComplete(t *testing.T) {
	now := time.Date(2026, time.July, 1, 10, 0, 0, 0, time.UTC)
	row := applyAddProgress(nil, 2, 3, 5, 5, now)
	if !row.IsCompleted {
		t.Error("reaching the target on the first touch should complete")
	}
	if row.CompletedAt == nil || !row.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want %v", row.CompletedAt, now)
	}
}
