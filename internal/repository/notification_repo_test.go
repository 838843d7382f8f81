package repository

import (
	"testing"
	"time"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

// applyMarkRead mirrors the MarkRead update: an existing row always reports
// success, read_at is stamped once, and a missing row reports false.
func applyMarkRead(n *model.Notification, now time.Time) bool {
	if n == nil {
		return false
	}
	n.IsRead = true
	if n.ReadAt == nil {
		n.ReadAt = &now
	}
	return true
}

func TestApplyMarkRead(t *testing.T) {
	first := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)
	second := time.Date(2026, time.June, 2, 8, 0, 0, 0, time.UTC)

	t.Run("missing notification", func(t *testing.T) {
		if applyMarkRead(nil, first) {
			t.Error("marking a missing notification should report false")
		}
	})

	t.Run("unread notification", func(t *testing.T) {
		n := &model.Notification{ID: 1}
		if !applyMarkRead(n, first) {
			t.Fatal("marking an existing notification should report true")
		}
		if !n.IsRead {
			t.Error("notification should be read")
		}
		if n.ReadAt == nil || !n.ReadAt.Equal(first) {
			t.Errorf("read_at = %v, want %v", n.ReadAt, first)
		}
	})

	t.Run("already read is an idempotent success", func(t *testing.T) {
		n := &model.Notification{ID: 1}
		applyMarkRead(n, first)
		if !applyMarkRead(n, second) {
			t.Fatal("re-marking a read notification should still report true")
		}
		if n.ReadAt == nil || !n.ReadAt.Equal(first) {
			t.Errorf("read_at = %v, want the original %v", n.ReadAt, first)
		}
	})
}
