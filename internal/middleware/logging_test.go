package middleware

import (
	"testing"

	"github.com/ngys9919/manus-voting-ranking/pkg/hash"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			"user id is redacted",
			"/api/users/42/streak",
			"/api/users/:userId/streak",
		},
		{
			"park id is redacted",
			"/api/parks/7",
			"/api/parks/:parkId",
		},
		{
			"notification id keeps its suffix",
			"/api/notifications/123/read",
			"/api/notifications/:id/read",
		},
		{
			"literal challenge sub-resource passes through",
			"/api/challenges/active",
			"/api/challenges/active",
		},
		{
			"nested literal segments pass through",
			"/api/users/42/challenges/notifications",
			"/api/users/:userId/challenges/notifications",
		},
		{
			"paths without ids are untouched",
			"/api/parks/matchup",
			"/api/parks/matchup",
		},
		{
			"leaderboard is untouched",
			"/api/streaks/leaderboard",
			"/api/streaks/leaderboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePath(tt.path); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestHashIPForLog(t *testing.T) {
	got := hashIPForLog("203.0.113.9")
	if len(got) != 12 {
		t.Fatalf("hash prefix length = %d, want 12", len(got))
	}
	if got != hashIPForLog("203.0.113.9") {
		t.Error("hashing the same IP twice should be stable")
	}
	if got == hashIPForLog("203.0.113.10") {
		t.Error("different IPs should hash differently")
	}

	// The logged prefix is the salted iterated hash, not a plain digest an
	// observer could reproduce from the address alone.
	if got == hash.SHA256Hex("203.0.113.9")[:12] {
		t.Error("log hash must depend on the salt")
	}
}
