package model

import "time"

// WeeklyCompetition is a recurring 7-day window during which streak
// lengths are ranked. At most one window is active at any time.
type WeeklyCompetition struct {
	ID        int       `json:"id"`
	WeekStart time.Time `json:"weekStart"`
	WeekEnd   time.Time `json:"weekEnd"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeeklyBadge is a limited-time badge awarded to a top-3 streaker
// when a competition window closes.
type WeeklyBadge struct {
	ID            int64     `json:"id"`
	CompetitionID int       `json:"competitionId"`
	UserID        int       `json:"userId"`
	Rank          int       `json:"rank"`
	StreakLength  int       `json:"streakLength"`
	BadgeIcon     string    `json:"badgeIcon"`
	BadgeName     string    `json:"badgeName"`
	AwardedAt     time.Time `json:"awardedAt"`
}

// WeeklyStanding is a live leaderboard row computed from current streak
// state, shown before the rotation fires.
type WeeklyStanding struct {
	Rank          int    `json:"rank"`
	UserID        int    `json:"userId"`
	UserName      string `json:"userName"`
	CurrentStreak int    `json:"currentStreak"`
}

// WeeklyCompetitionResponse is the active window enriched with live standings.
type WeeklyCompetitionResponse struct {
	WeeklyCompetition
	TopStreakers []WeeklyStanding `json:"topStreakers"`
}
