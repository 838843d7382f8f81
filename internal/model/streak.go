package model

import "time"

// Streak tracks consecutive calendar days of voting for a single user.
// Dates are stored at day precision; the time components are always midnight.
type Streak struct {
	UserID          int       `json:"userId"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
	LastVoteDate    time.Time `json:"lastVoteDate"`
	StreakStartDate time.Time `json:"streakStartDate"`
	UpdatedAt       time.Time `json:"-"`
}

// StreakNotification is returned when a vote pushes a user's streak
// across one of the milestone lengths (3, 7, 14, 30 days).
type StreakNotification struct {
	Type       string `json:"type"`
	StreakDays int    `json:"streakDays"`
	Icon       string `json:"icon"`
	Message    string `json:"message"`
}

// StreakLeaderboardEntry is one row of the streak leaderboard.
type StreakLeaderboardEntry struct {
	UserID        int    `json:"userId"`
	UserName      string `json:"userName"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
}
