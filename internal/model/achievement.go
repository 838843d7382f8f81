package model

import "time"

// Achievement is a permanent badge definition.
type Achievement struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// UserAchievement records a single unlock. The (userId, code) pair is
// unique and never deleted.
type UserAchievement struct {
	ID         int64     `json:"id"`
	UserID     int       `json:"userId"`
	Code       string    `json:"code"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// UnlockedAchievement is an achievement joined with its unlock timestamp.
type UnlockedAchievement struct {
	Achievement
	UnlockedAt time.Time `json:"unlockedAt"`
}

// AchievementProgress is an achievement definition enriched with the
// user's progress toward it.
type AchievementProgress struct {
	Achievement
	IsUnlocked         bool `json:"isUnlocked"`
	CurrentProgress    int  `json:"currentProgress"`
	TargetValue        int  `json:"targetValue"`
	ProgressPercentage int  `json:"progressPercentage"`
}
