package model

import "time"

// Challenge types.
const (
	ChallengeMonthly  = "monthly"
	ChallengeSeasonal = "seasonal"
)

// Challenge is a time-boxed numeric goal shared by all users.
type Challenge struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	TargetValue int       `json:"targetValue"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    bool      `json:"isActive"`
}

// ChallengeProgress is one user's counter against a challenge target.
// CompletedAt is set the first time progress crosses the target and
// never changes afterwards, even as progress keeps accumulating.
type ChallengeProgress struct {
	ID          int64      `json:"id"`
	UserID      int        `json:"userId"`
	ChallengeID int        `json:"challengeId"`
	Progress    int        `json:"progress"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ChallengeNotification classifies a user's current progress on a challenge.
type ChallengeNotification struct {
	Type        string `json:"type"`
	ChallengeID int    `json:"challengeId"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Icon        string `json:"icon"`
	Percentage  int    `json:"percentage"`
}
