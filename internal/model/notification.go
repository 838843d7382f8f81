package model

import "time"

// Notification types.
const (
	NotificationTop3Ranking    = "top_3_ranking"
	NotificationChallengeStart = "challenge_start"
)

// Notification is an append-only message for a user. Only the read flag
// is ever mutated after creation.
type Notification struct {
	ID            int64      `json:"id"`
	UserID        int        `json:"userId"`
	CompetitionID *int       `json:"competitionId,omitempty"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	Rank          *int       `json:"rank,omitempty"`
	BadgeIcon     *string    `json:"badgeIcon,omitempty"`
	IsRead        bool       `json:"isRead"`
	ReadAt        *time.Time `json:"readAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
