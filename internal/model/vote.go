package model

import "time"

// Vote represents a single head-to-head matchup result. Immutable once created.
type Vote struct {
	ID        int64     `json:"id"`
	Park1ID   int       `json:"park1Id"`
	Park2ID   int       `json:"park2Id"`
	WinnerID  int       `json:"winnerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteAttribution links an authenticated user to a vote they cast.
type VoteAttribution struct {
	ID           int64     `json:"id"`
	UserID       int       `json:"userId"`
	VoteID       int64     `json:"voteId"`
	ChosenParkID int       `json:"chosenParkId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// VoteRequest is the API request body for submitting a vote.
type VoteRequest struct {
	Park1ID  int `json:"park1Id"`
	Park2ID  int `json:"park2Id"`
	WinnerID int `json:"winnerId"`
}

// VoteResponse is the API response after a vote has been recorded.
// Streak and Achievements are only populated for authenticated votes
// and only when the follow-up evaluation produced something new.
type VoteResponse struct {
	Park1        Park                `json:"park1"`
	Park2        Park                `json:"park2"`
	Streak       *StreakNotification `json:"streak,omitempty"`
	Achievements []Achievement       `json:"achievements,omitempty"`
}

// RecentVote is a vote enriched with its park records for display.
type RecentVote struct {
	Vote
	Park1  *Park `json:"park1"`
	Park2  *Park `json:"park2"`
	Winner *Park `json:"winner"`
}
