package model

import "time"

// Park represents a national park competing in the head-to-head ranking.
type Park struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	ImageURL  string    `json:"imageUrl"`
	Rating    float64   `json:"rating"`
	VoteCount int       `json:"voteCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Matchup is a random pair of parks offered for voting.
type Matchup struct {
	Park1 Park `json:"park1"`
	Park2 Park `json:"park2"`
}

// RatingHistorySample records a park's rating immediately after a vote.
type RatingHistorySample struct {
	ID        int64     `json:"id"`
	ParkID    int       `json:"parkId"`
	Rating    float64   `json:"rating"`
	VoteID    int64     `json:"voteId"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatsResponse is the API response for global statistics.
type StatsResponse struct {
	TotalParks     int `json:"totalParks"`
	TotalVotes     int `json:"totalVotes"`
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers24h int `json:"activeUsers24h"`
}
