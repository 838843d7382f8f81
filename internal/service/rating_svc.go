package service

import "math"

const (
	// KFactor controls how far a single vote can move a rating.
	KFactor = 32
	// ratingSpread is the difference giving one park 10-to-1 expected odds.
	ratingSpread = 400
)

// RatingService computes paired rating deltas from a match outcome using
// the standard Elo update. It is pure arithmetic with no failure modes.
type RatingService struct{}

func NewRatingService() *RatingService {
	return &RatingService{}
}

// Calculate returns both parks' new ratings after a head-to-head vote.
//
//	expected1 = 1 / (1 + 10^((rating2-rating1)/400))
//	new1      = round(rating1 + K*(actual1 - expected1))
//
// Each side is rounded to the nearest whole rating point independently, so
// the sum of both ratings can drift by at most 1 per vote.
func (s *RatingService) Calculate(rating1, rating2 float64, winner1 bool) (new1, new2 int) {
	expected1 := 1 / (1 + math.Pow(10, (rating2-rating1)/ratingSpread))
	expected2 := 1 / (1 + math.Pow(10, (rating1-rating2)/ratingSpread))

	actual1, actual2 := 0.0, 1.0
	if winner1 {
		actual1, actual2 = 1.0, 0.0
	}

	new1 = int(math.Round(rating1 + KFactor*(actual1-expected1)))
	new2 = int(math.Round(rating2 + KFactor*(actual2-expected2)))
	return new1, new2
}
