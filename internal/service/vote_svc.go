package service

import (
	"context"
	"fmt"
	"log"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

// ValidateVotePair rejects malformed matchups before any I/O happens.
func ValidateVotePair(park1ID, park2ID, winnerID int) error {
	if park1ID <= 0 || park2ID <= 0 {
		return fmt.Errorf("park ids must be positive")
	}
	if park1ID == park2ID {
		return fmt.Errorf("a park cannot compete against itself")
	}
	if winnerID != park1ID && winnerID != park2ID {
		return fmt.Errorf("winner must be one of the two matchup parks")
	}
	return nil
}

// VoteService is the vote-recording pipeline: validate, rate, persist.
type VoteService struct {
	repo   *repository.VoteRepo
	parks  *repository.ParkRepo
	rating *RatingService
	cache  *CacheService
}

func NewVoteService(repo *repository.VoteRepo, parks *repository.ParkRepo, rating *RatingService, cache *CacheService) *VoteService {
	return &VoteService{repo: repo, parks: parks, rating: rating, cache: cache}
}

// RecordVote validates and persists a vote, returning both parks with their
// updated ratings. Streak, achievement, and challenge follow-ups are the
// caller's responsibility and run outside the vote transaction.
func (s *VoteService) RecordVote(ctx context.Context, park1ID, park2ID, winnerID int, userID *int) (*model.Park, *model.Park, error) {
	if err := ValidateVotePair(park1ID, park2ID, winnerID); err != nil {
		return nil, nil, err
	}

	park1, park2, err := s.repo.RecordVote(ctx, park1ID, park2ID, winnerID, userID, s.rating.Calculate)
	if err != nil {
		return nil, nil, err
	}

	// Rankings changed; drop the cached copy so the next read is fresh.
	if s.cache != nil {
		if err := s.cache.InvalidateRankings(ctx); err != nil {
			log.Printf("cache: invalidate rankings error: %v", err)
		}
	}

	return park1, park2, nil
}

// GetMatchup returns a random pair of parks, or nil when fewer than two exist.
func (s *VoteService) GetMatchup(ctx context.Context) (*model.Matchup, error) {
	return s.parks.RandomPair(ctx)
}

// GetRankings returns all parks ordered by rating, served cache-aside.
func (s *VoteService) GetRankings(ctx context.Context) ([]model.Park, error) {
	if s.cache != nil {
		var cached []model.Park
		ok, err := s.cache.GetRankings(ctx, &cached)
		if err != nil {
			log.Printf("cache: rankings get error: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	parks, err := s.parks.ListByRating(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRankings(ctx, parks); err != nil {
			log.Printf("cache: rankings set error: %v", err)
		}
	}
	return parks, nil
}

// GetRecentVotes returns the latest votes enriched with park records.
func (s *VoteService) GetRecentVotes(ctx context.Context, limit int) ([]model.RecentVote, error) {
	votes, err := s.repo.RecentVotes(ctx, limit)
	if err != nil {
		return nil, err
	}

	// Dedupe park lookups across the page.
	parks := make(map[int]*model.Park)
	lookup := func(id int) *model.Park {
		if p, ok := parks[id]; ok {
			return p
		}
		p, err := s.parks.FindByID(ctx, id)
		if err != nil {
			log.Printf("recent votes: park %d lookup error: %v", id, err)
			p = nil
		}
		parks[id] = p
		return p
	}

	enriched := make([]model.RecentVote, 0, len(votes))
	for _, v := range votes {
		enriched = append(enriched, model.RecentVote{
			Vote:   v,
			Park1:  lookup(v.Park1ID),
			Park2:  lookup(v.Park2ID),
			Winner: lookup(v.WinnerID),
		})
	}
	return enriched, nil
}
