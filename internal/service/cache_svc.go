package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

const (
	rankingsKey    = "rankings"
	rankingsTTL    = 5 * time.Minute
	weeklyStandKey = "weekly:standings"
	weeklyStandTTL = time.Minute
)

// CacheService wraps Redis for read-heavy endpoints. When Redis is
// unreachable at startup the client is left nil and every method becomes
// a no-op, so the API keeps serving straight from Postgres.
type CacheService struct {
	client *redis.Client

	// Optional hooks for hit/miss counters, set once at startup.
	OnHit  func()
	OnMiss func()
}

func NewCacheService(redisURL string) *CacheService {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("cache: invalid redis url, caching disabled: %v", err)
		return &CacheService{}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("cache: redis unreachable, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("cache: connected to redis")
	return &CacheService{client: client}
}

// Enabled reports whether a Redis connection is live.
func (s *CacheService) Enabled() bool {
	return s != nil && s.client != nil
}

// Client exposes the underlying redis client for health checks. May be nil.
func (s *CacheService) Client() *redis.Client {
	if s == nil {
		return nil
	}
	return s.client
}

func (s *CacheService) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Close()
}

// GetRankings loads the cached rankings list into dest. The bool reports
// a cache hit.
func (s *CacheService) GetRankings(ctx context.Context, dest *[]model.Park) (bool, error) {
	return s.getJSON(ctx, rankingsKey, dest)
}

func (s *CacheService) SetRankings(ctx context.Context, parks []model.Park) error {
	return s.setJSON(ctx, rankingsKey, parks, rankingsTTL)
}

func (s *CacheService) InvalidateRankings(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Del(ctx, rankingsKey).Err()
}

// GetWeeklyStandings loads the cached weekly competition snapshot.
func (s *CacheService) GetWeeklyStandings(ctx context.Context, dest *model.WeeklyCompetitionResponse) (bool, error) {
	return s.getJSON(ctx, weeklyStandKey, dest)
}

func (s *CacheService) SetWeeklyStandings(ctx context.Context, resp *model.WeeklyCompetitionResponse) error {
	return s.setJSON(ctx, weeklyStandKey, resp, weeklyStandTTL)
}

func (s *CacheService) InvalidateWeeklyStandings(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Del(ctx, weeklyStandKey).Err()
}

func (s *CacheService) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	raw, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		if s.OnMiss != nil {
			s.OnMiss()
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	if s.OnHit != nil {
		s.OnHit()
	}
	return true, nil
}

func (s *CacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, ttl).Err()
}
