package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type StreakRepo struct {
	pool *pgxpool.Pool
}

func NewStreakRepo(pool *pgxpool.Pool) *StreakRepo {
	return &StreakRepo{pool: pool}
}

// Find returns a user's streak row, or nil when the user has never voted.
func (r *StreakRepo) Find(ctx context.Context, userID int) (*model.Streak, error) {
	var s model.Streak
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, current_streak, longest_streak, last_vote_date, streak_start_date, updated_at
		FROM user_streaks
		WHERE user_id = $1`, userID).Scan(
		&s.UserID, &s.CurrentStreak, &s.LongestStreak, &s.LastVoteDate, &s.StreakStartDate, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the full streak state for a user.
func (r *StreakRepo) Upsert(ctx context.Context, s *model.Streak) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_streaks (user_id, current_streak, longest_streak, last_vote_date, streak_start_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
		    longest_streak = EXCLUDED.longest_streak,
		    last_vote_date = EXCLUDED.last_vote_date,
		    streak_start_date = EXCLUDED.streak_start_date,
		    updated_at = NOW()`,
		s.UserID, s.CurrentStreak, s.LongestStreak, s.LastVoteDate, s.StreakStartDate)
	return err
}

// Leaderboard returns the top streaks ordered by current streak descending,
// ties broken by ascending user id.
func (r *StreakRepo) Leaderboard(ctx context.Context, limit int) ([]model.StreakLeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.user_id, COALESCE(u.name, ''), s.current_streak, s.longest_streak
		FROM user_streaks s
		LEFT JOIN users u ON u.id = s.user_id
		ORDER BY s.current_streak DESC, s.user_id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.StreakLeaderboardEntry
	for rows.Next() {
		var e model.StreakLeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.UserName, &e.CurrentStreak, &e.LongestStreak); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
