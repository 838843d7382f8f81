package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type WeeklyRepo struct {
	pool *pgxpool.Pool
}

func NewWeeklyRepo(pool *pgxpool.Pool) *WeeklyRepo {
	return &WeeklyRepo{pool: pool}
}

const competitionColumns = `id, week_start, week_end, is_active, created_at`

// FindActive returns the active competition window, or nil if none exists.
func (r *WeeklyRepo) FindActive(ctx context.Context) (*model.WeeklyCompetition, error) {
	var w model.WeeklyCompetition
	err := r.pool.QueryRow(ctx, `
		SELECT `+competitionColumns+`
		FROM weekly_competitions
		WHERE is_active
		ORDER BY week_start DESC
		LIMIT 1`).Scan(&w.ID, &w.WeekStart, &w.WeekEnd, &w.IsActive, &w.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a new active window. The unique constraint on week_start
// makes duplicate creation by concurrent instances impossible; on conflict
// the existing window is returned instead.
func (r *WeeklyRepo) Create(ctx context.Context, weekStart, weekEnd time.Time) (*model.WeeklyCompetition, error) {
	var w model.WeeklyCompetition
	err := r.pool.QueryRow(ctx, `
		INSERT INTO weekly_competitions (week_start, week_end, is_active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (week_start) DO UPDATE SET week_end = EXCLUDED.week_end
		RETURNING `+competitionColumns,
		weekStart, weekEnd).Scan(&w.ID, &w.WeekStart, &w.WeekEnd, &w.IsActive, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Deactivate marks a window inactive. Returns false if the id is unknown.
func (r *WeeklyRepo) Deactivate(ctx context.Context, competitionID int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE weekly_competitions SET is_active = FALSE WHERE id = $1`, competitionID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AwardBadge writes a weekly badge for a ranked user.
func (r *WeeklyRepo) AwardBadge(ctx context.Context, b *model.WeeklyBadge) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO weekly_badges (competition_id, user_id, rank, streak_length, badge_icon, badge_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, awarded_at`,
		b.CompetitionID, b.UserID, b.Rank, b.StreakLength, b.BadgeIcon, b.BadgeName).
		Scan(&b.ID, &b.AwardedAt)
}

// ListBadgesForUser returns all weekly badges a user has earned, newest first.
func (r *WeeklyRepo) ListBadgesForUser(ctx context.Context, userID int) ([]model.WeeklyBadge, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, competition_id, user_id, rank, streak_length, badge_icon, badge_name, awarded_at
		FROM weekly_badges
		WHERE user_id = $1
		ORDER BY awarded_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []model.WeeklyBadge
	for rows.Next() {
		var b model.WeeklyBadge
		if err := rows.Scan(&b.ID, &b.CompetitionID, &b.UserID, &b.Rank, &b.StreakLength, &b.BadgeIcon, &b.BadgeName, &b.AwardedAt); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

// TryAdvisoryLock attempts to take a session advisory lock identifying the
// weekly rotation. Only one process in the cluster can hold it at a time.
func (r *WeeklyRepo) TryAdvisoryLock(ctx context.Context, conn *pgxpool.Conn, key int64) (bool, error) {
	var locked bool
	err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, key).Scan(&locked)
	return locked, err
}

// AdvisoryUnlock releases the rotation advisory lock.
func (r *WeeklyRepo) AdvisoryUnlock(ctx context.Context, conn *pgxpool.Conn, key int64) error {
	_, err := conn.Exec(ctx, `SELECT pg_advisory_unlock($1)`, key)
	return err
}

// Acquire hands out a dedicated connection for advisory locking; the lock
// lives on the connection, so the caller must release it on the same one.
func (r *WeeklyRepo) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	return r.pool.Acquire(ctx)
}
