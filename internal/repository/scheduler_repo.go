package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SchedulerRepo struct {
	pool *pgxpool.Pool
}

func NewSchedulerRepo(pool *pgxpool.Pool) *SchedulerRepo {
	return &SchedulerRepo{pool: pool}
}

// NextFireAt returns the persisted next-fire timestamp for a named task.
// The zero time is returned when no row exists yet.
func (r *SchedulerRepo) NextFireAt(ctx context.Context, name string) (time.Time, error) {
	var t time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT next_fire_at FROM scheduler_state WHERE name = $1`, name).Scan(&t)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, nil
	}
	return t, err
}

// SetNextFireAt persists the next-fire timestamp for a named task.
func (r *SchedulerRepo) SetNextFireAt(ctx context.Context, name string, t time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO scheduler_state (name, next_fire_at)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET next_fire_at = EXCLUDED.next_fire_at`,
		name, t)
	return err
}
