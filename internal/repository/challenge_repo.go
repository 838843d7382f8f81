package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type ChallengeRepo struct {
	pool *pgxpool.Pool
}

func NewChallengeRepo(pool *pgxpool.Pool) *ChallengeRepo {
	return &ChallengeRepo{pool: pool}
}

const challengeColumns = `id, code, name, description, type, target_value, start_date, end_date, is_active`

func scanChallenge(row pgx.Row) (*model.Challenge, error) {
	var c model.Challenge
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.Type, &c.TargetValue, &c.StartDate, &c.EndDate, &c.IsActive)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByID returns a challenge definition.
func (r *ChallengeRepo) FindByID(ctx context.Context, id int) (*model.Challenge, error) {
	c, err := scanChallenge(r.pool.QueryRow(ctx, `
		SELECT `+challengeColumns+` FROM challenges WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrChallengeNotFound
	}
	return c, err
}

// ListActive returns challenges that are flagged active and whose date
// range contains the current time.
func (r *ChallengeRepo) ListActive(ctx context.Context) ([]model.Challenge, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE is_active AND start_date <= NOW() AND end_date >= NOW()
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []model.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, *c)
	}
	return challenges, rows.Err()
}

// AddProgress atomically adds increment to a user's counter, creating the
// row on first touch. Completion is detected in the same statement:
// is_completed flips when progress reaches the target, and completed_at is
// set exactly once (COALESCE keeps the original timestamp on later calls).
// Progress continues to accumulate past the target.
func (r *ChallengeRepo) AddProgress(ctx context.Context, userID, challengeID, increment, target int) (*model.ChallengeProgress, error) {
	var p model.ChallengeProgress
	err := r.pool.QueryRow(ctx, `
		INSERT INTO user_challenge_progress (user_id, challenge_id, progress, is_completed, completed_at)
		VALUES ($1, $2, $3, $3 >= $4, CASE WHEN $3 >= $4 THEN NOW() END)
		ON CONFLICT (user_id, challenge_id) DO UPDATE
		SET progress = user_challenge_progress.progress + $3,
		    is_completed = user_challenge_progress.progress + $3 >= $4 OR user_challenge_progress.is_completed,
		    completed_at = COALESCE(
		        user_challenge_progress.completed_at,
		        CASE WHEN user_challenge_progress.progress + $3 >= $4 THEN NOW() END)
		RETURNING id, user_id, challenge_id, progress, is_completed, completed_at`,
		userID, challengeID, increment, target).Scan(
		&p.ID, &p.UserID, &p.ChallengeID, &p.Progress, &p.IsCompleted, &p.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProgress returns one user's progress row for a challenge, or nil.
func (r *ChallengeRepo) FindProgress(ctx context.Context, userID, challengeID int) (*model.ChallengeProgress, error) {
	var p model.ChallengeProgress
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, challenge_id, progress, is_completed, completed_at
		FROM user_challenge_progress
		WHERE user_id = $1 AND challenge_id = $2`,
		userID, challengeID).Scan(&p.ID, &p.UserID, &p.ChallengeID, &p.Progress, &p.IsCompleted, &p.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProgress returns all of a user's challenge progress rows, optionally
// filtered to completed ones.
func (r *ChallengeRepo) ListProgress(ctx context.Context, userID int, completedOnly bool) ([]model.ChallengeProgress, error) {
	query := `
		SELECT id, user_id, challenge_id, progress, is_completed, completed_at
		FROM user_challenge_progress
		WHERE user_id = $1`
	if completedOnly {
		query += ` AND is_completed`
	}
	query += ` ORDER BY challenge_id ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.ChallengeProgress
	for rows.Next() {
		var p model.ChallengeProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.ChallengeID, &p.Progress, &p.IsCompleted, &p.CompletedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
