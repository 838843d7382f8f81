package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type AchievementRepo struct {
	pool *pgxpool.Pool
}

func NewAchievementRepo(pool *pgxpool.Pool) *AchievementRepo {
	return &AchievementRepo{pool: pool}
}

const achievementColumns = `id, code, name, description, icon, color`

// FindByCode returns an achievement definition, or nil if the code is unknown.
func (r *AchievementRepo) FindByCode(ctx context.Context, code string) (*model.Achievement, error) {
	var a model.Achievement
	err := r.pool.QueryRow(ctx, `
		SELECT `+achievementColumns+` FROM achievements WHERE code = $1`,
		code).Scan(&a.ID, &a.Code, &a.Name, &a.Description, &a.Icon, &a.Color)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAll returns every achievement definition.
func (r *AchievementRepo) ListAll(ctx context.Context) ([]model.Achievement, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+achievementColumns+` FROM achievements ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []model.Achievement
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Description, &a.Icon, &a.Color); err != nil {
			return nil, err
		}
		defs = append(defs, a)
	}
	return defs, rows.Err()
}

// ListForUser returns the achievements a user has unlocked, newest first.
func (r *AchievementRepo) ListForUser(ctx context.Context, userID int) ([]model.UnlockedAchievement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.code, a.name, a.description, a.icon, a.color, ua.unlocked_at
		FROM user_achievements ua
		JOIN achievements a ON a.code = ua.achievement_code
		WHERE ua.user_id = $1
		ORDER BY ua.unlocked_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocked []model.UnlockedAchievement
	for rows.Next() {
		var u model.UnlockedAchievement
		if err := rows.Scan(&u.ID, &u.Code, &u.Name, &u.Description, &u.Icon, &u.Color, &u.UnlockedAt); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, u)
	}
	return unlocked, rows.Err()
}

// UnlockedCodes returns the set of achievement codes a user holds.
func (r *AchievementRepo) UnlockedCodes(ctx context.Context, userID int) (map[string]bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT achievement_code FROM user_achievements WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes[code] = true
	}
	return codes, rows.Err()
}

// Unlock inserts the (userId, code) pair. Returns true when the pair was
// newly created and false when the user already held the achievement;
// the duplicate case is a no-op, not an error.
func (r *AchievementRepo) Unlock(ctx context.Context, userID int, code string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO user_achievements (user_id, achievement_code)
		VALUES ($1, $2)
		ON CONFLICT (user_id, achievement_code) DO NOTHING`,
		userID, code)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
