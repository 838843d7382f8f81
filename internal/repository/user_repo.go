package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// ListIDs returns the ids of every registered user. Used for
// notification fan-out when a new weekly competition starts.
func (r *UserRepo) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetStats returns aggregate platform statistics.
func (r *UserRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM parks),
			(SELECT COUNT(*) FROM votes),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE last_signed_in > NOW() - INTERVAL '24 hours')`).
		Scan(&stats.TotalParks, &stats.TotalVotes, &stats.TotalUsers, &stats.ActiveUsers24h)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
