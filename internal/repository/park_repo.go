package repository

import (
	"context"
	"math/rand"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type ParkRepo struct {
	pool *pgxpool.Pool
}

func NewParkRepo(pool *pgxpool.Pool) *ParkRepo {
	return &ParkRepo{pool: pool}
}

const parkColumns = `id, name, location, image_url, rating, vote_count, created_at, updated_at`

func scanPark(row pgx.Row) (*model.Park, error) {
	var p model.Park
	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.ImageURL, &p.Rating, &p.VoteCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID returns a single park by its id.
func (r *ParkRepo) FindByID(ctx context.Context, id int) (*model.Park, error) {
	return scanPark(r.pool.QueryRow(ctx, `SELECT `+parkColumns+` FROM parks WHERE id = $1`, id))
}

// ListByRating returns all parks ordered by rating descending.
func (r *ParkRepo) ListByRating(ctx context.Context) ([]model.Park, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+parkColumns+` FROM parks ORDER BY rating DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parks []model.Park
	for rows.Next() {
		p, err := scanPark(rows)
		if err != nil {
			return nil, err
		}
		parks = append(parks, *p)
	}
	return parks, rows.Err()
}

// RandomPair returns two distinct random parks for a matchup, or nil if
// fewer than two parks exist.
func (r *ParkRepo) RandomPair(ctx context.Context) (*model.Matchup, error) {
	parks, err := r.ListByRating(ctx)
	if err != nil {
		return nil, err
	}
	if len(parks) < 2 {
		return nil, nil
	}

	i := rand.Intn(len(parks))
	j := rand.Intn(len(parks))
	for j == i {
		j = rand.Intn(len(parks))
	}

	return &model.Matchup{Park1: parks[i], Park2: parks[j]}, nil
}

// RankOf returns the given park's 1-based position in the rating-descending
// ordering. Ties rank equally: rank = 1 + count of strictly higher ratings.
func (r *ParkRepo) RankOf(ctx context.Context, parkID int) (int, error) {
	var rank int
	err := r.pool.QueryRow(ctx, `
		SELECT 1 + COUNT(*)
		FROM parks
		WHERE rating > (SELECT rating FROM parks WHERE id = $1)`,
		parkID).Scan(&rank)
	return rank, err
}
