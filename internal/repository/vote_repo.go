package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type VoteRepo struct {
	pool *pgxpool.Pool
}

func NewVoteRepo(pool *pgxpool.Pool) *VoteRepo {
	return &VoteRepo{pool: pool}
}

// RatingFn computes the two new ratings for a matchup. Injected so the
// repository doesn't depend on the rating engine.
type RatingFn func(rating1, rating2 float64, winner1 bool) (int, int)

// RecordVote persists a full vote atomically: both parks' new rating and
// incremented vote count, the vote row, one rating-history row per park,
// and the attribution when userID is non-nil. Either everything commits or
// nothing does.
//
// Both park rows are locked FOR UPDATE in ascending id order so that
// concurrent votes touching the same park serialize without deadlocking.
func (r *VoteRepo) RecordVote(ctx context.Context, park1ID, park2ID, winnerID int, userID *int, calc RatingFn) (*model.Park, *model.Park, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT `+parkColumns+`
		FROM parks
		WHERE id = $1 OR id = $2
		ORDER BY id ASC
		FOR UPDATE`,
		park1ID, park2ID)
	if err != nil {
		return nil, nil, err
	}

	locked := make(map[int]*model.Park, 2)
	for rows.Next() {
		p, err := scanPark(rows)
		if err != nil {
			rows.Close()
			return nil, nil, err
		}
		locked[p.ID] = p
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	park1, park2 := locked[park1ID], locked[park2ID]
	if park1 == nil || park2 == nil {
		return nil, nil, ErrParkNotFound
	}

	new1, new2 := calc(park1.Rating, park2.Rating, winnerID == park1ID)
	now := time.Now()

	for _, u := range []struct {
		id     int
		rating int
	}{{park1ID, new1}, {park2ID, new2}} {
		_, err = tx.Exec(ctx, `
			UPDATE parks
			SET rating = $1, vote_count = vote_count + 1, updated_at = $2
			WHERE id = $3`,
			u.rating, now, u.id)
		if err != nil {
			return nil, nil, err
		}
	}

	var voteID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO votes (park1_id, park2_id, winner_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		park1ID, park2ID, winnerID).Scan(&voteID)
	if err != nil {
		return nil, nil, err
	}

	for _, h := range []struct {
		parkID int
		rating int
	}{{park1ID, new1}, {park2ID, new2}} {
		_, err = tx.Exec(ctx, `
			INSERT INTO park_rating_history (park_id, rating, vote_id)
			VALUES ($1, $2, $3)`,
			h.parkID, h.rating, voteID)
		if err != nil {
			return nil, nil, err
		}
	}

	if userID != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_vote_attributions (user_id, vote_id, chosen_park_id)
			VALUES ($1, $2, $3)`,
			*userID, voteID, winnerID)
		if err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	park1.Rating = float64(new1)
	park1.VoteCount++
	park1.UpdatedAt = now
	park2.Rating = float64(new2)
	park2.VoteCount++
	park2.UpdatedAt = now
	return park1, park2, nil
}

// RecentVotes returns the latest votes, newest first.
func (r *VoteRepo) RecentVotes(ctx context.Context, limit int) ([]model.Vote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, park1_id, park2_id, winner_id, created_at
		FROM votes
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []model.Vote
	for rows.Next() {
		var v model.Vote
		if err := rows.Scan(&v.ID, &v.Park1ID, &v.Park2ID, &v.WinnerID, &v.CreatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

// UserVoteStats returns an authenticated user's lifetime vote count and
// favorite park, recomputed fresh from attribution rows. The favorite is
// the park the user has chosen most often; ties break to the lowest park id.
// favoriteParkID is 0 when the user has no attributed votes.
func (r *VoteRepo) UserVoteStats(ctx context.Context, userID int) (totalVotes, favoriteParkID int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_vote_attributions WHERE user_id = $1`,
		userID).Scan(&totalVotes)
	if err != nil {
		return 0, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT chosen_park_id, COUNT(*) AS n
		FROM user_vote_attributions
		WHERE user_id = $1
		GROUP BY chosen_park_id
		ORDER BY n DESC, chosen_park_id ASC
		LIMIT 1`, userID)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	if rows.Next() {
		var n int
		if err := rows.Scan(&favoriteParkID, &n); err != nil {
			return 0, 0, err
		}
	}
	return totalVotes, favoriteParkID, rows.Err()
}
