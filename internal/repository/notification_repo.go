package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Insert appends a notification to a user's log.
func (r *NotificationRepo) Insert(ctx context.Context, n *model.Notification) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, competition_id, type, title, message, rank, badge_icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		n.UserID, n.CompetitionID, n.Type, n.Title, n.Message, n.Rank, n.BadgeIcon).
		Scan(&n.ID, &n.CreatedAt)
}

// ListForUser returns a user's notifications, newest first.
func (r *NotificationRepo) ListForUser(ctx context.Context, userID, limit int) ([]model.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, competition_id, type, title, message, rank, badge_icon, is_read, read_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Notification
	for rows.Next() {
		var n model.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.CompetitionID, &n.Type, &n.Title, &n.Message,
			&n.Rank, &n.BadgeIcon, &n.IsRead, &n.ReadAt, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// UnreadCount returns how many of a user's notifications are unread.
func (r *NotificationRepo) UnreadCount(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`,
		userID).Scan(&count)
	return count, err
}

// MarkRead flips a single notification's read flag. Marking an
// already-read notification is a no-op that keeps the original read_at.
// Returns false only when the id is unknown.
func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = COALESCE(read_at, NOW())
		WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkAllRead flips every unread notification for a user. Returns how many
// were updated.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID int) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = NOW()
		WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
