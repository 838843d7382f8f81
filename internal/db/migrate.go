package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates all tables if they don't exist. Statements are ordered so
// that referenced tables exist before their foreign keys.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id             SERIAL PRIMARY KEY,
			open_id        VARCHAR(64) NOT NULL UNIQUE,
			name           TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_signed_in TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS parks (
			id         SERIAL PRIMARY KEY,
			name       VARCHAR(255) NOT NULL UNIQUE,
			location   VARCHAR(255) NOT NULL,
			image_url  TEXT NOT NULL DEFAULT '',
			rating     NUMERIC(10,2) NOT NULL DEFAULT 1500,
			vote_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS votes (
			id         BIGSERIAL PRIMARY KEY,
			park1_id   INT NOT NULL REFERENCES parks(id),
			park2_id   INT NOT NULL REFERENCES parks(id),
			winner_id  INT NOT NULL REFERENCES parks(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_votes_created_at ON votes (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS park_rating_history (
			id         BIGSERIAL PRIMARY KEY,
			park_id    INT NOT NULL REFERENCES parks(id),
			rating     NUMERIC(10,2) NOT NULL,
			vote_id    BIGINT NOT NULL REFERENCES votes(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rating_history_park ON park_rating_history (park_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS user_vote_attributions (
			id             BIGSERIAL PRIMARY KEY,
			user_id        INT NOT NULL,
			vote_id        BIGINT NOT NULL REFERENCES votes(id),
			chosen_park_id INT NOT NULL REFERENCES parks(id),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attributions_user ON user_vote_attributions (user_id)`,
		`CREATE TABLE IF NOT EXISTS user_streaks (
			user_id           INT PRIMARY KEY,
			current_streak    INT NOT NULL DEFAULT 0,
			longest_streak    INT NOT NULL DEFAULT 0,
			last_vote_date    DATE NOT NULL,
			streak_start_date DATE NOT NULL,
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id          SERIAL PRIMARY KEY,
			code        VARCHAR(64) NOT NULL UNIQUE,
			name        VARCHAR(128) NOT NULL,
			description TEXT NOT NULL,
			icon        VARCHAR(16) NOT NULL,
			color       VARCHAR(16) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_achievements (
			id               BIGSERIAL PRIMARY KEY,
			user_id          INT NOT NULL,
			achievement_code VARCHAR(64) NOT NULL REFERENCES achievements(code),
			unlocked_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, achievement_code)
		)`,
		`CREATE TABLE IF NOT EXISTS challenges (
			id           SERIAL PRIMARY KEY,
			code         VARCHAR(64) NOT NULL UNIQUE,
			name         VARCHAR(128) NOT NULL,
			description  TEXT NOT NULL,
			type         VARCHAR(16) NOT NULL,
			target_value INT NOT NULL,
			start_date   TIMESTAMPTZ NOT NULL,
			end_date     TIMESTAMPTZ NOT NULL,
			is_active    BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS user_challenge_progress (
			id           BIGSERIAL PRIMARY KEY,
			user_id      INT NOT NULL,
			challenge_id INT NOT NULL REFERENCES challenges(id),
			progress     INT NOT NULL DEFAULT 0,
			is_completed BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ,
			UNIQUE (user_id, challenge_id)
		)`,
		`CREATE TABLE IF NOT EXISTS weekly_competitions (
			id         SERIAL PRIMARY KEY,
			week_start TIMESTAMPTZ NOT NULL UNIQUE,
			week_end   TIMESTAMPTZ NOT NULL,
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS weekly_badges (
			id             BIGSERIAL PRIMARY KEY,
			competition_id INT NOT NULL REFERENCES weekly_competitions(id),
			user_id        INT NOT NULL,
			rank           INT NOT NULL,
			streak_length  INT NOT NULL,
			badge_icon     VARCHAR(16) NOT NULL,
			badge_name     VARCHAR(64) NOT NULL,
			awarded_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_weekly_badges_user ON weekly_badges (user_id)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id             BIGSERIAL PRIMARY KEY,
			user_id        INT NOT NULL,
			competition_id INT,
			type           VARCHAR(32) NOT NULL,
			title          VARCHAR(255) NOT NULL,
			message        TEXT NOT NULL,
			rank           INT,
			badge_icon     VARCHAR(16),
			is_read        BOOLEAN NOT NULL DEFAULT FALSE,
			read_at        TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS scheduler_state (
			name         VARCHAR(32) PRIMARY KEY,
			next_fire_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
