package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AchievementSeed is a static achievement definition.
type AchievementSeed struct {
	Code        string
	Name        string
	Description string
	Icon        string
	Color       string
}

// AchievementDefinitions is the fixed set of permanent badges.
var AchievementDefinitions = []AchievementSeed{
	{"first_vote", "First Vote", "Cast your first vote", "⚡", "yellow"},
	{"ten_votes", "Voting Enthusiast", "Cast 10 votes", "🔥", "orange"},
	{"fifty_votes", "Park Ranger", "Cast 50 votes", "🏆", "green"},
	{"hundred_votes", "Century Club", "Cast 100 votes", "👑", "purple"},
	{"favorite_top_ten", "Rising Star", "Your favorite park reaches the top 10", "⭐", "blue"},
	{"favorite_top_five", "Top Supporter", "Your favorite park reaches the top 5", "✨", "cyan"},
	{"favorite_number_one", "Ultimate Fan", "Your favorite park reaches #1", "Heart", "red"},
}

// ChallengeSeed is a static challenge definition. Start and end dates are
// computed at seed time from the challenge type.
type ChallengeSeed struct {
	Code        string
	Name        string
	Description string
	Type        string
	TargetValue int
}

// ChallengeDefinitions is the fixed set of time-boxed challenges:
// three monthly and four seasonal.
var ChallengeDefinitions = []ChallengeSeed{
	{"monthly_votes_25", "Vote Machine", "Cast 25 votes this month", "monthly", 25},
	{"monthly_votes_50", "Power Voter", "Cast 50 votes this month", "monthly", 50},
	{"monthly_streak_7", "Weekly Warrior", "Hold a 7-day streak this month", "monthly", 7},
	{"seasonal_votes_100", "Season Centurion", "Cast 100 votes this season", "seasonal", 100},
	{"seasonal_votes_250", "Marathon Voter", "Cast 250 votes this season", "seasonal", 250},
	{"seasonal_streak_14", "Fortnight Faithful", "Hold a 14-day streak this season", "seasonal", 14},
	{"seasonal_streak_30", "Season Legend", "Hold a 30-day streak this season", "seasonal", 30},
}

var parkSeeds = []struct {
	Name     string
	Location string
}{
	{"Yellowstone", "Wyoming"},
	{"Yosemite", "California"},
	{"Grand Canyon", "Arizona"},
	{"Zion", "Utah"},
	{"Grand Teton", "Wyoming"},
	{"Glacier", "Montana"},
	{"Rocky Mountain", "Colorado"},
	{"Acadia", "Maine"},
	{"Olympic", "Washington"},
	{"Great Smoky Mountains", "Tennessee"},
	{"Joshua Tree", "California"},
	{"Bryce Canyon", "Utah"},
	{"Arches", "Utah"},
	{"Sequoia", "California"},
	{"Everglades", "Florida"},
	{"Shenandoah", "Virginia"},
}

// Seed inserts achievement, challenge, and park definitions. All inserts are
// idempotent; re-running on a populated database is a no-op.
func Seed(ctx context.Context, pool *pgxpool.Pool, seedParks bool) error {
	for _, a := range AchievementDefinitions {
		_, err := pool.Exec(ctx, `
			INSERT INTO achievements (code, name, description, icon, color)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING`,
			a.Code, a.Name, a.Description, a.Icon, a.Color)
		if err != nil {
			return fmt.Errorf("seed achievement %s: %w", a.Code, err)
		}
	}

	now := time.Now()
	for _, c := range ChallengeDefinitions {
		start, end := challengeWindow(c.Type, now)
		_, err := pool.Exec(ctx, `
			INSERT INTO challenges (code, name, description, type, target_value, start_date, end_date, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
			ON CONFLICT (code) DO NOTHING`,
			c.Code, c.Name, c.Description, c.Type, c.TargetValue, start, end)
		if err != nil {
			return fmt.Errorf("seed challenge %s: %w", c.Code, err)
		}
	}

	if seedParks {
		seeded := 0
		for _, p := range parkSeeds {
			tag, err := pool.Exec(ctx, `
				INSERT INTO parks (name, location)
				VALUES ($1, $2)
				ON CONFLICT (name) DO NOTHING`,
				p.Name, p.Location)
			if err != nil {
				return fmt.Errorf("seed park %s: %w", p.Name, err)
			}
			seeded += int(tag.RowsAffected())
		}
		if seeded > 0 {
			log.Printf("seed: inserted %d parks", seeded)
		}
	}

	return nil
}

// challengeWindow returns the current calendar month for monthly challenges
// and the current quarter for seasonal ones.
func challengeWindow(challengeType string, now time.Time) (time.Time, time.Time) {
	if challengeType == "monthly" {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	}
	quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
	start := time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 3, 0)
}
