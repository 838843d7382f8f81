package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/ngys9919/manus-voting-ranking/internal/handler"
	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Vote         *handler.VoteHandler
	Park         *handler.ParkHandler
	Streak       *handler.StreakHandler
	Achievement  *handler.AchievementHandler
	Challenge    *handler.ChallengeHandler
	Weekly       *handler.WeeklyHandler
	Notification *handler.NotificationHandler
	Stats        *handler.StatsHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Probes and metrics live outside the API group
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	readLimit := middleware.NewReadRateLimiter().Handler()
	voteLimit := middleware.NewVoteSubmitRateLimiter().Handler()
	notifLimit := middleware.NewNotificationRateLimiter().Handler()
	statsLimit := middleware.NewStatsRateLimiter().Handler()

	api := app.Group("/api")

	// Vote routes
	api.Post("/votes", h.Vote.Submit, voteLimit)
	api.Get("/votes/recent", h.Vote.Recent, readLimit)

	// Park routes
	api.Get("/parks/matchup", h.Park.Matchup, readLimit)
	api.Get("/parks/rankings", h.Park.Rankings, readLimit)

	// Streak routes
	api.Get("/streaks/leaderboard", h.Streak.Leaderboard, readLimit)
	api.Get("/users/:userId/streak", h.Streak.Get, readLimit)

	// Achievement routes
	api.Get("/users/:userId/achievements", h.Achievement.List, readLimit)
	api.Get("/users/:userId/achievements/progress", h.Achievement.Progress, readLimit)
	api.Get("/users/:userId/achievements/next", h.Achievement.Next, readLimit)

	// Challenge routes
	api.Get("/challenges/active", h.Challenge.Active, readLimit)
	api.Get("/users/:userId/challenges", h.Challenge.Progress, readLimit)
	api.Get("/users/:userId/challenges/completed", h.Challenge.Completed, readLimit)
	api.Get("/users/:userId/challenges/notifications", h.Challenge.Notifications, notifLimit)

	// Weekly competition routes
	api.Get("/competitions/current", h.Weekly.Current, readLimit)
	api.Get("/users/:userId/badges", h.Weekly.Badges, readLimit)

	// Notification routes
	api.Get("/users/:userId/notifications", h.Notification.List, notifLimit)
	api.Get("/users/:userId/notifications/unread", h.Notification.UnreadCount, notifLimit)
	api.Post("/users/:userId/notifications/read-all", h.Notification.MarkAllRead, notifLimit)
	api.Post("/notifications/:id/read", h.Notification.MarkRead, notifLimit)

	// Stats routes
	api.Get("/stats", h.Stats.Get, statsLimit)
}
