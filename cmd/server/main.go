package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/config"
	"github.com/ngys9919/manus-voting-ranking/internal/db"
	"github.com/ngys9919/manus-voting-ranking/internal/handler"
	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
	"github.com/ngys9919/manus-voting-ranking/internal/router"
	"github.com/ngys9919/manus-voting-ranking/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "parkvote-api", cfg.LogIPSalt)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := db.Seed(ctx, pool, cfg.SeedParks); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()
	cache.OnHit = handler.Metrics.CacheHits.Inc
	cache.OnMiss = handler.Metrics.CacheMisses.Inc

	parkRepo := repository.NewParkRepo(pool)
	voteRepo := repository.NewVoteRepo(pool)
	streakRepo := repository.NewStreakRepo(pool)
	achievementRepo := repository.NewAchievementRepo(pool)
	challengeRepo := repository.NewChallengeRepo(pool)
	weeklyRepo := repository.NewWeeklyRepo(pool)
	notificationRepo := repository.NewNotificationRepo(pool)
	userRepo := repository.NewUserRepo(pool)
	schedulerRepo := repository.NewSchedulerRepo(pool)

	ratingSvc := service.NewRatingService()
	voteSvc := service.NewVoteService(voteRepo, parkRepo, ratingSvc, cache)
	streakSvc := service.NewStreakService(streakRepo)
	achievementSvc := service.NewAchievementService(achievementRepo, voteRepo, parkRepo)
	challengeSvc := service.NewChallengeService(challengeRepo)
	weeklySvc := service.NewWeeklyService(weeklyRepo, streakRepo, userRepo, notificationRepo, cache)
	weeklySvc.OnRotate = handler.Metrics.RotationsTotal.Inc

	worker := service.NewWeeklyWorker(weeklySvc, schedulerRepo, cfg.SchedulerTick)
	go worker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "ParkVote API",
		ServerHeader: "ParkVote",
	})

	handlers := &router.Handlers{
		Vote:         handler.NewVoteHandler(voteSvc, streakSvc, achievementSvc, challengeSvc),
		Park:         handler.NewParkHandler(voteSvc),
		Streak:       handler.NewStreakHandler(streakSvc),
		Achievement:  handler.NewAchievementHandler(achievementSvc),
		Challenge:    handler.NewChallengeHandler(challengeSvc),
		Weekly:       handler.NewWeeklyHandler(weeklySvc),
		Notification: handler.NewNotificationHandler(notificationRepo),
		Stats:        handler.NewStatsHandler(userRepo),
		Health:       handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, handlers, cfg.CORSOrigins)

	// Shut the worker down cleanly on SIGINT/SIGTERM.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		worker.Stop()
		cancel()
		_ = app.Shutdown()
	}()

	log.Printf("ParkVote backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
