package service

import (
	"context"
	"log"
	"time"

	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

const schedulerName = "weekly_rotation"

// WeeklyWorker drives the weekly rotation off a persisted schedule. The
// next fire time lives in the database, so a restart never loses the
// schedule and a rotation missed during downtime is caught up on the
// first tick after boot.
type WeeklyWorker struct {
	weekly    *WeeklyService
	scheduler *repository.SchedulerRepo
	interval  time.Duration
	stopCh    chan struct{}

	// Now is replaceable in tests.
	Now func() time.Time
}

// NewWeeklyWorker creates a worker that checks the schedule every interval.
func NewWeeklyWorker(weekly *WeeklyService, scheduler *repository.SchedulerRepo, interval time.Duration) *WeeklyWorker {
	return &WeeklyWorker{
		weekly:    weekly,
		scheduler: scheduler,
		interval:  interval,
		stopCh:    make(chan struct{}),
		Now:       time.Now,
	}
}

// Start begins the scheduling loop. It runs one check immediately, then
// every interval.
func (w *WeeklyWorker) Start(ctx context.Context) {
	log.Printf("weekly-worker: starting (interval=%s)", w.interval)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("weekly-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("weekly-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *WeeklyWorker) Stop() {
	close(w.stopCh)
}

// tick fires the rotation when the persisted deadline has passed, then
// advances the deadline to the next Monday boundary. Multiple missed
// weeks collapse into a single rotation followed by a catch-up of the
// schedule, so downtime never queues a burst of rotations.
func (w *WeeklyWorker) tick(ctx context.Context) {
	now := w.Now()

	nextFire, err := w.scheduler.NextFireAt(ctx, schedulerName)
	if err != nil {
		log.Printf("weekly-worker: schedule read error: %v", err)
		return
	}

	if nextFire.IsZero() {
		// First boot: schedule for the upcoming Monday and make sure a
		// window exists for the current week.
		if _, err := w.weekly.GetOrCreateCurrentWeekly(ctx); err != nil {
			log.Printf("weekly-worker: bootstrap window error: %v", err)
		}
		next := weekStart(now).AddDate(0, 0, 7)
		if err := w.scheduler.SetNextFireAt(ctx, schedulerName, next); err != nil {
			log.Printf("weekly-worker: schedule init error: %v", err)
			return
		}
		log.Printf("weekly-worker: schedule initialized, next rotation %s", next.Format(time.RFC3339))
		return
	}

	if now.Before(nextFire) {
		return
	}

	if err := w.weekly.RotateWeeklyCompetition(ctx); err != nil {
		log.Printf("weekly-worker: rotation error: %v", err)
		return
	}

	next := nextFire.AddDate(0, 0, 7)
	for !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	if err := w.scheduler.SetNextFireAt(ctx, schedulerName, next); err != nil {
		log.Printf("weekly-worker: schedule advance error: %v", err)
		return
	}
	log.Printf("weekly-worker: next rotation %s", next.Format(time.RFC3339))
}
