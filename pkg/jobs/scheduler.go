package jobs

import (
	"context"
	"time"

	"bus-booking/internal/data/repository"
	"bus-booking/pkg/utils"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Runner owns the background maintenance jobs: completing departed
// schedules, reconciling seat counters and purging expired reset tokens.
type Runner struct {
	sched gocron.Scheduler
	repo  *repository.Repository
	log   *zap.Logger
}

func NewRunner(repo *repository.Repository, log *zap.Logger) (*Runner, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Runner{
		sched: sched,
		repo:  repo,
		log:   log.With(zap.String("component", "jobs")),
	}, nil
}

func (r *Runner) Start() error {
	if _, err := r.sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(2, 0, 0))),
		gocron.NewTask(r.completeDeparted),
	); err != nil {
		return err
	}

	if _, err := r.sched.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(r.reconcileCounters),
	); err != nil {
		return err
	}

	if _, err := r.sched.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(r.purgeExpiredResets),
	); err != nil {
		return err
	}

	r.sched.Start()
	r.log.Info("Background jobs started", zap.Int("jobs", len(r.sched.Jobs())))
	return nil
}

func (r *Runner) Stop() error {
	return r.sched.Shutdown()
}

// completeDeparted flips yesterday's schedules and their confirmed bookings
// to completed.
func (r *Runner) completeDeparted() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	today := utils.StartOfDay(time.Now())

	bookings, err := r.repo.Booking.CompleteDeparted(ctx, today)
	if err != nil {
		r.log.Error("Complete departed bookings failed", zap.Error(err))
		return
	}

	schedules, err := r.repo.Schedule.CompleteDeparted(ctx, today)
	if err != nil {
		r.log.Error("Complete departed schedules failed", zap.Error(err))
		return
	}

	if bookings > 0 || schedules > 0 {
		r.log.Info("Departed trips completed",
			zap.Int64("schedules", schedules),
			zap.Int64("bookings", bookings),
		)
	}
}

func (r *Runner) reconcileCounters() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := r.repo.Schedule.ReconcileAll(ctx); err != nil {
		r.log.Error("Counter reconciliation failed", zap.Error(err))
	}
}

func (r *Runner) purgeExpiredResets() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	purged, err := r.repo.PasswordReset.DeleteExpired(ctx, time.Now())
	if err != nil {
		r.log.Error("Purge expired password resets failed", zap.Error(err))
		return
	}
	if purged > 0 {
		r.log.Info("Expired password resets purged", zap.Int64("purged", purged))
	}
}
