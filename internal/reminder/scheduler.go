// Package reminder sends a message the day before each active booking.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type Store interface {
	ListDueReminders(ctx context.Context, fecha string) ([]models.Booking, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) error
}

type SalonNames interface {
	GetByID(ctx context.Context, id string) (*models.Salon, error)
}

type Scheduler struct {
	store    Store
	salons   SalonNames
	notifier Notifier
	loc      *time.Location
	metrics  *metrics.Metrics
	log      *zap.Logger
	now      func() time.Time

	cron *cron.Cron
}

func NewScheduler(
	store Store,
	salons SalonNames,
	notifier Notifier,
	tz string,
	metrics *metrics.Metrics,
	log *zap.Logger,
) *Scheduler {
	loc := timezone.Location(tz)
	return &Scheduler{
		store:    store,
		salons:   salons,
		notifier: notifier,
		loc:      loc,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
		cron:     cron.New(cron.WithLocation(loc)),
	}
}

// Start schedules RunOnce on spec (standard 5-field cron) and starts the cron loop.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := s.RunOnce(ctx); err != nil {
			s.log.Error("reminder run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("reminder: invalid schedule %q: %w", spec, err)
	}

	s.cron.Start()
	s.log.Info("reminder scheduler started", zap.String("schedule", spec), zap.String("tz", s.loc.String()))
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce reminds every active booking dated tomorrow that has not been
// reminded yet. A failed send is left unmarked so the next run retries it.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	fecha := timezone.DateAfter(s.now(), s.loc, 1)

	due, err := s.store.ListDueReminders(ctx, fecha)
	if err != nil {
		return 0, err
	}

	names := map[string]string{}
	sent := 0
	for _, b := range due {
		name, ok := names[b.SalonID]
		if !ok {
			if salon, err := s.salons.GetByID(ctx, b.SalonID); err == nil {
				name = salon.Nombre
			}
			names[b.SalonID] = name
		}

		if err := s.notifier.Notify(ctx, b, name); err != nil {
			s.metrics.RemindersSent.WithLabelValues("failed").Inc()
			s.log.Warn("reminder not sent", zap.String("booking_id", b.ID), zap.Error(err))
			continue
		}

		if err := s.store.MarkReminderSent(ctx, b.ID, s.now()); err != nil {
			return sent, err
		}
		s.metrics.RemindersSent.WithLabelValues("sent").Inc()
		sent++
	}

	s.log.Info("reminders processed", zap.String("fecha", fecha), zap.Int("due", len(due)), zap.Int("sent", sent))
	return sent, nil
}
