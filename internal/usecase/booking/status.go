package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateBookingStatus struct {
	store   domain.Store
	salons  domain.SalonDirectory
	locker  domain.SlotLocker
	policy  domain.TransitionPolicy
	cfg     Config
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewUpdateBookingStatus(
	store domain.Store,
	salons domain.SalonDirectory,
	locker domain.SlotLocker,
	policy domain.TransitionPolicy,
	cfg Config,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	log *zap.Logger,
) *UpdateBookingStatus {
	if policy == nil {
		policy = domain.PermissivePolicy{}
	}
	return &UpdateBookingStatus{
		store:   store,
		salons:  salons,
		locker:  locker,
		policy:  policy,
		cfg:     cfg,
		audit:   audit,
		metrics: metrics,
		log:     log,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
	rawStatus string,
) (*models.Booking, error) {

	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := authorize(ctx, uc.salons, actor, b); err != nil {
		return nil, err
	}

	prev := domain.Status(b.Estado)
	if err := uc.policy.CanTransition(prev, next); err != nil {
		return nil, err
	}
	if prev == next {
		return b, nil
	}

	// --------------------------------------------------
	// Re-activating a cancelled booking claims its slot
	// again, so it goes through the same guard as create
	// --------------------------------------------------
	if next.OccupiesSlot() && !prev.OccupiesSlot() {
		slot := slotOf(b)

		unlock, err := lockSlot(ctx, uc.locker, slot, uc.cfg)
		if err != nil {
			return nil, err
		}
		defer unlock()

		occupied, err := uc.store.SlotOccupied(ctx, slot, b.ID)
		if err != nil {
			return nil, err
		}
		if occupied {
			uc.metrics.SlotConflicts.Inc()
			return nil, domain.ErrSlotTaken
		}
	}

	b.Estado = string(next)
	if err := uc.store.Save(ctx, b); err != nil {
		if domain.KindOf(err) == domain.KindSlotTaken {
			uc.metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	uc.metrics.BookingStatusChanges.WithLabelValues(string(next)).Inc()

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		UserID:   actor.UserID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"from": string(prev), "to": string(next)},
	})

	uc.log.Info("booking status changed",
		zap.String("booking_id", b.ID),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
		zap.String("actor", actor.UserID),
	)

	return b, nil
}
