package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

type DeleteBooking struct {
	store   domain.Store
	salons  domain.SalonDirectory
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewDeleteBooking(
	store domain.Store,
	salons domain.SalonDirectory,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	log *zap.Logger,
) *DeleteBooking {
	return &DeleteBooking{
		store:   store,
		salons:  salons,
		audit:   audit,
		metrics: metrics,
		log:     log,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
) error {
	b, err := uc.store.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := authorize(ctx, uc.salons, actor, b); err != nil {
		return err
	}

	if err := uc.store.Delete(ctx, b.ID); err != nil {
		return err
	}

	uc.metrics.BookingsDeleted.Inc()

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		UserID:   actor.UserID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"fecha": b.Fecha, "hora": b.Hora, "estado": b.Estado},
	})

	uc.log.Info("booking deleted",
		zap.String("booking_id", b.ID),
		zap.String("actor", actor.UserID),
	)
	return nil
}
