package booking

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// UpdateBookingInput carries the fields to change; nil means keep.
type UpdateBookingInput struct {
	Nombre   *string
	Email    *string
	Telefono *string
	Servicio *string
	Fecha    *string
	Hora     *string
	Mensaje  *string
}

type UpdateBooking struct {
	store   domain.Store
	salons  domain.SalonDirectory
	locker  domain.SlotLocker
	cfg     Config
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewUpdateBooking(
	store domain.Store,
	salons domain.SalonDirectory,
	locker domain.SlotLocker,
	cfg Config,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	log *zap.Logger,
) *UpdateBooking {
	return &UpdateBooking{
		store:   store,
		salons:  salons,
		locker:  locker,
		cfg:     cfg,
		audit:   audit,
		metrics: metrics,
		log:     log,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := authorize(ctx, uc.salons, actor, b); err != nil {
		return nil, err
	}

	prevSlot := slotOf(b)
	if err := apply(b, in); err != nil {
		return nil, err
	}
	nextSlot := slotOf(b)

	if nextSlot != prevSlot && domain.Status(b.Estado).OccupiesSlot() {
		unlock, err := lockSlot(ctx, uc.locker, nextSlot, uc.cfg)
		if err != nil {
			return nil, err
		}
		defer unlock()

		occupied, err := uc.store.SlotOccupied(ctx, nextSlot, b.ID)
		if err != nil {
			return nil, err
		}
		if occupied {
			uc.metrics.SlotConflicts.Inc()
			return nil, domain.ErrSlotTaken
		}
	}

	if err := uc.store.Save(ctx, b); err != nil {
		if domain.KindOf(err) == domain.KindSlotTaken {
			uc.metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		UserID:   actor.UserID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: b.ID,
	})

	uc.log.Info("booking updated",
		zap.String("booking_id", b.ID),
		zap.String("actor", actor.UserID),
	)

	return b, nil
}

func apply(b *models.Booking, in UpdateBookingInput) error {
	text := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"nombre", in.Nombre, &b.Nombre},
		{"email", in.Email, &b.Email},
		{"telefono", in.Telefono, &b.Telefono},
		{"servicio", in.Servicio, &b.Servicio},
	}
	for _, f := range text {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if v == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, f.name)
		}
		*f.dst = v
	}
	b.Email = strings.ToLower(b.Email)

	if in.Mensaje != nil {
		b.Mensaje = strings.TrimSpace(*in.Mensaje)
	}

	if in.Fecha != nil {
		fecha, err := domain.NormalizeDate(*in.Fecha)
		if err != nil {
			return fmt.Errorf("%w: fecha must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		b.Fecha = fecha
	}
	if in.Hora != nil {
		hora, err := domain.NormalizeTime(*in.Hora)
		if err != nil {
			return fmt.Errorf("%w: hora must be HH:MM", domain.ErrInvalidInput)
		}
		b.Hora = hora
	}
	return nil
}
