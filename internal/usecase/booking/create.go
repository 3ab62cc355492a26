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

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID string

	Nombre   string
	Email    string
	Telefono string
	Servicio string

	Fecha   string
	Hora    string
	Mensaje string
}

func (in CreateBookingInput) normalize() (CreateBookingInput, error) {
	out := CreateBookingInput{
		SalonID:  strings.TrimSpace(in.SalonID),
		Nombre:   strings.TrimSpace(in.Nombre),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Telefono: strings.TrimSpace(in.Telefono),
		Servicio: strings.TrimSpace(in.Servicio),
		Mensaje:  strings.TrimSpace(in.Mensaje),
	}

	required := []struct{ name, value string }{
		{"salonId", out.SalonID},
		{"nombre", out.Nombre},
		{"email", out.Email},
		{"telefono", out.Telefono},
		{"servicio", out.Servicio},
	}
	for _, f := range required {
		if f.value == "" {
			return out, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, f.name)
		}
	}

	var err error
	if out.Fecha, err = domain.NormalizeDate(in.Fecha); err != nil {
		return out, fmt.Errorf("%w: fecha must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if out.Hora, err = domain.NormalizeTime(in.Hora); err != nil {
		return out, fmt.Errorf("%w: hora must be HH:MM", domain.ErrInvalidInput)
	}
	return out, nil
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	store   domain.Store
	salons  domain.SalonDirectory
	locker  domain.SlotLocker
	cfg     Config
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewCreateBooking(
	store domain.Store,
	salons domain.SalonDirectory,
	locker domain.SlotLocker,
	cfg Config,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		store:   store,
		salons:  salons,
		locker:  locker,
		cfg:     cfg,
		audit:   audit,
		metrics: metrics,
		log:     log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Salon
	// --------------------------------------------------
	exists, err := uc.salons.Exists(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSalonNotFound
	}

	if uc.cfg.RequireApprovedSalon {
		approved, err := uc.salons.IsApproved(ctx, in.SalonID)
		if err != nil {
			return nil, err
		}
		if !approved {
			return nil, domain.ErrSalonNotFound
		}
	}

	// --------------------------------------------------
	// Slot: check + insert under the slot lock; the
	// active-slot index rejects anything that slips by
	// --------------------------------------------------
	slot := domain.Slot{SalonID: in.SalonID, Fecha: in.Fecha, Hora: in.Hora}

	unlock, err := lockSlot(ctx, uc.locker, slot, uc.cfg)
	if err != nil {
		return nil, err
	}
	defer unlock()

	occupied, err := uc.store.SlotOccupied(ctx, slot, "")
	if err != nil {
		return nil, err
	}
	if occupied {
		uc.conflict(slot)
		return nil, domain.ErrSlotTaken
	}

	b := &models.Booking{
		SalonID:  in.SalonID,
		Nombre:   in.Nombre,
		Email:    in.Email,
		Telefono: in.Telefono,
		Servicio: in.Servicio,
		Fecha:    in.Fecha,
		Hora:     in.Hora,
		Mensaje:  in.Mensaje,
		Estado:   string(domain.InitialStatus()),
	}

	if err := uc.store.Create(ctx, b); err != nil {
		if domain.KindOf(err) == domain.KindSlotTaken {
			uc.conflict(slot)
		}
		return nil, err
	}

	// --------------------------------------------------
	// Side effects
	// --------------------------------------------------
	uc.metrics.BookingsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"fecha": b.Fecha, "hora": b.Hora},
	})

	uc.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("salon_id", b.SalonID),
		zap.String("fecha", b.Fecha),
		zap.String("hora", b.Hora),
	)

	return b, nil
}

func (uc *CreateBooking) conflict(slot domain.Slot) {
	uc.metrics.SlotConflicts.Inc()
	uc.audit.Dispatch(audit.Event{
		SalonID:  slot.SalonID,
		Action:   "booking_conflict",
		Entity:   "booking",
		Metadata: map[string]string{"fecha": slot.Fecha, "hora": slot.Hora},
	})
	uc.log.Warn("slot taken",
		zap.String("salon_id", slot.SalonID),
		zap.String("fecha", slot.Fecha),
		zap.String("hora", slot.Hora),
	)
}
