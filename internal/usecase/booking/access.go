package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// authorize resolves the owner of b's salon and applies the access policy.
// A booking whose salon no longer exists is reachable by admins only.
func authorize(
	ctx context.Context,
	salons domain.SalonDirectory,
	actor domain.Actor,
	b *models.Booking,
) error {
	ownerID, err := salons.OwnerOf(ctx, b.SalonID)
	if err != nil && !errors.Is(err, domain.ErrSalonNotFound) {
		return err
	}
	if domain.Authorize(actor, ownerID) != domain.Allowed {
		return domain.ErrForbidden
	}
	return nil
}

// lockSlot takes the slot lock when locker is set; the returned func is always safe to call.
func lockSlot(
	ctx context.Context,
	locker domain.SlotLocker,
	slot domain.Slot,
	cfg Config,
) (func(), error) {
	if locker == nil {
		return func() {}, nil
	}
	return locker.Lock(ctx, slot.Key(), cfg.LockTTL)
}

func slotOf(b *models.Booking) domain.Slot {
	return domain.Slot{SalonID: b.SalonID, Fecha: b.Fecha, Hora: b.Hora}
}
