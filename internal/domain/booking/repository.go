package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListFilter struct {
	SalonID string
	Status  Status
}

// Cursor is the keyset position after the last booking of a page.
type Cursor struct {
	Fecha string
	Hora  string
	ID    string
}

func CursorAfter(b *models.Booking) *Cursor {
	return &Cursor{Fecha: b.Fecha, Hora: b.Hora, ID: b.ID}
}

// Store is the persistent booking collection.
type Store interface {
	// Create inserts b. A second slot-occupying booking on the same
	// (salon, fecha, hora) must be rejected with ErrSlotTaken.
	Create(ctx context.Context, b *models.Booking) error

	SlotOccupied(ctx context.Context, slot Slot, excludeID string) (bool, error)

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// Save persists every column of b, subject to the same slot rule as Create.
	Save(ctx context.Context, b *models.Booking) error

	Delete(ctx context.Context, id string) error

	// ListPage returns up to limit bookings in scope ordered by (fecha, hora, id),
	// strictly after the cursor when one is given.
	ListPage(ctx context.Context, scope ListScope, after *Cursor, limit int) ([]models.Booking, error)
}

// SalonDirectory is the read-only view of salons the lifecycle depends on.
type SalonDirectory interface {
	Exists(ctx context.Context, salonID string) (bool, error)
	IsApproved(ctx context.Context, salonID string) (bool, error)
	OwnerOf(ctx context.Context, salonID string) (string, error)
}

// SlotLocker serialises work on one slot across goroutines (and processes,
// for distributed implementations).
type SlotLocker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (unlock func(), err error)
}
