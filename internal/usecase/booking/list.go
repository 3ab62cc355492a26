package booking

import (
	"context"
	"iter"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListBookings struct {
	store domain.Store
	cfg   Config
}

func NewListBookings(store domain.Store, cfg Config) *ListBookings {
	return &ListBookings{store: store, cfg: cfg}
}

// Execute resolves what actor may see and returns a sequence over it ordered
// by (fecha, hora). Nothing is read until the sequence is ranged over, and
// every range starts again from the first booking.
func (uc *ListBookings) Execute(
	ctx context.Context,
	actor domain.Actor,
	filter domain.ListFilter,
) (iter.Seq2[models.Booking, error], error) {

	scope, err := domain.ListScopeFor(actor, filter)
	if err != nil {
		return nil, err
	}

	size := uc.cfg.pageSize()

	return func(yield func(models.Booking, error) bool) {
		var after *domain.Cursor
		for {
			page, err := uc.store.ListPage(ctx, scope, after, size)
			if err != nil {
				yield(models.Booking{}, err)
				return
			}

			for i := range page {
				if !yield(page[i], nil) {
					return
				}
			}

			if len(page) < size {
				return
			}
			after = domain.CursorAfter(&page[len(page)-1])
		}
	}, nil
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[models.Booking, error]) ([]models.Booking, error) {
	out := []models.Booking{}
	for b, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
