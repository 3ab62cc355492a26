package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetBooking struct {
	store  domain.Store
	salons domain.SalonDirectory
}

func NewGetBooking(store domain.Store, salons domain.SalonDirectory) *GetBooking {
	return &GetBooking{store: store, salons: salons}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
) (*models.Booking, error) {
	b, err := uc.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorize(ctx, uc.salons, actor, b); err != nil {
		return nil, err
	}
	return b, nil
}
