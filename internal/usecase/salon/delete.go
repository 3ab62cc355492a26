package salon

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	policy "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
)

type DeleteSalon struct {
	repo  salondomain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewDeleteSalon(
	repo salondomain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *DeleteSalon {
	return &DeleteSalon{repo: repo, audit: audit, log: log}
}

func (uc *DeleteSalon) Execute(
	ctx context.Context,
	actor policy.Actor,
	salonID string,
) error {
	s, err := uc.repo.GetByID(ctx, salonID)
	if err != nil {
		return err
	}
	if policy.Authorize(actor, s.OwnerID) != policy.Allowed {
		return salondomain.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, s.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   actor.UserID,
		Action:   "salon_deleted",
		Entity:   "salon",
		EntityID: s.ID,
		Metadata: map[string]string{"slug": s.Slug},
	})

	uc.log.Info("salon deleted", zap.String("salon_id", s.ID), zap.String("actor", actor.UserID))
	return nil
}
