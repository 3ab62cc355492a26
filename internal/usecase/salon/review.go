package salon

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	policy "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ReviewSalon is the admin approval step: pendiente → aprobado | rechazado.
type ReviewSalon struct {
	repo  salondomain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewReviewSalon(
	repo salondomain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ReviewSalon {
	return &ReviewSalon{repo: repo, audit: audit, log: log}
}

func (uc *ReviewSalon) Execute(
	ctx context.Context,
	actor policy.Actor,
	salonID string,
	rawEstado string,
) (*models.Salon, error) {

	if !actor.IsAdmin() {
		return nil, salondomain.ErrForbidden
	}

	next, err := salondomain.ParseStatus(rawEstado)
	if err != nil {
		return nil, err
	}

	s, err := uc.repo.GetByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	if err := salondomain.CanTransition(s.Estado, next); err != nil {
		return nil, err
	}
	if s.Estado == next {
		return s, nil
	}

	prev := s.Estado
	if err := uc.repo.UpdateEstado(ctx, s, next); err != nil {
		return nil, err
	}
	s.Estado = next

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   actor.UserID,
		Action:   "salon_reviewed",
		Entity:   "salon",
		EntityID: s.ID,
		Metadata: map[string]string{"from": prev, "to": next},
	})

	uc.log.Info("salon reviewed",
		zap.String("salon_id", s.ID),
		zap.String("estado", next),
		zap.String("admin", actor.UserID),
	)
	return s, nil
}
