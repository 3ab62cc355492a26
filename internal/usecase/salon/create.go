package salon

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	policy "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CreateSalon struct {
	repo  salondomain.Repository
	media *media.Processor
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateSalon(
	repo salondomain.Repository,
	media *media.Processor,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateSalon {
	return &CreateSalon{repo: repo, media: media, audit: audit, log: log}
}

// Execute registers actor's salon in the pending state. Inline images are
// transcoded before the insert and uploaded after it, so their object keys
// carry the salon id; a failed upload removes the row again.
func (uc *CreateSalon) Execute(
	ctx context.Context,
	actor policy.Actor,
	in ProfileInput,
) (*models.Salon, error) {

	if actor.IsPublic() {
		return nil, salondomain.ErrForbidden
	}
	if in.Nombre == nil || strings.TrimSpace(*in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre is required", salondomain.ErrInvalidInput)
	}

	logo, imagenes := in.Logo, in.Imagenes
	in.Logo, in.Imagenes = nil, nil

	s := &models.Salon{
		OwnerID: actor.UserID,
		Estado:  models.SalonPending,
	}
	if err := applyProfile(ctx, nil, s, in); err != nil {
		return nil, err
	}

	// bad images must fail before the row exists, or the owner is locked
	// out by already_has_salon on retry
	var (
		logoImg *media.Image
		gallery []media.Image
	)
	if logo != nil {
		img, err := uc.media.Prepare(*logo)
		if err != nil {
			return nil, err
		}
		logoImg = &img
	}
	if imagenes != nil {
		imgs, err := uc.media.PrepareAll(*imagenes)
		if err != nil {
			return nil, err
		}
		gallery = imgs
	}

	if err := uc.repo.Create(ctx, s, salondomain.Slugify(s.Nombre)); err != nil {
		return nil, err
	}

	if logoImg != nil || imagenes != nil {
		if err := uc.storeImages(ctx, s, logoImg, gallery, imagenes != nil); err != nil {
			if derr := uc.repo.Delete(ctx, s.ID); derr != nil {
				uc.log.Error("rollback of salon failed",
					zap.String("salon_id", s.ID),
					zap.Error(derr),
				)
			}
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   actor.UserID,
		Action:   "salon_created",
		Entity:   "salon",
		EntityID: s.ID,
		Metadata: map[string]string{"slug": s.Slug},
	})

	uc.log.Info("salon created",
		zap.String("salon_id", s.ID),
		zap.String("slug", s.Slug),
		zap.String("owner", actor.UserID),
	)

	return s, nil
}

func (uc *CreateSalon) storeImages(
	ctx context.Context,
	s *models.Salon,
	logo *media.Image,
	gallery []media.Image,
	hasGallery bool,
) error {
	if logo != nil {
		u, err := uc.media.Store(ctx, s.ID, *logo)
		if err != nil {
			return err
		}
		s.Logo = u
	}
	if hasGallery {
		urls, err := uc.media.StoreAll(ctx, s.ID, gallery)
		if err != nil {
			return err
		}
		s.Imagenes = urls
	}
	return uc.repo.UpdateProfile(ctx, s)
}
