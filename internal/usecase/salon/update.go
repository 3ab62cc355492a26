package salon

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	policy "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// UpdateSalon edits profile fields. Slug, owner and estado never change here.
type UpdateSalon struct {
	repo  salondomain.Repository
	media *media.Processor
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUpdateSalon(
	repo salondomain.Repository,
	media *media.Processor,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateSalon {
	return &UpdateSalon{repo: repo, media: media, audit: audit, log: log}
}

func (uc *UpdateSalon) Execute(
	ctx context.Context,
	actor policy.Actor,
	salonID string,
	in ProfileInput,
) (*models.Salon, error) {

	s, err := uc.repo.GetByID(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if policy.Authorize(actor, s.OwnerID) != policy.Allowed {
		return nil, salondomain.ErrForbidden
	}

	if err := applyProfile(ctx, uc.media, s, in); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateProfile(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   actor.UserID,
		Action:   "salon_updated",
		Entity:   "salon",
		EntityID: s.ID,
	})

	uc.log.Info("salon updated", zap.String("salon_id", s.ID), zap.String("actor", actor.UserID))
	return s, nil
}

// UploadSalonMedia stores one image file as the salon's logo or appends it to the gallery.
type UploadSalonMedia struct {
	repo  salondomain.Repository
	media *media.Processor
	audit *audit.Dispatcher
}

func NewUploadSalonMedia(
	repo salondomain.Repository,
	media *media.Processor,
	audit *audit.Dispatcher,
) *UploadSalonMedia {
	return &UploadSalonMedia{repo: repo, media: media, audit: audit}
}

type MediaKind string

const (
	MediaLogo    MediaKind = "logo"
	MediaGallery MediaKind = "gallery"
)

func (uc *UploadSalonMedia) Execute(
	ctx context.Context,
	actor policy.Actor,
	salonID string,
	kind MediaKind,
	file io.Reader,
) (*models.Salon, error) {

	if kind != MediaLogo && kind != MediaGallery {
		return nil, salondomain.ErrInvalidInput
	}
	if !uc.media.Enabled() {
		return nil, media.ErrUnavailable
	}

	s, err := uc.repo.GetByID(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if policy.Authorize(actor, s.OwnerID) != policy.Allowed {
		return nil, salondomain.ErrForbidden
	}

	url, err := uc.media.Upload(ctx, s.ID, file)
	if err != nil {
		return nil, err
	}

	if kind == MediaLogo {
		s.Logo = url
	} else {
		s.Imagenes = append(s.Imagenes, url)
	}
	if err := uc.repo.UpdateProfile(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   actor.UserID,
		Action:   "salon_media_uploaded",
		Entity:   "salon",
		EntityID: s.ID,
		Metadata: map[string]string{"kind": string(kind), "url": url},
	})
	return s, nil
}
