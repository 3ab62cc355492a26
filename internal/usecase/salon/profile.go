package salon

import (
	"context"
	"fmt"
	"strings"

	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ProfileInput holds the editable salon fields; nil means keep.
type ProfileInput struct {
	Nombre      *string
	Slogan      *string
	Descripcion *string
	Telefono    *string
	Email       *string
	Direccion   *string
	Horarios    *string
	Whatsapp    *string
	Template    *string
	Logo        *string

	Imagenes  *[]string
	Servicios *[]models.SalonService
	Equipo    *[]models.TeamMember
}

// applyProfile copies in onto s, moving inline images to object storage.
func applyProfile(
	ctx context.Context,
	media *media.Processor,
	s *models.Salon,
	in ProfileInput,
) error {
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return fmt.Errorf("%w: nombre cannot be empty", salondomain.ErrInvalidInput)
		}
		s.Nombre = nombre
	}

	text := []struct {
		src *string
		dst *string
	}{
		{in.Slogan, &s.Slogan},
		{in.Descripcion, &s.Descripcion},
		{in.Telefono, &s.Telefono},
		{in.Email, &s.Email},
		{in.Direccion, &s.Direccion},
		{in.Horarios, &s.Horarios},
		{in.Whatsapp, &s.Whatsapp},
		{in.Template, &s.Template},
	}
	for _, f := range text {
		if f.src != nil {
			*f.dst = strings.TrimSpace(*f.src)
		}
	}

	if in.Logo != nil {
		logo, err := media.Normalize(ctx, s.ID, *in.Logo)
		if err != nil {
			return err
		}
		s.Logo = logo
	}
	if in.Imagenes != nil {
		imagenes, err := media.NormalizeAll(ctx, s.ID, *in.Imagenes)
		if err != nil {
			return err
		}
		s.Imagenes = imagenes
	}
	if in.Servicios != nil {
		s.Servicios = *in.Servicios
	}
	if in.Equipo != nil {
		s.Equipo = *in.Equipo
	}
	return nil
}
