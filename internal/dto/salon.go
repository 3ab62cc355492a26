package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type SalonRequest struct {
	Nombre      *string `json:"nombre"`
	Slogan      *string `json:"slogan"`
	Descripcion *string `json:"descripcion"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Direccion   *string `json:"direccion"`
	Horarios    *string `json:"horarios"`
	Whatsapp    *string `json:"whatsapp"`
	Template    *string `json:"template"`
	Logo        *string `json:"logo"`

	Imagenes  *[]string              `json:"imagenes"`
	Servicios *[]models.SalonService `json:"servicios"`
	Equipo    *[]models.TeamMember   `json:"equipo"`
}

type SalonEstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type SalonResponse struct {
	Message string        `json:"message"`
	Salon   *models.Salon `json:"salon"`
}
