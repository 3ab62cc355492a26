package dto

import (
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CreateBookingRequest accepts the salon reference as either salonId or salon.
type CreateBookingRequest struct {
	SalonID  string `json:"salonId"`
	Salon    string `json:"salon"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Servicio string `json:"servicio"`
	Fecha    string `json:"fecha"`
	Hora     string `json:"hora"`
	Mensaje  string `json:"mensaje"`
}

func (r CreateBookingRequest) SalonRef() string {
	if s := strings.TrimSpace(r.SalonID); s != "" {
		return s
	}
	return strings.TrimSpace(r.Salon)
}

type UpdateBookingRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
	Servicio *string `json:"servicio"`
	Fecha    *string `json:"fecha"`
	Hora     *string `json:"hora"`
	Mensaje  *string `json:"mensaje"`
}

// BookingStatusRequest takes {"status": ...} or {"estado": ...}.
type BookingStatusRequest struct {
	Status string `json:"status"`
	Estado string `json:"estado"`
}

func (r BookingStatusRequest) Value() string {
	if r.Status != "" {
		return r.Status
	}
	return r.Estado
}

type BookingResponse struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}
