package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Telefono string `json:"telefono"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserSummary struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol}
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type Stats struct {
	TotalUsers       int64            `json:"totalUsers"`
	TotalSalons      int64            `json:"totalSalons"`
	TotalBookings    int64            `json:"totalBookings"`
	SalonsByEstado   map[string]int64 `json:"salonsByEstado"`
	BookingsByEstado map[string]int64 `json:"bookingsByEstado"`
}

type AdminMe struct {
	*models.User
	Stats Stats `json:"stats"`
}
