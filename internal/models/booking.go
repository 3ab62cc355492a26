package models

import "time"

type Booking struct {
	ID      string `gorm:"primaryKey;size:36" json:"_id"`
	SalonID string `gorm:"size:36;not null;index" json:"salon"`
	Salon   *Salon `gorm:"foreignKey:SalonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"salonInfo,omitempty"`

	Nombre   string `gorm:"size:120;not null" json:"nombre"`
	Email    string `gorm:"size:160;not null" json:"email"`
	Telefono string `gorm:"size:40;not null" json:"telefono"`
	Servicio string `gorm:"size:120;not null" json:"servicio"`

	// YYYY-MM-DD and HH:MM; lexical order equals chronological order.
	Fecha string `gorm:"size:10;not null;index" json:"fecha"`
	Hora  string `gorm:"size:5;not null" json:"hora"`

	Mensaje string `gorm:"type:text" json:"mensaje"`
	Estado  string `gorm:"size:20;default:'pendiente';not null;index" json:"estado"`

	ReminderSentAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
