package models

import "time"

const (
	RoleAdmin = "admin"
	RoleOwner = "dueño"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"_id"`
	Nombre       string `gorm:"size:120;not null" json:"nombre"`
	Email        string `gorm:"size:160;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Telefono     string `gorm:"size:40" json:"telefono"`
	Rol          string `gorm:"size:20;default:'dueño';not null" json:"rol"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
