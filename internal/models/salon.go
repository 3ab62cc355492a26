package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SalonPending  = "pendiente"
	SalonApproved = "aprobado"
	SalonRejected = "rechazado"
)

type SalonService struct {
	Nombre      string `json:"nombre"`
	Precio      string `json:"precio"`
	Duracion    string `json:"duracion"`
	Descripcion string `json:"descripcion"`
}

type TeamMember struct {
	Nombre string `json:"nombre"`
	Cargo  string `json:"cargo"`
	Foto   string `json:"foto"`
	Bio    string `json:"bio"`
}

type Salon struct {
	ID          string `gorm:"primaryKey;size:36" json:"_id"`
	Nombre      string `gorm:"size:120;not null" json:"nombre"`
	Slogan      string `gorm:"size:255" json:"slogan"`
	Descripcion string `gorm:"type:text" json:"descripcion"`
	Telefono    string `gorm:"size:40" json:"telefono"`
	Email       string `gorm:"size:160" json:"email"`
	Direccion   string `gorm:"size:255" json:"direccion"`
	Horarios    string `gorm:"size:255" json:"horarios"`
	Whatsapp    string `gorm:"size:40" json:"whatsapp"`
	Template    string `gorm:"size:60" json:"template"`
	Logo        string `gorm:"type:text" json:"logo"`

	Imagenes  datatypes.JSONSlice[string]       `json:"imagenes"`
	Servicios datatypes.JSONSlice[SalonService] `json:"servicios"`
	Equipo    datatypes.JSONSlice[TeamMember]   `json:"equipo"`

	OwnerID string `gorm:"size:36;not null;uniqueIndex" json:"owner"`
	Owner   *User  `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"ownerInfo,omitempty"`

	Slug   string `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Estado string `gorm:"size:20;default:'pendiente';not null;index" json:"estado"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
