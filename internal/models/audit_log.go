package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	SalonID *string `gorm:"size:36;index" json:"salon_id"`
	UserID  *string `gorm:"size:36" json:"user_id"`
	Action  string  `gorm:"size:50;not null" json:"action"`

	Entity   string         `gorm:"size:50" json:"entity"`
	EntityID *string        `gorm:"size:36" json:"entity_id"`
	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
