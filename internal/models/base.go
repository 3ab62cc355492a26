package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (s *Salon) BeforeCreate(*gorm.DB) error {
	newID(&s.ID)
	return nil
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	newID(&b.ID)
	return nil
}

func (a *AuditLog) BeforeCreate(*gorm.DB) error {
	newID(&a.ID)
	return nil
}
