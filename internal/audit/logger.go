package audit

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var meta datatypes.JSON
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = b
		}
	}

	entry := models.AuditLog{
		SalonID:  optional(ev.SalonID),
		UserID:   optional(ev.UserID),
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: optional(ev.EntityID),
		Metadata: meta,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}

// List returns the newest entries for a salon, or for every salon when salonID is empty.
func (l *Logger) List(ctx context.Context, salonID string, limit int) ([]models.AuditLog, error) {
	q := l.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if salonID != "" {
		q = q.Where("salon_id = ?", salonID)
	}

	var out []models.AuditLog
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
