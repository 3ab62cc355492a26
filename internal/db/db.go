package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// activeSlotIndex is the store-side guarantee that a (salon, fecha, hora)
// slot holds at most one booking that is not cancelled.
const activeSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
	ON bookings (salon_id, fecha, hora)
	WHERE estado <> 'cancelada'`

func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBUrl)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBUrl)
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db: sql.DB: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// one writer; keeps in-memory databases on a single connection
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("db: enable foreign keys: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}

	if err := db.Exec(activeSlotIndex).Error; err != nil {
		return fmt.Errorf("db: active slot index: %w", err)
	}
	return nil
}

// SeedAdmin makes sure the configured bootstrap admin exists. It is a no-op
// when ADMIN_EMAIL or ADMIN_PASSWORD is unset.
func SeedAdmin(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Rol != models.RoleAdmin {
			if err := db.Model(&existing).Update("rol", models.RoleAdmin).Error; err != nil {
				return fmt.Errorf("db: promote admin: %w", err)
			}
			log.Info("bootstrap admin promoted", zap.String("email", email))
		}
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("db: find admin: %w", err)
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Nombre:       cfg.AdminName,
		Email:        email,
		PasswordHash: hashed,
		Rol:          models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("db: create admin: %w", err)
	}

	log.Info("bootstrap admin created", zap.String("email", email))
	return nil
}
