// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var seq atomic.Int64

func Config(t testing.TB) *config.Config {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.Defaults()
	cfg.JWTSecret = "test-secret"
	cfg.DBDriver = "sqlite"
	cfg.DBUrl = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))
	cfg.CheckEmailDomain = false
	return cfg
}

func New(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(Config(t))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func SeedUser(t testing.TB, gdb *gorm.DB, email, rol string) *models.User {
	t.Helper()
	u := &models.User{Nombre: email, Email: email, PasswordHash: "x", Rol: rol}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSalon(t testing.TB, gdb *gorm.DB, owner *models.User, slug, estado string) *models.Salon {
	t.Helper()
	s := &models.Salon{Nombre: slug, OwnerID: owner.ID, Slug: slug, Estado: estado}
	if err := gdb.Create(s).Error; err != nil {
		t.Fatalf("seed salon: %v", err)
	}
	return s
}
