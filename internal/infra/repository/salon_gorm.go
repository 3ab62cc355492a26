package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const maxSlugAttempts = 50

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

// --------------------------------------------------
// Directory (consumed by the booking lifecycle)
// --------------------------------------------------

func (r *SalonGormRepository) Exists(ctx context.Context, salonID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", salonID).
		Count(&count).Error; err != nil {
		return false, transient("salon exists", err)
	}
	return count > 0, nil
}

func (r *SalonGormRepository) IsApproved(ctx context.Context, salonID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ? AND estado = ?", salonID, models.SalonApproved).
		Count(&count).Error; err != nil {
		return false, transient("salon approved", err)
	}
	return count > 0, nil
}

func (r *SalonGormRepository) OwnerOf(ctx context.Context, salonID string) (string, error) {
	var s models.Salon
	if err := r.db.WithContext(ctx).
		Select("id", "owner_id").
		First(&s, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrSalonNotFound
		}
		return "", transient("salon owner", err)
	}
	return s.OwnerID, nil
}

// --------------------------------------------------
// Management
// --------------------------------------------------

// Create inserts s under the first free slug derived from base. The unique
// indexes on slug and owner_id are the final arbiters under concurrency.
func (r *SalonGormRepository) Create(ctx context.Context, s *models.Salon, base string) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		has, err := r.ownerHasSalon(ctx, s.OwnerID)
		if err != nil {
			return err
		}
		if has {
			return salondomain.ErrAlreadyHasSalon
		}

		candidate := salondomain.Candidate(base, attempt)

		var taken int64
		if err := r.db.WithContext(ctx).
			Model(&models.Salon{}).
			Where("slug = ?", candidate).
			Count(&taken).Error; err != nil {
			return transient("check slug", err)
		}
		if taken > 0 {
			continue
		}

		s.Slug = candidate
		err = r.db.WithContext(ctx).Omit("Owner").Create(s).Error
		if err == nil {
			return nil
		}
		if !httperr.IsUniqueViolation(err) {
			return transient("create salon", err)
		}
		// lost a race on either slug or owner; the next pass tells which
		s.ID = ""
	}
	return fmt.Errorf("%w: no free slug for %q", salondomain.ErrInvalidInput, base)
}

func (r *SalonGormRepository) ownerHasSalon(ctx context.Context, ownerID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return false, transient("owner salon", err)
	}
	return count > 0, nil
}

func (r *SalonGormRepository) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	return r.first(ctx, r.db.WithContext(ctx).Preload("Owner", selectOwnerSummary).Where("id = ?", id))
}

func (r *SalonGormRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Salon, error) {
	return r.first(ctx, r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *SalonGormRepository) GetApprovedBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	return r.first(ctx, r.db.WithContext(ctx).
		Preload("Owner", selectOwnerSummary).
		Where("slug = ? AND estado = ?", slug, models.SalonApproved))
}

func (r *SalonGormRepository) first(_ context.Context, q *gorm.DB) (*models.Salon, error) {
	var s models.Salon
	if err := q.First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salondomain.ErrNotFound
		}
		return nil, transient("get salon", err)
	}
	return &s, nil
}

// List returns salons newest first; onlyApproved hides pending and rejected.
func (r *SalonGormRepository) List(ctx context.Context, onlyApproved bool) ([]models.Salon, error) {
	q := r.db.WithContext(ctx).Preload("Owner", selectOwnerSummary)
	if onlyApproved {
		q = q.Where("estado = ?", models.SalonApproved)
	}

	var out []models.Salon
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, transient("list salons", err)
	}
	return out, nil
}

func (r *SalonGormRepository) UpdateEstado(ctx context.Context, s *models.Salon, estado string) error {
	if err := r.db.WithContext(ctx).
		Model(s).
		Update("estado", estado).Error; err != nil {
		return transient("update salon estado", err)
	}
	return nil
}

// UpdateProfile writes the editable profile columns of s.
func (r *SalonGormRepository) UpdateProfile(ctx context.Context, s *models.Salon) error {
	if err := r.db.WithContext(ctx).
		Model(s).
		Select(
			"nombre", "slogan", "descripcion", "telefono", "email", "direccion",
			"horarios", "whatsapp", "template", "logo", "imagenes", "servicios", "equipo",
			"updated_at",
		).
		Updates(s).Error; err != nil {
		return transient("update salon", err)
	}
	return nil
}

// Delete removes the salon and, in the same transaction, its bookings.
func (r *SalonGormRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Salon{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return salondomain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, salondomain.ErrNotFound) {
			return err
		}
		return transient("delete salon", err)
	}
	return nil
}

func (r *SalonGormRepository) CountByEstado(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Estado string
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error; err != nil {
		return nil, transient("count salons", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Estado] = row.Total
	}
	return out, nil
}

func selectOwnerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "nombre", "email")
}

// Compile-time check
var _ domain.SalonDirectory = (*SalonGormRepository)(nil)
var _ salondomain.Repository = (*SalonGormRepository)(nil)
