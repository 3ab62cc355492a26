package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	ErrUserNotFound = httperr.ErrBusiness("user_not_found")
	ErrEmailTaken   = httperr.ErrBusiness("email_taken")
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return transient("create user", err)
	}
	return nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *UserGormRepository) first(q *gorm.DB) (*models.User, error) {
	var u models.User
	if err := q.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, transient("get user", err)
	}
	return &u, nil
}

func (r *UserGormRepository) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, transient("list users", err)
	}
	return out, nil
}

func (r *UserGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, transient("count users", err)
	}
	return n, nil
}

// Delete removes the user together with their salon and its bookings.
func (r *UserGormRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Salon{}).Select("id").Where("owner_id = ?", id)
		if err := tx.Where("salon_id IN (?)", owned).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Salon{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		return transient("delete user", err)
	}
	return nil
}
