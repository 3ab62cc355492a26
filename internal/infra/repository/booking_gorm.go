package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return transient("create booking", err)
	}
	return nil
}

func (r *BookingGormRepository) SlotOccupied(
	ctx context.Context,
	slot domain.Slot,
	excludeID string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"salon_id = ? AND fecha = ? AND hora = ? AND estado <> ?",
			slot.SalonID, slot.Fecha, slot.Hora, string(domain.StatusCancelled),
		)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, transient("check slot", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Read / update / delete
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, transient("get booking", err)
	}
	return &b, nil
}

func (r *BookingGormRepository) Save(
	ctx context.Context,
	b *models.Booking,
) error {
	res := r.db.WithContext(ctx).
		Model(b).
		Select(
			"salon_id", "nombre", "email", "telefono", "servicio",
			"fecha", "hora", "mensaje", "estado", "updated_at",
		).
		Updates(b)
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return domain.ErrSlotTaken
		}
		return transient("save booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return transient("delete booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListPage(
	ctx context.Context,
	scope domain.ListScope,
	after *domain.Cursor,
	limit int,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if scope.SalonID != "" {
		q = q.Where("salon_id = ?", scope.SalonID)
	}
	if scope.OwnerID != "" {
		owned := r.db.Model(&models.Salon{}).Select("id").Where("owner_id = ?", scope.OwnerID)
		q = q.Where("salon_id IN (?)", owned)
	}
	if len(scope.Statuses) > 0 {
		estados := make([]string, 0, len(scope.Statuses))
		for _, s := range scope.Statuses {
			estados = append(estados, string(s))
		}
		q = q.Where("estado IN ?", estados)
	}
	if scope.WithSalon {
		q = q.Preload("Salon", selectSalonSummary)
	}
	if after != nil {
		q = q.Where(
			"(fecha > ?) OR (fecha = ? AND hora > ?) OR (fecha = ? AND hora = ? AND id > ?)",
			after.Fecha,
			after.Fecha, after.Hora,
			after.Fecha, after.Hora, after.ID,
		)
	}

	var out []models.Booking
	if err := q.
		Order("fecha ASC").
		Order("hora ASC").
		Order("id ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, transient("list bookings", err)
	}
	return out, nil
}

func selectSalonSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "nombre", "direccion", "telefono")
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

// ListDueReminders returns active bookings on fecha that were not reminded yet.
func (r *BookingGormRepository) ListDueReminders(
	ctx context.Context,
	fecha string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"fecha = ? AND estado IN ? AND reminder_sent_at IS NULL",
			fecha,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		).
		Order("hora ASC").
		Find(&out).Error; err != nil {
		return nil, transient("list due reminders", err)
	}
	return out, nil
}

func (r *BookingGormRepository) MarkReminderSent(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("reminder_sent_at", at).Error; err != nil {
		return transient("mark reminder", err)
	}
	return nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *BookingGormRepository) CountByEstado(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Estado string
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error; err != nil {
		return nil, transient("count bookings", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Estado] = row.Total
	}
	return out, nil
}

// Compile-time check
var _ domain.Store = (*BookingGormRepository)(nil)
