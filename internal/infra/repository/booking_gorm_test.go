package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func newBooking(salonID, fecha, hora string) *models.Booking {
	return &models.Booking{
		SalonID:  salonID,
		Nombre:   "Ana",
		Email:    "ana@example.com",
		Telefono: "3001234567",
		Servicio: "Corte",
		Fecha:    fecha,
		Hora:     hora,
		Estado:   string(domain.StatusPending),
	}
}

func TestBookingRepository_ActiveSlotIsUnique(t *testing.T) {
	gdb := dbtest.New(t)
	owner := dbtest.SeedUser(t, gdb, "owner@example.com", models.RoleOwner)
	salon := dbtest.SeedSalon(t, gdb, owner, "bella", models.SalonApproved)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	first := newBooking(salon.ID, "2024-06-01", "10:00")
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, newBooking(salon.ID, "2024-06-01", "10:00"))
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	slot := domain.Slot{SalonID: salon.ID, Fecha: "2024-06-01", Hora: "10:00"}
	occupied, err := repo.SlotOccupied(ctx, slot, "")
	require.NoError(t, err)
	assert.True(t, occupied)

	occupied, err = repo.SlotOccupied(ctx, slot, first.ID)
	require.NoError(t, err)
	assert.False(t, occupied)

	first.Estado = string(domain.StatusCancelled)
	require.NoError(t, repo.Save(ctx, first))

	again := newBooking(salon.ID, "2024-06-01", "10:00")
	require.NoError(t, repo.Create(ctx, again))

	// re-activating the cancelled one would collide with the new booking
	first.Estado = string(domain.StatusConfirmed)
	assert.ErrorIs(t, repo.Save(ctx, first), domain.ErrSlotTaken)
}

func TestBookingRepository_GetSaveDelete(t *testing.T) {
	gdb := dbtest.New(t)
	owner := dbtest.SeedUser(t, gdb, "owner@example.com", models.RoleOwner)
	salon := dbtest.SeedSalon(t, gdb, owner, "bella", models.SalonApproved)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	b := newBooking(salon.ID, "2024-06-01", "10:00")
	require.NoError(t, repo.Create(ctx, b))
	require.NotEmpty(t, b.ID)

	b.Mensaje = ""
	b.Estado = string(domain.StatusCompleted)
	require.NoError(t, repo.Save(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), got.Estado)

	ghost := newBooking(salon.ID, "2024-06-02", "10:00")
	ghost.ID = "ghost"
	assert.ErrorIs(t, repo.Save(ctx, ghost), domain.ErrBookingNotFound)

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), domain.ErrBookingNotFound)
}

func TestBookingRepository_ListPageScopesAndOrder(t *testing.T) {
	gdb := dbtest.New(t)
	ownerA := dbtest.SeedUser(t, gdb, "a@example.com", models.RoleOwner)
	ownerB := dbtest.SeedUser(t, gdb, "b@example.com", models.RoleOwner)
	salonA := dbtest.SeedSalon(t, gdb, ownerA, "salon-a", models.SalonApproved)
	salonB := dbtest.SeedSalon(t, gdb, ownerB, "salon-b", models.SalonApproved)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	for _, b := range []*models.Booking{
		newBooking(salonA.ID, "2024-06-02", "09:00"),
		newBooking(salonA.ID, "2024-06-01", "15:00"),
		newBooking(salonA.ID, "2024-06-01", "09:30"),
		newBooking(salonB.ID, "2024-06-01", "08:00"),
	} {
		require.NoError(t, repo.Create(ctx, b))
	}

	page, err := repo.ListPage(ctx, domain.ListScope{OwnerID: ownerA.ID}, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "09:30", page[0].Hora)
	assert.Equal(t, "15:00", page[1].Hora)

	rest, err := repo.ListPage(ctx, domain.ListScope{OwnerID: ownerA.ID}, domain.CursorAfter(&page[1]), 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "2024-06-02", rest[0].Fecha)

	all, err := repo.ListPage(ctx, domain.ListScope{}, nil, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, salonB.ID, all[0].SalonID)

	// owner A asking for salon B gets nothing
	none, err := repo.ListPage(ctx, domain.ListScope{OwnerID: ownerA.ID, SalonID: salonB.ID}, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingRepository_ListPageSalonSummary(t *testing.T) {
	gdb := dbtest.New(t)
	owner := dbtest.SeedUser(t, gdb, "owner@example.com", models.RoleOwner)
	salon := dbtest.SeedSalon(t, gdb, owner, "bella", models.SalonApproved)
	require.NoError(t, gdb.Model(salon).Updates(map[string]any{
		"direccion": "Calle 10 #5-20",
		"telefono":  "6011234567",
	}).Error)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(salon.ID, "2024-06-01", "09:00")))

	withSalon, err := repo.ListPage(ctx, domain.ListScope{OwnerID: owner.ID, WithSalon: true}, nil, 10)
	require.NoError(t, err)
	require.Len(t, withSalon, 1)
	require.NotNil(t, withSalon[0].Salon)
	assert.Equal(t, "bella", withSalon[0].Salon.Nombre)
	assert.Equal(t, "Calle 10 #5-20", withSalon[0].Salon.Direccion)
	assert.Equal(t, "6011234567", withSalon[0].Salon.Telefono)
	assert.Empty(t, withSalon[0].Salon.Slug)

	public, err := repo.ListPage(ctx, domain.ListScope{SalonID: salon.ID}, nil, 10)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Nil(t, public[0].Salon)
}

func TestBookingRepository_Reminders(t *testing.T) {
	gdb := dbtest.New(t)
	owner := dbtest.SeedUser(t, gdb, "owner@example.com", models.RoleOwner)
	salon := dbtest.SeedSalon(t, gdb, owner, "bella", models.SalonApproved)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	due := newBooking(salon.ID, "2024-06-01", "10:00")
	cancelled := newBooking(salon.ID, "2024-06-01", "11:00")
	cancelled.Estado = string(domain.StatusCancelled)
	other := newBooking(salon.ID, "2024-06-02", "10:00")
	for _, b := range []*models.Booking{due, cancelled, other} {
		require.NoError(t, repo.Create(ctx, b))
	}

	list, err := repo.ListDueReminders(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, due.ID, list[0].ID)

	require.NoError(t, repo.MarkReminderSent(ctx, due.ID, time.Now()))

	list, err = repo.ListDueReminders(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, list)

	counts, err := repo.CountByEstado(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[string(domain.StatusPending)])
	assert.Equal(t, int64(1), counts[string(domain.StatusCancelled)])
}
