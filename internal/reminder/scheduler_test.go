package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type recordingNotifier struct {
	sent []string
	fail map[string]bool
}

func (n *recordingNotifier) Notify(_ context.Context, b models.Booking, salonName string) error {
	if n.fail[b.Nombre] {
		return errors.New("provider down")
	}
	n.sent = append(n.sent, Message(b, salonName))
	return nil
}

func TestScheduler_RunOnce(t *testing.T) {
	gdb := dbtest.New(t)
	bookings := repository.NewBookingGormRepository(gdb)
	salons := repository.NewSalonGormRepository(gdb)
	ctx := context.Background()

	owner := dbtest.SeedUser(t, gdb, "owner@example.com", models.RoleOwner)
	salon := dbtest.SeedSalon(t, gdb, owner, "bella", models.SalonApproved)

	mk := func(nombre, fecha, hora, estado string) {
		b := &models.Booking{
			SalonID: salon.ID, Nombre: nombre, Email: "x@example.com", Telefono: "+573001234567",
			Servicio: "Corte", Fecha: fecha, Hora: hora, Estado: estado,
		}
		require.NoError(t, bookings.Create(ctx, b))
	}
	mk("Ana", "2024-06-02", "10:00", "pendiente")
	mk("Luis", "2024-06-02", "11:00", "confirmada")
	mk("Eva", "2024-06-02", "12:00", "cancelada")
	mk("Sol", "2024-06-03", "10:00", "pendiente")

	notifier := &recordingNotifier{fail: map[string]bool{"Luis": true}}
	s := NewScheduler(bookings, salons, notifier, "UTC", metrics.New(), zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	sent, err := s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "Ana")
	assert.Contains(t, notifier.sent[0], "bella")

	// Ana is marked, Luis is retried
	notifier.fail = nil
	sent, err = s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Contains(t, notifier.sent[1], "Luis")

	sent, err = s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestScheduler_StartRejectsBadSpec(t *testing.T) {
	s := NewScheduler(nil, nil, NewLogNotifier(zap.NewNop()), "UTC", metrics.New(), zap.NewNop())
	assert.Error(t, s.Start("not a cron"))

	require.NoError(t, s.Start("0 9 * * *"))
	s.Stop()
}
