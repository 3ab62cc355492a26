package audit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
)

func TestDispatcher_WritesAndDrains(t *testing.T) {
	gdb := dbtest.New(t)
	logger := New(gdb)
	d := NewDispatcher(logger, zap.NewNop())

	d.Dispatch(Event{
		SalonID:  "salon-1",
		UserID:   "user-1",
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: "b-1",
		Metadata: map[string]string{"fecha": "2024-06-01"},
	})
	d.Dispatch(Event{Action: "booking_deleted", Entity: "booking"})
	d.Close()

	entries, err := logger.List(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	scoped, err := logger.List(context.Background(), "salon-1", 10)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "booking_created", scoped[0].Action)
	require.NotNil(t, scoped[0].EntityID)
	assert.Equal(t, "b-1", *scoped[0].EntityID)
	assert.JSONEq(t, `{"fecha":"2024-06-01"}`, string(scoped[0].Metadata))

	// closed dispatcher swallows events
	d.Dispatch(Event{Action: "late"})
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
}

type countingSink struct {
	n atomic.Int64
}

func (s *countingSink) Log(context.Context, Event) error {
	s.n.Add(1)
	return nil
}

func TestDispatcher_DispatchRacingClose(t *testing.T) {
	sink := &countingSink{}
	d := NewDispatcher(sink, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "booking_created"})
			}
		}()
	}
	d.Close()
	wg.Wait()

	// later calls are dropped, never sent on the closed queue
	d.Dispatch(Event{Action: "late"})
	d.Close()

	assert.LessOrEqual(t, sink.n.Load(), int64(8*50))
}
