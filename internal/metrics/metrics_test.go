package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ExposesBookingCounters(t *testing.T) {
	m := New()
	m.BookingsCreated.Inc()
	m.BookingStatusChanges.WithLabelValues("confirmada").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingStatusChanges.WithLabelValues("confirmada")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bookings_created_total 1")
	assert.Contains(t, rec.Body.String(), `booking_status_changes_total{estado="confirmada"} 1`)
}
