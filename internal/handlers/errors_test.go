package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{domain.ErrBookingNotFound, http.StatusNotFound, "booking_not_found", "Booking not found."},
		{domain.ErrForbidden, http.StatusForbidden, "forbidden", "Not allowed."},
		{domain.ErrInvalidTransition, http.StatusConflict, "invalid_transition", "Status change is not allowed."},
		{fmt.Errorf("lock: %w", domain.ErrTransient), http.StatusServiceUnavailable, "store_unavailable", "Storage is unavailable, try again."},
		{fmt.Errorf("%w: fecha must be YYYY-MM-DD", domain.ErrInvalidInput), http.StatusBadRequest, "invalid_request", "invalid_request: fecha must be YYYY-MM-DD"},
		{media.ErrUnavailable, http.StatusServiceUnavailable, "media_unavailable", "Media uploads are not configured."},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error", "Unexpected error."},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, zap.NewNop(), tc.err)

			assert.Equal(t, tc.status, rec.Code)
			var body httperr.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestWriteError_SlotConflictBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/bookings", nil)

	writeError(c, zap.NewNop(), fmt.Errorf("create: %w", domain.ErrSlotTaken))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "slot occupied", body["error"])
	assert.Equal(t, "slot_taken", body["code"])
}
