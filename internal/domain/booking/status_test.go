package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"pendiente":   StatusPending,
		"pending":     StatusPending,
		" Confirmada": StatusConfirmed,
		"confirmed":   StatusConfirmed,
		"cancelled":   StatusCancelled,
		"canceled":    StatusCancelled,
		"completada":  StatusCompleted,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "archived", "pendientes"} {
		_, err := ParseStatus(raw)
		assert.ErrorIs(t, err, ErrInvalidStatus, raw)
		assert.Equal(t, KindInvalidStatus, KindOf(err))
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.OccupiesSlot())
	assert.True(t, StatusCompleted.OccupiesSlot())
	assert.False(t, StatusCancelled.OccupiesSlot())

	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCompleted.IsActive())
}

func TestTransitionPolicies(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
	for _, from := range all {
		for _, to := range all {
			assert.NoError(t, PermissivePolicy{}.CanTransition(from, to))
		}
	}

	strict := StrictPolicy{}
	assert.NoError(t, strict.CanTransition(StatusPending, StatusConfirmed))
	assert.NoError(t, strict.CanTransition(StatusCompleted, StatusCompleted))
	assert.ErrorIs(t, strict.CanTransition(StatusCompleted, StatusPending), ErrInvalidTransition)
	assert.ErrorIs(t, strict.CanTransition(StatusCancelled, StatusConfirmed), ErrInvalidTransition)
}

func TestNormalizeDateTime(t *testing.T) {
	d, err := NormalizeDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d)

	_, err = NormalizeDate("01/06/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)

	h, err := NormalizeTime("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", h)

	_, err = NormalizeTime("25:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
