package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	admin  = Actor{UserID: "admin-1", Role: models.RoleAdmin}
	ownerA = Actor{UserID: "owner-a", Role: models.RoleOwner}
	ownerB = Actor{UserID: "owner-b", Role: models.RoleOwner}
	public = Actor{}
)

func TestAuthorize(t *testing.T) {
	assert.Equal(t, Allowed, Authorize(admin, "owner-a"))
	assert.Equal(t, Allowed, Authorize(admin, ""))
	assert.Equal(t, Allowed, Authorize(ownerA, "owner-a"))
	assert.Equal(t, Forbidden, Authorize(ownerB, "owner-a"))
	assert.Equal(t, Forbidden, Authorize(ownerA, ""))
	assert.Equal(t, Forbidden, Authorize(public, "owner-a"))

	// an unauthenticated actor claiming admin is still public
	assert.Equal(t, Forbidden, Authorize(Actor{Role: models.RoleAdmin}, "owner-a"))
}

func TestListScopeFor(t *testing.T) {
	scope, err := ListScopeFor(admin, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, ListScope{WithSalon: true}, scope)

	scope, err = ListScopeFor(admin, ListFilter{SalonID: "s1", Status: StatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, "s1", scope.SalonID)
	assert.Equal(t, []Status{StatusCancelled}, scope.Statuses)

	scope, err = ListScopeFor(ownerA, ListFilter{SalonID: "s9"})
	require.NoError(t, err)
	assert.Equal(t, "owner-a", scope.OwnerID)
	assert.Equal(t, "s9", scope.SalonID)
	assert.True(t, scope.WithSalon)

	scope, err = ListScopeFor(public, ListFilter{SalonID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, ActiveStatuses, scope.Statuses)
	assert.Empty(t, scope.OwnerID)
	assert.False(t, scope.WithSalon)

	_, err = ListScopeFor(public, ListFilter{})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = ListScopeFor(public, ListFilter{SalonID: "s1", Status: StatusCompleted})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSlotKey(t *testing.T) {
	s := Slot{SalonID: "s1", Fecha: "2024-06-01", Hora: "10:00"}
	assert.Equal(t, "slot:s1:2024-06-01:10:00", s.Key())
}
