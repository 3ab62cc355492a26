package booking

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

// Actor is the authenticated caller. The zero value is the anonymous public.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsPublic() bool {
	return a.UserID == ""
}

func (a Actor) IsAdmin() bool {
	return !a.IsPublic() && a.Role == models.RoleAdmin
}

type Decision int

const (
	Forbidden Decision = iota
	Allowed
)

// Authorize decides whether actor may act on a resource under a salon owned
// by ownerID. Public callers never pass here; their only access is the active
// agenda of a salon they name explicitly (see ListScopeFor).
func Authorize(actor Actor, ownerID string) Decision {
	switch {
	case actor.IsAdmin():
		return Allowed
	case actor.IsPublic():
		return Forbidden
	case ownerID != "" && actor.UserID == ownerID:
		return Allowed
	}
	return Forbidden
}

// ListScope is what a listing query is restricted to after policy.
type ListScope struct {
	SalonID  string
	OwnerID  string
	Statuses []Status

	// WithSalon attaches the salon summary; the public agenda goes without.
	WithSalon bool
}

// ListScopeFor turns the caller's filter into the scope they are entitled to.
func ListScopeFor(actor Actor, filter ListFilter) (ListScope, error) {
	switch {
	case actor.IsAdmin():
		scope := ListScope{SalonID: filter.SalonID, WithSalon: true}
		if filter.Status != "" {
			scope.Statuses = []Status{filter.Status}
		}
		return scope, nil

	case actor.IsPublic():
		if filter.SalonID == "" {
			return ListScope{}, ErrForbidden
		}
		statuses := ActiveStatuses
		if filter.Status != "" {
			if !filter.Status.IsActive() {
				return ListScope{}, ErrForbidden
			}
			statuses = []Status{filter.Status}
		}
		return ListScope{SalonID: filter.SalonID, Statuses: statuses}, nil
	}

	scope := ListScope{SalonID: filter.SalonID, OwnerID: actor.UserID, WithSalon: true}
	if filter.Status != "" {
		scope.Statuses = []Status{filter.Status}
	}
	return scope, nil
}
