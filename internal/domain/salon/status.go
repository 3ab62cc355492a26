package salon

import (
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	ErrNotFound          = httperr.ErrBusiness("salon_not_found")
	ErrInvalidStatus     = httperr.ErrBusiness("invalid_status")
	ErrInvalidTransition = httperr.ErrBusiness("invalid_transition")
	ErrAlreadyHasSalon   = httperr.ErrBusiness("already_has_salon")
	ErrForbidden         = httperr.ErrBusiness("forbidden")
	ErrInvalidInput      = httperr.ErrBusiness("invalid_request")
	ErrTransient         = httperr.ErrBusiness("store_unavailable")
)

var statusAliases = map[string]string{
	"pendiente": models.SalonPending,
	"pending":   models.SalonPending,
	"aprobado":  models.SalonApproved,
	"approved":  models.SalonApproved,
	"rechazado": models.SalonRejected,
	"rejected":  models.SalonRejected,
}

func ParseStatus(raw string) (string, error) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// CanTransition allows only pendiente→aprobado and pendiente→rechazado.
// Asking for the current state is accepted as a no-op.
func CanTransition(from, to string) error {
	if from == to {
		return nil
	}
	if from == models.SalonPending && (to == models.SalonApproved || to == models.SalonRejected) {
		return nil
	}
	return ErrInvalidTransition
}
