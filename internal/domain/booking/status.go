package booking

import "strings"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusCancelled Status = "cancelada"
	StatusCompleted Status = "completada"
)

// ActiveStatuses are the statuses shown on a salon's public agenda.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

var statusAliases = map[string]Status{
	"pendiente":  StatusPending,
	"pending":    StatusPending,
	"confirmada": StatusConfirmed,
	"confirmed":  StatusConfirmed,
	"cancelada":  StatusCancelled,
	"cancelled":  StatusCancelled,
	"canceled":   StatusCancelled,
	"completada": StatusCompleted,
	"completed":  StatusCompleted,
}

// ParseStatus accepts the stored spanish values and their english names.
func ParseStatus(raw string) (Status, error) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// OccupiesSlot is true for every status except cancelled.
func (s Status) OccupiesSlot() bool {
	return s != StatusCancelled
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transitions
// ===============================

type TransitionPolicy interface {
	CanTransition(from, to Status) error
}

// PermissivePolicy allows any status to follow any other.
type PermissivePolicy struct{}

func (PermissivePolicy) CanTransition(from, to Status) error {
	return nil
}

// StrictPolicy makes cancelled and completed terminal.
type StrictPolicy struct{}

func (StrictPolicy) CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if from == StatusCancelled || from == StatusCompleted {
		return ErrInvalidTransition
	}
	return nil
}
