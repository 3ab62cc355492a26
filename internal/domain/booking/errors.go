package booking

import (
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var (
	ErrSalonNotFound     = httperr.ErrBusiness("salon_not_found")
	ErrBookingNotFound   = httperr.ErrBusiness("booking_not_found")
	ErrSlotTaken         = httperr.ErrBusiness("slot_taken")
	ErrInvalidStatus     = httperr.ErrBusiness("invalid_status")
	ErrInvalidTransition = httperr.ErrBusiness("invalid_transition")
	ErrForbidden         = httperr.ErrBusiness("forbidden")
	ErrTransient         = httperr.ErrBusiness("store_unavailable")
	ErrInvalidInput      = httperr.ErrBusiness("invalid_request")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindSlotTaken
	KindInvalidStatus
	KindForbidden
	KindTransient
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindSlotTaken:
		return "SlotTaken"
	case KindInvalidStatus:
		return "InvalidStatus"
	case KindForbidden:
		return "Forbidden"
	case KindTransient:
		return "Transient"
	case KindInvalidInput:
		return "InvalidInput"
	}
	return "Unknown"
}

// KindOf classifies err into one of the lifecycle error kinds.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrSalonNotFound), errors.Is(err, ErrBookingNotFound):
		return KindNotFound
	case errors.Is(err, ErrSlotTaken):
		return KindSlotTaken
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidTransition):
		return KindInvalidStatus
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrTransient):
		return KindTransient
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	}
	return KindUnknown
}
