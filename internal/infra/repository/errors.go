package repository

import (
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
)

// transient wraps an unexpected store failure so callers see ErrTransient.
func transient(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrTransient, op, err)
}
