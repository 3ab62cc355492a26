package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// Create assigns the first free slug derived from base and inserts s.
	Create(ctx context.Context, s *models.Salon, base string) error

	GetByID(ctx context.Context, id string) (*models.Salon, error)
	GetByOwner(ctx context.Context, ownerID string) (*models.Salon, error)
	GetApprovedBySlug(ctx context.Context, slug string) (*models.Salon, error)
	List(ctx context.Context, onlyApproved bool) ([]models.Salon, error)

	UpdateEstado(ctx context.Context, s *models.Salon, estado string) error
	UpdateProfile(ctx context.Context, s *models.Salon) error

	// Delete removes the salon and its bookings.
	Delete(ctx context.Context, id string) error
}
