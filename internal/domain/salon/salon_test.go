package salon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Peluquería Ñandú":        "peluqueria-nandu",
		"  Estilo & Corte 2024  ": "estilo-corte-2024",
		"Salón---Belleza!!":       "salon-belleza",
		"¡¡¡":                     "peluqueria",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestCandidate(t *testing.T) {
	assert.Equal(t, "bella", Candidate("bella", 0))
	assert.Equal(t, "bella-1", Candidate("bella", 1))
	assert.Equal(t, "bella-12", Candidate("bella", 12))
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(models.SalonPending, models.SalonApproved))
	assert.NoError(t, CanTransition(models.SalonPending, models.SalonRejected))
	assert.NoError(t, CanTransition(models.SalonApproved, models.SalonApproved))

	assert.ErrorIs(t, CanTransition(models.SalonApproved, models.SalonPending), ErrInvalidTransition)
	assert.ErrorIs(t, CanTransition(models.SalonRejected, models.SalonApproved), ErrInvalidTransition)
	assert.ErrorIs(t, CanTransition(models.SalonApproved, models.SalonRejected), ErrInvalidTransition)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Approved")
	require.NoError(t, err)
	assert.Equal(t, models.SalonApproved, s)

	_, err = ParseStatus("borrado")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
