package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LuminaWorks/medspa-scheduler/internal/domain/appointment"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

func stubOffer(id uint, duration int, price string) *models.ServiceProductSupplier {
	return &models.ServiceProductSupplier{
		ID:        id,
		ProductID: id * 10,
		Price:     decimal.RequireFromString(price),
		Product: models.ServiceProduct{
			ID:       id * 10,
			Duration: duration,
		},
	}
}

func TestCreateAppointmentAggregatesResolvedOffers(t *testing.T) {
	repo := newStubRepository()
	repo.medspas[1] = &models.Medspa{ID: 1, Name: "Glow"}
	repo.offers[11] = stubOffer(11, 30, "100.00")
	repo.offers[12] = stubOffer(12, 45, "50.00")

	uc := NewCreateAppointment(repo, nil)

	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	ap, resolved, err := uc.Execute(context.Background(), CreateAppointmentInput{
		StartTime:  start,
		MedspaID:   1,
		ServiceIDs: []uint{11, 999, 12},
	})
	require.NoError(t, err)

	// unresolvable id 999 is skipped, order of the rest is preserved
	assert.Equal(t, []uint{11, 12}, resolved)
	assert.Equal(t, []uint{11, 12}, repo.createdOfferIDs)

	assert.Equal(t, 75, ap.TotalDuration)
	assert.Equal(t, "150.00", ap.TotalPrice.StringFixed(2))
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, uint(1), ap.MedspaID)
	assert.True(t, ap.StartTime.Equal(start))
}

func TestCreateAppointmentCountsDuplicateIDsTwice(t *testing.T) {
	repo := newStubRepository()
	repo.medspas[1] = &models.Medspa{ID: 1}
	repo.offers[11] = stubOffer(11, 30, "100.00")

	uc := NewCreateAppointment(repo, nil)

	ap, resolved, err := uc.Execute(context.Background(), CreateAppointmentInput{
		StartTime:  time.Now(),
		MedspaID:   1,
		ServiceIDs: []uint{11, 11},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{11, 11}, resolved)
	assert.Equal(t, 60, ap.TotalDuration)
	assert.Equal(t, "200.00", ap.TotalPrice.StringFixed(2))
}

func TestCreateAppointmentAllOffersUnresolvable(t *testing.T) {
	repo := newStubRepository()
	repo.medspas[1] = &models.Medspa{ID: 1}

	uc := NewCreateAppointment(repo, nil)

	ap, resolved, err := uc.Execute(context.Background(), CreateAppointmentInput{
		StartTime:  time.Now(),
		MedspaID:   1,
		ServiceIDs: []uint{7, 8},
	})
	require.NoError(t, err)

	assert.Empty(t, resolved)
	assert.Equal(t, 0, ap.TotalDuration)
	assert.Equal(t, "0.00", ap.TotalPrice.StringFixed(2))
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	repo := newStubRepository()
	uc := NewCreateAppointment(repo, nil)

	cases := []CreateAppointmentInput{
		{MedspaID: 1, ServiceIDs: []uint{1}},
		{StartTime: time.Now(), ServiceIDs: []uint{1}},
		{StartTime: time.Now(), MedspaID: 1},
		{StartTime: time.Now(), MedspaID: 1, ServiceIDs: []uint{}},
	}

	for i, in := range cases {
		_, _, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "missing_required_fields"), "case %d", i)
		assert.Nil(t, repo.created, "case %d", i)
	}
}

func TestCreateAppointmentMedspaNotFound(t *testing.T) {
	repo := newStubRepository()
	repo.offers[11] = stubOffer(11, 30, "100.00")

	uc := NewCreateAppointment(repo, nil)

	_, _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		StartTime:  time.Now(),
		MedspaID:   42,
		ServiceIDs: []uint{11},
	})

	assert.True(t, httperr.IsBusiness(err, "medspa_not_found"))
	assert.Nil(t, repo.created)
}
