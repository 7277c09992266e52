package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

func TestListAppointmentsPassesFiltersThrough(t *testing.T) {
	repo := newStubRepository()
	repo.listResult = []models.Appointment{{ID: 1}, {ID: 2}}

	uc := NewListAppointments(repo)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	apps, err := uc.Execute(context.Background(), "scheduled", &date)
	require.NoError(t, err)

	assert.Len(t, apps, 2)
	assert.Equal(t, "scheduled", repo.listStatus)
	require.NotNil(t, repo.listDate)
	assert.True(t, repo.listDate.Equal(date))
}

func TestListAppointmentsNoFilters(t *testing.T) {
	repo := newStubRepository()

	uc := NewListAppointments(repo)

	_, err := uc.Execute(context.Background(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "", repo.listStatus)
	assert.Nil(t, repo.listDate)
}
