package appointment

import (
	"context"
	"time"

	domain "github.com/LuminaWorks/medspa-scheduler/internal/domain/appointment"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute lists appointments, optionally narrowed by exact status and
// by the calendar date of start_time. Absent filters impose nothing.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	status string,
	date *time.Time,
) ([]models.Appointment, error) {

	return uc.repo.ListAppointments(ctx, status, date)
}
