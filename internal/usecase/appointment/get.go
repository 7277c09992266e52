package appointment

import (
	"context"

	domain "github.com/LuminaWorks/medspa-scheduler/internal/domain/appointment"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(
	repo domain.Repository,
) *GetAppointment {
	return &GetAppointment{
		repo: repo,
	}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return ap, nil
}
