package appointment

import (
	"context"

	"github.com/LuminaWorks/medspa-scheduler/internal/audit"
	domain "github.com/LuminaWorks/medspa-scheduler/internal/domain/appointment"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute sets the status. The literal is validated before the entity
// is even loaded, so a bad value never touches stored state. A status
// change has no side effects on totals or associations.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	if err := domain.ValidateStatus(domain.Status(status)); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.Status = status

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		MedspaID: ap.MedspaID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": status},
	})

	return ap, nil
}
