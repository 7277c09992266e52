package appointment

import (
	"context"
	"time"

	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type Repository interface {
	// -------- Medspa --------
	GetMedspaByID(
		ctx context.Context,
		id uint,
	) (*models.Medspa, error)

	// -------- Supplier offers --------
	GetSupplierOffer(
		ctx context.Context,
		id uint,
	) (*models.ServiceProductSupplier, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		offerIDs []uint,
	) error

	// -------- Appointment (read / state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		status string,
		date *time.Time,
	) ([]models.Appointment, error)
}
