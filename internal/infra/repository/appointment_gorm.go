package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/LuminaWorks/medspa-scheduler/internal/domain/appointment"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Medspa
// --------------------------------------------------

func (r *AppointmentGormRepository) GetMedspaByID(
	ctx context.Context,
	id uint,
) (*models.Medspa, error) {

	var medspa models.Medspa
	if err := r.db.WithContext(ctx).First(&medspa, id).Error; err != nil {
		return nil, err
	}
	return &medspa, nil
}

// --------------------------------------------------
// Supplier offers
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSupplierOffer(
	ctx context.Context,
	id uint,
) (*models.ServiceProductSupplier, error) {

	var offer models.ServiceProductSupplier
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&offer, id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment persists the appointment and its offer associations
// in one transaction, preserving the order of offerIDs.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	offerIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for _, offerID := range offerIDs {
			assoc := models.AppointmentServiceSupplier{
				AppointmentID:            ap.ID,
				ServiceProductSupplierID: offerID,
			}
			if err := tx.Create(&assoc).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("appointment_service_suppliers.id ASC")
		}).
		Preload("Services.Service").
		Preload("Services.Service.Product").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	status string,
	date *time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if status != "" {
		q = q.Where("status = ?", status)
	}

	if date != nil {
		// date-only comparison, time-of-day is ignored
		q = q.Where("DATE(start_time) = ?", date.Format("2006-01-02"))
	}

	var apps []models.Appointment
	if err := q.Order("id ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
