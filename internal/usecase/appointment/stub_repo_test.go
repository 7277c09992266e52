package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

var errStubNotFound = errors.New("record not found")

type stubRepository struct {
	medspas map[uint]*models.Medspa
	offers  map[uint]*models.ServiceProductSupplier

	appointments map[uint]*models.Appointment

	created        *models.Appointment
	createdOfferIDs []uint

	updated *models.Appointment

	getCalled  bool
	listStatus string
	listDate   *time.Time
	listResult []models.Appointment
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		medspas:      map[uint]*models.Medspa{},
		offers:       map[uint]*models.ServiceProductSupplier{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (s *stubRepository) GetMedspaByID(ctx context.Context, id uint) (*models.Medspa, error) {
	if m, ok := s.medspas[id]; ok {
		return m, nil
	}
	return nil, errStubNotFound
}

func (s *stubRepository) GetSupplierOffer(ctx context.Context, id uint) (*models.ServiceProductSupplier, error) {
	if o, ok := s.offers[id]; ok {
		return o, nil
	}
	return nil, errStubNotFound
}

func (s *stubRepository) CreateAppointment(ctx context.Context, ap *models.Appointment, offerIDs []uint) error {
	ap.ID = uint(len(s.appointments) + 1)
	s.created = ap
	s.createdOfferIDs = offerIDs
	s.appointments[ap.ID] = ap
	return nil
}

func (s *stubRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	s.getCalled = true
	if ap, ok := s.appointments[id]; ok {
		return ap, nil
	}
	return nil, errStubNotFound
}

func (s *stubRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.updated = ap
	return nil
}

func (s *stubRepository) ListAppointments(ctx context.Context, status string, date *time.Time) ([]models.Appointment, error) {
	s.listStatus = status
	s.listDate = date
	return s.listResult, nil
}
