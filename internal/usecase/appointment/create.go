package appointment

import (
	"context"
	"time"

	"github.com/LuminaWorks/medspa-scheduler/internal/audit"
	domain "github.com/LuminaWorks/medspa-scheduler/internal/domain/appointment"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	StartTime time.Time
	MedspaID  uint

	// Supplier-offer ids, in booking order.
	ServiceIDs []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books an appointment over a set of supplier offers. Offer ids
// that do not resolve are skipped: they contribute nothing to the
// totals and are not associated. The returned slice holds the ids that
// actually were.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, []uint, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if in.StartTime.IsZero() || in.MedspaID == 0 || len(in.ServiceIDs) == 0 {
		return nil, nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// 2. Medspa
	// --------------------------------------------------
	medspa, err := uc.repo.GetMedspaByID(ctx, in.MedspaID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("medspa_not_found")
	}

	// --------------------------------------------------
	// 3. Resolve offers (unresolvable ids are dropped)
	// --------------------------------------------------
	offers := make([]models.ServiceProductSupplier, 0, len(in.ServiceIDs))
	resolvedIDs := make([]uint, 0, len(in.ServiceIDs))

	for _, id := range in.ServiceIDs {
		offer, err := uc.repo.GetSupplierOffer(ctx, id)
		if err != nil {
			continue
		}
		offers = append(offers, *offer)
		resolvedIDs = append(resolvedIDs, id)
	}

	// --------------------------------------------------
	// 4. Totals (snapshot, never recomputed)
	// --------------------------------------------------
	totals := domain.Aggregate(offers)

	// --------------------------------------------------
	// 5. Persist appointment + associations
	// --------------------------------------------------
	ap := &models.Appointment{
		MedspaID:      medspa.ID,
		StartTime:     in.StartTime,
		TotalDuration: totals.Duration,
		TotalPrice:    totals.Price,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap, resolvedIDs); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		MedspaID: medspa.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, resolvedIDs, nil
}
