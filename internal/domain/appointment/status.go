package appointment

import "github.com/LuminaWorks/medspa-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ===============================
// Validations
// ===============================

// ValidateStatus rejects anything outside the three literal values.
// Any of the three is directly settable at any time; there is no
// transition guard between them.
func ValidateStatus(s Status) error {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return nil
	}
	return httperr.ErrBusiness("invalid_status")
}

// InitialStatus is the status every appointment is created with.
func InitialStatus() Status {
	return StatusScheduled
}
