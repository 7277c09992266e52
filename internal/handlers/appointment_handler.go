package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LuminaWorks/medspa-scheduler/internal/dto"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/httpresp"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
	ucAppointment "github.com/LuminaWorks/medspa-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	getUC          *ucAppointment.GetAppointment
	listUC         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		getUC:          getUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StartTime  string `json:"start_time"`
	MedspaID   uint   `json:"medspa_id"`
	ServiceIDs []uint `json:"service_ids"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// HELPERS
// ======================================================

func appointmentDTO(ap *models.Appointment) dto.AppointmentDTO {
	return dto.AppointmentDTO{
		ID:            ap.ID,
		Status:        ap.Status,
		StartTime:     ap.StartTime.Format(time.RFC3339),
		TotalDuration: ap.TotalDuration,
		TotalPrice:    dto.Money(ap.TotalPrice),
		MedspaID:      ap.MedspaID,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.StartTime == "" || req.MedspaID == 0 || len(req.ServiceIDs) == 0 {
		httperr.BadRequest(c, "missing_required_fields", "start_time, medspa_id and service_ids are required.")
		return
	}

	start, err := parseStartTime(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be an ISO-8601 timestamp.")
		return
	}

	ap, resolvedIDs, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		StartTime:  start,
		MedspaID:   req.MedspaID,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_required_fields"):
			httperr.BadRequest(c, "missing_required_fields", "start_time, medspa_id and service_ids are required.")
		case httperr.IsBusiness(err, "medspa_not_found"):
			httperr.NotFound(c, "medspa_not_found", "Medspa not found.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		}
		return
	}

	httpresp.Created(c, dto.AppointmentCreatedDTO{
		ID:            ap.ID,
		StartTime:     ap.StartTime.Format(time.RFC3339),
		TotalDuration: ap.TotalDuration,
		TotalPrice:    dto.Money(ap.TotalPrice),
		Status:        ap.Status,
		MedspaID:      ap.MedspaID,
		Services:      resolvedIDs,
	})
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	lines := make([]dto.AppointmentServiceLineDTO, 0, len(ap.Services))
	for _, assoc := range ap.Services {
		offer := assoc.Service
		lines = append(lines, dto.AppointmentServiceLineDTO{
			ID:           offer.ProductID,
			Name:         offer.Product.Name,
			Description:  offer.Product.Description,
			Duration:     offer.Product.Duration,
			Price:        dto.Money(offer.Price),
			SupplierName: offer.SupplierName,
		})
	}

	httpresp.OK(c, dto.AppointmentDetailDTO{
		ID:            ap.ID,
		StartTime:     ap.StartTime.Format(time.RFC3339),
		TotalDuration: ap.TotalDuration,
		TotalPrice:    dto.Money(ap.TotalPrice),
		Status:        ap.Status,
		MedspaID:      ap.MedspaID,
		Services:      lines,
	})
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Allowed values are: 'scheduled', 'completed', 'canceled'.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Could not update appointment status.")
		}
		return
	}

	httpresp.OK(c, appointmentDTO(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	status := c.Query("status")

	var date *time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := parseDateOnly(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
			return
		}
		date = &parsed
	}

	apps, err := h.listUC.Execute(c.Request.Context(), status, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	out := make([]dto.AppointmentDTO, 0, len(apps))
	for i := range apps {
		out = append(out, appointmentDTO(&apps[i]))
	}

	httpresp.List(c, out)
}
