package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LuminaWorks/medspa-scheduler/internal/audit"
	"github.com/LuminaWorks/medspa-scheduler/internal/handlers"
	infraRepo "github.com/LuminaWorks/medspa-scheduler/internal/infra/repository"
	ucAppointment "github.com/LuminaWorks/medspa-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(
		appointmentRepo,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	medspaHandler := handlers.NewMedspaHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	serviceTypeHandler := handlers.NewServiceTypeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		getAppointmentUC,
		listAppointmentsUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================

	// ------------------------------
	// MEDSPAS
	// ------------------------------
	r.GET("/medspas", medspaHandler.List)
	r.POST("/medspas", medspaHandler.Create)
	r.GET("/medspas/:id/services", serviceHandler.ListForMedspa)

	// ------------------------------
	// SERVICES
	// ------------------------------
	r.POST("/services", serviceHandler.Create)
	r.GET("/services/:id", serviceHandler.Get)
	r.PUT("/services/:id", serviceHandler.Update)

	// ------------------------------
	// CATEGORIES & TYPES
	// ------------------------------
	r.POST("/service-categories", serviceTypeHandler.CreateCategory)
	r.POST("/service-types", serviceTypeHandler.CreateType)
	r.GET("/service-types", serviceTypeHandler.ListTypes)

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/appointments", appointmentHandler.List)
	r.GET("/appointments/:id", appointmentHandler.Get)
	r.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
}
