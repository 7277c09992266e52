package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LuminaWorks/medspa-scheduler/internal/dto"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/httpresp"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type MedspaHandler struct {
	db *gorm.DB
}

func NewMedspaHandler(db *gorm.DB) *MedspaHandler {
	return &MedspaHandler{db: db}
}

// --------- Requests ---------

type CreateMedspaRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	EmailAddress string `json:"email_address" binding:"required"`
}

// --------- Handlers ---------

func (h *MedspaHandler) List(c *gin.Context) {
	var medspas []models.Medspa
	if err := h.db.Order("id ASC").Find(&medspas).Error; err != nil {
		httperr.Internal(c, "failed_to_list_medspas", "Could not list medspas.")
		return
	}

	out := make([]dto.MedspaSummaryDTO, 0, len(medspas))
	for _, m := range medspas {
		out = append(out, dto.MedspaSummaryDTO{ID: m.ID, Name: m.Name})
	}

	httpresp.List(c, out)
}

func (h *MedspaHandler) Create(c *gin.Context) {
	var req CreateMedspaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name, address, phone_number and email_address are required.")
		return
	}

	medspa := models.Medspa{
		Name:         req.Name,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		EmailAddress: req.EmailAddress,
	}

	if err := h.db.Create(&medspa).Error; err != nil {
		httperr.Internal(c, "failed_to_create_medspa", "Could not create medspa.")
		return
	}

	httpresp.Created(c, dto.MedspaSummaryDTO{ID: medspa.ID, Name: medspa.Name})
}
