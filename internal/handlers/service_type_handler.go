package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LuminaWorks/medspa-scheduler/internal/dto"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/httpresp"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type ServiceTypeHandler struct {
	db *gorm.DB
}

func NewServiceTypeHandler(db *gorm.DB) *ServiceTypeHandler {
	return &ServiceTypeHandler{db: db}
}

// --------- Requests ---------

type CreateServiceCategoryRequest struct {
	Name string `json:"name"`
}

type CreateServiceTypeRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

// --------- Handlers ---------

func (h *ServiceTypeHandler) CreateCategory(c *gin.Context) {
	var req CreateServiceCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name == "" {
		httperr.BadRequest(c, "name_required", "name is required.")
		return
	}

	category := models.ServiceCategory{Name: req.Name}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create service category.")
		return
	}

	httpresp.Created(c, dto.ServiceCategoryDTO{ID: category.ID, Name: category.Name})
}

func (h *ServiceTypeHandler) CreateType(c *gin.Context) {
	var req CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name == "" {
		httperr.BadRequest(c, "name_required", "name is required.")
		return
	}
	if req.CategoryID == 0 {
		httperr.BadRequest(c, "category_id_required", "category_id is required.")
		return
	}

	var category models.ServiceCategory
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "category_not_found", "Service category not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_category", "Could not load service category.")
		return
	}

	serviceType := models.ServiceType{
		Name:       req.Name,
		CategoryID: category.ID,
	}
	if err := h.db.Create(&serviceType).Error; err != nil {
		httperr.Internal(c, "failed_to_create_type", "Could not create service type.")
		return
	}

	httpresp.Created(c, dto.ServiceTypeDTO{
		ID:         serviceType.ID,
		Name:       serviceType.Name,
		CategoryID: serviceType.CategoryID,
	})
}

func (h *ServiceTypeHandler) ListTypes(c *gin.Context) {
	var types []models.ServiceType
	if err := h.db.
		Preload("Category").
		Order("id ASC").
		Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_list_types", "Could not list service types.")
		return
	}

	out := make([]dto.ServiceTypeWithCategoryDTO, 0, len(types))
	for _, st := range types {
		out = append(out, dto.ServiceTypeWithCategoryDTO{
			ID:   st.ID,
			Name: st.Name,
			Category: dto.ServiceCategoryDTO{
				ID:   st.Category.ID,
				Name: st.Category.Name,
			},
		})
	}

	httpresp.List(c, out)
}
