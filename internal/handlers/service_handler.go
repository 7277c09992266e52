package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/LuminaWorks/medspa-scheduler/internal/dto"
	"github.com/LuminaWorks/medspa-scheduler/internal/httperr"
	"github.com/LuminaWorks/medspa-scheduler/internal/httpresp"
	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	MedspaID      uint             `json:"medspa_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Duration      int              `json:"duration"`
	ServiceTypeID uint             `json:"service_type_id"`
	SupplierName  string           `json:"supplier_name"`
	Price         *decimal.Decimal `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Duration    *int             `json:"duration,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// --------- Helpers ---------

// firstSupplier returns the offer created earliest for a product, the
// only one read/update paths ever use.
func (h *ServiceHandler) firstSupplier(productID uint) *models.ServiceProductSupplier {
	var offer models.ServiceProductSupplier
	err := h.db.
		Where("product_id = ?", productID).
		Order("id ASC").
		First(&offer).Error
	if err != nil {
		return nil
	}
	return &offer
}

func serviceDetail(p *models.ServiceProduct, offer *models.ServiceProductSupplier) dto.ServiceDetailDTO {
	out := dto.ServiceDetailDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Duration:    p.Duration,
		MedspaID:    p.MedspaID,
	}
	if offer != nil {
		out.Price = dto.MoneyPtr(&offer.Price)
		out.SupplierName = &offer.SupplierName
	}
	return out
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.MedspaID == 0 {
		httperr.BadRequest(c, "medspa_id_required", "medspa_id is required.")
		return
	}
	if req.Price == nil {
		httperr.BadRequest(c, "price_required", "price is required.")
		return
	}

	var medspa models.Medspa
	if err := h.db.First(&medspa, req.MedspaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "medspa_not_found", "Medspa not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_medspa", "Could not load medspa.")
		return
	}

	product := models.ServiceProduct{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		MedspaID:    req.MedspaID,
	}
	if req.ServiceTypeID != 0 {
		product.ServiceTypeID = &req.ServiceTypeID
	}
	offer := models.ServiceProductSupplier{
		SupplierName: req.SupplierName,
		Price:        *req.Price,
	}

	// product + initial offer commit together
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		offer.ProductID = product.ID
		return tx.Create(&offer).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	httpresp.Created(c, serviceDetail(&product, &offer))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var product models.ServiceProduct
	if err := h.db.First(&product, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Duration != nil {
		product.Duration = *req.Duration
	}

	offer := h.firstSupplier(product.ID)

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		if req.Price == nil {
			return nil
		}

		// price lives on the first offer; create one when none exists
		if offer != nil {
			offer.Price = *req.Price
			return tx.Save(offer).Error
		}

		offer = &models.ServiceProductSupplier{
			ProductID: product.ID,
			Price:     *req.Price,
		}
		return tx.Create(offer).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	out := dto.ServiceUpdatedDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Duration:    product.Duration,
	}
	if offer != nil {
		out.Price = dto.MoneyPtr(&offer.Price)
	}

	httpresp.OK(c, out)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var product models.ServiceProduct
	if err := h.db.First(&product, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	httpresp.OK(c, serviceDetail(&product, h.firstSupplier(product.ID)))
}

func (h *ServiceHandler) ListForMedspa(c *gin.Context) {
	medspaID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "medspa_not_found", "Medspa not found.")
		return
	}

	var medspa models.Medspa
	if err := h.db.First(&medspa, uint(medspaID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "medspa_not_found", "Medspa not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_medspa", "Could not load medspa.")
		return
	}

	var products []models.ServiceProduct
	if err := h.db.
		Preload("Suppliers", func(db *gorm.DB) *gorm.DB {
			return db.Order("service_product_suppliers.id ASC")
		}).
		Where("medspa_id = ?", medspa.ID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	out := make([]dto.ServiceListItemDTO, 0, len(products))
	for _, p := range products {
		item := dto.ServiceListItemDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Duration:    p.Duration,
		}
		if len(p.Suppliers) > 0 {
			first := p.Suppliers[0]
			item.Price = dto.MoneyPtr(&first.Price)
			item.SupplierName = &first.SupplierName
		}
		out = append(out, item)
	}

	httpresp.List(c, out)
}
