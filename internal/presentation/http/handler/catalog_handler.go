package handler

import (
	"github.com/chatchaiw/apparel-api/internal/application/service"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the garment catalog lists
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListNeckTypes handles listing neck types
func (h *CatalogHandler) ListNeckTypes(c *gin.Context) {
	necks, err := h.catalogService.ListNeckTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Neck types retrieved successfully", necks)
}

// ListFabricTypes handles listing fabric types
func (h *CatalogHandler) ListFabricTypes(c *gin.Context) {
	fabrics, err := h.catalogService.ListFabricTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Fabric types retrieved successfully", fabrics)
}

// ListSleeveTypes handles listing sleeve types
func (h *CatalogHandler) ListSleeveTypes(c *gin.Context) {
	sleeves, err := h.catalogService.ListSleeveTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sleeve types retrieved successfully", sleeves)
}
