package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
	"github.com/coastkeeper/hotspots-backend-go/internal/service"
	"github.com/coastkeeper/hotspots-backend-go/pkg/response"
)

// CatalogHandler handles HTTP requests for UI control metadata
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog handles GET /api/v1/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.catalogService.Catalog()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, catalog)
}

// GetParameters handles GET /api/v1/parameters
func (h *CatalogHandler) GetParameters(c *gin.Context) {
	parameters, err := h.catalogService.Parameters()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"parameters": parameters,
		"nutrients":  models.NutrientParameters(),
	})
}

// GetWaterbodies handles GET /api/v1/parameters/:code/waterbodies
func (h *CatalogHandler) GetWaterbodies(c *gin.Context) {
	param := models.Parameter(c.Param("code"))
	if param == "" {
		response.BadRequest(c, "parameter code is required")
		return
	}

	waterbodies, err := h.catalogService.Waterbodies(param)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	// An empty list is the expected state for parameters without a TMDL
	// group; the UI hides the picker.
	response.Success(c, gin.H{
		"waterbodies": waterbodies,
		"count":       len(waterbodies),
	})
}
