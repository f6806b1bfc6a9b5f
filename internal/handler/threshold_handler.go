package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
	"github.com/coastkeeper/hotspots-backend-go/internal/service"
	"github.com/coastkeeper/hotspots-backend-go/pkg/response"
)

// ThresholdHandler handles HTTP requests for threshold resolution
type ThresholdHandler struct {
	thresholdService *service.ThresholdService
}

// NewThresholdHandler creates a new threshold handler
func NewThresholdHandler(thresholdService *service.ThresholdService) *ThresholdHandler {
	return &ThresholdHandler{thresholdService: thresholdService}
}

// GetThreshold handles GET /api/v1/parameters/:code/threshold
// Returns the bounds and seed value for the threshold input: the defined
// threshold when one exists, the observed median otherwise.
func (h *ThresholdHandler) GetThreshold(c *gin.Context) {
	param := models.Parameter(c.Param("code"))
	if param == "" {
		response.BadRequest(c, "parameter code is required")
		return
	}

	bounds, err := h.thresholdService.DefaultAndBounds(param)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, bounds)
}
