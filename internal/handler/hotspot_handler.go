package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
	"github.com/coastkeeper/hotspots-backend-go/internal/observability"
	"github.com/coastkeeper/hotspots-backend-go/internal/service"
	"github.com/coastkeeper/hotspots-backend-go/pkg/response"
)

// HotspotHandler handles HTTP requests for the exceedance hotspot view
type HotspotHandler struct {
	hotspotService *service.HotspotService
	metrics        *observability.Metrics
}

// NewHotspotHandler creates a new hotspot handler
func NewHotspotHandler(hotspotService *service.HotspotService, metrics *observability.Metrics) *HotspotHandler {
	return &HotspotHandler{
		hotspotService: hotspotService,
		metrics:        metrics,
	}
}

// GetHotspots handles GET /api/v1/hotspots
func (h *HotspotHandler) GetHotspots(c *gin.Context) {
	var filter models.HotspotFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.metrics.HotspotRequests.WithLabelValues("bad_request").Inc()
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	// Required controls: without them the view is "not ready".
	if filter.Parameter == "" || filter.StartDate == "" || filter.EndDate == "" {
		h.metrics.HotspotRequests.WithLabelValues("bad_request").Inc()
		response.BadRequest(c, "parameter, startDate and endDate are required")
		return
	}

	start := time.Now()
	result, err := h.hotspotService.Hotspots(filter)
	if err != nil {
		if isDateError(err) {
			h.metrics.HotspotRequests.WithLabelValues("bad_request").Inc()
			response.BadRequest(c, err.Error())
			return
		}
		h.metrics.HotspotRequests.WithLabelValues("error").Inc()
		response.InternalError(c, err.Error())
		return
	}
	h.metrics.AggregationDuration.Observe(time.Since(start).Seconds())

	outcome := "ok"
	if len(result.Stations) == 0 {
		outcome = "empty"
	}
	h.metrics.HotspotRequests.WithLabelValues(outcome).Inc()

	response.Success(c, gin.H{
		"result": result,
		"count":  len(result.Stations),
	})
}

// isDateError distinguishes user-supplied date problems from internal
// failures; date validation is the only check the service performs after
// the handler's required-field check.
func isDateError(err error) bool {
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return true
	}
	return strings.Contains(err.Error(), "startDate") || strings.Contains(err.Error(), "endDate")
}
