package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coastkeeper/hotspots-backend-go/internal/service"
	"github.com/coastkeeper/hotspots-backend-go/pkg/response"
)

// StationHandler handles HTTP requests for monitoring stations
type StationHandler struct {
	stationService *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(stationService *service.StationService) *StationHandler {
	return &StationHandler{stationService: stationService}
}

// GetStations handles GET /api/v1/stations
func (h *StationHandler) GetStations(c *gin.Context) {
	stations, err := h.stationService.Stations()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"stations": stations,
		"count":    len(stations),
	})
}

// GetNearest handles GET /api/v1/stations/nearest
func (h *StationHandler) GetNearest(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lon parameter")
		return
	}

	station, distance, err := h.stationService.Nearest(lat, lon)
	if err != nil {
		if errors.Is(err, service.ErrNoStations) {
			response.NotFound(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"station":         station,
		"distance_meters": distance,
	})
}
