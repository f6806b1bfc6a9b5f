package service

import (
	"errors"
	"fmt"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
	"github.com/coastkeeper/hotspots-backend-go/internal/repository"
	"github.com/coastkeeper/hotspots-backend-go/internal/spatial"
)

// ErrNoStations indicates the dataset contains no stations to search.
var ErrNoStations = errors.New("no stations loaded")

// StationService serves station lookups for the map frontend
type StationService struct {
	repo *repository.DatasetRepository
}

// NewStationService creates a new station service
func NewStationService(repo *repository.DatasetRepository) *StationService {
	return &StationService{repo: repo}
}

// Stations retrieves the distinct monitoring stations with coordinates.
func (s *StationService) Stations() ([]models.Station, error) {
	return s.repo.Stations()
}

// Nearest returns the monitoring station closest to the given point by
// great-circle distance, with that distance in meters.
func (s *StationService) Nearest(lat, lon float64) (models.Station, float64, error) {
	if lat < -90 || lat > 90 {
		return models.Station{}, 0, fmt.Errorf("invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return models.Station{}, 0, fmt.Errorf("invalid longitude: %f", lon)
	}

	stations, err := s.repo.Stations()
	if err != nil {
		return models.Station{}, 0, err
	}
	if len(stations) == 0 {
		return models.Station{}, 0, ErrNoStations
	}

	best := stations[0]
	bestDist := spatial.HaversineDistance(lat, lon, best.Latitude, best.Longitude)
	for _, st := range stations[1:] {
		d := spatial.HaversineDistance(lat, lon, st.Latitude, st.Longitude)
		if d < bestDist {
			best = st
			bestDist = d
		}
	}

	return best, bestDist, nil
}
