package service

import (
	"fmt"
	"sort"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
	"github.com/coastkeeper/hotspots-backend-go/internal/repository"
	"github.com/coastkeeper/hotspots-backend-go/internal/spatial"
)

// topParameterCount is how many of the most-observed parameters seed the
// constituent choice list.
const topParameterCount = 10

// CatalogService assembles the choice-list metadata the UI controls bind to
type CatalogService struct {
	repo *repository.DatasetRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo *repository.DatasetRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Catalog builds the full control metadata payload: the parameter choice
// list, global date range, sample-size bounds, stations, and the map
// extent for the initial view.
func (s *CatalogService) Catalog() (models.Catalog, error) {
	parameters, err := s.Parameters()
	if err != nil {
		return models.Catalog{}, err
	}

	start, end, err := s.repo.DateRange()
	if err != nil {
		return models.Catalog{}, err
	}

	maxCount, err := s.repo.MaxStationParameterCount()
	if err != nil {
		return models.Catalog{}, err
	}

	stations, err := s.repo.Stations()
	if err != nil {
		return models.Catalog{}, err
	}

	total, err := s.repo.ObservationCount()
	if err != nil {
		return models.Catalog{}, err
	}

	catalog := models.Catalog{
		Parameters:   parameters,
		Nutrients:    models.NutrientParameters(),
		MaxCount:     maxCount,
		Stations:     stations,
		Bounds:       stationBounds(stations),
		ObservationN: total,
	}
	if !start.IsZero() {
		catalog.StartDate = start.Format(models.DateLayout)
		catalog.EndDate = end.Format(models.DateLayout)
	}

	return catalog, nil
}

// Parameters builds the constituent choice list: the ten most-observed
// parameters unioned with every parameter that has a defined threshold,
// minus the fixed nutrient set. Nutrients are carried separately in the
// catalog so the UI can offer them as their own group.
func (s *CatalogService) Parameters() ([]models.Parameter, error) {
	top, err := s.repo.TopObservedParameters(topParameterCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load top parameters: %w", err)
	}

	thresholded, err := s.repo.ThresholdParameters()
	if err != nil {
		return nil, fmt.Errorf("failed to load threshold parameters: %w", err)
	}

	seen := make(map[models.Parameter]bool)
	var parameters []models.Parameter
	for _, p := range append(top, thresholded...) {
		if seen[p] || p.IsNutrient() {
			continue
		}
		seen[p] = true
		parameters = append(parameters, p)
	}

	sort.Slice(parameters, func(i, j int) bool { return parameters[i] < parameters[j] })
	return parameters, nil
}

// Waterbodies returns the receiving waterbodies known for the
// parameter's TMDL group, for the conditional multi-select picker. A
// parameter outside the TMDL taxonomy has none.
func (s *CatalogService) Waterbodies(param models.Parameter) ([]string, error) {
	group, ok := param.Group()
	if !ok {
		return nil, nil
	}
	return s.repo.ReceivingWaterbodies(group)
}

func stationBounds(stations []models.Station) models.MapBounds {
	rect := spatial.NewBoundingRect()
	for _, st := range stations {
		rect.Add(st.Latitude, st.Longitude)
	}
	if rect.IsEmpty() {
		return models.MapBounds{}
	}

	minLat, maxLat, minLon, maxLon := rect.Bounds()
	centerLat, centerLon := rect.Center()
	return models.MapBounds{
		MinLat:    minLat,
		MaxLat:    maxLat,
		MinLon:    minLon,
		MaxLon:    maxLon,
		CenterLat: centerLat,
		CenterLon: centerLon,
	}
}
