package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
	"github.com/coastkeeper/hotspots-backend-go/internal/repository"
	"github.com/coastkeeper/hotspots-backend-go/internal/viz"
)

// HotspotService computes per-station exceedance summaries for the map
type HotspotService struct {
	repo       *repository.DatasetRepository
	thresholds *ThresholdService
}

// NewHotspotService creates a new hotspot service
func NewHotspotService(repo *repository.DatasetRepository, thresholds *ThresholdService) *HotspotService {
	return &HotspotService{
		repo:       repo,
		thresholds: thresholds,
	}
}

// Hotspots runs the full pipeline for one filter state: resolve the
// threshold, select the in-scope observations, aggregate per station,
// and attach the visual encoding and legend.
func (s *HotspotService) Hotspots(filter models.HotspotFilter) (models.HotspotResult, error) {
	param := models.Parameter(filter.Parameter)

	dateRange, err := filter.ParseDateRange()
	if err != nil {
		return models.HotspotResult{}, err
	}

	threshold, err := s.effectiveThreshold(param, filter.Threshold)
	if err != nil {
		return models.HotspotResult{}, err
	}

	rows, err := s.FilterObservations(param, filter.TMDL, filter.Waterbodies)
	if err != nil {
		return models.HotspotResult{}, err
	}

	bounds := models.CountBounds{Min: filter.MinCount, Max: filter.MaxCount}
	if bounds.Max <= 0 {
		bounds.Max = math.MaxInt
	}

	return models.HotspotResult{
		Parameter: param,
		Threshold: threshold,
		Stations:  Aggregate(rows, threshold, dateRange, bounds),
		Legend: models.Legend{
			Title:  viz.LegendTitle,
			Domain: []float64{viz.DomainMin, viz.DomainMax},
			Stops:  viz.LegendStops(),
		},
	}, nil
}

// effectiveThreshold prefers the user's override; otherwise the defined
// threshold, falling back to the median of observed results.
func (s *HotspotService) effectiveThreshold(param models.Parameter, override *float64) (float64, error) {
	if override != nil {
		return *override, nil
	}
	bounds, err := s.thresholds.DefaultAndBounds(param)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve threshold for %s: %w", param, err)
	}
	return bounds.Default, nil
}

// FilterObservations selects the observation rows in scope for the
// current view. With the TMDL restriction off, or with no waterbodies
// selected, every observation for the parameter passes through. With the
// restriction on, only stations regulated under a selected receiving
// waterbody remain, and each row's watershed is relabeled to the matched
// receiving waterbody. A station regulated under several selected
// waterbodies contributes a row per match, so each receiving body gets
// its own aggregation group.
func (s *HotspotService) FilterObservations(param models.Parameter, tmdlEnabled bool, selectedWaterbodies []string) ([]models.Observation, error) {
	observations, err := s.repo.ObservationsForParameter(param)
	if err != nil {
		return nil, fmt.Errorf("failed to load observations for %s: %w", param, err)
	}

	if !tmdlEnabled || len(selectedWaterbodies) == 0 {
		return observations, nil
	}

	group, ok := param.Group()
	if !ok {
		// No TMDL taxonomy group for this parameter: nothing can match.
		return nil, nil
	}

	byStation, err := s.repo.AssociationsForGroup(group)
	if err != nil {
		return nil, fmt.Errorf("failed to load TMDL associations for %s: %w", group, err)
	}

	selected := make(map[string]bool, len(selectedWaterbodies))
	for _, w := range selectedWaterbodies {
		selected[w] = true
	}

	var filtered []models.Observation
	for _, obs := range observations {
		for _, receiving := range byStation[obs.StationCode] {
			if !selected[receiving] {
				continue
			}
			relabeled := obs
			relabeled.Watershed = receiving
			filtered = append(filtered, relabeled)
		}
	}

	return filtered, nil
}

// stationKey groups aggregation rows; after TMDL relabeling the same
// station code can appear under several watershed labels.
type stationKey struct {
	watershed string
	station   string
}

type stationAccum struct {
	exceeding int // date-filtered rows with Result > threshold
	latitude  float64
	longitude float64
}

// Aggregate reduces observation rows to one StationSummary per station.
// Only stations with at least one row inside the date range appear, but
// the sample size n counts every in-scope row for the station over the
// full period of record; the displayed percentage is therefore relative
// to the total record, matching the upstream report's behavior.
func Aggregate(rows []models.Observation, threshold float64, dateRange models.DateRange, countBounds models.CountBounds) []models.StationSummary {
	totals := make(map[stationKey]int)
	for _, obs := range rows {
		totals[stationKey{watershed: obs.Watershed, station: obs.StationCode}]++
	}

	accums := make(map[stationKey]*stationAccum)
	for _, obs := range rows {
		if !dateRange.Contains(obs.Date) {
			continue
		}
		key := stationKey{watershed: obs.Watershed, station: obs.StationCode}
		acc, ok := accums[key]
		if !ok {
			acc = &stationAccum{latitude: obs.Latitude, longitude: obs.Longitude}
			accums[key] = acc
		}
		if obs.Result > threshold {
			acc.exceeding++
		}
	}

	summaries := make([]models.StationSummary, 0, len(accums))
	for key, acc := range accums {
		n := totals[key]
		if !countBounds.Includes(n) {
			continue
		}

		pct := math.Round(100 * float64(acc.exceeding) / float64(n))
		summaries = append(summaries, models.StationSummary{
			StationCode: key.station,
			Watershed:   key.watershed,
			ExceedsPct:  pct,
			SampleCount: n,
			Color:       viz.Color(pct),
			Size:        viz.Size(pct),
			Label:       viz.Label(key.station, pct, n),
			Latitude:    acc.latitude,
			Longitude:   acc.longitude,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Watershed != summaries[j].Watershed {
			return summaries[i].Watershed < summaries[j].Watershed
		}
		return summaries[i].StationCode < summaries[j].StationCode
	})

	return summaries
}
