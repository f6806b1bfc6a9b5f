package service

import (
	"fmt"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
	"github.com/coastkeeper/hotspots-backend-go/internal/repository"
	"github.com/coastkeeper/hotspots-backend-go/internal/stats"
)

// ThresholdService resolves exceedance thresholds for constituents
type ThresholdService struct {
	repo *repository.DatasetRepository
}

// NewThresholdService creates a new threshold service
func NewThresholdService(repo *repository.DatasetRepository) *ThresholdService {
	return &ThresholdService{repo: repo}
}

// Resolve looks up the defined threshold for a parameter. The boolean is
// false when no threshold is defined; that is an expected state, not an
// error.
func (s *ThresholdService) Resolve(param models.Parameter) (float64, bool, error) {
	return s.repo.ThresholdFor(param)
}

// DefaultAndBounds computes the seed value and bounds for the
// user-adjustable threshold input: Min/Max are the observed result range
// for the parameter, Default is the defined threshold when present, else
// the median of observed results. The default only seeds the input; user
// overrides are not constrained by it.
func (s *ThresholdService) DefaultAndBounds(param models.Parameter) (models.ThresholdBounds, error) {
	observations, err := s.repo.ObservationsForParameter(param)
	if err != nil {
		return models.ThresholdBounds{}, fmt.Errorf("failed to load observations for %s: %w", param, err)
	}

	results := make([]float64, len(observations))
	for i, obs := range observations {
		results[i] = obs.Result
	}

	bounds := models.ThresholdBounds{
		Min: stats.Min(results),
		Max: stats.Max(results),
	}

	threshold, defined, err := s.repo.ThresholdFor(param)
	if err != nil {
		return models.ThresholdBounds{}, err
	}
	if defined {
		bounds.Default = threshold
		bounds.Defined = true
	} else {
		bounds.Default = stats.Median(results)
	}

	return bounds, nil
}
