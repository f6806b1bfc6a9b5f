package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/coastkeeper/hotspots-backend-go/internal/models"
)

// DatasetRepository provides read-only access to the loaded dataset.
// The tables are immutable after the startup load, so every method is
// safe for concurrent use.
type DatasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// ObservationsForParameter retrieves all observations for a constituent,
// ordered by station and date.
func (r *DatasetRepository) ObservationsForParameter(param models.Parameter) ([]models.Observation, error) {
	query := `SELECT station_code, watershed, parameter, date, result, longitude, latitude
		FROM observations
		WHERE parameter = ?
		ORDER BY station_code, date`

	rows, err := r.db.Query(query, string(param))
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var observations []models.Observation
	for rows.Next() {
		var obs models.Observation
		var code, date string
		if err := rows.Scan(&obs.StationCode, &obs.Watershed, &code, &date,
			&obs.Result, &obs.Longitude, &obs.Latitude); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		obs.Parameter = models.Parameter(code)
		obs.Date, err = time.Parse(models.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", date, err)
		}
		observations = append(observations, obs)
	}

	return observations, rows.Err()
}

// ThresholdFor looks up the defined threshold for a parameter.
// The second return is false when no threshold row exists.
func (r *DatasetRepository) ThresholdFor(param models.Parameter) (float64, bool, error) {
	var threshold float64
	err := r.db.QueryRow("SELECT threshold FROM thresholds WHERE parameter = ?", string(param)).Scan(&threshold)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query threshold: %w", err)
	}
	return threshold, true, nil
}

// ThresholdParameters returns every parameter with a defined threshold.
func (r *DatasetRepository) ThresholdParameters() ([]models.Parameter, error) {
	rows, err := r.db.Query("SELECT parameter FROM thresholds ORDER BY parameter")
	if err != nil {
		return nil, fmt.Errorf("failed to query threshold parameters: %w", err)
	}
	defer rows.Close()

	var params []models.Parameter
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan parameter: %w", err)
		}
		params = append(params, models.Parameter(p))
	}
	return params, rows.Err()
}

// AssociationsForGroup retrieves the TMDL associations for a parameter
// group, keyed by station code. A station may be regulated under more
// than one receiving waterbody.
func (r *DatasetRepository) AssociationsForGroup(group models.ParameterGroup) (map[string][]string, error) {
	query := `SELECT station_code, receiving FROM tmdl_associations
		WHERE param_group = ?
		ORDER BY station_code, receiving`

	rows, err := r.db.Query(query, string(group))
	if err != nil {
		return nil, fmt.Errorf("failed to query TMDL associations: %w", err)
	}
	defer rows.Close()

	byStation := make(map[string][]string)
	for rows.Next() {
		var station, receiving string
		if err := rows.Scan(&station, &receiving); err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}
		byStation[station] = append(byStation[station], receiving)
	}
	return byStation, rows.Err()
}

// ReceivingWaterbodies returns the distinct receiving waterbodies known
// for a parameter group, for the multi-select picker.
func (r *DatasetRepository) ReceivingWaterbodies(group models.ParameterGroup) ([]string, error) {
	query := `SELECT DISTINCT receiving FROM tmdl_associations
		WHERE param_group = ?
		ORDER BY receiving`

	rows, err := r.db.Query(query, string(group))
	if err != nil {
		return nil, fmt.Errorf("failed to query receiving waterbodies: %w", err)
	}
	defer rows.Close()

	var waterbodies []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to scan waterbody: %w", err)
		}
		waterbodies = append(waterbodies, w)
	}
	return waterbodies, rows.Err()
}

// Stations retrieves the distinct monitoring stations with coordinates.
func (r *DatasetRepository) Stations() ([]models.Station, error) {
	query := `SELECT station_code, MIN(watershed), MIN(latitude), MIN(longitude)
		FROM observations
		GROUP BY station_code
		ORDER BY station_code`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.Code, &s.Watershed, &s.Latitude, &s.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

// DateRange retrieves the global min/max observation dates.
func (r *DatasetRepository) DateRange() (time.Time, time.Time, error) {
	var minDate, maxDate sql.NullString
	err := r.db.QueryRow("SELECT MIN(date), MAX(date) FROM observations").Scan(&minDate, &maxDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to query date range: %w", err)
	}
	if !minDate.Valid || !maxDate.Valid {
		return time.Time{}, time.Time{}, nil
	}

	start, err := time.Parse(models.DateLayout, minDate.String)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse min date: %w", err)
	}
	end, err := time.Parse(models.DateLayout, maxDate.String)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse max date: %w", err)
	}
	return start, end, nil
}

// MaxStationParameterCount returns the largest per-station-per-parameter
// observation count, the upper bound of the sample-size slider.
func (r *DatasetRepository) MaxStationParameterCount() (int, error) {
	query := `SELECT COALESCE(MAX(n), 0) FROM (
		SELECT COUNT(*) AS n FROM observations GROUP BY station_code, parameter
	)`

	var max int
	if err := r.db.QueryRow(query).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to query max station count: %w", err)
	}
	return max, nil
}

// TopObservedParameters returns the limit most-observed parameters,
// busiest first.
func (r *DatasetRepository) TopObservedParameters(limit int) ([]models.Parameter, error) {
	query := `SELECT parameter FROM observations
		GROUP BY parameter
		ORDER BY COUNT(*) DESC, parameter
		LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top parameters: %w", err)
	}
	defer rows.Close()

	var params []models.Parameter
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan parameter: %w", err)
		}
		params = append(params, models.Parameter(p))
	}
	return params, rows.Err()
}

// ObservationCount returns the total number of loaded observations.
func (r *DatasetRepository) ObservationCount() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM observations").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count observations: %w", err)
	}
	return n, nil
}
