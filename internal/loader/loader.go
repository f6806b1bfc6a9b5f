package loader

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/coastkeeper/hotspots-backend-go/internal/database"
	"github.com/coastkeeper/hotspots-backend-go/internal/models"
)

// Dataset file names expected under the data directory.
const (
	ObservationsFile = "observations.csv"
	ThresholdsFile   = "thresholds.csv"
	TmdlFile         = "tmdl.csv"
)

// Result reports what a dataset load imported.
type Result struct {
	Observations int
	Thresholds   int
	Associations int
	Skipped      int
}

// LoadAll imports the three dataset tables from CSV files under dataDir.
// The import runs in one transaction and replaces any previously loaded
// rows wholesale. Rows with unparseable numeric or date fields are
// skipped and counted, never fatal.
func LoadAll(conn *sql.DB, dataDir string) (Result, error) {
	var res Result

	err := database.TransactionOn(conn, func(tx *sql.Tx) error {
		for _, table := range []string{"observations", "thresholds", "tmdl_associations"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		n, skipped, err := loadObservations(tx, filepath.Join(dataDir, ObservationsFile))
		if err != nil {
			return err
		}
		res.Observations, res.Skipped = n, skipped

		n, skipped, err = loadThresholds(tx, filepath.Join(dataDir, ThresholdsFile))
		if err != nil {
			return err
		}
		res.Thresholds = n
		res.Skipped += skipped

		n, skipped, err = loadAssociations(tx, filepath.Join(dataDir, TmdlFile))
		if err != nil {
			return err
		}
		res.Associations = n
		res.Skipped += skipped

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Printf("Dataset loaded: %d observations, %d thresholds, %d TMDL associations (%d rows skipped)",
		res.Observations, res.Thresholds, res.Associations, res.Skipped)
	return res, nil
}

func loadObservations(tx *sql.Tx, path string) (int, int, error) {
	stmt, err := tx.Prepare(`INSERT INTO observations
		(station_code, watershed, parameter, date, result, longitude, latitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to prepare observation insert: %w", err)
	}
	defer stmt.Close()

	return loadCSV(path, func(row csvRow) error {
		obs, err := parseObservation(row)
		if err != nil {
			return err
		}
		_, err = stmt.Exec(obs.StationCode, obs.Watershed, string(obs.Parameter),
			obs.Date.Format(models.DateLayout), obs.Result, obs.Longitude, obs.Latitude)
		return err
	})
}

func loadThresholds(tx *sql.Tx, path string) (int, int, error) {
	stmt, err := tx.Prepare(`INSERT INTO thresholds (parameter, threshold) VALUES (?, ?)`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to prepare threshold insert: %w", err)
	}
	defer stmt.Close()

	return loadCSV(path, func(row csvRow) error {
		def, err := parseThreshold(row)
		if err != nil {
			return err
		}
		_, err = stmt.Exec(string(def.Parameter), def.Threshold)
		return err
	})
}

func loadAssociations(tx *sql.Tx, path string) (int, int, error) {
	stmt, err := tx.Prepare(`INSERT INTO tmdl_associations
		(param_group, station_code, receiving) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to prepare association insert: %w", err)
	}
	defer stmt.Close()

	return loadCSV(path, func(row csvRow) error {
		assoc, err := parseAssociation(row)
		if err != nil {
			return err
		}
		_, err = stmt.Exec(string(assoc.Group), assoc.StationCode, assoc.Receiving)
		return err
	})
}

// csvRow pairs a record with its header index for named-column access.
type csvRow struct {
	header map[string]int
	record []string
}

// Field returns the named column's trimmed value, or "" when absent.
func (r csvRow) Field(name string) string {
	i, ok := r.header[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// loadCSV streams path through insert, counting imported and skipped
// rows. Parse failures skip the row; database errors abort the load.
func loadCSV(path string, insert func(csvRow) error) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerRec, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	header := make(map[string]int, len(headerRec))
	for i, name := range headerRec {
		header[strings.TrimSpace(name)] = i
	}

	imported, skipped := 0, 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		if err := insert(csvRow{header: header, record: record}); err != nil {
			if _, ok := err.(*rowError); ok {
				skipped++
				continue
			}
			return 0, 0, fmt.Errorf("failed to import row from %s: %w", path, err)
		}
		imported++
	}

	return imported, skipped, nil
}

// rowError marks a row-level parse failure that should skip, not abort.
type rowError struct {
	msg string
}

func (e *rowError) Error() string { return e.msg }

func rowErrorf(format string, args ...interface{}) error {
	return &rowError{msg: fmt.Sprintf(format, args...)}
}

// parseObservation builds an Observation from a CSV row.
func parseObservation(row csvRow) (models.Observation, error) {
	station := row.Field("StationCode")
	param := row.Field("Parameter")
	if station == "" || param == "" {
		return models.Observation{}, rowErrorf("missing station or parameter")
	}

	date, err := time.Parse(models.DateLayout, row.Field("Date"))
	if err != nil {
		return models.Observation{}, rowErrorf("bad date %q", row.Field("Date"))
	}

	result, err := strconv.ParseFloat(row.Field("Result"), 64)
	if err != nil {
		return models.Observation{}, rowErrorf("bad result %q", row.Field("Result"))
	}

	lon, err := strconv.ParseFloat(row.Field("Longitude"), 64)
	if err != nil {
		return models.Observation{}, rowErrorf("bad longitude %q", row.Field("Longitude"))
	}
	lat, err := strconv.ParseFloat(row.Field("Latitude"), 64)
	if err != nil {
		return models.Observation{}, rowErrorf("bad latitude %q", row.Field("Latitude"))
	}

	return models.Observation{
		StationCode: station,
		Watershed:   row.Field("Watershed"),
		Parameter:   models.Parameter(param),
		Date:        date,
		Result:      result,
		Longitude:   lon,
		Latitude:    lat,
	}, nil
}

// parseThreshold builds a ThresholdDef from a CSV row.
func parseThreshold(row csvRow) (models.ThresholdDef, error) {
	param := row.Field("Parameter")
	if param == "" {
		return models.ThresholdDef{}, rowErrorf("missing parameter")
	}
	threshold, err := strconv.ParseFloat(row.Field("Threshold"), 64)
	if err != nil {
		return models.ThresholdDef{}, rowErrorf("bad threshold %q", row.Field("Threshold"))
	}
	return models.ThresholdDef{
		Parameter: models.Parameter(param),
		Threshold: threshold,
	}, nil
}

// parseAssociation builds a TmdlAssociation from a CSV row.
func parseAssociation(row csvRow) (models.TmdlAssociation, error) {
	group := row.Field("ParameterGroup")
	station := row.Field("StationCode")
	receiving := row.Field("Receiving")
	if group == "" || station == "" || receiving == "" {
		return models.TmdlAssociation{}, rowErrorf("missing group, station or receiving")
	}
	return models.TmdlAssociation{
		Group:       models.ParameterGroup(group),
		StationCode: station,
		Receiving:   receiving,
	}, nil
}
