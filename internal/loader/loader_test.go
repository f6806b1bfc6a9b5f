package loader

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/coastkeeper/hotspots-backend-go/internal/database"
	"github.com/coastkeeper/hotspots-backend-go/internal/models"
)

func newRow(header []string, record []string) csvRow {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return csvRow{header: idx, record: record}
}

var obsHeader = []string{"StationCode", "Watershed", "Parameter", "Date", "Result", "Longitude", "Latitude"}

func TestParseObservation(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		row := newRow(obsHeader, []string{"STA1", "San Pedro Creek", "ENT", "2019-06-14", "210", "-117.25", "32.79"})
		obs, err := parseObservation(row)

		require.NoError(t, err)
		assert.Equal(t, "STA1", obs.StationCode)
		assert.Equal(t, "San Pedro Creek", obs.Watershed)
		assert.Equal(t, models.Parameter("ENT"), obs.Parameter)
		assert.Equal(t, time.Date(2019, 6, 14, 0, 0, 0, 0, time.UTC), obs.Date)
		assert.Equal(t, 210.0, obs.Result)
		assert.Equal(t, -117.25, obs.Longitude)
		assert.Equal(t, 32.79, obs.Latitude)
	})

	t.Run("bad date is a row error", func(t *testing.T) {
		row := newRow(obsHeader, []string{"STA1", "W", "ENT", "14/06/2019", "210", "-117.25", "32.79"})
		_, err := parseObservation(row)
		require.Error(t, err)
		assert.IsType(t, &rowError{}, err)
	})

	t.Run("non-numeric result is a row error", func(t *testing.T) {
		row := newRow(obsHeader, []string{"STA1", "W", "ENT", "2019-06-14", "ND", "-117.25", "32.79"})
		_, err := parseObservation(row)
		require.Error(t, err)
		assert.IsType(t, &rowError{}, err)
	})

	t.Run("missing station is a row error", func(t *testing.T) {
		row := newRow(obsHeader, []string{"", "W", "ENT", "2019-06-14", "210", "-117.25", "32.79"})
		_, err := parseObservation(row)
		require.Error(t, err)
	})
}

func TestParseThreshold(t *testing.T) {
	row := newRow([]string{"Parameter", "Threshold"}, []string{"ENT", "104"})
	def, err := parseThreshold(row)
	require.NoError(t, err)
	assert.Equal(t, models.Parameter("ENT"), def.Parameter)
	assert.Equal(t, 104.0, def.Threshold)

	_, err = parseThreshold(newRow([]string{"Parameter", "Threshold"}, []string{"ENT", "n/a"}))
	require.Error(t, err)
}

func TestParseAssociation(t *testing.T) {
	row := newRow([]string{"ParameterGroup", "StationCode", "Receiving"}, []string{"Pathogens", "STA1", "R1"})
	assoc, err := parseAssociation(row)
	require.NoError(t, err)
	assert.Equal(t, models.GroupPathogens, assoc.Group)
	assert.Equal(t, "STA1", assoc.StationCode)
	assert.Equal(t, "R1", assoc.Receiving)

	_, err = parseAssociation(newRow([]string{"ParameterGroup", "StationCode", "Receiving"}, []string{"Pathogens", "", "R1"}))
	require.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ObservationsFile,
		"StationCode,Watershed,Parameter,Date,Result,Longitude,Latitude\n"+
			"STA1,W1,ENT,2019-06-14,210,-117.25,32.79\n"+
			"STA1,W1,ENT,2019-07-02,48,-117.25,32.79\n"+
			"STA2,W2,Cu,2020-01-10,3.1,-117.10,32.66\n"+
			"STA3,W1,ENT,bad-date,11,-117.20,32.70\n")
	writeFile(t, dir, ThresholdsFile,
		"Parameter,Threshold\nENT,104\n")
	writeFile(t, dir, TmdlFile,
		"ParameterGroup,StationCode,Receiving\nPathogens,STA1,R1\n")

	conn := newTestDB(t)
	res, err := LoadAll(conn, dir)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Observations)
	assert.Equal(t, 1, res.Thresholds)
	assert.Equal(t, 1, res.Associations)
	assert.Equal(t, 1, res.Skipped)

	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM observations").Scan(&n))
	assert.Equal(t, 3, n)

	t.Run("reload replaces rather than appends", func(t *testing.T) {
		res, err := LoadAll(conn, dir)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Observations)

		require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM observations").Scan(&n))
		assert.Equal(t, 3, n)
	})

	t.Run("missing file aborts the load", func(t *testing.T) {
		_, err := LoadAll(conn, t.TempDir())
		require.Error(t, err)
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.InitSchema(conn))
	return conn
}
