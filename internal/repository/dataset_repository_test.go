package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/coastkeeper/hotspots-backend-go/internal/database"
	"github.com/coastkeeper/hotspots-backend-go/internal/models"
)

func newTestRepo(t *testing.T) (*DatasetRepository, *sql.DB) {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.InitSchema(conn))
	return NewDatasetRepository(conn), conn
}

func insertObs(t *testing.T, conn *sql.DB, station, watershed, param, date string, result float64) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO observations
		(station_code, watershed, parameter, date, result, longitude, latitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		station, watershed, param, date, result, -117.2, 32.7)
	require.NoError(t, err)
}

func TestObservationsForParameter(t *testing.T) {
	repo, conn := newTestRepo(t)
	insertObs(t, conn, "STA1", "W1", "ENT", "2019-06-14", 210)
	insertObs(t, conn, "STA1", "W1", "ENT", "2019-07-02", 48)
	insertObs(t, conn, "STA2", "W2", "Cu", "2020-01-10", 3.1)

	obs, err := repo.ObservationsForParameter("ENT")
	require.NoError(t, err)
	require.Len(t, obs, 2)
	assert.Equal(t, "STA1", obs[0].StationCode)
	assert.Equal(t, models.Parameter("ENT"), obs[0].Parameter)
	assert.Equal(t, time.Date(2019, 6, 14, 0, 0, 0, 0, time.UTC), obs[0].Date)
	assert.Equal(t, 210.0, obs[0].Result)

	t.Run("unknown parameter yields no rows", func(t *testing.T) {
		obs, err := repo.ObservationsForParameter("PCB")
		require.NoError(t, err)
		assert.Empty(t, obs)
	})
}

func TestThresholdFor(t *testing.T) {
	repo, conn := newTestRepo(t)
	_, err := conn.Exec("INSERT INTO thresholds (parameter, threshold) VALUES ('ENT', 104)")
	require.NoError(t, err)

	threshold, ok, err := repo.ThresholdFor("ENT")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 104.0, threshold)

	_, ok, err = repo.ThresholdFor("Cu")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssociationsForGroup(t *testing.T) {
	repo, conn := newTestRepo(t)
	for _, row := range [][3]string{
		{"Pathogens", "STA1", "R1"},
		{"Pathogens", "STA1", "R2"},
		{"Pathogens", "STA2", "R1"},
		{"Metals", "STA3", "R9"},
	} {
		_, err := conn.Exec(`INSERT INTO tmdl_associations (param_group, station_code, receiving)
			VALUES (?, ?, ?)`, row[0], row[1], row[2])
		require.NoError(t, err)
	}

	byStation, err := repo.AssociationsForGroup(models.GroupPathogens)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, byStation["STA1"])
	assert.Equal(t, []string{"R1"}, byStation["STA2"])
	assert.NotContains(t, byStation, "STA3")

	waterbodies, err := repo.ReceivingWaterbodies(models.GroupPathogens)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, waterbodies)
}

func TestStationsAndDateRange(t *testing.T) {
	repo, conn := newTestRepo(t)
	insertObs(t, conn, "STA1", "W1", "ENT", "2019-06-14", 210)
	insertObs(t, conn, "STA1", "W1", "ENT", "2021-03-01", 12)
	insertObs(t, conn, "STA2", "W2", "Cu", "2018-11-20", 3.1)

	stations, err := repo.Stations()
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "STA1", stations[0].Code)
	assert.Equal(t, "W1", stations[0].Watershed)

	start, end, err := repo.DateRange()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 11, 20, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateRangeEmptyDataset(t *testing.T) {
	repo, _ := newTestRepo(t)
	start, end, err := repo.DateRange()
	require.NoError(t, err)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestMaxStationParameterCount(t *testing.T) {
	repo, conn := newTestRepo(t)
	assertMax := func(want int) {
		t.Helper()
		max, err := repo.MaxStationParameterCount()
		require.NoError(t, err)
		assert.Equal(t, want, max)
	}

	assertMax(0)

	insertObs(t, conn, "STA1", "W1", "ENT", "2019-06-14", 210)
	insertObs(t, conn, "STA1", "W1", "ENT", "2019-07-02", 48)
	insertObs(t, conn, "STA1", "W1", "Cu", "2019-07-02", 2.2)
	assertMax(2)
}

func TestTopObservedParameters(t *testing.T) {
	repo, conn := newTestRepo(t)
	for i := 0; i < 3; i++ {
		insertObs(t, conn, "STA1", "W1", "ENT", "2019-06-14", 210)
	}
	insertObs(t, conn, "STA1", "W1", "Cu", "2019-06-14", 2.2)
	insertObs(t, conn, "STA1", "W1", "Cu", "2019-06-15", 2.4)
	insertObs(t, conn, "STA1", "W1", "TP", "2019-06-14", 0.8)

	params, err := repo.TopObservedParameters(2)
	require.NoError(t, err)
	assert.Equal(t, []models.Parameter{"ENT", "Cu"}, params)
}
