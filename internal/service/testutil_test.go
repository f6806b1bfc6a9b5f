package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/coastkeeper/hotspots-backend-go/internal/database"
	"github.com/coastkeeper/hotspots-backend-go/internal/repository"
)

func newTestRepo(t *testing.T) (*repository.DatasetRepository, *sql.DB) {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.InitSchema(conn))
	return repository.NewDatasetRepository(conn), conn
}

func insertObs(t *testing.T, conn *sql.DB, station, watershed, param, date string, result float64) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO observations
		(station_code, watershed, parameter, date, result, longitude, latitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		station, watershed, param, date, result, -117.2, 32.7)
	require.NoError(t, err)
}

func insertThreshold(t *testing.T, conn *sql.DB, param string, threshold float64) {
	t.Helper()
	_, err := conn.Exec("INSERT INTO thresholds (parameter, threshold) VALUES (?, ?)", param, threshold)
	require.NoError(t, err)
}

func insertAssociation(t *testing.T, conn *sql.DB, group, station, receiving string) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO tmdl_associations (param_group, station_code, receiving)
		VALUES (?, ?, ?)`, group, station, receiving)
	require.NoError(t, err)
}
