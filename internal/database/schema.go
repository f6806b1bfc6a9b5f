package database

import (
	"database/sql"
	"fmt"
)

// The dataset is fixed at three tables loaded once at startup, so the
// schema is embedded rather than managed through migration files.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS observations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		station_code TEXT NOT NULL,
		watershed TEXT NOT NULL,
		parameter TEXT NOT NULL,
		date TEXT NOT NULL,
		result REAL NOT NULL,
		longitude REAL NOT NULL,
		latitude REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_observations_parameter
		ON observations(parameter)`,
	`CREATE INDEX IF NOT EXISTS idx_observations_station_parameter
		ON observations(station_code, parameter)`,
	`CREATE TABLE IF NOT EXISTS thresholds (
		parameter TEXT PRIMARY KEY,
		threshold REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tmdl_associations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		param_group TEXT NOT NULL,
		station_code TEXT NOT NULL,
		receiving TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tmdl_group_station
		ON tmdl_associations(param_group, station_code)`,
}

func createSchema(conn *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// InitSchema creates the dataset tables on an externally opened handle.
// Used by tests running against in-memory databases.
func InitSchema(conn *sql.DB) error {
	return createSchema(conn)
}
