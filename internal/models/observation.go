package models

import "time"

// DateLayout is the calendar-date format used throughout the dataset.
const DateLayout = "2006-01-02"

// Observation represents a single water-quality measurement at a station.
// Immutable once loaded; many observations per (StationCode, Parameter).
type Observation struct {
	StationCode string    `json:"station_code" db:"station_code"`
	Watershed   string    `json:"watershed" db:"watershed"`
	Parameter   Parameter `json:"parameter" db:"parameter"`
	Date        time.Time `json:"date" db:"date"`
	Result      float64   `json:"result" db:"result"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Latitude    float64   `json:"latitude" db:"latitude"`
}

// ThresholdDef represents the defined exceedance threshold for a parameter.
// At most one row per parameter; parameters without a row fall back to the
// median of in-scope results.
type ThresholdDef struct {
	Parameter Parameter `json:"parameter" db:"parameter"`
	Threshold float64   `json:"threshold" db:"threshold"`
}

// ThresholdBounds seeds the user-adjustable threshold input: Min/Max are
// the observed result range for the parameter, Default is the defined
// threshold when present, else the median.
type ThresholdBounds struct {
	Min     float64 `json:"min"`
	Default float64 `json:"default"`
	Max     float64 `json:"max"`
	Defined bool    `json:"defined"`
}

// TmdlAssociation maps a station to the receiving waterbody it is
// regulated under for a parameter group.
type TmdlAssociation struct {
	Group       ParameterGroup `json:"group" db:"param_group"`
	StationCode string         `json:"station_code" db:"station_code"`
	Receiving   string         `json:"receiving" db:"receiving"`
}

// Station represents a distinct monitoring station with coordinates.
type Station struct {
	Code      string  `json:"code" db:"station_code"`
	Watershed string  `json:"watershed" db:"watershed"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}
