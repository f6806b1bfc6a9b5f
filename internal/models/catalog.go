package models

// MapBounds is the geographic extent of the monitored stations, used for
// the initial map view.
type MapBounds struct {
	MinLat    float64 `json:"min_lat"`
	MaxLat    float64 `json:"max_lat"`
	MinLon    float64 `json:"min_lon"`
	MaxLon    float64 `json:"max_lon"`
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
}

// Catalog bundles the choice-list metadata the UI controls bind to.
type Catalog struct {
	Parameters   []Parameter `json:"parameters"`
	Nutrients    []Parameter `json:"nutrients"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	MaxCount     int         `json:"max_count"` // max per-station-per-parameter observation count
	Stations     []Station   `json:"stations"`
	Bounds       MapBounds   `json:"bounds"`
	ObservationN int         `json:"observation_count"`
}
