package models

// StationSummary is the per-station aggregation rendered on the hotspot
// map. Recomputed wholesale on every filter change; never persisted.
type StationSummary struct {
	StationCode string  `json:"station_code"`
	Watershed   string  `json:"watershed"`
	ExceedsPct  float64 `json:"exceeds_pct"`  // 0-100, rounded to whole percent
	SampleCount int     `json:"sample_count"` // total period-of-record observations
	Color       string  `json:"color"`
	Size        float64 `json:"size"`
	Label       string  `json:"label"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Legend describes the fixed color scale the map frontend renders.
type Legend struct {
	Title  string    `json:"title"`
	Domain []float64 `json:"domain"`
	Stops  []string  `json:"stops"`
}

// HotspotResult is the full payload handed to the map layer.
type HotspotResult struct {
	Parameter Parameter        `json:"parameter"`
	Threshold float64          `json:"threshold"`
	Stations  []StationSummary `json:"stations"`
	Legend    Legend           `json:"legend"`
}
