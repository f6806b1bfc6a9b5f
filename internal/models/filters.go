package models

import (
	"fmt"
	"time"
)

// HotspotFilter represents the query parameters for the hotspot view
type HotspotFilter struct {
	Parameter   string   `form:"parameter"`   // constituent code, required
	StartDate   string   `form:"startDate"`   // YYYY-MM-DD, inclusive
	EndDate     string   `form:"endDate"`     // YYYY-MM-DD, inclusive
	Threshold   *float64 `form:"threshold"`   // user override; resolved default when absent
	MinCount    int      `form:"minCount"`    // minimum per-station sample size
	MaxCount    int      `form:"maxCount"`    // maximum per-station sample size, 0 = unbounded
	TMDL        bool     `form:"tmdl"`        // restrict to TMDL receiving waterbodies
	Waterbodies []string `form:"waterbodies"` // selected receiving waterbodies
}

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the range, inclusive on both ends.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// CountBounds is the inclusive sample-size filter for stations.
type CountBounds struct {
	Min int
	Max int
}

// Includes reports whether a station with n observations passes the filter.
func (b CountBounds) Includes(n int) bool {
	return n >= b.Min && n <= b.Max
}

// ParseDateRange parses and validates the filter's date strings.
func (f HotspotFilter) ParseDateRange() (DateRange, error) {
	start, err := time.Parse(DateLayout, f.StartDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid startDate %q: %w", f.StartDate, err)
	}
	end, err := time.Parse(DateLayout, f.EndDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid endDate %q: %w", f.EndDate, err)
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("endDate %s is before startDate %s", f.EndDate, f.StartDate)
	}
	return DateRange{Start: start, End: end}, nil
}
