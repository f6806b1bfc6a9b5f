package viz

import (
	"fmt"
	"math"
)

// Fixed visual scale for the hotspot map: percentages live on [0,100],
// point radii on [4,17].
const (
	DomainMin = 0.0
	DomainMax = 100.0
	SizeMin   = 4.0
	SizeMax   = 17.0

	// SentinelColor is used for missing or NaN percentages.
	SentinelColor = "#808080"

	// LegendTitle labels the map legend.
	LegendTitle = "% exceeding"
)

// rampStops is a yellow-to-red ramp (YlOrRd) evaluated at equal intervals
// across the domain.
var rampStops = []rgb{
	{255, 255, 178}, // 0
	{254, 204, 92},  // 25
	{253, 141, 60},  // 50
	{240, 59, 32},   // 75
	{189, 0, 38},    // 100
}

type rgb struct {
	r, g, b uint8
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// Color maps an exceedance percentage to a hex color on the fixed
// [0,100] ramp. NaN maps to the sentinel color; out-of-domain values are
// clamped.
func Color(pct float64) string {
	if math.IsNaN(pct) {
		return SentinelColor
	}
	pct = clamp(pct, DomainMin, DomainMax)

	// Position within the ramp segments.
	pos := pct / DomainMax * float64(len(rampStops)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return rampStops[lower].hex()
	}

	w := pos - float64(lower)
	lo, hi := rampStops[lower], rampStops[upper]
	return rgb{
		r: lerp(lo.r, hi.r, w),
		g: lerp(lo.g, hi.g, w),
		b: lerp(lo.b, hi.b, w),
	}.hex()
}

// Size linearly rescales an exceedance percentage from [0,100] to the
// fixed point-radius range [4,17]. NaN gets the minimum size.
func Size(pct float64) float64 {
	if math.IsNaN(pct) {
		return SizeMin
	}
	pct = clamp(pct, DomainMin, DomainMax)
	return SizeMin + (pct-DomainMin)/(DomainMax-DomainMin)*(SizeMax-SizeMin)
}

// Label formats the per-point map label for a station.
func Label(stationCode string, exceedsPct float64, n int) string {
	return fmt.Sprintf("%s: %.0f %% exceeding, %d total obs.", stationCode, exceedsPct, n)
}

// LegendStops returns the ramp's hex stops in domain order.
func LegendStops() []string {
	stops := make([]string, len(rampStops))
	for i, c := range rampStops {
		stops[i] = c.hex()
	}
	return stops
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b uint8, w float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*w))
}
