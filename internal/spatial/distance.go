package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// BoundingRect accumulates the lat/lng extent of a set of points.
type BoundingRect struct {
	rect s2.Rect
}

// NewBoundingRect returns an empty bounding rectangle.
func NewBoundingRect() *BoundingRect {
	return &BoundingRect{rect: s2.EmptyRect()}
}

// Add extends the rectangle to include the given point.
func (b *BoundingRect) Add(lat, lon float64) {
	b.rect = b.rect.AddPoint(s2.LatLngFromDegrees(lat, lon))
}

// IsEmpty reports whether no points have been added.
func (b *BoundingRect) IsEmpty() bool {
	return b.rect.IsEmpty()
}

// Bounds returns (minLat, maxLat, minLon, maxLon) in degrees.
func (b *BoundingRect) Bounds() (float64, float64, float64, float64) {
	if b.rect.IsEmpty() {
		return 0, 0, 0, 0
	}
	lo, hi := b.rect.Lo(), b.rect.Hi()
	return lo.Lat.Degrees(), hi.Lat.Degrees(), lo.Lng.Degrees(), hi.Lng.Degrees()
}

// Center returns the rectangle's center point in degrees.
func (b *BoundingRect) Center() (float64, float64) {
	if b.rect.IsEmpty() {
		return 0, 0
	}
	c := b.rect.Center()
	return c.Lat.Degrees(), c.Lng.Degrees()
}
