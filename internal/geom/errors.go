// Package geom provides the value algebra used to describe window areas:
// points and sizes (Coord), optional per-axis values (Axis), rectangle edges
// (EdgeType, Edge), rectangles (Area) and polygonal regions (Polygon).
//
// Every type is an immutable value. Methods that look like mutators return a
// modified copy and never touch the receiver.
package geom

import "errors"

var (
	// ErrNaN is returned when a coordinate would be constructed from NaN
	ErrNaN = errors.New("coordinate is NaN")

	// ErrZeroVector is returned when a direction is requested for a zero-length vector
	ErrZeroVector = errors.New("zero-length vector has no direction")

	// ErrTooFewPoints is returned when a polygon is built from fewer than three points
	ErrTooFewPoints = errors.New("polygon needs at least 3 points")

	// ErrInvertedRange is returned when a slice range ends before it starts
	ErrInvertedRange = errors.New("inverted range")
)
