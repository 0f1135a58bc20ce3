package geom

import "strconv"

// Axis is an optional float. The zero value is unset.
type Axis struct {
	v   float64
	set bool
}

// Some returns a set Axis holding v. NaN yields an unset Axis.
func Some(v float64) Axis {
	if v != v {
		return Axis{}
	}

	return Axis{v: v, set: true}
}

// Get returns the value and whether it is set
func (a Axis) Get() (float64, bool) {
	return a.v, a.set
}

// IsSet reports whether the axis holds a value
func (a Axis) IsSet() bool {
	return a.set
}

// Or returns the value, or fallback when unset
func (a Axis) Or(fallback float64) float64 {
	if !a.set {
		return fallback
	}

	return a.v
}

func (a Axis) String() string {
	if !a.set {
		return "-"
	}

	return strconv.FormatFloat(a.v, 'g', -1, 64)
}

// OptCoord is a Coord whose axes may individually be unspecified
type OptCoord struct {
	X Axis
	Y Axis
}

// Fill returns fallback with every set axis of o written over it
func (o OptCoord) Fill(fallback Coord) Coord {
	return Coord{X: o.X.Or(fallback.X), Y: o.Y.Or(fallback.Y)}
}

// IsEmpty reports whether no axis is set
func (o OptCoord) IsEmpty() bool {
	return !o.X.set && !o.Y.set
}

// OptArea is an Area whose four components may individually be unspecified
type OptArea struct {
	Point OptCoord
	Size  OptCoord
}

// Fill returns fallback with every set component of o written over it
func (o OptArea) Fill(fallback Area) Area {
	return AreaOf(o.Point.Fill(fallback.Point()), o.Size.Fill(fallback.Size()))
}

// IsEmpty reports whether no component is set
func (o OptArea) IsEmpty() bool {
	return o.Point.IsEmpty() && o.Size.IsEmpty()
}
