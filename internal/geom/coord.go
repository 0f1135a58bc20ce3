package geom

import (
	"fmt"
	"math"
)

// Coord is a 2D value used interchangeably as a point, a vector or a
// width/height pair. A Coord never holds NaN: NewCoord rejects it and the
// arithmetic methods replace an undefined component with 0.
type Coord struct {
	X float64
	Y float64
}

// LineMode selects how ProjectToLine maps a point onto a segment
type LineMode int

const (
	// ProjectClosest is the orthogonal projection onto the infinite line
	ProjectClosest LineMode = iota

	// ProjectVertical keeps x (clamped to the segment) and interpolates y
	ProjectVertical

	// ProjectHorizontal keeps y (clamped to the segment) and interpolates x
	ProjectHorizontal
)

// NewCoord builds a Coord, rejecting NaN components
func NewCoord(x, y float64) (Coord, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Coord{}, fmt.Errorf("new coord (%v, %v): %w", x, y, ErrNaN)
	}

	return Coord{X: x, Y: y}, nil
}

// Pt is shorthand for a Coord literal. NaN components become 0.
func Pt(x, y float64) Coord {
	return Coord{X: definite(x), Y: definite(y)}
}

// definite maps NaN to 0 so that no Coord ever carries it
func definite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return v
}

// Add returns c + o, elementwise
func (c Coord) Add(o Coord) Coord {
	return Pt(c.X+o.X, c.Y+o.Y)
}

// Sub returns c - o, elementwise
func (c Coord) Sub(o Coord) Coord {
	return Pt(c.X-o.X, c.Y-o.Y)
}

// Mul returns c * o, elementwise
func (c Coord) Mul(o Coord) Coord {
	return Pt(c.X*o.X, c.Y*o.Y)
}

// Div returns c / o, elementwise. A component divided by zero yields 0.
func (c Coord) Div(o Coord) Coord {
	return Pt(safeDiv(c.X, o.X), safeDiv(c.Y, o.Y))
}

// Scale multiplies both components by s
func (c Coord) Scale(s float64) Coord {
	return Pt(c.X*s, c.Y*s)
}

// Shrink divides both components by s. Dividing by zero yields the zero Coord.
func (c Coord) Shrink(s float64) Coord {
	return Pt(safeDiv(c.X, s), safeDiv(c.Y, s))
}

// Neg returns -c
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Abs returns c with both components made non-negative
func (c Coord) Abs() Coord {
	return Coord{X: math.Abs(c.X), Y: math.Abs(c.Y)}
}

// Min returns the componentwise minimum of c and o
func (c Coord) Min(o Coord) Coord {
	return Coord{X: math.Min(c.X, o.X), Y: math.Min(c.Y, o.Y)}
}

// Max returns the componentwise maximum of c and o
func (c Coord) Max(o Coord) Coord {
	return Coord{X: math.Max(c.X, o.X), Y: math.Max(c.Y, o.Y)}
}

// Round rounds both components to the nearest integer, halves away from zero
func (c Coord) Round() Coord {
	return Coord{X: math.Round(c.X), Y: math.Round(c.Y)}
}

// IsZero reports whether both components are 0
func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// Dot returns the dot product of c and o
func (c Coord) Dot(o Coord) float64 {
	return c.X*o.X + c.Y*o.Y
}

// Magnitude returns the Euclidean length of c
func (c Coord) Magnitude() float64 {
	return math.Hypot(c.X, c.Y)
}

// Normalized returns the unit vector pointing along c
func (c Coord) Normalized() (Coord, error) {
	m := c.Magnitude()
	if m == 0 {
		return Coord{}, ErrZeroVector
	}

	return Pt(c.X/m, c.Y/m), nil
}

// Distance returns the Euclidean distance between c and o
func (c Coord) Distance(o Coord) float64 {
	return o.Sub(c).Magnitude()
}

// SqDistance returns the Chebyshev distance max(|dx|, |dy|) between c and o
func (c Coord) SqDistance(o Coord) float64 {
	d := o.Sub(c).Abs()
	return math.Max(d.X, d.Y)
}

// Rotate rotates c about the origin. Positive degrees turn counter-clockwise.
func (c Coord) Rotate(degrees float64) Coord {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	return Pt(c.X*cos-c.Y*sin, c.X*sin+c.Y*cos)
}

// Clamp projects c into the closed intervals spanned by a
func (c Coord) Clamp(a Area) Coord {
	return Coord{
		X: clamp(c.X, a.Left(), a.Right()),
		Y: clamp(c.Y, a.Top(), a.Bottom()),
	}
}

// Map moves c from the frame of from into the frame of to, keeping its
// relative position. An axis on which from has no extent snaps to the centre
// of to instead of dividing by zero.
func (c Coord) Map(from, to Area) Coord {
	center := to.Center()
	out := center

	if from.W() != 0 {
		out.X = to.X() + (c.X-from.X())/from.W()*to.W()
	}

	if from.H() != 0 {
		out.Y = to.Y() + (c.Y-from.Y())/from.H()*to.H()
	}

	return Pt(out.X, out.Y)
}

// ProjectToLine maps c onto the line through p1 and p2.
//
// ProjectClosest drops a perpendicular onto the infinite line. ProjectVertical
// and ProjectHorizontal clamp one axis to the segment and interpolate the
// other, so the result always lies on the segment.
func (c Coord) ProjectToLine(p1, p2 Coord, mode LineMode) Coord {
	d := p2.Sub(p1)

	switch mode {
	case ProjectVertical:
		if d.X == 0 {
			return Coord{X: p1.X, Y: clamp(c.Y, p1.Y, p2.Y)}
		}

		x := clamp(c.X, p1.X, p2.X)
		t := (x - p1.X) / d.X
		return Pt(x, p1.Y+t*d.Y)

	case ProjectHorizontal:
		if d.Y == 0 {
			return Coord{X: clamp(c.X, p1.X, p2.X), Y: p1.Y}
		}

		y := clamp(c.Y, p1.Y, p2.Y)
		t := (y - p1.Y) / d.Y
		return Pt(p1.X+t*d.X, y)

	default:
		l := d.Dot(d)
		if l == 0 {
			return p1
		}

		t := c.Sub(p1).Dot(d) / l
		return p1.Add(d.Scale(t))
	}
}

// SpatialRemap moves c out of the frame defined by the segment a->b into the
// frame defined by c1->d1. The offset from a is rotated by the angle between
// the two segments, scaled by their length ratio, then placed relative to c1.
// A zero-length source segment maps every point onto c1.
func (c Coord) SpatialRemap(a, b, c1, d1 Coord) Coord {
	src := b.Sub(a)
	dst := d1.Sub(c1)

	srcLen := src.Magnitude()
	if srcLen == 0 {
		return c1
	}

	angle := (math.Atan2(dst.Y, dst.X) - math.Atan2(src.Y, src.X)) * 180 / math.Pi
	ratio := dst.Magnitude() / srcLen

	return c1.Add(c.Sub(a).Rotate(angle).Scale(ratio))
}

// MirrorX reflects c about the vertical line at x
func (c Coord) MirrorX(x float64) Coord {
	return Coord{X: 2*x - c.X, Y: c.Y}
}

// MirrorY reflects c about the horizontal line at y
func (c Coord) MirrorY(y float64) Coord {
	return Coord{X: c.X, Y: 2*y - c.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// clamp bounds v to the closed interval between lo and hi in either order
func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Max(lo, math.Min(hi, v))
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}
