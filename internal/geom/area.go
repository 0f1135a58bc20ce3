package geom

import (
	"fmt"
	"math"
)

// Area is an axis-aligned rectangle: a top-left point and a size. The size
// is never negative; every constructor and method clamps it to zero.
type Area struct {
	point Coord
	size  Coord
}

// NewArea builds an Area from its top-left corner and size
func NewArea(x, y, w, h float64) Area {
	return AreaOf(Pt(x, y), Pt(w, h))
}

// AreaOf builds an Area from a point and a size
func AreaOf(point, size Coord) Area {
	return Area{point: point, size: Coord{X: math.Max(0, size.X), Y: math.Max(0, size.Y)}}
}

// FromLTRB builds an Area from its edges. An inverted pair collapses to zero
// extent at the left/top value.
func FromLTRB(left, top, right, bottom float64) Area {
	return NewArea(left, top, right-left, bottom-top)
}

func (a Area) Point() Coord { return a.point }
func (a Area) Size() Coord  { return a.size }

func (a Area) X() float64 { return a.point.X }
func (a Area) Y() float64 { return a.point.Y }
func (a Area) W() float64 { return a.size.X }
func (a Area) H() float64 { return a.size.Y }

func (a Area) Left() float64   { return a.point.X }
func (a Area) Top() float64    { return a.point.Y }
func (a Area) Right() float64  { return a.point.X + a.size.X }
func (a Area) Bottom() float64 { return a.point.Y + a.size.Y }

// Center returns point + size/2
func (a Area) Center() Coord {
	return a.point.Add(a.size.Scale(0.5))
}

// IsEmpty reports whether the area has zero width or height
func (a Area) IsEmpty() bool {
	return a.size.X <= 0 || a.size.Y <= 0
}

// Copy returns a. Areas are values; this exists for call sites that want to
// make the copy explicit.
func (a Area) Copy() Area {
	return a
}

// WithPoint returns a moved so its top-left corner is p
func (a Area) WithPoint(p Coord) Area {
	return AreaOf(p, a.size)
}

// WithSize returns a resized to s, keeping its top-left corner
func (a Area) WithSize(s Coord) Area {
	return AreaOf(a.point, s)
}

// Translate returns a shifted by d
func (a Area) Translate(d Coord) Area {
	return AreaOf(a.point.Add(d), a.size)
}

// Scale multiplies point and size by s, mapping an area between DPI scales
func (a Area) Scale(s float64) Area {
	return AreaOf(a.point.Scale(s), a.size.Scale(s))
}

// MoveLeft slides the area so its left edge is at v; width is unchanged
func (a Area) MoveLeft(v float64) Area {
	return AreaOf(Pt(v, a.point.Y), a.size)
}

// MoveRight slides the area so its right edge is at v; width is unchanged
func (a Area) MoveRight(v float64) Area {
	return AreaOf(Pt(v-a.size.X, a.point.Y), a.size)
}

// MoveTop slides the area so its top edge is at v; height is unchanged
func (a Area) MoveTop(v float64) Area {
	return AreaOf(Pt(a.point.X, v), a.size)
}

// MoveBottom slides the area so its bottom edge is at v; height is unchanged
func (a Area) MoveBottom(v float64) Area {
	return AreaOf(Pt(a.point.X, v-a.size.Y), a.size)
}

// ResizeLeft moves only the left edge to v; the right edge stays put.
// Moving it past the right edge collapses the width to zero at v.
func (a Area) ResizeLeft(v float64) Area {
	return AreaOf(Pt(v, a.point.Y), Pt(a.size.X+(a.point.X-v), a.size.Y))
}

// ResizeRight moves only the right edge to v; the left edge stays put
func (a Area) ResizeRight(v float64) Area {
	return AreaOf(a.point, Pt(v-a.point.X, a.size.Y))
}

// ResizeTop moves only the top edge to v; the bottom edge stays put.
// Moving it past the bottom edge collapses the height to zero at v.
func (a Area) ResizeTop(v float64) Area {
	return AreaOf(Pt(a.point.X, v), Pt(a.size.X, a.size.Y+(a.point.Y-v)))
}

// ResizeBottom moves only the bottom edge to v; the top edge stays put
func (a Area) ResizeBottom(v float64) Area {
	return AreaOf(a.point, Pt(a.size.X, v-a.point.Y))
}

// SetEdge moves every edge flagged in t. Left and Right read pos.X, Top and
// Bottom read pos.Y. With resize the opposite edge stays fixed, otherwise the
// whole area slides. With relative, pos is a delta from the current edge.
func (a Area) SetEdge(t EdgeType, pos Coord, resize, relative bool) Area {
	out := a

	if t.Has(Left) {
		v := pos.X
		if relative {
			v += out.Left()
		}

		out = pick(resize, out.ResizeLeft, out.MoveLeft)(v)
	}

	if t.Has(Right) {
		v := pos.X
		if relative {
			v += out.Right()
		}

		out = pick(resize, out.ResizeRight, out.MoveRight)(v)
	}

	if t.Has(Top) {
		v := pos.Y
		if relative {
			v += out.Top()
		}

		out = pick(resize, out.ResizeTop, out.MoveTop)(v)
	}

	if t.Has(Bottom) {
		v := pos.Y
		if relative {
			v += out.Bottom()
		}

		out = pick(resize, out.ResizeBottom, out.MoveBottom)(v)
	}

	return out
}

func pick(resize bool, r, m func(float64) Area) func(float64) Area {
	if resize {
		return r
	}

	return m
}

// Edge returns the point of a at side or corner t. Sides yield their
// midpoint; corners yield the corner. Anything else yields the centre.
func (a Area) Edge(t EdgeType) Edge {
	c := a.Center()
	p := c

	switch t.Horizontal() {
	case Left:
		p.X = a.Left()
	case Right:
		p.X = a.Right()
	}

	switch t.Vertical() {
	case Top:
		p.Y = a.Top()
	case Bottom:
		p.Y = a.Bottom()
	}

	return Edge{Type: t, Pos: p}
}

// EdgeAt returns p mapped onto side or corner t: sides keep p's coordinate
// along the side, clamped to it; corners ignore p.
func (a Area) EdgeAt(t EdgeType, p Coord) Edge {
	if t.IsCorner() {
		return a.Edge(t)
	}

	q := p.Clamp(a)

	switch t {
	case Left:
		q.X = a.Left()
	case Right:
		q.X = a.Right()
	case Top:
		q.Y = a.Top()
	case Bottom:
		q.Y = a.Bottom()
	}

	return Edge{Type: t, Pos: q}
}

// Corners returns the four corners in the order TopLeft, TopRight,
// BottomLeft, BottomRight
func (a Area) Corners() [4]Edge {
	return [4]Edge{a.Edge(TopLeft), a.Edge(TopRight), a.Edge(BottomLeft), a.Edge(BottomRight)}
}

// Sides returns the four side midpoints in the order Left, Right, Top, Bottom
func (a Area) Sides() [4]Edge {
	return [4]Edge{a.Edge(Left), a.Edge(Right), a.Edge(Top), a.Edge(Bottom)}
}

// ClosestCorner returns the corner nearest to p
func (a Area) ClosestCorner(p Coord) Edge {
	c := a.Corners()
	return closest(p, c[:])
}

// ClosestEdge returns the side midpoint nearest to p
func (a Area) ClosestEdge(p Coord) Edge {
	s := a.Sides()
	return closest(p, s[:])
}

// ClosestCornerOrEdge returns the corner or side midpoint nearest to p
func (a Area) ClosestCornerOrEdge(p Coord) Edge {
	c, s := a.Corners(), a.Sides()
	return closest(p, append(c[:], s[:]...))
}

// closest picks the candidate with the smallest Euclidean distance to p.
// Ties go to the smaller Chebyshev distance, then to the earliest candidate.
func closest(p Coord, candidates []Edge) Edge {
	best := candidates[0]
	bestDist, bestSq := p.Distance(best.Pos), p.SqDistance(best.Pos)

	for _, e := range candidates[1:] {
		d, sq := p.Distance(e.Pos), p.SqDistance(e.Pos)
		if d < bestDist || (d == bestDist && sq < bestSq) {
			best, bestDist, bestSq = e, d, sq
		}
	}

	return best
}

// Contains reports whether p lies inside a. Left and top are inclusive,
// right and bottom exclusive.
func (a Area) Contains(p Coord) bool {
	return p.X >= a.Left() && p.X < a.Right() &&
		p.Y >= a.Top() && p.Y < a.Bottom()
}

// ContainsArea reports whether b lies entirely inside a, edges included
func (a Area) ContainsArea(b Area) bool {
	return b.Left() >= a.Left() && b.Right() <= a.Right() &&
		b.Top() >= a.Top() && b.Bottom() <= a.Bottom()
}

// Overlaps reports whether a and b share interior. On an axis where either
// operand has zero extent, touching counts as overlapping.
func (a Area) Overlaps(b Area) bool {
	return spanOverlaps(a.Left(), a.Right(), b.Left(), b.Right()) &&
		spanOverlaps(a.Top(), a.Bottom(), b.Top(), b.Bottom())
}

func spanOverlaps(a0, a1, b0, b1 float64) bool {
	if a0 == a1 || b0 == b1 {
		return a0 <= b1 && b0 <= a1
	}

	return a0 < b1 && b0 < a1
}

// Touches reports whether a and b intersect with coinciding edges allowed
func (a Area) Touches(b Area) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Top() <= b.Bottom() && b.Top() <= a.Bottom()
}

// Mutual returns the intersection of a and b. ok is false when the two do
// not share a region of positive size; the returned area then has zero
// extent on the disjoint axis.
func Mutual(a, b Area) (area Area, ok bool) {
	l := math.Max(a.Left(), b.Left())
	t := math.Max(a.Top(), b.Top())
	r := math.Min(a.Right(), b.Right())
	btm := math.Min(a.Bottom(), b.Bottom())

	return FromLTRB(l, t, r, btm), r > l && btm > t
}

// Intersect is the method form of Mutual
func (a Area) Intersect(b Area) (Area, bool) {
	return Mutual(a, b)
}

// Union returns the smallest area containing both a and b
func (a Area) Union(b Area) Area {
	return FromLTRB(
		math.Min(a.Left(), b.Left()),
		math.Min(a.Top(), b.Top()),
		math.Max(a.Right(), b.Right()),
		math.Max(a.Bottom(), b.Bottom()),
	)
}

// Round rounds point and size independently to whole numbers
func (a Area) Round() Area {
	return AreaOf(a.point.Round(), a.size.Round())
}

// Slice returns the part of a between the fractions from and to on each
// axis, where 0 is the left/top edge and 1 the right/bottom edge
func (a Area) Slice(from, to Coord) (Area, error) {
	if to.X < from.X || to.Y < from.Y {
		return Area{}, fmt.Errorf("slice %s..%s: %w", from, to, ErrInvertedRange)
	}

	return AreaOf(a.point.Add(a.size.Mul(from)), a.size.Mul(to.Sub(from))), nil
}

func (a Area) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", a.X(), a.Y(), a.W(), a.H())
}
