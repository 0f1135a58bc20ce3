package geom

import (
	"fmt"
	"math"
)

// Polygon is a closed shape used to describe a custom window region
type Polygon struct {
	points []Coord
}

// NewPolygon builds a polygon from at least three vertices
func NewPolygon(points ...Coord) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, fmt.Errorf("new polygon with %d points: %w", len(points), ErrTooFewPoints)
	}

	p := make([]Coord, len(points))
	copy(p, points)

	return Polygon{points: p}, nil
}

// PolygonFromArea returns the four corners of a as a polygon
func PolygonFromArea(a Area) Polygon {
	return Polygon{points: []Coord{
		a.Edge(TopLeft).Pos,
		a.Edge(TopRight).Pos,
		a.Edge(BottomRight).Pos,
		a.Edge(BottomLeft).Pos,
	}}
}

// Points returns a copy of the vertices
func (p Polygon) Points() []Coord {
	out := make([]Coord, len(p.points))
	copy(out, p.points)

	return out
}

// Bounds returns the smallest Area containing every vertex
func (p Polygon) Bounds() Area {
	if len(p.points) == 0 {
		return Area{}
	}

	lo, hi := p.points[0], p.points[0]
	for _, c := range p.points[1:] {
		lo = lo.Min(c)
		hi = hi.Max(c)
	}

	return AreaOf(lo, hi.Sub(lo))
}

// Translate returns p shifted by d
func (p Polygon) Translate(d Coord) Polygon {
	out := make([]Coord, len(p.points))
	for i, c := range p.points {
		out[i] = c.Add(d)
	}

	return Polygon{points: out}
}

// Contains reports whether c is inside p using the even-odd rule
func (p Polygon) Contains(c Coord) bool {
	inside := false

	for i, j := 0, len(p.points)-1; i < len(p.points); j, i = i, i+1 {
		a, b := p.points[i], p.points[j]
		if (a.Y > c.Y) != (b.Y > c.Y) &&
			c.X < (b.X-a.X)*(c.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}

	return inside
}

// Surface returns the enclosed area using the shoelace formula
func (p Polygon) Surface() float64 {
	var sum float64

	for i, j := 0, len(p.points)-1; i < len(p.points); j, i = i, i+1 {
		sum += p.points[j].X*p.points[i].Y - p.points[i].X*p.points[j].Y
	}

	return math.Abs(sum) / 2
}
