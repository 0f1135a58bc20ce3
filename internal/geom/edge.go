package geom

import (
	"fmt"
	"math/bits"
	"strings"
)

// EdgeType addresses the sides and corners of a rectangle as bit flags.
// Corners are the union of one horizontal and one vertical side.
type EdgeType uint8

const (
	Left EdgeType = 1 << iota
	Right
	Top
	Bottom

	TopLeft     = Top | Left
	TopRight    = Top | Right
	BottomLeft  = Bottom | Left
	BottomRight = Bottom | Right

	// EdgeNone addresses nothing
	EdgeNone EdgeType = 0
)

const (
	horizontalMask = Left | Right
	verticalMask   = Top | Bottom
)

// clockwise order of sides and of corners, used by Rotate
var (
	sideCycle   = [4]EdgeType{Top, Right, Bottom, Left}
	cornerCycle = [4]EdgeType{TopLeft, TopRight, BottomRight, BottomLeft}
)

var edgeNames = map[EdgeType]string{
	Left:        "left",
	Right:       "right",
	Top:         "top",
	Bottom:      "bottom",
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

// ParseEdgeType accepts the names printed by String, case-insensitively.
// Underscores and spaces may stand in for the hyphen.
func ParseEdgeType(s string) (EdgeType, error) {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))

	for t, name := range edgeNames {
		if name == norm {
			return t, nil
		}
	}

	return EdgeNone, fmt.Errorf("unknown edge %q", s)
}

// Has reports whether every flag of f is set in t
func (t EdgeType) Has(f EdgeType) bool {
	return f != EdgeNone && t&f == f
}

// Horizontal returns only the Left/Right flags of t
func (t EdgeType) Horizontal() EdgeType {
	return t & horizontalMask
}

// Vertical returns only the Top/Bottom flags of t
func (t EdgeType) Vertical() EdgeType {
	return t & verticalMask
}

// IsSide reports whether exactly one flag is set
func (t EdgeType) IsSide() bool {
	return bits.OnesCount8(uint8(t)) == 1
}

// IsCorner reports whether exactly one horizontal and one vertical flag are set
func (t EdgeType) IsCorner() bool {
	return bits.OnesCount8(uint8(t.Horizontal())) == 1 && bits.OnesCount8(uint8(t.Vertical())) == 1
}

// Reverse flips both axes: Left<->Right and Top<->Bottom
func (t EdgeType) Reverse() EdgeType {
	return t.ReverseHorizontal().ReverseVertical()
}

// ReverseHorizontal swaps the Left and Right flags
func (t EdgeType) ReverseHorizontal() EdgeType {
	h := t.Horizontal()
	if h == 0 || h == horizontalMask {
		return t
	}

	return t ^ horizontalMask
}

// ReverseVertical swaps the Top and Bottom flags
func (t EdgeType) ReverseVertical() EdgeType {
	v := t.Vertical()
	if v == 0 || v == verticalMask {
		return t
	}

	return t ^ verticalMask
}

// Rotate walks steps positions around the rectangle. Sides rotate among
// sides and corners among corners; any other value is returned unchanged.
// Negative steps turn the other way.
func (t EdgeType) Rotate(steps int, clockwise bool) EdgeType {
	var cycle [4]EdgeType

	switch {
	case t.IsSide():
		cycle = sideCycle
	case t.IsCorner():
		cycle = cornerCycle
	default:
		return t
	}

	if !clockwise {
		steps = -steps
	}

	steps %= 4

	for i, e := range cycle {
		if e == t {
			return cycle[(i+steps+4)%4]
		}
	}

	return t
}

func (t EdgeType) String() string {
	if name, ok := edgeNames[t]; ok {
		return name
	}

	if t == EdgeNone {
		return "none"
	}

	parts := make([]string, 0, 4)
	for _, f := range []EdgeType{Left, Right, Top, Bottom} {
		if t.Has(f) {
			parts = append(parts, edgeNames[f])
		}
	}

	return strings.Join(parts, "|")
}

// Edge is a point tagged with the side or corner it was derived from
type Edge struct {
	Type EdgeType
	Pos  Coord
}

func (e Edge) String() string {
	return fmt.Sprintf("%s@%s", e.Type, e.Pos)
}
