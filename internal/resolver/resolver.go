// Package resolver turns raw window measurements into the area a user sees
// and back again.
//
// The OS reports a window rectangle that includes an invisible resize border,
// reports a larger-than-visible rectangle for maximised windows, and knows
// nothing about custom clip regions. Resolve folds those cases into a single
// logical area; PlanSet inverts it so a logical target can be applied.
//
// Both functions are pure. Measurements must be taken in one snapshot: the
// window can move between reads, and a resolved area may already be stale
// when it is returned. Callers that need to act on it atomically must take a
// fresh snapshot first.
package resolver

import (
	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/match"
)

// Branch identifies which correction Resolve applied
type Branch int

const (
	// BranchMaximized uses the monitor work area
	BranchMaximized Branch = iota
	// BranchRegion uses the custom clip region bounds
	BranchRegion
	// BranchUndecorated uses the client area unchanged
	BranchUndecorated
	// BranchBordered removes the invisible resize border
	BranchBordered
)

func (b Branch) String() string {
	switch b {
	case BranchMaximized:
		return "maximized"
	case BranchRegion:
		return "region"
	case BranchUndecorated:
		return "undecorated"
	case BranchBordered:
		return "bordered"
	default:
		return "unknown"
	}
}

// Measurements is one snapshot of a window's raw state
type Measurements struct {
	Raw       geom.Area
	Client    geom.Area
	Region    geom.Area // relative to Raw's origin; only meaningful with HasRegion
	HasRegion bool
	Maximized bool
	WorkArea  geom.Area
	Target    match.Target
}

// BorderlessRule crops the logical area of undecorated windows it matches.
// Offset's point is added to the area's point and its size is subtracted
// from the area's size.
type BorderlessRule struct {
	Name   string
	Match  func(match.Target) bool
	Offset geom.Area
}

// Params holds the inputs that do not change between snapshots
type Params struct {
	BorderPaddingFix float64
	Borderless       []BorderlessRule
}

// Resolution is the outcome of Resolve
type Resolution struct {
	Branch     Branch
	Raw        geom.Area
	Logical    geom.Area
	Borderless geom.Area // equals Logical unless a borderless rule applied
	Rule       string    // name of the borderless rule that applied, if any
}

// Resolve computes the logical area of a window. The first matching case
// wins: maximised, custom region, undecorated, bordered.
func Resolve(m Measurements, p Params) Resolution {
	r := Resolution{Raw: m.Raw}

	switch {
	case m.Maximized:
		r.Branch = BranchMaximized
		r.Logical = m.WorkArea

	case m.HasRegion:
		r.Branch = BranchRegion
		r.Logical = m.Region.Translate(m.Raw.Point())

	case m.Raw.Point() == m.Client.Point():
		r.Branch = BranchUndecorated
		r.Logical = m.Client

	default:
		// The bottom border is thinner than the sides and the caption sits
		// on top, so only the horizontal fix is doubled.
		fix := p.BorderPaddingFix
		r.Branch = BranchBordered
		r.Logical = geom.NewArea(m.Raw.X()+fix, m.Raw.Y(), m.Raw.W()-2*fix, m.Raw.H()-fix)
	}

	r.Borderless = r.Logical

	if r.Branch == BranchUndecorated {
		if rule, ok := findRule(p.Borderless, m.Target); ok {
			r.Borderless = r.Logical.Crop(rule.Offset)
			r.Rule = rule.Name
		}
	}

	return r
}

func findRule(rules []BorderlessRule, t match.Target) (BorderlessRule, bool) {
	for _, rule := range rules {
		if rule.Match != nil && rule.Match(t) {
			return rule, true
		}
	}

	return BorderlessRule{}, false
}

// Plan is the set of writes needed to give a window a new logical area
type Plan struct {
	Current   Resolution
	Raw       geom.Area
	Region    geom.Area // relative to Raw's origin; only meaningful with HasRegion
	HasRegion bool
}

// PlanSet computes the raw area, and the clip region if one is installed,
// that make the window's logical area equal target. The offset between the
// current raw and logical areas is carried over to the target unchanged.
func PlanSet(target geom.Area, m Measurements, p Params) Plan {
	cur := Resolve(m, p)

	dPoint := cur.Raw.Point().Sub(cur.Logical.Point())
	dSize := cur.Raw.Size().Sub(cur.Logical.Size())

	plan := Plan{
		Current: cur,
		Raw:     geom.AreaOf(target.Point().Add(dPoint), target.Size().Add(dSize)),
	}

	if m.HasRegion {
		grow := target.Size().Sub(cur.Logical.Size())
		plan.Region = m.Region.WithSize(m.Region.Size().Add(grow))
		plan.HasRegion = true
	}

	return plan
}
