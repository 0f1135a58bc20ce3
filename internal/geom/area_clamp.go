package geom

import "math"

// ClampWithin returns a moved and shrunk so it lies inside c.
//
// Without resize the size is first capped to c's and the area then slides
// back in. With resize each violating edge is moved onto c's edge and the
// opposite edge stays where it was.
func (a Area) ClampWithin(c Area, resize bool) Area {
	if !resize {
		out := a.WithSize(a.size.Min(c.size))

		if out.Left() < c.Left() {
			out = out.MoveLeft(c.Left())
		} else if out.Right() > c.Right() {
			out = out.MoveRight(c.Right())
		}

		if out.Top() < c.Top() {
			out = out.MoveTop(c.Top())
		} else if out.Bottom() > c.Bottom() {
			out = out.MoveBottom(c.Bottom())
		}

		return out
	}

	out := a

	if out.Left() < c.Left() {
		out = out.ResizeLeft(c.Left())
	}

	if out.Left() > c.Right() {
		out = NewArea(c.Right(), out.Y(), 0, out.H())
	} else if out.Right() > c.Right() {
		out = out.ResizeRight(c.Right())
	}

	if out.Top() < c.Top() {
		out = out.ResizeTop(c.Top())
	}

	if out.Top() > c.Bottom() {
		out = NewArea(out.X(), c.Bottom(), out.W(), 0)
	} else if out.Bottom() > c.Bottom() {
		out = out.ResizeBottom(c.Bottom())
	}

	return out
}

// ClampExclude pushes a out of b along whichever direction needs the least
// displacement. With resize the nearest edge is pulled back instead; if that
// still leaves the two overlapping the area is translated as a fallback.
func (a Area) ClampExclude(b Area, resize bool) Area {
	if !a.Overlaps(b) {
		return a
	}

	push := [4]float64{
		b.Right() - a.Left(),  // move right, out past b's right edge
		a.Right() - b.Left(),  // move left, out past b's left edge
		b.Bottom() - a.Top(),  // move down
		a.Bottom() - b.Top(),  // move up
	}

	dir := 0
	for i := 1; i < len(push); i++ {
		if push[i] < push[dir] {
			dir = i
		}
	}

	translate := func() Area {
		switch dir {
		case 0:
			return a.MoveLeft(b.Right())
		case 1:
			return a.MoveRight(b.Left())
		case 2:
			return a.MoveTop(b.Bottom())
		default:
			return a.MoveBottom(b.Top())
		}
	}

	if !resize {
		return translate()
	}

	var out Area

	switch dir {
	case 0:
		out = a.ResizeLeft(b.Right())
	case 1:
		out = a.ResizeRight(b.Left())
	case 2:
		out = a.ResizeTop(b.Bottom())
	default:
		out = a.ResizeBottom(b.Top())
	}

	if out.Overlaps(b) {
		return translate()
	}

	return out
}

// ClampInclude grows or moves a so that it fully contains b. Without resize
// the size is first raised to at least b's and the area slides to cover it;
// with resize each edge that falls short is pushed out to b's edge.
func (a Area) ClampInclude(b Area, resize bool) Area {
	if !resize {
		out := a.WithSize(a.size.Max(b.size))

		if b.Left() < out.Left() {
			out = out.MoveLeft(b.Left())
		} else if b.Right() > out.Right() {
			out = out.MoveRight(b.Right())
		}

		if b.Top() < out.Top() {
			out = out.MoveTop(b.Top())
		} else if b.Bottom() > out.Bottom() {
			out = out.MoveBottom(b.Bottom())
		}

		return out
	}

	out := a

	if b.Left() < out.Left() {
		out = out.ResizeLeft(b.Left())
	}

	if b.Right() > out.Right() {
		out = out.ResizeRight(b.Right())
	}

	if b.Top() < out.Top() {
		out = out.ResizeTop(b.Top())
	}

	if b.Bottom() > out.Bottom() {
		out = out.ResizeBottom(b.Bottom())
	}

	return out
}

// ClampValues clamps x, y, w and h independently between the matching
// components of lo and hi. Each pair of bounds may be given in either order.
func (a Area) ClampValues(lo, hi Area) Area {
	return NewArea(
		clamp(a.X(), lo.X(), hi.X()),
		clamp(a.Y(), lo.Y(), hi.Y()),
		clamp(a.W(), lo.W(), hi.W()),
		clamp(a.H(), lo.H(), hi.H()),
	)
}

// Map relocates a from the frame from into the frame to.
//
// With resize both position and size scale with the frames. Without resize
// a keeps its absolute size and is placed so that its share of the free
// space in from is preserved in to. When a has no room to move in from on an
// axis, it is centred on to along that axis instead.
func (a Area) Map(from, to Area, resize bool) Area {
	if resize {
		p := a.point.Map(from, to)
		s := a.size

		if from.W() != 0 {
			s.X = a.W() / from.W() * to.W()
		} else {
			p.X -= s.X / 2
		}

		if from.H() != 0 {
			s.Y = a.H() / from.H() * to.H()
		} else {
			p.Y -= s.Y / 2
		}

		return AreaOf(p, s)
	}

	return AreaOf(Pt(
		mapSpan(a.X(), a.W(), from.X(), from.W(), to.X(), to.W()),
		mapSpan(a.Y(), a.H(), from.Y(), from.H(), to.Y(), to.H()),
	), a.size)
}

// mapSpan positions a span of length l so its offset into the free space of
// the source frame is kept in the target frame
func mapSpan(pos, l, fromPos, fromLen, toPos, toLen float64) float64 {
	free := fromLen - l
	if free == 0 {
		return toPos + (toLen-l)/2
	}

	return toPos + (pos-fromPos)/free*(toLen-l)
}

// Crop removes offset from a: offset's point is added to a's point and
// offset's size is subtracted from a's size
func (a Area) Crop(offset Area) Area {
	return AreaOf(a.point.Add(offset.point), a.size.Sub(offset.size))
}

// Grow expands a by d on every side. A negative d shrinks it.
func (a Area) Grow(d float64) Area {
	return NewArea(a.X()-d, a.Y()-d, a.W()+2*d, a.H()+2*d)
}

// IsValid reports whether a is finite everywhere
func (a Area) IsValid() bool {
	for _, v := range [4]float64{a.X(), a.Y(), a.W(), a.H()} {
		if math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
