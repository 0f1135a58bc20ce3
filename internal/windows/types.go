//go:build windows

package windows

import (
	xwin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winarea/internal/geom"
)

// POINT mirrors the Win32 POINT structure
type POINT struct {
	X, Y int32
}

// MONITORINFO mirrors the Win32 MONITORINFO structure
type MONITORINFO struct {
	CbSize    uint32
	RcMonitor xwin.Rect
	RcWork    xwin.Rect
	DwFlags   uint32
}

// AreaFromRect converts an edge-based Win32 rectangle into an Area
func AreaFromRect(r xwin.Rect) geom.Area {
	return geom.FromLTRB(float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom))
}

// RectFromArea converts an Area into a Win32 rectangle, rounding each
// edge to the nearest pixel
func RectFromArea(a geom.Area) xwin.Rect {
	r := a.Round()

	return xwin.Rect{
		Left:   int32(r.Left()),
		Top:    int32(r.Top()),
		Right:  int32(r.Right()),
		Bottom: int32(r.Bottom()),
	}
}
