// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

import (
	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/match"
)

// AreaReader takes raw measurements of a window. All areas are in screen
// coordinates except RegionBounds, which is relative to the raw area origin.
type AreaReader interface {
	RawArea(hwnd uintptr) (geom.Area, error)
	ClientArea(hwnd uintptr) (geom.Area, error)
	// RegionBounds returns false when no custom clip region is installed
	RegionBounds(hwnd uintptr) (geom.Area, bool, error)
	IsMaximized(hwnd uintptr) bool
	MonitorWorkArea(hwnd uintptr) (geom.Area, error)
	Identify(hwnd uintptr) match.Target
}

// AreaWriter applies areas to a window. Callers round to whole pixels first.
type AreaWriter interface {
	SetWindowRect(hwnd uintptr, area geom.Area) error
	SetWindowRegion(hwnd uintptr, region geom.Area) error
}

// WindowBackend is everything the area resolver needs from the desktop
type WindowBackend interface {
	AreaReader
	AreaWriter
	// BorderPaddingFix is the invisible resize border thickness minus the
	// visible border thickness. It is constant for the process lifetime.
	BorderPaddingFix() float64
}

// WindowManager enumerates and activates top-level windows
type WindowManager interface {
	EnumerateWindows() []match.Target
	SetForeground(hwnd uintptr) bool
	IsElevated() bool
}

// Desktop is the full platform surface used by the CLI
type Desktop interface {
	WindowBackend
	WindowManager
}
