//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"unsafe"

	xwin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/logger"
)

// areaManager measures and applies window rectangles and clip regions
type areaManager struct {
	log logger.LoggerInterface
}

// newAreaManager creates a new area manager
func newAreaManager(log logger.LoggerInterface) *areaManager {
	return &areaManager{log: log}
}

// RawArea is GetWindowRect: the frame including the invisible resize border
func (a *areaManager) RawArea(hwnd uintptr) (geom.Area, error) {
	var r xwin.Rect

	ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return geom.Area{}, fmt.Errorf("%w: GetWindowRect: %w", ErrBackendCall, err)
	}

	return AreaFromRect(r), nil
}

// ClientArea is the client rectangle translated to screen coordinates
func (a *areaManager) ClientArea(hwnd uintptr) (geom.Area, error) {
	var r xwin.Rect

	ret, _, err := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return geom.Area{}, fmt.Errorf("%w: GetClientRect: %w", ErrBackendCall, err)
	}

	var origin POINT

	ret, _, err = procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&origin)))
	if ret == 0 {
		return geom.Area{}, fmt.Errorf("%w: ClientToScreen: %w", ErrBackendCall, err)
	}

	return AreaFromRect(r).Translate(geom.Pt(float64(origin.X), float64(origin.Y))), nil
}

// RegionBounds returns the bounding box of the window region, relative to
// the window origin. A window without a region reports false.
func (a *areaManager) RegionBounds(hwnd uintptr) (geom.Area, bool, error) {
	var r xwin.Rect

	kind, _, _ := procGetWindowRgnBox.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if kind == REGION_ERROR || kind == NULLREGION {
		return geom.Area{}, false, nil
	}

	return AreaFromRect(r), true, nil
}

// IsMaximized is IsZoomed
func (a *areaManager) IsMaximized(hwnd uintptr) bool {
	ret, _, _ := procIsZoomed.Call(hwnd)
	return ret != 0
}

func (a *areaManager) MonitorWorkArea(hwnd uintptr) (geom.Area, error) {
	return MonitorWorkArea(hwnd)
}

// SetWindowRect moves and resizes the window frame without changing its
// Z order or activating it
func (a *areaManager) SetWindowRect(hwnd uintptr, area geom.Area) error {
	r := RectFromArea(area)

	a.log.Trace("SetWindowPos",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Int("x", int(r.Left)),
		slog.Int("y", int(r.Top)),
		slog.Int("cx", int(r.Right-r.Left)),
		slog.Int("cy", int(r.Bottom-r.Top)),
	)

	ret, _, err := procSetWindowPos.Call(
		hwnd,
		0,
		uintptr(r.Left),
		uintptr(r.Top),
		uintptr(r.Right-r.Left),
		uintptr(r.Bottom-r.Top),
		SWP_NOZORDER|SWP_NOACTIVATE,
	)
	if ret == 0 {
		return fmt.Errorf("%w: SetWindowPos: %w", ErrBackendCall, err)
	}

	return nil
}

// SetWindowRegion installs a rectangular clip region relative to the
// window origin. The system owns the region once the call succeeds.
func (a *areaManager) SetWindowRegion(hwnd uintptr, region geom.Area) error {
	r := RectFromArea(region)

	hrgn, _, err := procCreateRectRgn.Call(uintptr(r.Left), uintptr(r.Top), uintptr(r.Right), uintptr(r.Bottom))
	if hrgn == 0 {
		return fmt.Errorf("%w: CreateRectRgn: %w", ErrBackendCall, err)
	}

	ret, _, err := procSetWindowRgn.Call(hwnd, hrgn, 1)
	if ret == 0 {
		if ok, _, _ := procDeleteObject.Call(hrgn); ok == 0 {
			a.log.Debug("DeleteObject failed for region", slog.Uint64("hrgn", uint64(hrgn)))
		}

		return fmt.Errorf("%w: SetWindowRgn: %w", ErrBackendCall, err)
	}

	return nil
}
