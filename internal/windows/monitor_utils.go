//go:build windows

package windows

import (
	"fmt"
	"unsafe"

	"github.com/Norgate-AV/winarea/internal/geom"
)

// MonitorWorkArea returns the work area (screen minus taskbar and docked
// app bars) of the monitor nearest to hwnd
func MonitorWorkArea(hwnd uintptr) (geom.Area, error) {
	hmon, _, err := procMonitorFromWindow.Call(hwnd, MONITOR_DEFAULTTONEAREST)
	if hmon == 0 {
		return geom.Area{}, fmt.Errorf("%w: MonitorFromWindow: %w", ErrBackendCall, err)
	}

	mi := MONITORINFO{}
	mi.CbSize = uint32(unsafe.Sizeof(mi))

	ret, _, err := procGetMonitorInfoW.Call(hmon, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return geom.Area{}, fmt.Errorf("%w: GetMonitorInfoW: %w", ErrBackendCall, err)
	}

	return AreaFromRect(mi.RcWork), nil
}
