//go:build windows

package windows

import (
	"errors"

	xwin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/logger"
	"github.com/Norgate-AV/winarea/internal/match"
)

// ErrBackendCall wraps every failed Win32 call; the message names the API
var ErrBackendCall = errors.New("win32 call failed")

var (
	user32                       = xwin.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsZoomed                 = user32.NewProc("IsZoomed")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetClientRect            = user32.NewProc("GetClientRect")
	procClientToScreen           = user32.NewProc("ClientToScreen")
	procGetWindowRgnBox          = user32.NewProc("GetWindowRgnBox")
	procSetWindowRgn             = user32.NewProc("SetWindowRgn")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procMonitorFromWindow        = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW          = user32.NewProc("GetMonitorInfoW")
	procGetSystemMetrics         = user32.NewProc("GetSystemMetrics")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procShowWindow               = user32.NewProc("ShowWindow")

	gdi32             = xwin.NewLazySystemDLL("gdi32.dll")
	procCreateRectRgn = gdi32.NewProc("CreateRectRgn")
	procDeleteObject  = gdi32.NewProc("DeleteObject")
)

const (
	SW_RESTORE = 9

	SM_CXBORDER       = 5
	SM_CXSIZEFRAME    = 32
	SM_CXPADDEDBORDER = 92

	SWP_NOZORDER   = 0x0004
	SWP_NOACTIVATE = 0x0010

	MONITOR_DEFAULTTONEAREST = 0x00000002

	// GetWindowRgnBox results
	REGION_ERROR = 0
	NULLREGION   = 1

	MAX_PATH = 260
)

// WindowsAPI implements interfaces.Desktop on top of user32 and gdi32
type WindowsAPI struct {
	client *Client
}

var _ interfaces.Desktop = (*WindowsAPI)(nil)

// NewWindowsAPI creates a new WindowsAPI with the provided logger
func NewWindowsAPI(log logger.LoggerInterface) *WindowsAPI {
	return &WindowsAPI{
		client: NewClient(log),
	}
}

// AreaReader / AreaWriter implementation
func (w *WindowsAPI) RawArea(hwnd uintptr) (geom.Area, error)    { return w.client.Area.RawArea(hwnd) }
func (w *WindowsAPI) ClientArea(hwnd uintptr) (geom.Area, error) { return w.client.Area.ClientArea(hwnd) }
func (w *WindowsAPI) RegionBounds(hwnd uintptr) (geom.Area, bool, error) {
	return w.client.Area.RegionBounds(hwnd)
}
func (w *WindowsAPI) IsMaximized(hwnd uintptr) bool { return w.client.Area.IsMaximized(hwnd) }
func (w *WindowsAPI) MonitorWorkArea(hwnd uintptr) (geom.Area, error) {
	return w.client.Area.MonitorWorkArea(hwnd)
}
func (w *WindowsAPI) Identify(hwnd uintptr) match.Target { return Identify(hwnd) }
func (w *WindowsAPI) SetWindowRect(hwnd uintptr, area geom.Area) error {
	return w.client.Area.SetWindowRect(hwnd, area)
}
func (w *WindowsAPI) SetWindowRegion(hwnd uintptr, region geom.Area) error {
	return w.client.Area.SetWindowRegion(hwnd, region)
}
func (w *WindowsAPI) BorderPaddingFix() float64 { return BorderPaddingFix() }

// WindowManager interface implementation
func (w *WindowsAPI) EnumerateWindows() []match.Target { return EnumerateWindows() }
func (w *WindowsAPI) SetForeground(hwnd uintptr) bool  { return w.client.Window.SetForeground(hwnd) }
func (w *WindowsAPI) IsElevated() bool                 { return IsElevated() }
