//go:build windows

package windows

import (
	"sync"
	"unsafe"

	xwin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winarea/internal/match"
)

var (
	foundWindows []match.Target
	windowsMu    sync.Mutex

	enumCallback     uintptr
	enumCallbackOnce sync.Once
)

func enumWindowsCallback(hwnd uintptr, lparam uintptr) uintptr {
	if IsWindowVisible(hwnd) {
		foundWindows = append(foundWindows, Identify(hwnd))
	}

	return 1 // Continue enumeration
}

// EnumerateWindows performs a thread-safe enumeration of visible top-level
// windows in Z order
func EnumerateWindows() []match.Target {
	windowsMu.Lock()
	defer windowsMu.Unlock()

	// Callbacks are never freed, so one is shared across enumerations
	enumCallbackOnce.Do(func() {
		enumCallback = xwin.NewCallback(enumWindowsCallback)
	})

	foundWindows = nil
	ret, _, _ := procEnumWindows.Call(enumCallback, 0)
	if ret == 0 {
		return nil
	}

	windows := make([]match.Target, len(foundWindows))
	copy(windows, foundWindows)

	return windows
}

// Identify collects the attributes selectors match against
func Identify(hwnd uintptr) match.Target {
	pid := GetWindowPid(hwnd)

	return match.Target{
		Hwnd:  hwnd,
		Pid:   pid,
		Title: GetWindowText(hwnd),
		Class: GetClassName(hwnd),
		Exe:   GetProcessImagePath(pid),
	}
}

// GetWindowText retrieves the text of a window
func GetWindowText(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return xwin.UTF16ToString(buf)
}

// GetClassName retrieves the class name of a window
func GetClassName(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return xwin.UTF16ToString(buf)
}

// IsWindow checks if a window handle is valid
func IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

// GetWindowPid retrieves the process ID of a window
func GetWindowPid(hwnd uintptr) uint32 {
	var pid uint32

	ret, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if ret == 0 {
		return 0
	}

	return pid
}

// GetProcessImagePath returns the full executable path of a process, or
// an empty string when the process cannot be queried (for example an
// elevated process seen from a non-elevated one)
func GetProcessImagePath(pid uint32) string {
	if pid == 0 {
		return ""
	}

	h, err := xwin.OpenProcess(xwin.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer xwin.CloseHandle(h)

	buf := make([]uint16, MAX_PATH)
	size := uint32(len(buf))

	if err := xwin.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}

	return xwin.UTF16ToString(buf[:size])
}

var (
	borderFix     float64
	borderFixOnce sync.Once
)

// BorderPaddingFix is the invisible resize border thickness minus the
// visible border. System metrics are read once per process.
func BorderPaddingFix() float64 {
	borderFixOnce.Do(func() {
		frame := getSystemMetric(SM_CXSIZEFRAME)
		padded := getSystemMetric(SM_CXPADDEDBORDER)
		border := getSystemMetric(SM_CXBORDER)

		borderFix = float64(frame + padded - border)
	})

	return borderFix
}

func getSystemMetric(index int) int32 {
	ret, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int32(ret)
}
