//go:build windows

package windows

import (
	xwin "golang.org/x/sys/windows"
)

// IsElevated reports whether the current process token is elevated.
// Without elevation UIPI blocks moving windows of elevated processes.
func IsElevated() bool {
	return xwin.GetCurrentProcessToken().IsElevated()
}
