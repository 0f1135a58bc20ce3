// Package timeouts defines polling intervals and delays for window operations.
package timeouts

import "time"

const (
	// WatchPollingInterval is the default delay between measurements when
	// watching a window for area changes. Overridden by watch.interval in
	// the config file or the --interval flag.
	WatchPollingInterval = 250 * time.Millisecond

	// MinWatchInterval is the smallest accepted watch interval. Shorter
	// intervals keep a core busy re-reading window state.
	MinWatchInterval = 10 * time.Millisecond

	// FocusVerificationDelay allows time for the foreground window to change
	// before the area is written with --focus.
	FocusVerificationDelay = 100 * time.Millisecond

	// SettleDelay is the delay after moving a window before it is measured
	// again, giving the owning thread time to process WM_WINDOWPOSCHANGED.
	SettleDelay = 50 * time.Millisecond
)
