package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Watch resolves w every interval and calls onChange with the first
// resolution and with every one whose branch or logical area differs from
// the last reported. It returns nil when ctx is cancelled and an error when
// the window can no longer be measured.
func (w *Window) Watch(ctx context.Context, interval time.Duration, onChange func(Resolution)) error {
	w.log.Debug("Window watch started",
		slog.Uint64("hwnd", uint64(w.hwnd)),
		slog.Duration("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last Resolution
	first := true

	for {
		r, err := w.Resolve()
		if err != nil {
			return fmt.Errorf("watch hwnd 0x%X: %w", w.hwnd, err)
		}

		if first || r.Branch != last.Branch || r.Logical != last.Logical {
			first = false
			last = r
			onChange(r)
		}

		select {
		case <-ctx.Done():
			w.log.Debug("Window watch stopped", slog.Uint64("hwnd", uint64(w.hwnd)))
			return nil
		case <-ticker.C:
		}
	}
}
