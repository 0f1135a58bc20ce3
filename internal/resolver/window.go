package resolver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/logger"
)

// ErrSetFailed wraps any failure to apply a planned area
var ErrSetFailed = errors.New("failed to apply window area")

// Window binds a handle to the backend that measures and moves it
type Window struct {
	hwnd    uintptr
	backend interfaces.WindowBackend
	params  Params
	log     logger.LoggerInterface
}

// NewWindow creates a Window. The border padding fix is read from the
// backend once here.
func NewWindow(hwnd uintptr, backend interfaces.WindowBackend, rules []BorderlessRule, log logger.LoggerInterface) *Window {
	return &Window{
		hwnd:    hwnd,
		backend: backend,
		params: Params{
			BorderPaddingFix: backend.BorderPaddingFix(),
			Borderless:       rules,
		},
		log: log,
	}
}

// Handle returns the window handle
func (w *Window) Handle() uintptr {
	return w.hwnd
}

// Snapshot reads every measurement Resolve needs in one pass
func (w *Window) Snapshot() (Measurements, error) {
	var m Measurements
	var err error

	m.Target = w.backend.Identify(w.hwnd)

	if m.Raw, err = w.backend.RawArea(w.hwnd); err != nil {
		return Measurements{}, fmt.Errorf("raw area: %w", err)
	}

	if m.Client, err = w.backend.ClientArea(w.hwnd); err != nil {
		return Measurements{}, fmt.Errorf("client area: %w", err)
	}

	if m.Region, m.HasRegion, err = w.backend.RegionBounds(w.hwnd); err != nil {
		return Measurements{}, fmt.Errorf("region bounds: %w", err)
	}

	m.Maximized = w.backend.IsMaximized(w.hwnd)

	if m.WorkArea, err = w.backend.MonitorWorkArea(w.hwnd); err != nil {
		return Measurements{}, fmt.Errorf("monitor work area: %w", err)
	}

	return m, nil
}

// Inspect takes one snapshot and returns it together with its resolution
func (w *Window) Inspect() (Measurements, Resolution, error) {
	m, err := w.Snapshot()
	if err != nil {
		return Measurements{}, Resolution{}, err
	}

	r := Resolve(m, w.params)
	w.log.Trace("Resolved window area",
		slog.Uint64("hwnd", uint64(w.hwnd)),
		slog.String("branch", r.Branch.String()),
		slog.String("raw", r.Raw.String()),
		slog.String("logical", r.Logical.String()),
	)

	return m, r, nil
}

// Resolve snapshots the window and resolves its logical area
func (w *Window) Resolve() (Resolution, error) {
	_, r, err := w.Inspect()
	return r, err
}

// Area returns the logical area of the window
func (w *Window) Area() (geom.Area, error) {
	r, err := w.Resolve()
	if err != nil {
		return geom.Area{}, err
	}

	return r.Logical, nil
}

// SetArea moves and resizes the window so its logical area becomes target
func (w *Window) SetArea(target geom.Area) error {
	m, err := w.Snapshot()
	if err != nil {
		return err
	}

	return w.apply(target, m)
}

// SetAreaPartial changes only the components set in opt
func (w *Window) SetAreaPartial(opt geom.OptArea) error {
	return w.update(func(cur geom.Area, _ Measurements) geom.Area {
		return opt.Fill(cur)
	})
}

// SetEdge moves one or more edges of the logical area. See geom.Area.SetEdge.
func (w *Window) SetEdge(t geom.EdgeType, pos geom.Coord, resize, relative bool) error {
	return w.update(func(cur geom.Area, _ Measurements) geom.Area {
		return cur.SetEdge(t, pos, resize, relative)
	})
}

// ClampToWorkArea pulls the window back inside the work area of its monitor
func (w *Window) ClampToWorkArea(resize bool) error {
	return w.update(func(cur geom.Area, m Measurements) geom.Area {
		return cur.ClampWithin(m.WorkArea, resize)
	})
}

// update derives a target from the current logical area of a single
// snapshot and applies it. Nothing is written when the target is unchanged.
func (w *Window) update(fn func(cur geom.Area, m Measurements) geom.Area) error {
	m, err := w.Snapshot()
	if err != nil {
		return err
	}

	cur := Resolve(m, w.params).Logical
	target := fn(cur, m)

	if target == cur {
		w.log.Debug("Window already at requested area",
			slog.Uint64("hwnd", uint64(w.hwnd)),
			slog.String("area", cur.String()),
		)
		return nil
	}

	return w.apply(target, m)
}

func (w *Window) apply(target geom.Area, m Measurements) error {
	plan := PlanSet(target, m, w.params)
	raw := plan.Raw.Round()

	w.log.Debug("Setting window area",
		slog.Uint64("hwnd", uint64(w.hwnd)),
		slog.String("branch", plan.Current.Branch.String()),
		slog.String("from", plan.Current.Logical.String()),
		slog.String("to", target.String()),
		slog.String("raw", raw.String()),
	)

	if err := w.backend.SetWindowRect(w.hwnd, raw); err != nil {
		w.log.Warn("SetWindowRect failed",
			slog.Uint64("hwnd", uint64(w.hwnd)),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: set window rect: %w", ErrSetFailed, err)
	}

	if !plan.HasRegion {
		return nil
	}

	region := plan.Region.Round()
	if err := w.backend.SetWindowRegion(w.hwnd, region); err != nil {
		w.log.Warn("SetWindowRegion failed",
			slog.Uint64("hwnd", uint64(w.hwnd)),
			slog.String("region", region.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: set window region: %w", ErrSetFailed, err)
	}

	return nil
}
