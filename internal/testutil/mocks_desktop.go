package testutil

import (
	"errors"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/match"
)

var _ interfaces.Desktop = (*MockDesktop)(nil)

// ErrMockWindowGone is returned by reads once a mock window has been closed
var ErrMockWindowGone = errors.New("mock window no longer exists")

// MockWindow is the simulated OS state of one window
type MockWindow struct {
	Target    match.Target
	Raw       geom.Area
	Client    geom.Area
	Region    geom.Area
	HasRegion bool
	Maximized bool
	WorkArea  geom.Area
}

// AreaCall records one SetWindowRect or SetWindowRegion call
type AreaCall struct {
	Hwnd uintptr
	Area geom.Area
}

// MockDesktop implements interfaces.Desktop over in-memory windows and
// records all writes for verification
type MockDesktop struct {
	Windows  map[uintptr]*MockWindow
	Order    []uintptr
	Fix      float64
	Elevated bool

	SetWindowRectCalls   []AreaCall
	SetWindowRegionCalls []AreaCall
	SetForegroundCalls   []uintptr

	SetWindowRectErr    error
	SetWindowRegionErr  error
	SetForegroundResult bool

	// ApplyWrites makes SetWindowRect move the simulated window, keeping the
	// client area at the same offset inside the raw area
	ApplyWrites bool

	rawSequence map[uintptr][]geom.Area
}

func NewMockDesktop() *MockDesktop {
	return &MockDesktop{
		Windows:             make(map[uintptr]*MockWindow),
		Fix:                 8,
		Elevated:            true,
		SetWindowRectCalls:  []AreaCall{},
		SetForegroundResult: true,
		rawSequence:         make(map[uintptr][]geom.Area),
	}
}

// Helper methods for fluent configuration
func (m *MockDesktop) WithWindow(w MockWindow) *MockDesktop {
	if _, exists := m.Windows[w.Target.Hwnd]; !exists {
		m.Order = append(m.Order, w.Target.Hwnd)
	}

	win := w
	m.Windows[w.Target.Hwnd] = &win
	return m
}

func (m *MockDesktop) WithFix(fix float64) *MockDesktop {
	m.Fix = fix
	return m
}

func (m *MockDesktop) WithElevated(elevated bool) *MockDesktop {
	m.Elevated = elevated
	return m
}

func (m *MockDesktop) WithApplyWrites() *MockDesktop {
	m.ApplyWrites = true
	return m
}

func (m *MockDesktop) WithSetWindowRectError(err error) *MockDesktop {
	m.SetWindowRectErr = err
	return m
}

func (m *MockDesktop) WithSetWindowRegionError(err error) *MockDesktop {
	m.SetWindowRegionErr = err
	return m
}

// WithRawSequence queues raw areas returned by successive RawArea calls
// for hwnd. Once the queue is drained the window reports as gone.
func (m *MockDesktop) WithRawSequence(hwnd uintptr, areas ...geom.Area) *MockDesktop {
	m.rawSequence[hwnd] = append(m.rawSequence[hwnd], areas...)
	return m
}

// Close removes a window, making further reads fail
func (m *MockDesktop) Close(hwnd uintptr) {
	delete(m.Windows, hwnd)
}

func (m *MockDesktop) window(hwnd uintptr) (*MockWindow, error) {
	w, ok := m.Windows[hwnd]
	if !ok {
		return nil, ErrMockWindowGone
	}

	return w, nil
}

func (m *MockDesktop) RawArea(hwnd uintptr) (geom.Area, error) {
	w, err := m.window(hwnd)
	if err != nil {
		return geom.Area{}, err
	}

	if seq, ok := m.rawSequence[hwnd]; ok {
		if len(seq) == 0 {
			return geom.Area{}, ErrMockWindowGone
		}

		w.Raw = seq[0]
		m.rawSequence[hwnd] = seq[1:]
	}

	return w.Raw, nil
}

func (m *MockDesktop) ClientArea(hwnd uintptr) (geom.Area, error) {
	w, err := m.window(hwnd)
	if err != nil {
		return geom.Area{}, err
	}

	return w.Client, nil
}

func (m *MockDesktop) RegionBounds(hwnd uintptr) (geom.Area, bool, error) {
	w, err := m.window(hwnd)
	if err != nil {
		return geom.Area{}, false, err
	}

	return w.Region, w.HasRegion, nil
}

func (m *MockDesktop) IsMaximized(hwnd uintptr) bool {
	w, err := m.window(hwnd)
	return err == nil && w.Maximized
}

func (m *MockDesktop) MonitorWorkArea(hwnd uintptr) (geom.Area, error) {
	w, err := m.window(hwnd)
	if err != nil {
		return geom.Area{}, err
	}

	return w.WorkArea, nil
}

func (m *MockDesktop) Identify(hwnd uintptr) match.Target {
	w, err := m.window(hwnd)
	if err != nil {
		return match.Target{Hwnd: hwnd}
	}

	return w.Target
}

func (m *MockDesktop) BorderPaddingFix() float64 {
	return m.Fix
}

func (m *MockDesktop) SetWindowRect(hwnd uintptr, area geom.Area) error {
	m.SetWindowRectCalls = append(m.SetWindowRectCalls, AreaCall{hwnd, area})
	if m.SetWindowRectErr != nil {
		return m.SetWindowRectErr
	}

	w, err := m.window(hwnd)
	if err != nil {
		return err
	}

	if m.ApplyWrites {
		offset := w.Client.Point().Sub(w.Raw.Point())
		chrome := w.Raw.Size().Sub(w.Client.Size())

		w.Raw = area
		w.Client = geom.AreaOf(area.Point().Add(offset), area.Size().Sub(chrome))
	}

	return nil
}

func (m *MockDesktop) SetWindowRegion(hwnd uintptr, region geom.Area) error {
	m.SetWindowRegionCalls = append(m.SetWindowRegionCalls, AreaCall{hwnd, region})
	if m.SetWindowRegionErr != nil {
		return m.SetWindowRegionErr
	}

	w, err := m.window(hwnd)
	if err != nil {
		return err
	}

	if m.ApplyWrites {
		w.Region = region
		w.HasRegion = true
	}

	return nil
}

func (m *MockDesktop) EnumerateWindows() []match.Target {
	out := make([]match.Target, 0, len(m.Order))

	for _, hwnd := range m.Order {
		if w, ok := m.Windows[hwnd]; ok {
			out = append(out, w.Target)
		}
	}

	return out
}

func (m *MockDesktop) SetForeground(hwnd uintptr) bool {
	m.SetForegroundCalls = append(m.SetForegroundCalls, hwnd)
	return m.SetForegroundResult
}

func (m *MockDesktop) IsElevated() bool {
	return m.Elevated
}
