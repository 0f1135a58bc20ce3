package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/logger"
	"github.com/Norgate-AV/winarea/internal/match"
	"github.com/Norgate-AV/winarea/internal/resolver"
	"github.com/Norgate-AV/winarea/internal/testutil"
)

const hwnd uintptr = 0x1A2B

func borderedWindow() testutil.MockWindow {
	return testutil.MockWindow{
		Target:   match.Target{Hwnd: hwnd, Title: "Untitled - Notepad", Class: "Notepad"},
		Raw:      geom.NewArea(100, 100, 808, 607),
		Client:   geom.NewArea(108, 139, 800, 600),
		WorkArea: geom.NewArea(0, 0, 1920, 1040),
	}
}

func regionWindow() testutil.MockWindow {
	return testutil.MockWindow{
		Target:    match.Target{Hwnd: hwnd, Title: "Skinned", Class: "SkinWindow"},
		Raw:       geom.NewArea(50, 50, 400, 300),
		Client:    geom.NewArea(58, 80, 384, 262),
		Region:    geom.NewArea(10, 10, 380, 260),
		HasRegion: true,
		WorkArea:  geom.NewArea(0, 0, 1920, 1040),
	}
}

func newWindow(desktop *testutil.MockDesktop) *resolver.Window {
	return resolver.NewWindow(hwnd, desktop, nil, logger.NewNoOpLogger())
}

func TestWindow_Area(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())

	area, err := newWindow(desktop).Area()
	require.NoError(t, err)

	assert.Equal(t, geom.NewArea(108, 100, 792, 599), area)
	assert.Empty(t, desktop.SetWindowRectCalls)
}

func TestWindow_FixIsReadFromBackend(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(borderedWindow()).WithFix(0)

	area, err := newWindow(desktop).Area()
	require.NoError(t, err)

	assert.Equal(t, geom.NewArea(100, 100, 808, 607), area)
}

func TestWindow_Resolve(t *testing.T) {
	t.Parallel()

	rules := []resolver.BorderlessRule{
		{Name: "skin", Match: match.MustParse("class:Skin").Match, Offset: geom.NewArea(1, 1, 2, 2)},
	}
	desktop := testutil.NewMockDesktop().WithWindow(regionWindow())
	w := resolver.NewWindow(hwnd, desktop, rules, logger.NewNoOpLogger())

	r, err := w.Resolve()
	require.NoError(t, err)

	assert.Equal(t, resolver.BranchRegion, r.Branch)
	assert.Equal(t, geom.NewArea(60, 60, 380, 260), r.Logical)
	assert.Empty(t, r.Rule, "borderless rules apply to undecorated windows only")
	assert.Equal(t, hwnd, w.Handle())
}

func TestWindow_InspectReturnsSnapshot(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(regionWindow())

	m, r, err := newWindow(desktop).Inspect()
	require.NoError(t, err)

	assert.Equal(t, regionWindow().Raw, m.Raw)
	assert.Equal(t, regionWindow().Client, m.Client)
	assert.True(t, m.HasRegion)
	assert.Equal(t, "SkinWindow", m.Target.Class)
	assert.Equal(t, m.Raw, r.Raw)
}

func TestWindow_SetAreaRoundsRawArea(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())

	err := newWindow(desktop).SetArea(geom.NewArea(200.4, 200.6, 500, 400))
	require.NoError(t, err)

	require.Len(t, desktop.SetWindowRectCalls, 1)
	assert.Equal(t, testutil.AreaCall{Hwnd: hwnd, Area: geom.NewArea(192, 201, 516, 408)}, desktop.SetWindowRectCalls[0])
	assert.Empty(t, desktop.SetWindowRegionCalls)
}

func TestWindow_SetAreaUpdatesRegion(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(regionWindow())

	err := newWindow(desktop).SetArea(geom.NewArea(100, 100, 400, 300))
	require.NoError(t, err)

	require.Len(t, desktop.SetWindowRectCalls, 1)
	assert.Equal(t, geom.NewArea(90, 90, 420, 340), desktop.SetWindowRectCalls[0].Area)

	require.Len(t, desktop.SetWindowRegionCalls, 1)
	assert.Equal(t, geom.NewArea(10, 10, 400, 300), desktop.SetWindowRegionCalls[0].Area)
}

func TestWindow_SetAreaThenRead(t *testing.T) {
	t.Parallel()

	for _, win := range []testutil.MockWindow{borderedWindow(), regionWindow()} {
		desktop := testutil.NewMockDesktop().WithWindow(win).WithApplyWrites()
		w := newWindow(desktop)
		target := geom.NewArea(320, 240, 640, 480)

		require.NoError(t, w.SetArea(target))

		got, err := w.Area()
		require.NoError(t, err)
		assert.Equal(t, target, got, win.Target.Class)
	}
}

func TestWindow_SetAreaPartial(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())

	err := newWindow(desktop).SetAreaPartial(geom.OptArea{
		Size: geom.OptCoord{X: geom.Some(600)},
	})
	require.NoError(t, err)

	require.Len(t, desktop.SetWindowRectCalls, 1)
	assert.Equal(t, geom.NewArea(100, 100, 616, 607), desktop.SetWindowRectCalls[0].Area)
}

func TestWindow_SetAreaPartialEmptyWritesNothing(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())

	require.NoError(t, newWindow(desktop).SetAreaPartial(geom.OptArea{}))
	assert.Empty(t, desktop.SetWindowRectCalls)
}

func TestWindow_SetEdge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		edge     geom.EdgeType
		pos      geom.Coord
		resize   bool
		relative bool
		wantRaw  geom.Area
	}{
		{"resize right edge", geom.Right, geom.Pt(1000, 0), true, false, geom.NewArea(100, 100, 908, 607)},
		{"move left edge", geom.Left, geom.Pt(0, 0), false, false, geom.NewArea(-8, 100, 808, 607)},
		{"relative bottom-right resize", geom.BottomRight, geom.Pt(10, 20), true, true, geom.NewArea(100, 100, 818, 627)},
		{"move top-left corner", geom.TopLeft, geom.Pt(8, 0), false, false, geom.NewArea(0, 0, 808, 607)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())

			err := newWindow(desktop).SetEdge(tt.edge, tt.pos, tt.resize, tt.relative)
			require.NoError(t, err)

			require.Len(t, desktop.SetWindowRectCalls, 1)
			assert.Equal(t, tt.wantRaw, desktop.SetWindowRectCalls[0].Area)
		})
	}
}

func TestWindow_ClampToWorkArea(t *testing.T) {
	t.Parallel()

	win := borderedWindow()
	win.Raw = geom.NewArea(1500, 100, 808, 607)
	win.Client = geom.NewArea(1508, 139, 800, 600)

	t.Run("slides back inside", func(t *testing.T) {
		t.Parallel()

		desktop := testutil.NewMockDesktop().WithWindow(win)
		require.NoError(t, newWindow(desktop).ClampToWorkArea(false))

		require.Len(t, desktop.SetWindowRectCalls, 1)
		assert.Equal(t, geom.NewArea(1120, 100, 808, 607), desktop.SetWindowRectCalls[0].Area)
	})

	t.Run("pulls right edge in", func(t *testing.T) {
		t.Parallel()

		desktop := testutil.NewMockDesktop().WithWindow(win)
		require.NoError(t, newWindow(desktop).ClampToWorkArea(true))

		require.Len(t, desktop.SetWindowRectCalls, 1)
		assert.Equal(t, geom.NewArea(1500, 100, 428, 607), desktop.SetWindowRectCalls[0].Area)
	})

	t.Run("already inside writes nothing", func(t *testing.T) {
		t.Parallel()

		desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())
		require.NoError(t, newWindow(desktop).ClampToWorkArea(false))

		assert.Empty(t, desktop.SetWindowRectCalls)
	})
}

func TestWindow_SetWindowRectFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("access denied")
	desktop := testutil.NewMockDesktop().WithWindow(regionWindow()).WithSetWindowRectError(cause)

	err := newWindow(desktop).SetArea(geom.NewArea(0, 0, 100, 100))

	require.Error(t, err)
	assert.ErrorIs(t, err, resolver.ErrSetFailed)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, desktop.SetWindowRegionCalls, "region must not be touched after a failed move")
}

func TestWindow_SetWindowRegionFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid region")
	desktop := testutil.NewMockDesktop().WithWindow(regionWindow()).WithSetWindowRegionError(cause)

	err := newWindow(desktop).SetArea(geom.NewArea(0, 0, 100, 100))

	require.Error(t, err)
	assert.ErrorIs(t, err, resolver.ErrSetFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "set window region")
	assert.Len(t, desktop.SetWindowRectCalls, 1)
}

func TestWindow_MissingWindow(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop()
	w := newWindow(desktop)

	_, err := w.Area()
	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrMockWindowGone)
	assert.Contains(t, err.Error(), "raw area")

	err = w.SetArea(geom.NewArea(0, 0, 10, 10))
	assert.ErrorIs(t, err, testutil.ErrMockWindowGone)
	assert.Empty(t, desktop.SetWindowRectCalls)
}
