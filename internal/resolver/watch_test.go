package resolver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winarea/internal/geom"
	"github.com/Norgate-AV/winarea/internal/resolver"
	"github.com/Norgate-AV/winarea/internal/testutil"
)

func TestWatch_ReportsChangesUntilWindowCloses(t *testing.T) {
	t.Parallel()

	first := geom.NewArea(100, 100, 808, 607)
	moved := geom.NewArea(200, 100, 808, 607)

	desktop := testutil.NewMockDesktop().
		WithWindow(borderedWindow()).
		WithRawSequence(hwnd, first, first, first, moved, moved)

	var seen []geom.Area
	err := newWindow(desktop).Watch(context.Background(), time.Millisecond, func(r resolver.Resolution) {
		seen = append(seen, r.Logical)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrMockWindowGone)
	assert.Equal(t, []geom.Area{
		geom.NewArea(108, 100, 792, 599),
		geom.NewArea(208, 100, 792, 599),
	}, seen)
}

func TestWatch_ReportsBranchChange(t *testing.T) {
	t.Parallel()

	// Same raw area twice, but the second read finds the window maximised
	desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())
	raw := borderedWindow().Raw
	desktop.WithRawSequence(hwnd, raw, raw)

	var branches []resolver.Branch
	err := newWindow(desktop).Watch(context.Background(), time.Millisecond, func(r resolver.Resolution) {
		branches = append(branches, r.Branch)
		desktop.Windows[hwnd].Maximized = true
	})

	require.Error(t, err)
	assert.Equal(t, []resolver.Branch{resolver.BranchBordered, resolver.BranchMaximized}, branches)
}

func TestWatch_StopsOnCancel(t *testing.T) {
	t.Parallel()

	desktop := testutil.NewMockDesktop().WithWindow(borderedWindow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := newWindow(desktop).Watch(ctx, time.Hour, func(resolver.Resolution) {
		calls++
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls, "first resolution is always reported")
}

func TestWatch_MissingWindow(t *testing.T) {
	t.Parallel()

	err := newWindow(testutil.NewMockDesktop()).Watch(context.Background(), time.Millisecond, func(resolver.Resolution) {
		t.Fatal("no resolution expected")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch hwnd 0x1A2B")
}
