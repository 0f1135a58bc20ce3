//go:build windows

package windows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	xwin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winarea/internal/geom"
)

func TestAreaFromRect(t *testing.T) {
	t.Parallel()

	r := xwin.Rect{Left: -8, Top: -8, Right: 1928, Bottom: 1088}

	assert.Equal(t, geom.NewArea(-8, -8, 1936, 1096), AreaFromRect(r))
}

func TestAreaFromRect_InvertedIsEmpty(t *testing.T) {
	t.Parallel()

	a := AreaFromRect(xwin.Rect{Left: 10, Top: 10, Right: 0, Bottom: 0})

	assert.True(t, a.IsEmpty())
}

func TestRectFromArea_Rounds(t *testing.T) {
	t.Parallel()

	r := RectFromArea(geom.NewArea(100.4, 99.6, 199.8, 50.2))

	assert.Equal(t, xwin.Rect{Left: 100, Top: 100, Right: 300, Bottom: 150}, r)
}

func TestRectRoundTrip(t *testing.T) {
	t.Parallel()

	a := geom.NewArea(108, 100, 792, 599)

	assert.Equal(t, a, AreaFromRect(RectFromArea(a)))
}
