package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winarea/internal/geom"
)

func TestEdgeType_Classification(t *testing.T) {
	t.Parallel()

	for _, e := range []geom.EdgeType{geom.Left, geom.Right, geom.Top, geom.Bottom} {
		assert.True(t, e.IsSide(), "%s is a side", e)
		assert.False(t, e.IsCorner(), "%s is not a corner", e)
	}

	for _, e := range []geom.EdgeType{geom.TopLeft, geom.TopRight, geom.BottomLeft, geom.BottomRight} {
		assert.True(t, e.IsCorner(), "%s is a corner", e)
		assert.False(t, e.IsSide(), "%s is not a side", e)
	}

	assert.False(t, (geom.Left | geom.Right).IsCorner())
	assert.False(t, geom.EdgeNone.IsSide())
}

func TestEdgeType_Reverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, geom.Right, geom.Left.Reverse())
	assert.Equal(t, geom.BottomRight, geom.TopLeft.Reverse())
	assert.Equal(t, geom.TopRight, geom.TopLeft.ReverseHorizontal())
	assert.Equal(t, geom.BottomLeft, geom.TopLeft.ReverseVertical())
	assert.Equal(t, geom.Top, geom.Top.ReverseHorizontal(), "no horizontal flag to flip")
}

func TestEdgeType_Rotate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        geom.EdgeType
		steps     int
		clockwise bool
		want      geom.EdgeType
	}{
		{"side one step clockwise", geom.Top, 1, true, geom.Right},
		{"side one step counter-clockwise", geom.Top, 1, false, geom.Left},
		{"side negative steps", geom.Top, -1, true, geom.Left},
		{"side wraps modulo four", geom.Left, 5, true, geom.Top},
		{"corner clockwise", geom.TopLeft, 1, true, geom.TopRight},
		{"corner two steps", geom.TopLeft, 2, true, geom.BottomRight},
		{"corner counter-clockwise", geom.TopLeft, 1, false, geom.BottomLeft},
		{"full turn", geom.BottomRight, 4, true, geom.BottomRight},
		{"composite unchanged", geom.Left | geom.Right, 1, true, geom.Left | geom.Right},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Rotate(tt.steps, tt.clockwise))
		})
	}
}

func TestParseEdgeType(t *testing.T) {
	t.Parallel()

	tests := map[string]geom.EdgeType{
		"left":         geom.Left,
		"Bottom":       geom.Bottom,
		"top-left":     geom.TopLeft,
		"bottom_right": geom.BottomRight,
		" top right ":  geom.TopRight,
	}

	for in, want := range tests {
		got, err := geom.ParseEdgeType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, got, mustParse(t, got.String()), "String round-trips")
	}

	_, err := geom.ParseEdgeType("middle")
	assert.Error(t, err)
}

func mustParse(t *testing.T, s string) geom.EdgeType {
	t.Helper()

	e, err := geom.ParseEdgeType(s)
	require.NoError(t, err)

	return e
}
