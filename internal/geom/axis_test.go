package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winarea/internal/geom"
)

func TestAxis(t *testing.T) {
	t.Parallel()

	var unset geom.Axis
	assert.False(t, unset.IsSet())
	assert.Equal(t, 7.0, unset.Or(7))
	assert.Equal(t, "-", unset.String())

	a := geom.Some(0)
	v, ok := a.Get()
	assert.True(t, ok, "zero is a valid value, not absence")
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 0.0, a.Or(7))

	assert.False(t, geom.Some(math.NaN()).IsSet())
}

func TestOptArea_Fill(t *testing.T) {
	t.Parallel()

	current := geom.NewArea(10, 20, 300, 400)

	opt := geom.OptArea{
		Point: geom.OptCoord{X: geom.Some(0)},
		Size:  geom.OptCoord{Y: geom.Some(250)},
	}

	assert.Equal(t, geom.NewArea(0, 20, 300, 250), opt.Fill(current))
	assert.False(t, opt.IsEmpty())
	assert.Equal(t, current, geom.OptArea{}.Fill(current))
	assert.True(t, geom.OptArea{}.IsEmpty())
}
