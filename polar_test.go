package geoplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestCompassConvention(t *testing.T) {
	// zero points North (up), angles grow clockwise
	x, y := compassXY(0, 1)
	require.InDelta(t, 0, x, 1e-12)
	require.InDelta(t, 1, y, 1e-12)

	x, y = compassXY(math.Pi/2, 1)
	require.InDelta(t, 1, x, 1e-12)
	require.InDelta(t, 0, y, 1e-12)

	x, y = compassXY(math.Pi, 2)
	require.InDelta(t, 0, x, 1e-12)
	require.InDelta(t, -2, y, 1e-12)
}

func TestRadialTickLabelsFollowAngle(t *testing.T) {
	ticks := []plot.Tick{
		{Value: 0, Label: "0"}, // the origin is never labeled
		{Value: 1, Label: "1"},
		{Value: 2, Label: "2"},
		{Value: 3, Label: "3"}, // beyond rmax, skipped
	}

	// along East the labels sit on the positive x axis
	lbls, err := radialTickLabels(ticks, 90, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, lbls.Labels)
	for i, want := range []float64{1, 2} {
		require.InDelta(t, want, lbls.XYs[i].X, 1e-12)
		require.InDelta(t, 0, lbls.XYs[i].Y, 1e-12)
	}

	// along South they descend the negative y axis
	lbls, err = radialTickLabels(ticks, 180, 2)
	require.NoError(t, err)
	for i, want := range []float64{1, 2} {
		require.InDelta(t, 0, lbls.XYs[i].X, 1e-12)
		require.InDelta(t, -want, lbls.XYs[i].Y, 1e-12)
	}
}
