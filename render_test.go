package geoplot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geodatakit/geoplot"
	"github.com/geodatakit/geoplot/dataset"
)

func TestRenderWithoutDatasetProducesGrid(t *testing.T) {
	rose, err := geoplot.New(nil)
	require.NoError(t, err)

	p, err := rose.Render()
	require.NoError(t, err)
	require.NotNil(t, p)

	// empty polar grid still gets a square data window and a radial label
	require.Equal(t, -p.X.Max, p.X.Min)
	require.Equal(t, p.X.Min, p.Y.Min)
	require.Equal(t, "Count", p.Y.Label.Text)
	require.Empty(t, p.X.Label.Text)
}

func TestRenderCreatesFreshFigures(t *testing.T) {
	rose, err := geoplot.New(dataset.Orientation())
	require.NoError(t, err)

	p1, err := rose.Render()
	require.NoError(t, err)
	p2, err := rose.Render()
	require.NoError(t, err)
	require.NotSame(t, p1, p2)
}

func TestAxisLabelDefaultsAndOverrides(t *testing.T) {
	rose, err := geoplot.New(dataset.Orientation(), geoplot.WithCategoryColumn("category"))
	require.NoError(t, err)

	p, err := rose.Render(geoplot.WithStat(geoplot.StatDensity))
	require.NoError(t, err)
	require.Equal(t, "strike_deg", p.X.Label.Text)
	require.Equal(t, "Density", p.Y.Label.Text)

	p, err = rose.Render(
		geoplot.WithAngularLabel("Strike direction"),
		geoplot.WithRadialLabel(""))
	require.NoError(t, err)
	require.Equal(t, "Strike direction", p.X.Label.Text)
	require.Empty(t, p.Y.Label.Text)
}

func TestRadialTickAngleOption(t *testing.T) {
	rose, err := geoplot.New(dataset.Orientation(), geoplot.WithBinWidth(20))
	require.NoError(t, err)

	p, err := rose.Render(geoplot.WithRadialTickAngle(135))
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = rose.Render(geoplot.WithRadialTickAngle(-30))
	require.NoError(t, err)
}

func TestRenderRejectsBadOptions(t *testing.T) {
	rose, err := geoplot.New(dataset.Orientation())
	require.NoError(t, err)

	_, err = rose.Render(geoplot.WithStat(geoplot.Stat(99)))
	require.ErrorIs(t, err, geoplot.ErrBadOption)
	require.ErrorIs(t, err, geoplot.ErrInvalidInput)

	_, err = rose.Render(geoplot.WithAlpha(1.5))
	require.ErrorIs(t, err, geoplot.ErrBadOption)

	_, err = rose.Render(geoplot.WithShrink(0))
	require.ErrorIs(t, err, geoplot.ErrBadOption)
}

func TestImageSizeAndShapes(t *testing.T) {
	rose, err := geoplot.New(dataset.Orientation(),
		geoplot.WithCategoryColumn("category"),
		geoplot.WithBinWidth(20))
	require.NoError(t, err)

	for _, element := range []geoplot.Element{
		geoplot.ElementBars, geoplot.ElementStep, geoplot.ElementPoly,
	} {
		img, err := rose.Image(400, 400,
			geoplot.WithElement(element),
			geoplot.WithMultiple(geoplot.MultipleStack))
		require.NoError(t, err, "element %v", element)
		require.Equal(t, 400, img.Bounds().Dx())
		require.Equal(t, 400, img.Bounds().Dy())
	}
}

func TestRoseHelper(t *testing.T) {
	rose, p, err := geoplot.Rose(dataset.Orientation())
	require.NoError(t, err)
	require.NotNil(t, rose)
	require.NotNil(t, p)
	require.Equal(t, "strike_deg", p.X.Label.Text)
}
