package geoplot

import (
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/geodatakit/geoplot/dataset"
)

// mustRose builds a diagram over the table, failing the test on error.
func mustRose(t *testing.T, tab *table.Table, opts ...Option) *RoseDiagram {
	t.Helper()
	r, err := New(tab, opts...)
	require.NoError(t, err)
	return r
}

func histogramOf(r *RoseDiagram, cfg renderConfig) *roseHistogram {
	return buildRoseHistogram(r.data, r.radianCol, r.categoryCol, r.BinWidthRadians(), &cfg, false)
}

func TestBinEdgesAnchoredOnZero(t *testing.T) {
	for _, widthDeg := range []float64{5, 10, 17, 20, 45, 90} {
		w := widthDeg * math.Pi / 180
		edges := binEdges(w)

		require.InDelta(t, -w/2, edges[0], 1e-12, "width %v", widthDeg)
		require.Greater(t, edges[len(edges)-1], 2*math.Pi, "width %v", widthDeg)
		for i := 1; i < len(edges); i++ {
			require.InDelta(t, w, edges[i]-edges[i-1], 1e-9, "width %v", widthDeg)
		}

		// a direction of exactly zero lands in the bin centered on zero
		counts := binCounts([]float64{0}, edges)
		require.Equal(t, 1.0, counts[0], "width %v", widthDeg)
	}
}

func TestStatisticNormalizationLaws(t *testing.T) {
	tab := dataset.Clustered(50, 150, 88, 7)
	r := mustRose(t, tab, WithCategoryColumn("category"), WithBinWidth(20))
	w := r.BinWidthRadians()

	sum := func(h *roseHistogram) float64 {
		total := 0.0
		for _, s := range h.series {
			total += floats.Sum(s.height)
		}
		return total
	}

	cfg := defaultRenderConfig()

	cfg.stat = StatCount
	require.InDelta(t, 288, sum(histogramOf(r, cfg)), 1e-9)

	cfg.stat = StatProportion
	require.InDelta(t, 1.0, sum(histogramOf(r, cfg)), 1e-9)

	cfg.stat = StatPercent
	require.InDelta(t, 100.0, sum(histogramOf(r, cfg)), 1e-9)

	cfg.stat = StatDensity
	// total area (height times bin width) integrates to 1
	require.InDelta(t, 1.0, sum(histogramOf(r, cfg))*w, 1e-9)

	cfg.stat = StatFrequency
	require.InDelta(t, 288/w, sum(histogramOf(r, cfg)), 1e-6)
}

func TestClusteredScenarioPeaks(t *testing.T) {
	// 50 values near 100 degrees (Cat1), 150 near 320 (Cat2), 88 uniform:
	// with 20-degree bins and raw counts, the tallest Cat1 bar must be the
	// 90-110 bin and the tallest Cat2 bar the 310-330 bin.
	tab := dataset.Clustered(50, 150, 88, 42)
	r := mustRose(t, tab, WithCategoryColumn("category"), WithBinWidth(20))

	cfg := defaultRenderConfig()
	h := histogramOf(r, cfg)
	require.True(t, h.grouped)

	byName := map[string]roseSeries{}
	for _, s := range h.series {
		byName[s.name] = s
	}
	require.Contains(t, byName, "Cat1")
	require.Contains(t, byName, "Cat2")

	// bin k spans [20k-10, 20k+10) degrees, so 90-110 is k=5, 310-330 is k=16
	require.Equal(t, 5, floats.MaxIdx(byName["Cat1"].height))
	require.Equal(t, 16, floats.MaxIdx(byName["Cat2"].height))
}

func TestCategoryOrderIsDeterministic(t *testing.T) {
	forward := dataset.Clustered(10, 10, 10, 3)
	r := mustRose(t, forward, WithCategoryColumn("category"), WithBinWidth(30))

	cfg := defaultRenderConfig()
	cfg.order = []string{"Rand", "Cat2", "Cat1"}
	h := histogramOf(r, cfg)

	var names []string
	for _, s := range h.series {
		names = append(names, s.name)
	}
	require.Equal(t, []string{"Rand", "Cat2", "Cat1"}, names)

	// unlisted categories are dropped, missing listed ones are skipped
	cfg.order = []string{"Cat2", "Basalt"}
	h = histogramOf(r, cfg)
	require.Len(t, h.series, 1)
	require.Equal(t, "Cat2", h.series[0].name)

	// a repeated name counts only once, so stacking never doubles a series
	cfg.order = []string{"Cat1", "Cat1", "Cat2"}
	h = histogramOf(r, cfg)
	names = names[:0]
	for _, s := range h.series {
		names = append(names, s.name)
	}
	require.Equal(t, []string{"Cat1", "Cat2"}, names)
}

func TestLegendOnlyWhenGrouped(t *testing.T) {
	cfg := defaultRenderConfig()

	grouped := mustRose(t, dataset.Clustered(10, 10, 10, 3),
		WithCategoryColumn("category"), WithBinWidth(30))
	require.Equal(t, []string{"Cat1", "Cat2", "Rand"},
		legendNames(histogramOf(grouped, cfg)))

	plain := mustRose(t, dataset.Clustered(10, 10, 10, 3), WithBinWidth(30))
	require.Nil(t, legendNames(histogramOf(plain, cfg)))

	// a missing category column degrades to ungrouped, legend included
	missing := mustRose(t, dataset.Clustered(10, 10, 10, 3),
		WithCategoryColumn("lithology"), WithBinWidth(30))
	require.Nil(t, legendNames(histogramOf(missing, cfg)))

	// and no dataset means no legend at all
	require.Nil(t, legendNames(nil))
}

func TestDefaultCategoryOrderFollowsAppearance(t *testing.T) {
	tab := new(table.Builder).
		Add("strike_deg", []float64{10, 20, 30, 40}).
		Add("category", []string{"B", "A", "B", "A"}).
		Done()
	r := mustRose(t, tab, WithCategoryColumn("category"))

	cfg := defaultRenderConfig()
	h := histogramOf(r, cfg)
	require.Equal(t, "B", h.series[0].name)
	require.Equal(t, "A", h.series[1].name)
}

func TestStackingBasesAreCumulative(t *testing.T) {
	tab := new(table.Builder).
		Add("strike_deg", []float64{5, 5, 5, 5}).
		Add("category", []string{"A", "A", "B", "B"}).
		Done()
	r := mustRose(t, tab, WithCategoryColumn("category"), WithBinWidth(20))

	cfg := defaultRenderConfig()
	cfg.multiple = MultipleStack
	h := histogramOf(r, cfg)

	// all four values share bin 0
	require.Equal(t, 0.0, h.series[0].base[0])
	require.Equal(t, 2.0, h.series[0].height[0])
	require.Equal(t, 2.0, h.series[1].base[0])
	require.Equal(t, 2.0, h.series[1].height[0])

	// layer mode keeps every base at zero
	cfg.multiple = MultipleLayer
	h = histogramOf(r, cfg)
	require.Equal(t, 0.0, h.series[1].base[0])
}

func TestProportionModeFillsEachBin(t *testing.T) {
	tab := new(table.Builder).
		Add("strike_deg", []float64{5, 5, 5, 100}).
		Add("category", []string{"A", "A", "B", "B"}).
		Done()
	r := mustRose(t, tab, WithCategoryColumn("category"), WithBinWidth(20))

	cfg := defaultRenderConfig()
	cfg.multiple = MultipleProportion
	h := histogramOf(r, cfg)

	// bin 0 holds 2 A's and 1 B: proportions 2/3 and 1/3, stacked to 1
	require.InDelta(t, 2.0/3.0, h.series[0].height[0], 1e-12)
	require.InDelta(t, 1.0/3.0, h.series[1].height[0], 1e-12)
	require.InDelta(t, 2.0/3.0, h.series[1].base[0], 1e-12)
	require.InDelta(t, 1.0, h.rmax(), 1e-12)
}

func TestUnknownCategoryColumnDegradesToUngrouped(t *testing.T) {
	tab := new(table.Builder).Add("strike_deg", []float64{1, 2, 3}).Done()
	r := mustRose(t, tab, WithCategoryColumn("lithology"))

	cfg := defaultRenderConfig()
	h := histogramOf(r, cfg)
	require.False(t, h.grouped)
	require.Len(t, h.series, 1)
	require.InDelta(t, 3, floats.Sum(h.series[0].height), 1e-12)
}

func TestOutOfRangeValuesAreDropped(t *testing.T) {
	edges := binEdges(math.Pi / 9)
	counts := binCounts([]float64{-1, 0.1, 7.5}, edges)
	require.InDelta(t, 1, floats.Sum(counts), 1e-12)
}
