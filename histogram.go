package geoplot

import (
	"fmt"
	"log"
	"math"
	"reflect"
	"slices"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// roseSeries is one category's histogram: per-bin radial start (for
// stacking) and extent, in the units of the chosen statistic.
type roseSeries struct {
	name   string
	base   []float64
	height []float64
}

// roseHistogram is the aggregated form of the dataset handed to the polar
// layer plotters.
type roseHistogram struct {
	edges   []float64 // bin edges in radians, len(series[i].height)+1
	grouped bool
	series  []roseSeries
}

// rmax returns the largest radial extent over all series and bins.
func (h *roseHistogram) rmax() float64 {
	m := 0.0
	for _, s := range h.series {
		for i := range s.height {
			if v := s.base[i] + s.height[i]; v > m {
				m = v
			}
		}
	}
	return m
}

// binEdges anchors the bins so that a direction of exactly zero falls in
// the bin centered on zero: edges run from -binWidth/2 past 2 pi in
// binWidth steps. binWidth is in radians.
func binEdges(binWidth float64) []float64 {
	lo := -binWidth / 2
	n := 1
	for lo+float64(n)*binWidth <= 2*math.Pi {
		n++
	}
	return vec.Linspace(lo, lo+float64(n)*binWidth, n+1)
}

// binCounts bins the values (radians) into the given edges. Values outside
// the edge range are dropped, matching the histogram collaborator's
// treatment of an explicit bin range.
func binCounts(vals, edges []float64) []float64 {
	lo, hi := edges[0], edges[len(edges)-1]
	x := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v >= lo && v < hi {
			x = append(x, v)
		}
	}
	slices.Sort(x)
	return stat.Histogram(make([]float64, len(edges)-1), edges, x, nil)
}

// splitSeries partitions the radian column by category. An unset or
// unknown category column yields a single unnamed series; the unknown case
// is deliberately not an error (the diagram degrades to ungrouped), only a
// verbose-mode warning.
func splitSeries(t *table.Table, radianCol, categoryCol string, verbose bool) (names []string, values map[string][]float64, grouped bool) {
	if categoryCol != "" && t.Column(categoryCol) == nil && verbose {
		log.Printf("geoplot: category column %q not found, drawing ungrouped", categoryCol)
	}
	if categoryCol == "" || t.Column(categoryCol) == nil {
		return []string{""}, map[string][]float64{"": floatColumn(t, radianCol)}, false
	}

	values = make(map[string][]float64)
	g := table.GroupBy(t, categoryCol)
	for _, gid := range g.Tables() {
		sub := g.Table(gid)
		values[categoryName(sub, categoryCol)] = floatColumn(sub, radianCol)
	}
	// First-appearance order in the original rows keeps the default series
	// order independent of how GroupBy enumerates its tables.
	for _, name := range categoryStrings(t, categoryCol) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names, values, true
}

// buildRoseHistogram bins, normalizes, and composites the dataset per the
// resolved display options. binWidth is in radians.
func buildRoseHistogram(t *table.Table, radianCol, categoryCol string, binWidth float64, cfg *renderConfig, verbose bool) *roseHistogram {
	edges := binEdges(binWidth)
	names, values, grouped := splitSeries(t, radianCol, categoryCol, verbose)

	if cfg.order != nil && grouped {
		ordered := make([]string, 0, len(cfg.order))
		for _, n := range cfg.order {
			if _, ok := values[n]; ok && !slices.Contains(ordered, n) {
				ordered = append(ordered, n)
			}
		}
		names = ordered
	}

	nbins := len(edges) - 1
	counts := make([][]float64, len(names))
	total := 0.0
	for i, name := range names {
		counts[i] = binCounts(values[name], edges)
		total += floats.Sum(counts[i])
	}

	// Normalizing statistics are computed over all categories combined, so
	// that e.g. percent heights sum to 100 across the whole diagram.
	for _, c := range counts {
		for i := range c {
			switch cfg.stat {
			case StatFrequency:
				c[i] /= binWidth
			case StatProportion:
				if total > 0 {
					c[i] /= total
				}
			case StatPercent:
				if total > 0 {
					c[i] *= 100 / total
				}
			case StatDensity:
				if total > 0 {
					c[i] /= total * binWidth
				}
			}
		}
	}

	h := &roseHistogram{edges: edges, grouped: grouped}
	stackTop := make([]float64, nbins)
	for i, name := range names {
		s := roseSeries{name: name, height: counts[i]}
		if cfg.multiple == MultipleLayer {
			s.base = make([]float64, nbins)
		} else {
			s.base = slices.Clone(stackTop)
			floats.Add(stackTop, counts[i])
		}
		h.series = append(h.series, s)
	}

	if cfg.multiple == MultipleProportion {
		// stackTop now holds per-bin totals; rescale each bin column to 1.
		for i := range nbins {
			tot := stackTop[i]
			if tot <= 0 {
				continue
			}
			for j := range h.series {
				h.series[j].base[i] /= tot
				h.series[j].height[i] /= tot
			}
		}
	}
	return h
}

// categoryName renders the first category value of a (grouped) table as a
// string, so integer categories work as labels too.
func categoryName(t *table.Table, col string) string {
	rv := reflect.ValueOf(t.MustColumn(col))
	if rv.Len() == 0 {
		return ""
	}
	return fmt.Sprint(rv.Index(0).Interface())
}

func categoryStrings(t *table.Table, col string) []string {
	rv := reflect.ValueOf(t.MustColumn(col))
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}
