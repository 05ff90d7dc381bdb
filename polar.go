package geoplot

import (
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// thetaGridStepDeg is the fixed angular grid interval.
	thetaGridStepDeg = 10
	// thetaLabelRadius places the angular labels just outside the grid,
	// as a fraction of the grid radius.
	thetaLabelRadius = 1.12
	// arcStep is the angular sampling interval for drawn arcs (2 degrees).
	arcStep = math.Pi / 90
)

// compassXY maps a compass angle (radians clockwise from North) and radius
// onto plot coordinates with North up.
func compassXY(theta, r float64) (x, y float64) {
	return r * math.Sin(theta), r * math.Cos(theta)
}

// arcAngles samples the angles of an arc from t0 to t1 finely enough that
// the stroked polyline looks circular.
func arcAngles(t0, t1 float64) []float64 {
	n := int(math.Abs(t1-t0)/arcStep) + 2
	return vec.Linspace(t0, t1, n)
}

// polarGrid draws the polar scaffolding of a rose diagram: spokes every 10
// degrees (heavier at the cardinal directions) and one circle per major
// radial tick.
type polarGrid struct {
	rmax     float64
	rticks   []plot.Tick
	line     draw.LineStyle
	cardinal draw.LineStyle
}

func newPolarGrid(rmax float64, rticks []plot.Tick) *polarGrid {
	return &polarGrid{
		rmax:   rmax,
		rticks: rticks,
		line: draw.LineStyle{
			Color: color.Gray{Y: 160},
			Width: vg.Points(0.25),
		},
		cardinal: draw.LineStyle{
			Color: color.Gray{Y: 96},
			Width: vg.Points(0.5),
		},
	}
}

func (g *polarGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pt := func(theta, r float64) vg.Point {
		x, y := compassXY(theta, r)
		return vg.Point{X: trX(x), Y: trY(y)}
	}

	for _, tk := range g.rticks {
		if tk.IsMinor() || tk.Value <= 0 || tk.Value > g.rmax {
			continue
		}
		ring := make([]vg.Point, 0, 181)
		for _, th := range vec.Linspace(0, 2*math.Pi, 181) {
			ring = append(ring, pt(th, tk.Value))
		}
		c.StrokeLines(g.line, ring)
	}

	for deg := 0; deg < 360; deg += thetaGridStepDeg {
		th := float64(deg) * math.Pi / 180
		sty := g.line
		if deg%90 == 0 {
			sty = g.cardinal
		}
		c.StrokeLines(sty, []vg.Point{pt(th, 0), pt(th, g.rmax)})
	}
}

func (g *polarGrid) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -g.rmax, g.rmax, -g.rmax, g.rmax
}

// roseLayer draws one category series of the histogram. It implements
// plot.Plotter and plot.Thumbnailer (for the legend).
type roseLayer struct {
	edges  []float64
	base   []float64
	height []float64

	element Element
	shrink  float64
	fill    color.Color
	edge    draw.LineStyle
}

func newRoseLayer(h *roseHistogram, s roseSeries, fill color.Color, cfg *renderConfig) *roseLayer {
	return &roseLayer{
		edges:   h.edges,
		base:    s.base,
		height:  s.height,
		element: cfg.element,
		shrink:  cfg.shrink,
		fill:    withAlpha(fill, cfg.alpha),
		edge: draw.LineStyle{
			Color: cfg.edgeColor,
			Width: cfg.edgeWidth,
		},
	}
}

// withAlpha scales the opacity of a fill color.
func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(alpha * float64(n.A)))
	return n
}

func (l *roseLayer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pt := func(theta, r float64) vg.Point {
		x, y := compassXY(theta, r)
		return vg.Point{X: trX(x), Y: trY(y)}
	}

	switch l.element {
	case ElementBars:
		l.plotBars(c, pt)
	case ElementStep:
		l.plotStep(c, pt)
	case ElementPoly:
		l.plotPoly(c, pt)
	}
}

// plotBars draws one filled sector per non-empty bin.
func (l *roseLayer) plotBars(c draw.Canvas, pt func(theta, r float64) vg.Point) {
	for k := range l.height {
		if l.height[k] <= 0 {
			continue
		}
		t0, t1 := l.edges[k], l.edges[k+1]
		if l.shrink < 1 {
			mid := (t0 + t1) / 2
			half := (t1 - t0) / 2 * l.shrink
			t0, t1 = mid-half, mid+half
		}
		r0, r1 := l.base[k], l.base[k]+l.height[k]

		outer := arcAngles(t0, t1)
		poly := make([]vg.Point, 0, 2*len(outer)+1)
		for _, th := range outer {
			poly = append(poly, pt(th, r1))
		}
		if r0 > 0 {
			for i := len(outer) - 1; i >= 0; i-- {
				poly = append(poly, pt(outer[i], r0))
			}
		} else {
			poly = append(poly, pt(t1, 0))
		}
		c.FillPolygon(l.fill, poly)
		c.StrokeLines(l.edge, append(poly, poly[0]))
	}
}

// plotStep draws the whole series as a single stepped silhouette: arcs at
// each bin's top joined by radial jumps, filled down to the bin bases.
func (l *roseLayer) plotStep(c draw.Canvas, pt func(theta, r float64) vg.Point) {
	var top []vg.Point
	for k := range l.height {
		r1 := l.base[k] + l.height[k]
		for _, th := range arcAngles(l.edges[k], l.edges[k+1]) {
			top = append(top, pt(th, r1))
		}
	}
	poly := append([]vg.Point{}, top...)
	for k := len(l.height) - 1; k >= 0; k-- {
		for _, th := range arcAngles(l.edges[k+1], l.edges[k]) {
			poly = append(poly, pt(th, l.base[k]))
		}
	}
	c.FillPolygon(l.fill, poly)
	c.StrokeLines(l.edge, top)
}

// plotPoly draws a closed polygon through the bin centers at the bin tops.
func (l *roseLayer) plotPoly(c draw.Canvas, pt func(theta, r float64) vg.Point) {
	top := make([]vg.Point, 0, len(l.height))
	for k := range l.height {
		mid := (l.edges[k] + l.edges[k+1]) / 2
		top = append(top, pt(mid, l.base[k]+l.height[k]))
	}
	poly := append([]vg.Point{}, top...)
	for k := len(l.height) - 1; k >= 0; k-- {
		mid := (l.edges[k] + l.edges[k+1]) / 2
		poly = append(poly, pt(mid, l.base[k]))
	}
	c.FillPolygon(l.fill, poly)
	c.StrokeLines(l.edge, append(top, top[0]))
}

func (l *roseLayer) DataRange() (xmin, xmax, ymin, ymax float64) {
	r := 0.0
	for k := range l.height {
		if v := l.base[k] + l.height[k]; v > r {
			r = v
		}
	}
	return -r, r, -r, r
}

// Thumbnail draws the legend swatch: a filled, outlined box.
func (l *roseLayer) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonY(pts)
	c.FillPolygon(l.fill, poly)

	pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
	outline := c.ClipLinesY(pts)
	c.StrokeLines(l.edge, outline...)
}

// thetaGridLabels labels the angular grid: N/E/S/W at the cardinal
// directions and plain degree values on the other spokes.
func thetaGridLabels(rmax float64) (*plotter.Labels, error) {
	cardinals := map[int]string{0: "N", 90: "E", 180: "S", 270: "W"}
	var xys plotter.XYs
	var names []string
	for deg := 0; deg < 360; deg += thetaGridStepDeg {
		x, y := compassXY(float64(deg)*math.Pi/180, rmax*thetaLabelRadius)
		xys = append(xys, plotter.XY{X: x, Y: y})
		if n, ok := cardinals[deg]; ok {
			names = append(names, n)
		} else {
			names = append(names, strconv.Itoa(deg))
		}
	}
	return centeredLabels(xys, names)
}

// radialTickLabels writes the radial tick values along the given compass
// angle (degrees clockwise from North).
func radialTickLabels(rticks []plot.Tick, angleDeg, rmax float64) (*plotter.Labels, error) {
	theta := angleDeg * math.Pi / 180
	var xys plotter.XYs
	var names []string
	for _, tk := range rticks {
		if tk.IsMinor() || tk.Value <= 0 || tk.Value > rmax {
			continue
		}
		x, y := compassXY(theta, tk.Value)
		xys = append(xys, plotter.XY{X: x, Y: y})
		names = append(names, tk.Label)
	}
	return centeredLabels(xys, names)
}

func centeredLabels(xys plotter.XYs, names []string) (*plotter.Labels, error) {
	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, err
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].XAlign = text.XCenter
		lbls.TextStyle[i].YAlign = text.YCenter
	}
	return lbls, nil
}
