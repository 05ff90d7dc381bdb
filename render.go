package geoplot

import (
	"image"
	"log"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"

	// Liberation fonts register automatically on import
	_ "gonum.org/v1/plot/font/liberation"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// plotMargin leaves room inside the plot area for the angular labels
// drawn outside the grid circle.
const plotMargin = 1.22

// legendMargin widens the window further when a legend is drawn, keeping
// the legend column clear of the petals and the angular labels.
const legendMargin = 1.45

// Render draws the rose diagram into a brand-new figure and returns it.
// The caller may customize the figure further (title, legend position) and
// save it with its Save method; Render never reuses rendering state
// between calls.
//
// With no dataset set the figure still contains the full polar grid and
// labels; only the histogram layer is skipped. That is not an error.
func (r *RoseDiagram) Render(opts ...RenderOption) (*plot.Plot, error) {
	cfg := defaultRenderConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if r.verbose {
		log.Printf("geoplot: creating the diagram")
	}
	p := plot.New()
	applyFonts(p)
	p.HideAxes()

	var hist *roseHistogram
	if r.data == nil {
		if r.verbose {
			log.Printf("geoplot: undefined dataset, not drawing")
		}
	} else {
		if r.verbose {
			log.Printf("geoplot: plotting the diagram")
		}
		hist = buildRoseHistogram(r.data, r.radianCol, r.categoryCol, r.BinWidthRadians(), &cfg, r.verbose)
	}

	// The grid radius follows the tallest bar; an empty diagram gets a
	// unit circle so the grid is still visible.
	rmax := 1.0
	if hist != nil {
		if m := hist.rmax(); m > 0 {
			rmax = m
		}
	}
	rticks := plot.DefaultTicks{}.Ticks(0, rmax)

	p.Add(newPolarGrid(rmax, rticks))

	if hist != nil {
		layers := make([]*roseLayer, len(hist.series))
		for i, s := range hist.series {
			layers[i] = newRoseLayer(hist, s, cfg.palette[i%len(cfg.palette)], &cfg)
			p.Add(layers[i])
		}
		if names := legendNames(hist); len(names) > 0 {
			for i, name := range names {
				p.Legend.Add(name, layers[i])
			}
			// Anchor the legend at the top-right corner of the widened
			// window, clear of the petals (the corners of a square window
			// around a circle are always empty).
			p.Legend.Top = true
		}
	}

	thetaLbls, err := thetaGridLabels(rmax)
	if err != nil {
		return nil, err
	}
	p.Add(thetaLbls)

	radialLbls, err := radialTickLabels(rticks, cfg.tickAngle, rmax)
	if err != nil {
		return nil, err
	}
	p.Add(radialLbls)

	angular := r.direction
	if cfg.angularLabel != nil {
		angular = *cfg.angularLabel
	}
	radial := cfg.stat.axisLabel()
	if cfg.radialLabel != nil {
		radial = *cfg.radialLabel
	}
	p.X.Label.Text = angular
	p.Y.Label.Text = radial
	p.X.Label.Padding = cfg.labelPad
	p.Y.Label.Padding = cfg.labelPad

	// Fix a square data window so the circle stays a circle on a square
	// canvas.
	margin := plotMargin
	if len(legendNames(hist)) > 0 {
		margin = legendMargin
	}
	extent := rmax * margin
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent

	return p, nil
}

// legendNames returns the legend entries for the histogram, one per
// series, in draw order. Ungrouped diagrams carry no legend, and neither
// do diagrams without a dataset.
func legendNames(h *roseHistogram) []string {
	if h == nil || !h.grouped {
		return nil
	}
	names := make([]string, len(h.series))
	for i, s := range h.series {
		names[i] = s.name
	}
	return names
}

// Image renders the diagram into an in-memory image of the given pixel
// size. Use equal width and height to keep the rose undistorted.
func (r *RoseDiagram) Image(wPx, hPx float64, opts ...RenderOption) (image.Image, error) {
	p, err := r.Render(opts...)
	if err != nil {
		return nil, err
	}

	// Map a "virtual" size in vg units to pixels via DPI.
	const dpi = 96
	width := vg.Length(wPx) * vg.Inch / dpi
	height := vg.Length(hPx) * vg.Inch / dpi

	c := vgimg.New(width, height)
	dc := draw.New(c)
	p.Draw(dc)

	return c.Image(), nil
}

// SavePNG renders the diagram and writes it to a PNG file of the given
// size.
func (r *RoseDiagram) SavePNG(path string, w, h vg.Length, opts ...RenderOption) error {
	p, err := r.Render(opts...)
	if err != nil {
		return err
	}
	return p.Save(w, h, path)
}

// Rose builds a diagram for the dataset and renders it immediately with
// the default display options.
func Rose(data *table.Table, opts ...Option) (*RoseDiagram, *plot.Plot, error) {
	r, err := New(data, opts...)
	if err != nil {
		return nil, nil, err
	}
	p, err := r.Render()
	if err != nil {
		return nil, nil, err
	}
	return r, p, nil
}

// applyFonts selects the Liberation fonts for every text element, matching
// the registered font collection.
func applyFonts(p *plot.Plot) {
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.Legend.TextStyle.Font.Typeface = "Liberation"
	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.TextStyle.Font.Size = vg.Points(10)
}
