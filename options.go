package geoplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Stat selects the normalization applied to bar heights.
type Stat int

const (
	// StatCount shows raw counts per bin.
	StatCount Stat = iota
	// StatFrequency shows counts divided by the bin width (in radians).
	StatFrequency
	// StatProportion normalizes counts so they sum to 1 over all bins and
	// categories combined.
	StatProportion
	// StatPercent normalizes counts so they sum to 100.
	StatPercent
	// StatDensity normalizes counts so the total area of the histogram is 1.
	StatDensity
)

func (s Stat) String() string {
	switch s {
	case StatCount:
		return "count"
	case StatFrequency:
		return "frequency"
	case StatProportion:
		return "proportion"
	case StatPercent:
		return "percent"
	case StatDensity:
		return "density"
	}
	return fmt.Sprintf("Stat(%d)", int(s))
}

// axisLabel is the default radial axis label for the statistic.
func (s Stat) axisLabel() string {
	switch s {
	case StatCount:
		return "Count"
	case StatFrequency:
		return "Frequency"
	case StatProportion:
		return "Proportion"
	case StatPercent:
		return "Percent"
	case StatDensity:
		return "Density"
	}
	return ""
}

// ParseStat maps the user-facing statistic names ("count", "frequency",
// "proportion" or "probability", "percent", "density") to a Stat.
func ParseStat(name string) (Stat, error) {
	switch name {
	case "count":
		return StatCount, nil
	case "frequency":
		return StatFrequency, nil
	case "proportion", "probability":
		return StatProportion, nil
	case "percent":
		return StatPercent, nil
	case "density":
		return StatDensity, nil
	}
	return 0, fmt.Errorf("%w: unknown statistic %q", ErrBadOption, name)
}

// Multiple selects how several category series are composited radially.
type Multiple int

const (
	// MultipleLayer overlays the series with translucent fills.
	MultipleLayer Multiple = iota
	// MultipleStack stacks each series radially on top of the previous ones.
	MultipleStack
	// MultipleProportion stacks the series and rescales every bin to a total
	// height of 1, showing per-bin category proportions (a "fill" rendering).
	MultipleProportion
)

func (m Multiple) String() string {
	switch m {
	case MultipleLayer:
		return "layer"
	case MultipleStack:
		return "stack"
	case MultipleProportion:
		return "proportion"
	}
	return fmt.Sprintf("Multiple(%d)", int(m))
}

// ParseMultiple maps "layer", "stack", "proportion"/"fill" to a Multiple.
func ParseMultiple(name string) (Multiple, error) {
	switch name {
	case "layer":
		return MultipleLayer, nil
	case "stack":
		return MultipleStack, nil
	case "proportion", "fill":
		return MultipleProportion, nil
	}
	return 0, fmt.Errorf("%w: unknown multiple mode %q", ErrBadOption, name)
}

// Element selects the visual shape of the bins.
type Element int

const (
	// ElementBars draws one petal-like sector per bin.
	ElementBars Element = iota
	// ElementStep draws a single stepped outline per series.
	ElementStep
	// ElementPoly draws a smoothed polygon through the bin centers.
	ElementPoly
)

func (e Element) String() string {
	switch e {
	case ElementBars:
		return "bars"
	case ElementStep:
		return "step"
	case ElementPoly:
		return "poly"
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

// ParseElement maps "bars", "step", "poly" to an Element.
func ParseElement(name string) (Element, error) {
	switch name {
	case "bars":
		return ElementBars, nil
	case "step":
		return ElementStep, nil
	case "poly":
		return ElementPoly, nil
	}
	return 0, fmt.Errorf("%w: unknown element %q", ErrBadOption, name)
}

// renderConfig is the fully resolved set of display parameters for one
// Render call. It is rebuilt from the defaults on every call and discarded
// afterwards.
type renderConfig struct {
	stat     Stat
	element  Element
	multiple Multiple
	order    []string // explicit category order; nil keeps appearance order

	edgeColor color.Color
	edgeWidth vg.Length
	palette   []color.Color
	alpha     float64
	shrink    float64 // bars only

	angularLabel *string // nil means "use the direction column name"
	radialLabel  *string // nil means "describe the statistic"
	labelPad     vg.Length
	tickAngle    float64 // degrees clockwise from North for radial tick labels
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		stat:      StatCount,
		element:   ElementBars,
		multiple:  MultipleLayer,
		edgeColor: color.Black,
		edgeWidth: vg.Points(0.75),
		palette:   plotutil.DarkColors,
		alpha:     0.75,
		shrink:    1.0,
		labelPad:  vg.Points(20),
		tickAngle: 0,
	}
}

func (c *renderConfig) validate() error {
	if c.stat < StatCount || c.stat > StatDensity {
		return fmt.Errorf("%w: statistic %v", ErrBadOption, c.stat)
	}
	if c.element < ElementBars || c.element > ElementPoly {
		return fmt.Errorf("%w: element %v", ErrBadOption, c.element)
	}
	if c.multiple < MultipleLayer || c.multiple > MultipleProportion {
		return fmt.Errorf("%w: multiple mode %v", ErrBadOption, c.multiple)
	}
	if c.alpha < 0 || c.alpha > 1 {
		return fmt.Errorf("%w: alpha %v outside [0, 1]", ErrBadOption, c.alpha)
	}
	if c.shrink <= 0 || c.shrink > 1 {
		return fmt.Errorf("%w: shrink %v outside (0, 1]", ErrBadOption, c.shrink)
	}
	if len(c.palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrBadOption)
	}
	return nil
}

// RenderOption overrides one display parameter for a single Render call.
type RenderOption func(*renderConfig)

// WithStat selects the bar-height statistic. The default is StatCount.
func WithStat(s Stat) RenderOption {
	return func(c *renderConfig) { c.stat = s }
}

// WithElement selects the bin shape. The default is ElementBars.
func WithElement(e Element) RenderOption {
	return func(c *renderConfig) { c.element = e }
}

// WithMultiple selects how category series are composited. The default is
// MultipleLayer.
func WithMultiple(m Multiple) RenderOption {
	return func(c *renderConfig) { c.multiple = m }
}

// WithCategoryOrder fixes the draw (and stack) order of the category
// series. Categories not listed are not drawn; listed categories missing
// from the data are skipped, and a repeated name counts only once.
func WithCategoryOrder(names ...string) RenderOption {
	return func(c *renderConfig) { c.order = names }
}

// WithEdge sets the outline color and width of the bins. The defaults are
// black and 0.75pt.
func WithEdge(col color.Color, width vg.Length) RenderOption {
	return func(c *renderConfig) { c.edgeColor, c.edgeWidth = col, width }
}

// WithPalette sets the fill colors cycled through by the category series.
// The default is the gonum plotutil dark palette.
func WithPalette(p []color.Color) RenderOption {
	return func(c *renderConfig) { c.palette = p }
}

// WithAlpha sets the fill opacity in [0, 1]. The default is 0.75.
func WithAlpha(a float64) RenderOption {
	return func(c *renderConfig) { c.alpha = a }
}

// WithShrink scales the angular width of each bar about its bin center, in
// (0, 1]. It only affects ElementBars. The default is 1 (bars touch).
func WithShrink(s float64) RenderOption {
	return func(c *renderConfig) { c.shrink = s }
}

// WithAngularLabel overrides the angular-axis label. An empty string
// suppresses the label; the default is the direction column name.
func WithAngularLabel(s string) RenderOption {
	return func(c *renderConfig) { c.angularLabel = &s }
}

// WithRadialLabel overrides the radial-axis label. An empty string
// suppresses the label; the default describes the chosen statistic.
func WithRadialLabel(s string) RenderOption {
	return func(c *renderConfig) { c.radialLabel = &s }
}

// WithLabelPadding sets the padding between the axis labels and the tick
// text. The default is 20 points.
func WithLabelPadding(pad vg.Length) RenderOption {
	return func(c *renderConfig) { c.labelPad = pad }
}

// WithRadialTickAngle sets the compass angle (degrees clockwise from
// North) along which the radial tick labels are written. The default is 0,
// pointing North.
func WithRadialTickAngle(deg float64) RenderOption {
	return func(c *renderConfig) { c.tickAngle = deg }
}
