package geoplot

import (
	"fmt"
	"log"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// RadianSuffix is appended to the direction column name to form the name
// of the derived radian-valued column when the input is in degrees.
const RadianSuffix = "_rad"

// defaultBinWidth is the histogram bin width in angular units (degrees
// unless WithRadians was given).
const defaultBinWidth = 10.0

// RoseDiagram prepares directional data and renders it as a polar
// histogram. Directions are expected in degrees clockwise from North
// unless the diagram was built with WithRadians.
//
// The zero value is not usable; construct with New. A RoseDiagram holds
// its own copy of the dataset (extended with the derived radian column),
// so the caller's table is never modified. A RoseDiagram is not safe for
// concurrent use.
type RoseDiagram struct {
	data *table.Table // includes the radian column; nil when no dataset is set

	// configuration, fixed by New / SetData options
	directionCol string // explicit direction column name; "" means infer
	categoryCol  string
	degrees      bool
	binWidth     float64 // in the unit selected by degrees
	verbose      bool

	// resolved per dataset
	direction string // name of the direction column actually used
	radianCol string // name of the radian-valued column
}

// Option configures a RoseDiagram at construction or when (re)setting its
// dataset.
type Option func(*RoseDiagram)

// WithDirectionColumn names the column holding the direction values. When
// it is not given, the first column (in the table's column order) whose
// values are numeric is used. That default is a heuristic, not a validated
// best choice; name the column explicitly when the table carries several
// numeric columns.
func WithDirectionColumn(name string) Option {
	return func(r *RoseDiagram) { r.directionCol = name }
}

// WithCategoryColumn names a column that groups rows into series, drawn as
// separate overlaid (or stacked) histograms with a legend. The name is
// used as supplied: if no such column exists the diagram silently renders
// ungrouped, which verbose mode reports as a warning.
func WithCategoryColumn(name string) Option {
	return func(r *RoseDiagram) { r.categoryCol = name }
}

// WithRadians declares that the direction values are already in radians.
// No derived column is added in that case, and the bin width is taken to
// be in radians too.
func WithRadians() Option {
	return func(r *RoseDiagram) { r.degrees = false }
}

// WithBinWidth sets the histogram bin width, in degrees unless WithRadians
// was given. The default is 10.
func WithBinWidth(w float64) Option {
	return func(r *RoseDiagram) { r.binWidth = w }
}

// WithVerbose enables diagnostic narration on the standard logger. It
// never changes behavior.
func WithVerbose(v bool) Option {
	return func(r *RoseDiagram) { r.verbose = v }
}

// New builds a RoseDiagram. A nil table is allowed: the diagram stays
// empty (renders only the polar grid) until SetData supplies a dataset.
func New(data *table.Table, opts ...Option) (*RoseDiagram, error) {
	r := &RoseDiagram{
		degrees:  true,
		binWidth: defaultBinWidth,
	}
	if err := r.SetData(data, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// SetData replaces the dataset, applying any additional options first.
//
// A nil table clears the dataset and is not an error. A non-nil table must
// have at least one row and at least one numeric column. When the unit is
// degrees, a radian-valued column named direction+RadianSuffix is derived;
// the derived column lives in a private copy of the table, so the caller's
// table is left untouched.
func (r *RoseDiagram) SetData(data *table.Table, opts ...Option) error {
	for _, o := range opts {
		o(r)
	}
	if r.binWidth <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadBinWidth, r.binWidth)
	}

	if data == nil {
		if r.verbose && r.data != nil {
			log.Printf("geoplot: resetting the dataset")
		}
		r.data = nil
		r.direction = ""
		r.radianCol = ""
		return nil
	}
	if data.Len() == 0 {
		return ErrEmptyData
	}

	dir := r.directionCol
	if dir == "" {
		dir = firstNumericColumn(data)
		if dir == "" {
			return ErrNoNumericColumn
		}
		if r.verbose {
			log.Printf("geoplot: using %q as the direction column", dir)
		}
	} else {
		col := data.Column(dir)
		if col == nil {
			return fmt.Errorf("%w: direction column %q", ErrUnknownColumn, dir)
		}
		if !isNumericColumn(col) {
			return fmt.Errorf("%w: direction column %q", ErrNonNumericColumn, dir)
		}
	}
	r.direction = dir

	if r.degrees {
		degs := floatColumn(data, dir)
		rads := make([]float64, len(degs))
		for i, d := range degs {
			rads[i] = d * math.Pi / 180
		}
		r.radianCol = dir + RadianSuffix
		r.data = table.NewBuilder(data).Add(r.radianCol, rads).Done()
	} else {
		r.radianCol = dir
		r.data = data
	}
	return nil
}

// Data returns the diagram's working table, including the derived radian
// column, or nil when no dataset is set.
func (r *RoseDiagram) Data() *table.Table { return r.data }

// DirectionColumn returns the name of the direction column in use, or ""
// when no dataset is set.
func (r *RoseDiagram) DirectionColumn() string { return r.direction }

// RadianColumn returns the name of the radian-valued column in use, or ""
// when no dataset is set.
func (r *RoseDiagram) RadianColumn() string { return r.radianCol }

// CategoryColumn returns the configured category column name ("" when
// ungrouped).
func (r *RoseDiagram) CategoryColumn() string { return r.categoryCol }

// BinWidthRadians returns the resolved histogram bin width in radians.
func (r *RoseDiagram) BinWidthRadians() float64 {
	if r.degrees {
		return r.binWidth * math.Pi / 180
	}
	return r.binWidth
}

var float64Type = reflect.TypeOf(float64(0))

// firstNumericColumn returns the name of the first column, in the table's
// column order, whose values are numeric, or "" if there is none.
func firstNumericColumn(t *table.Table) string {
	for _, name := range t.Columns() {
		if isNumericColumn(t.Column(name)) {
			return name
		}
	}
	return ""
}

func isNumericColumn(col interface{}) bool {
	if col == nil {
		return false
	}
	rv := reflect.ValueOf(col)
	if rv.Kind() != reflect.Slice {
		return false
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// floatColumn copies a numeric column into a fresh []float64.
func floatColumn(t *table.Table, name string) []float64 {
	rv := reflect.ValueOf(t.MustColumn(name))
	out := make([]float64, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Convert(float64Type).Float()
	}
	return out
}
