// Command rosedemo renders a rose diagram of the bundled orientation
// sample: category grouping on, 20-degree bins, density statistic, an
// explicit category order, and a custom angular-axis label.
//
// An optional JSON5 parameter file overrides the defaults:
//
//	rosedemo [parameter-file]
//
// Recognized parameters: bin_width_degrees, statistic, element, multiple,
// direction_label, category_label, category_order, angular_label,
// output_png_path, window_size_pixels, show_input_bool, verbose_bool.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	json "github.com/KevinWang15/go-json5"
	"gonum.org/v1/plot/vg"

	"github.com/geodatakit/geoplot"
	"github.com/geodatakit/geoplot/dataset"
)

type demoParams struct {
	BinWidthDeg      float64
	Statistic        geoplot.Stat
	Element          geoplot.Element
	Multiple         geoplot.Multiple
	DirectionLabel   string
	CategoryLabel    string
	CategoryOrder    []string
	AngularLabel     string
	OutputPNGPath    string
	WindowSizePixels int
	ShowInput        bool
	Verbose          bool
}

// defaultParams is the scenario rendered when no parameter file is given.
func defaultParams() demoParams {
	return demoParams{
		BinWidthDeg:      20,
		Statistic:        geoplot.StatDensity,
		Element:          geoplot.ElementBars,
		Multiple:         geoplot.MultipleLayer,
		CategoryLabel:    "category",
		CategoryOrder:    []string{"Rand", "Cat1", "Cat2"},
		AngularLabel:     "Strike direction",
		OutputPNGPath:    "rose.png",
		WindowSizePixels: 700,
	}
}

func main() {
	params := defaultParams()

	args := os.Args
	if len(args) > 2 {
		fmt.Println("\n\tWrong number of arguments.\n\tUsage: rosedemo [parameter-file]")
		os.Exit(1)
	}

	if len(args) == 2 {
		path := args[1]

		// Read the Json5 (or Json) parameter file
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tAttempt to read input file %q failed: %w\n", path, err))
			os.Exit(2)
		}

		// Parse json(5) data into a generic container
		var jsonTable map[string]interface{}
		err = json.Unmarshal(data, &jsonTable)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tFormat error in file %q: %w\n", path, err))
			os.Exit(3)
		}

		msg, ok := validateJsonFileAndFillParams(jsonTable, &params)
		if !ok {
			fmt.Println(msg)
			os.Exit(4)
		}

		if params.ShowInput {
			fmt.Printf("%s", "\nPrintout of complete parameter file contents...\n")
			fmt.Println(string(data))
		}
	}

	opts := []geoplot.Option{
		geoplot.WithBinWidth(params.BinWidthDeg),
		geoplot.WithVerbose(params.Verbose),
	}
	if params.CategoryLabel != "" {
		opts = append(opts, geoplot.WithCategoryColumn(params.CategoryLabel))
	}
	if params.DirectionLabel != "" {
		opts = append(opts, geoplot.WithDirectionColumn(params.DirectionLabel))
	}

	rose, err := geoplot.New(dataset.Orientation(), opts...)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tCould not prepare the dataset: %w\n", err))
		os.Exit(5)
	}

	renderOpts := []geoplot.RenderOption{
		geoplot.WithStat(params.Statistic),
		geoplot.WithElement(params.Element),
		geoplot.WithMultiple(params.Multiple),
		geoplot.WithAngularLabel(params.AngularLabel),
	}
	if len(params.CategoryOrder) > 0 {
		renderOpts = append(renderOpts, geoplot.WithCategoryOrder(params.CategoryOrder...))
	}

	if params.OutputPNGPath != "" {
		err = rose.SavePNG(params.OutputPNGPath, 7*vg.Inch, 7*vg.Inch, renderOpts...)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tFailed to write %q: %w\n", params.OutputPNGPath, err))
			os.Exit(6)
		}
		fmt.Printf("Wrote %s\n", params.OutputPNGPath)
	}

	if params.WindowSizePixels > 0 {
		size := params.WindowSizePixels

		img, err := rose.Image(float64(size), float64(size), renderOpts...)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tCould not render the diagram: %w\n", err))
			os.Exit(7)
		}

		myApp := app.NewWithID("com.github.geodatakit.rosedemo")
		w := myApp.NewWindow("Rose diagram - " + params.Statistic.String() + " of " + rose.DirectionColumn())

		roseImg := canvas.NewImageFromImage(img)
		roseImg.FillMode = canvas.ImageFillContain
		roseImg.SetMinSize(fyne.NewSize(float32(size), float32(size)))

		w.SetContent(container.NewCenter(roseImg))
		w.Resize(fyne.NewSize(float32(size)+50, float32(size)+50))
		w.CenterOnScreen()
		w.ShowAndRun()
	}
}
