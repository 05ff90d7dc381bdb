package main

import (
	"fmt"

	"github.com/geodatakit/geoplot"
)

func getLeafValue(jsonTable map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = jsonTable
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func validateJsonFileAndFillParams(jsonTable map[string]interface{}, params *demoParams) (string, bool) {
	msg := "No problem found in json file" // Initialize msg to presumed success.

	showInput, ok := getLeafValue(jsonTable, "show_input_bool")
	if ok {
		params.ShowInput, ok = showInput.(bool)
		if !ok {
			msg = "show_input_bool: is not a bool"
			return msg, false
		}
	}

	verbose, ok := getLeafValue(jsonTable, "verbose_bool")
	if ok {
		params.Verbose, ok = verbose.(bool)
		if !ok {
			msg = "verbose_bool: is not a bool"
			return msg, false
		}
	}

	binWidth, ok := getLeafValue(jsonTable, "bin_width_degrees")
	if ok {
		params.BinWidthDeg, ok = binWidth.(float64)
		if !ok {
			msg = "bin_width_degrees: is not a float64"
			return msg, false
		}
	}

	statName, ok := getLeafValue(jsonTable, "statistic")
	if ok {
		name, isString := statName.(string)
		if !isString {
			msg = "statistic: is not a string"
			return msg, false
		}
		stat, err := geoplot.ParseStat(name)
		if err != nil {
			msg = fmt.Sprintf("statistic: %v", err)
			return msg, false
		}
		params.Statistic = stat
	}

	elementName, ok := getLeafValue(jsonTable, "element")
	if ok {
		name, isString := elementName.(string)
		if !isString {
			msg = "element: is not a string"
			return msg, false
		}
		element, err := geoplot.ParseElement(name)
		if err != nil {
			msg = fmt.Sprintf("element: %v", err)
			return msg, false
		}
		params.Element = element
	}

	multipleName, ok := getLeafValue(jsonTable, "multiple")
	if ok {
		name, isString := multipleName.(string)
		if !isString {
			msg = "multiple: is not a string"
			return msg, false
		}
		multiple, err := geoplot.ParseMultiple(name)
		if err != nil {
			msg = fmt.Sprintf("multiple: %v", err)
			return msg, false
		}
		params.Multiple = multiple
	}

	directionLabel, ok := getLeafValue(jsonTable, "direction_label")
	if ok {
		params.DirectionLabel, ok = directionLabel.(string)
		if !ok {
			msg = "direction_label: is not a string"
			return msg, false
		}
	}

	categoryLabel, ok := getLeafValue(jsonTable, "category_label")
	if ok {
		params.CategoryLabel, ok = categoryLabel.(string)
		if !ok {
			msg = "category_label: is not a string"
			return msg, false
		}
	}

	angularLabel, ok := getLeafValue(jsonTable, "angular_label")
	if ok {
		params.AngularLabel, ok = angularLabel.(string)
		if !ok {
			msg = "angular_label: is not a string"
			return msg, false
		}
	}

	outputPath, ok := getLeafValue(jsonTable, "output_png_path")
	if ok {
		params.OutputPNGPath, ok = outputPath.(string)
		if !ok {
			msg = "output_png_path: is not a string"
			return msg, false
		}
	}

	windowSize, ok := getLeafValue(jsonTable, "window_size_pixels")
	if ok {
		wSize, isFloat := windowSize.(float64)
		if !isFloat {
			msg = "window_size_pixels: is not a float64"
			return msg, false
		}
		params.WindowSizePixels = int(wSize)
	}

	order, ok := getLeafValue(jsonTable, "category_order")
	if ok {
		list, isList := order.([]interface{})
		if !isList {
			msg = "category_order: is not a list of strings"
			return msg, false
		}
		params.CategoryOrder = nil
		for _, v := range list {
			s, isString := v.(string)
			if !isString {
				msg = "category_order: is not a list of strings"
				return msg, false
			}
			params.CategoryOrder = append(params.CategoryOrder, s)
		}
	}

	return msg, true
}
