package dashboard

import (
	"math"
	"strconv"

	"launchdash/domain/launch"
)

// Component ids shared by the page and the callback bindings
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

// Page layout constants
const (
	PageTitle           = "SpaceX Launch Records Dashboard"
	DropdownPlaceholder = "Select a Launch Site"
	SliderCaption       = "Payload range (Kg):"
	SliderStep          = 1000.0
	SliderMinExtent     = 10000.0
	SliderMarkEvery     = 2500.0
)

// Style is an inline style for a page element
type Style struct {
	TextAlign string `json:"textAlign,omitempty"`
	Color     string `json:"color,omitempty"`
	FontSize  int    `json:"fontSize,omitempty"`
}

// Heading is the page title
type Heading struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Dropdown is a single-select control
type Dropdown struct {
	ID          string              `json:"id"`
	Options     []launch.SiteOption `json:"options"`
	Value       string              `json:"value"`
	Placeholder string              `json:"placeholder"`
	Searchable  bool                `json:"searchable"`
}

// Mark is a labelled tick on the range slider
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider is a dual-handle numeric control
type RangeSlider struct {
	ID      string              `json:"id"`
	Caption string              `json:"caption"`
	Min     float64             `json:"min"`
	Max     float64             `json:"max"`
	Step    float64             `json:"step"`
	Marks   []Mark              `json:"marks"`
	Value   launch.PayloadRange `json:"value"`
}

// Graph is a named slot a chart figure is rendered into
type Graph struct {
	ID string `json:"id"`
}

// Page is the static dashboard layout
type Page struct {
	Title    Heading     `json:"title"`
	Dropdown Dropdown    `json:"dropdown"`
	PieChart Graph       `json:"pie_chart"`
	Slider   RangeSlider `json:"slider"`
	Scatter  Graph       `json:"scatter_chart"`
}

// NewPage declares the dashboard layout from the site catalog and payload bounds.
// The slider spans at least [0, bounds.Max] and starts on the bounds.
func NewPage(catalog []launch.SiteOption, bounds launch.PayloadBounds) Page {
	sliderMax := math.Max(SliderMinExtent, math.Ceil(bounds.Max/SliderStep)*SliderStep)
	sliderMin := math.Min(0, math.Floor(bounds.Min/SliderStep)*SliderStep)

	var marks []Mark
	for v := sliderMin; v <= sliderMax; v += SliderMarkEvery {
		marks = append(marks, Mark{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}

	return Page{
		Title: Heading{
			Text:  PageTitle,
			Style: Style{TextAlign: "center", Color: "#503D36", FontSize: 40},
		},
		Dropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     catalog,
			Value:       launch.AllSitesValue,
			Placeholder: DropdownPlaceholder,
			Searchable:  true,
		},
		PieChart: Graph{ID: PieChartID},
		Slider: RangeSlider{
			ID:      PayloadSliderID,
			Caption: SliderCaption,
			Min:     sliderMin,
			Max:     sliderMax,
			Step:    SliderStep,
			Marks:   marks,
			Value:   bounds.Range(),
		},
		Scatter: Graph{ID: ScatterChartID},
	}
}
