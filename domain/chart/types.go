package chart

// Figure is a renderable chart description: data series plus layout.
// It serialises in the shape Plotly.react accepts.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace types
const (
	TracePie     = "pie"
	TraceScatter = "scatter"
)

// Trace is one data series
type Trace struct {
	Type          string     `json:"type"`
	Name          string     `json:"name,omitempty"`
	Mode          string     `json:"mode,omitempty"`
	Labels        []string   `json:"labels,omitempty"`
	Values        []float64  `json:"values,omitempty"`
	X             []float64  `json:"x,omitempty"`
	Y             []float64  `json:"y,omitempty"`
	CustomData    [][]string `json:"customdata,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
	LegendGroup   string     `json:"legendgroup,omitempty"`
	Marker        *Marker    `json:"marker,omitempty"`
}

// Marker styles scatter points
type Marker struct {
	Color string `json:"color,omitempty"`
}

// Text wraps a title string
type Text struct {
	Text string `json:"text"`
}

// Axis describes an axis
type Axis struct {
	Title Text `json:"title"`
}

// Legend describes the legend box
type Legend struct {
	Title Text `json:"title"`
}

// Layout holds figure-level metadata
type Layout struct {
	Title  Text    `json:"title"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Empty reports whether the figure carries no data series
func (f Figure) Empty() bool {
	return len(f.Data) == 0
}

// PointCount returns the number of points across scatter traces
func (f Figure) PointCount() int {
	n := 0
	for _, tr := range f.Data {
		if tr.Type == TraceScatter {
			n += len(tr.X)
		}
	}
	return n
}

// Slices returns label -> value for the first pie trace
func (f Figure) Slices() map[string]float64 {
	out := make(map[string]float64)
	for _, tr := range f.Data {
		if tr.Type != TracePie {
			continue
		}
		for i, label := range tr.Labels {
			out[label] = tr.Values[i]
		}
		break
	}
	return out
}
