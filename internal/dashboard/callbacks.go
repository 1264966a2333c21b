package dashboard

import (
	"launchdash/domain/chart"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"
)

var logger = internal.DefaultLogger.With("dashboard")

// ControlState is the current value of every page control
type ControlState struct {
	Site    string              `json:"site-dropdown"`
	Payload launch.PayloadRange `json:"payload-slider"`
}

// Binding ties an output graph to the controls it reads and the handler that renders it
type Binding struct {
	Output string   `json:"output"`
	Inputs []string `json:"inputs"`
	render func(*launch.Table, ControlState) chart.Figure
}

// Dashboard holds the loaded table and everything derived from it at startup
type Dashboard struct {
	table    *launch.Table
	catalog  []launch.SiteOption
	bounds   launch.PayloadBounds
	page     Page
	bindings []Binding
}

// New derives the catalog, bounds, page layout and callback bindings for table
func New(table *launch.Table, bounds launch.PayloadBounds) *Dashboard {
	catalog := BuildSiteCatalog(table)
	d := &Dashboard{
		table:   table,
		catalog: catalog,
		bounds:  bounds,
		page:    NewPage(catalog, bounds),
		bindings: []Binding{
			{
				Output: PieChartID,
				Inputs: []string{SiteDropdownID},
				render: func(t *launch.Table, s ControlState) chart.Figure {
					return PieChart(t, s.Site)
				},
			},
			{
				Output: ScatterChartID,
				Inputs: []string{PayloadSliderID, SiteDropdownID},
				render: func(t *launch.Table, s ControlState) chart.Figure {
					return ScatterChart(t, s.Payload, s.Site)
				},
			},
		},
	}
	logger.Debug("Dashboard ready: %d sites, payload %s", len(catalog)-1, bounds.Range())
	return d
}

// Table returns the loaded launch table
func (d *Dashboard) Table() *launch.Table {
	return d.table
}

// Catalog returns the site dropdown options
func (d *Dashboard) Catalog() []launch.SiteOption {
	return d.catalog
}

// Bounds returns the payload bounds of the table
func (d *Dashboard) Bounds() launch.PayloadBounds {
	return d.bounds
}

// Page returns the static layout
func (d *Dashboard) Page() Page {
	return d.page
}

// Bindings returns the output bindings in declaration order
func (d *Dashboard) Bindings() []Binding {
	return d.bindings
}

// DefaultState is the control state the page starts with
func (d *Dashboard) DefaultState() ControlState {
	return ControlState{Site: launch.AllSitesValue, Payload: d.bounds.Range()}
}

// Dispatch renders output for the given control state
func (d *Dashboard) Dispatch(output string, state ControlState) (chart.Figure, error) {
	for _, b := range d.bindings {
		if b.Output != output {
			continue
		}
		if b.reads(PayloadSliderID) && !state.Payload.Valid() {
			return chart.Figure{}, errors.InvalidInput("payload range " + state.Payload.String() + " has low above high")
		}
		logger.Trace("Dispatch %s site=%q payload=%s", output, state.Site, state.Payload)
		return b.render(d.table, state), nil
	}
	return chart.Figure{}, errors.NotFound("output " + output)
}

func (b Binding) reads(input string) bool {
	for _, in := range b.Inputs {
		if in == input {
			return true
		}
	}
	return false
}
