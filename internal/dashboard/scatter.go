package dashboard

import (
	"fmt"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// Scatter chart labels
const (
	NoDataTitle        = "No data available for the selected filters"
	PayloadAxisTitle   = "Payload Mass (kg)"
	SuccessAxisTitle   = "Launch Success"
	scatterTitleFmt    = "Correlation Between Payload and Success for %s"
	scatterHoverFormat = launch.ColumnBoosterCategory + "=%s<br>" + launch.ColumnPayloadMass + "=%%{x}<br>" +
		launch.ColumnClass + "=%%{y}<br>" + launch.ColumnSite + "=%%{customdata[0]}<extra></extra>"
)

// categoryColors is the qualitative palette assigned to booster categories in order
var categoryColors = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// ScatterChart plots payload mass against outcome class for records inside
// the payload range and matching the site filter, one series per booster
// version category. An empty selection yields the no-data figure.
func ScatterChart(table *launch.Table, payload launch.PayloadRange, site string) chart.Figure {
	records := table.Filter(func(r launch.Record) bool {
		return payload.Contains(r.PayloadMass) && launch.MatchesSite(r, site)
	})
	if len(records) == 0 {
		return NoDataFigure()
	}

	var traces []chart.Trace
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.BoosterCategory]
		if !ok {
			i = len(traces)
			index[r.BoosterCategory] = i
			traces = append(traces, chart.Trace{
				Type:          chart.TraceScatter,
				Mode:          "markers",
				Name:          r.BoosterCategory,
				LegendGroup:   r.BoosterCategory,
				HoverTemplate: fmt.Sprintf(scatterHoverFormat, r.BoosterCategory),
				Marker:        &chart.Marker{Color: categoryColors[i%len(categoryColors)]},
			})
		}
		tr := &traces[i]
		tr.X = append(tr.X, r.PayloadMass)
		tr.Y = append(tr.Y, float64(r.Class))
		tr.CustomData = append(tr.CustomData, []string{r.Site})
	}

	return chart.Figure{
		Data: traces,
		Layout: chart.Layout{
			Title:  chart.Text{Text: fmt.Sprintf(scatterTitleFmt, launch.SiteLabel(site))},
			XAxis:  &chart.Axis{Title: chart.Text{Text: launch.ColumnPayloadMass}},
			YAxis:  &chart.Axis{Title: chart.Text{Text: launch.ColumnClass}},
			Legend: &chart.Legend{Title: chart.Text{Text: launch.ColumnBoosterCategory}},
		},
	}
}

// NoDataFigure is the explicit empty-selection figure
func NoDataFigure() chart.Figure {
	return chart.Figure{
		Data: []chart.Trace{},
		Layout: chart.Layout{
			Title: chart.Text{Text: NoDataTitle},
			XAxis: &chart.Axis{Title: chart.Text{Text: PayloadAxisTitle}},
			YAxis: &chart.Axis{Title: chart.Text{Text: SuccessAxisTitle}},
		},
	}
}
