package dashboard

import (
	"fmt"
	"sort"
	"strconv"

	"launchdash/domain/chart"
	"launchdash/domain/launch"

	"github.com/montanaflynn/stats"
)

// Pie chart titles
const (
	PieTitleAllSites = "Total Success Launches By Site"
	pieTitleSiteFmt  = "Total Success Launches for %s Site"
)

// PieChart depicts success composition for the selected site.
// For "ALL" each slice is a site sized by its mean outcome class; for a single
// site each slice is an outcome class sized by its launch count.
func PieChart(table *launch.Table, site string) chart.Figure {
	if site == launch.AllSitesValue {
		return successRateBySite(table)
	}
	return outcomeCounts(table, site)
}

func successRateBySite(table *launch.Table) chart.Figure {
	classes := make(map[string][]float64)
	table.Each(func(r launch.Record) bool {
		classes[r.Site] = append(classes[r.Site], float64(r.Class))
		return true
	})

	sites := make([]string, 0, len(classes))
	for site := range classes {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	labels := make([]string, 0, len(sites))
	values := make([]float64, 0, len(sites))
	for _, site := range sites {
		rate, err := stats.Mean(classes[site])
		if err != nil {
			continue
		}
		labels = append(labels, site)
		values = append(values, rate)
	}

	return pieFigure(PieTitleAllSites, labels, values)
}

func outcomeCounts(table *launch.Table, site string) chart.Figure {
	counts := make(map[int]int)
	var order []int
	table.Each(func(r launch.Record) bool {
		if r.Site != site {
			return true
		}
		if _, ok := counts[r.Class]; !ok {
			order = append(order, r.Class)
		}
		counts[r.Class]++
		return true
	})

	// most frequent first, ties keep first-occurrence order
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	labels := make([]string, 0, len(order))
	values := make([]float64, 0, len(order))
	for _, class := range order {
		labels = append(labels, strconv.Itoa(class))
		values = append(values, float64(counts[class]))
	}

	return pieFigure(fmt.Sprintf(pieTitleSiteFmt, site), labels, values)
}

func pieFigure(title string, labels []string, values []float64) chart.Figure {
	return chart.Figure{
		Data: []chart.Trace{{
			Type:          chart.TracePie,
			Labels:        labels,
			Values:        values,
			HoverTemplate: "label=%{label}<br>value=%{value}<extra></extra>",
		}},
		Layout: chart.Layout{Title: chart.Text{Text: title}},
	}
}
