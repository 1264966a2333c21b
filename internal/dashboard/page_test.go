package dashboard

import (
	"testing"

	"launchdash/domain/launch"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	catalog := BuildSiteCatalog(fixtureTable(t))
	page := NewPage(catalog, fixtureBounds())

	assert.Equal(t, "SpaceX Launch Records Dashboard", page.Title.Text)
	assert.Equal(t, "center", page.Title.Style.TextAlign)

	assert.Equal(t, "site-dropdown", page.Dropdown.ID)
	assert.Equal(t, launch.AllSitesValue, page.Dropdown.Value)
	assert.Equal(t, catalog, page.Dropdown.Options)
	assert.True(t, page.Dropdown.Searchable)

	assert.Equal(t, "payload-slider", page.Slider.ID)
	assert.Equal(t, 0.0, page.Slider.Min)
	assert.Equal(t, 10000.0, page.Slider.Max)
	assert.Equal(t, 1000.0, page.Slider.Step)
	assert.Equal(t, launch.PayloadRange{Low: 0, High: 9600}, page.Slider.Value)
	assert.Equal(t, []Mark{
		{Value: 0, Label: "0"},
		{Value: 2500, Label: "2500"},
		{Value: 5000, Label: "5000"},
		{Value: 7500, Label: "7500"},
		{Value: 10000, Label: "10000"},
	}, page.Slider.Marks)

	assert.Equal(t, "success-pie-chart", page.PieChart.ID)
	assert.Equal(t, "success-payload-scatter-chart", page.Scatter.ID)
}

func TestNewPageSliderCoversHeavyPayloads(t *testing.T) {
	page := NewPage(nil, launch.PayloadBounds{Min: 350, Max: 15600})

	assert.Equal(t, 0.0, page.Slider.Min)
	assert.Equal(t, 16000.0, page.Slider.Max)
	assert.GreaterOrEqual(t, page.Slider.Max, 15600.0)
	assert.Equal(t, launch.PayloadRange{Low: 350, High: 15600}, page.Slider.Value)
}
