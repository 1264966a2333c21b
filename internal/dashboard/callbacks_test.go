package dashboard

import (
	"testing"

	"launchdash/domain/launch"
	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardBindings(t *testing.T) {
	d := New(fixtureTable(t), fixtureBounds())

	bindings := d.Bindings()
	require.Len(t, bindings, 2)
	assert.Equal(t, PieChartID, bindings[0].Output)
	assert.Equal(t, []string{SiteDropdownID}, bindings[0].Inputs)
	assert.Equal(t, ScatterChartID, bindings[1].Output)
	assert.Equal(t, []string{PayloadSliderID, SiteDropdownID}, bindings[1].Inputs)

	assert.Equal(t, ControlState{Site: "ALL", Payload: launch.PayloadRange{Low: 0, High: 9600}}, d.DefaultState())
	assert.Len(t, d.Catalog(), 3)
	assert.Equal(t, d.Catalog(), d.Page().Dropdown.Options)
}

func TestDispatchMatchesHandlers(t *testing.T) {
	table := fixtureTable(t)
	d := New(table, fixtureBounds())
	state := ControlState{Site: "A", Payload: launch.PayloadRange{Low: 1000, High: 7000}}

	pie, err := d.Dispatch(PieChartID, state)
	require.NoError(t, err)
	assert.Equal(t, PieChart(table, "A"), pie)

	scatter, err := d.Dispatch(ScatterChartID, state)
	require.NoError(t, err)
	assert.Equal(t, ScatterChart(table, state.Payload, "A"), scatter)

	again, err := d.Dispatch(ScatterChartID, state)
	require.NoError(t, err)
	assert.Equal(t, scatter, again)
}

func TestDispatchErrors(t *testing.T) {
	d := New(fixtureTable(t), fixtureBounds())

	_, err := d.Dispatch("histogram", d.DefaultState())
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = d.Dispatch(ScatterChartID, ControlState{Site: "ALL", Payload: launch.PayloadRange{Low: 5000, High: 1000}})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	// the pie chart does not read the slider
	_, err = d.Dispatch(PieChartID, ControlState{Site: "ALL", Payload: launch.PayloadRange{Low: 5000, High: 1000}})
	assert.NoError(t, err)
}

func TestDispatchClearedSite(t *testing.T) {
	d := New(fixtureTable(t), fixtureBounds())
	state := ControlState{Payload: d.Bounds().Range()}

	pie, err := d.Dispatch(PieChartID, state)
	require.NoError(t, err)
	require.Len(t, pie.Data, 1)
	assert.Empty(t, pie.Slices())

	scatter, err := d.Dispatch(ScatterChartID, state)
	require.NoError(t, err)
	assert.Equal(t, NoDataFigure(), scatter)
}
