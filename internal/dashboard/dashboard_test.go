package dashboard

import (
	"testing"

	"launchdash/domain/launch"
)

// fixtureTable has site A with 3 successes / 2 failures and site B with
// 1 success / 4 failures, interleaved in file order.
func fixtureTable(t *testing.T) *launch.Table {
	t.Helper()
	return launch.NewTable("fixture", []launch.Record{
		{Site: "B", PayloadMass: 500, Class: 0, BoosterCategory: "v1.0"},
		{Site: "A", PayloadMass: 2500, Class: 1, BoosterCategory: "FT"},
		{Site: "A", PayloadMass: 4000, Class: 0, BoosterCategory: "v1.1"},
		{Site: "B", PayloadMass: 5300, Class: 1, BoosterCategory: "FT"},
		{Site: "A", PayloadMass: 6000, Class: 1, BoosterCategory: "B4"},
		{Site: "B", PayloadMass: 3100, Class: 0, BoosterCategory: "v1.1"},
		{Site: "A", PayloadMass: 9600, Class: 1, BoosterCategory: "B5"},
		{Site: "B", PayloadMass: 1200, Class: 0, BoosterCategory: "v1.0"},
		{Site: "A", PayloadMass: 0, Class: 0, BoosterCategory: "v1.0"},
		{Site: "B", PayloadMass: 7000, Class: 0, BoosterCategory: "FT"},
	})
}

func fixtureBounds() launch.PayloadBounds {
	return launch.PayloadBounds{Min: 0, Max: 9600}
}
