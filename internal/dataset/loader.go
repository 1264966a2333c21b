package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"launchdash/adapters/tabular"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"

	"github.com/montanaflynn/stats"
)

var logger = internal.DefaultLogger.With("dataset")

// Load reads the launch records file at path into a read-only table.
// Every failure is a DATA_LOAD_ERROR.
func Load(path string) (*launch.Table, error) {
	start := time.Now()

	data, err := tabular.NewReader(path).Read()
	if err != nil {
		return nil, errors.WithCode(errors.CodeDataLoad, errors.Wrapf(err, "failed to read %s", path))
	}

	table, err := FromRows(path, data)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded %d launch records from %s in %s", table.Len(), path, time.Since(start).Round(time.Microsecond))
	return table, nil
}

// FromRows converts raw tabular rows into a launch table
func FromRows(source string, data *tabular.Data) (*launch.Table, error) {
	if missing := data.MissingColumns(launch.RequiredColumns); len(missing) > 0 {
		return nil, errors.DataLoadf("%s is missing required columns: %s", source, strings.Join(missing, ", "))
	}
	if len(data.Rows) == 0 {
		return nil, errors.DataLoadf("%s contains no launch records", source)
	}

	records := make([]launch.Record, 0, len(data.Rows))
	for i, row := range data.Rows {
		record, err := parseRecord(row)
		if err != nil {
			return nil, errors.Wrapf(err, "%s row %d", source, i+1)
		}
		records = append(records, record)
	}

	return launch.NewTable(source, records), nil
}

func parseRecord(row tabular.RawRow) (launch.Record, error) {
	site := row[launch.ColumnSite]
	if site == "" {
		return launch.Record{}, errors.DataLoad("empty " + strconv.Quote(launch.ColumnSite))
	}
	if site == launch.AllSitesValue {
		return launch.Record{}, errors.DataLoadf("%q is reserved and cannot be a launch site", launch.AllSitesValue)
	}

	payload, err := strconv.ParseFloat(row[launch.ColumnPayloadMass], 64)
	if err != nil || math.IsNaN(payload) || math.IsInf(payload, 0) {
		return launch.Record{}, errors.DataLoadf("invalid %q value %q", launch.ColumnPayloadMass, row[launch.ColumnPayloadMass])
	}

	class, err := parseClass(row[launch.ColumnClass])
	if err != nil {
		return launch.Record{}, err
	}

	return launch.Record{
		Site:            site,
		PayloadMass:     payload,
		Class:           class,
		BoosterCategory: row[launch.ColumnBoosterCategory],
	}, nil
}

// parseClass accepts 0/1 written as integers or floats ("1", "1.0")
func parseClass(raw string) (int, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.DataLoadf("invalid %q value %q", launch.ColumnClass, raw)
	}
	switch v {
	case launch.ClassFailure:
		return launch.ClassFailure, nil
	case launch.ClassSuccess:
		return launch.ClassSuccess, nil
	}
	return 0, errors.DataLoadf("%q must be 0 or 1, got %q", launch.ColumnClass, raw)
}

// Bounds returns the payload extent of the table
func Bounds(table *launch.Table) (launch.PayloadBounds, error) {
	payloads := stats.Float64Data(table.Payloads())

	low, err := payloads.Min()
	if err != nil {
		return launch.PayloadBounds{}, errors.WithCode(errors.CodeDataLoad, errors.Wrap(err, "cannot compute payload bounds"))
	}
	high, err := payloads.Max()
	if err != nil {
		return launch.PayloadBounds{}, errors.WithCode(errors.CodeDataLoad, errors.Wrap(err, "cannot compute payload bounds"))
	}

	return launch.PayloadBounds{Min: low, Max: high}, nil
}
