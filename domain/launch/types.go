package launch

import (
	"encoding/json"
	"fmt"
)

// Column names expected in the launch records file
const (
	ColumnSite            = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnClass           = "class"
	ColumnBoosterCategory = "Booster Version Category"
)

// RequiredColumns lists the columns a launch records file must carry
var RequiredColumns = []string{ColumnSite, ColumnPayloadMass, ColumnClass, ColumnBoosterCategory}

// Site sentinel meaning "no site filter"
const (
	AllSitesValue = "ALL"
	AllSitesLabel = "All Sites"
)

// Outcome classes
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// Record is a single launch
type Record struct {
	Site            string  `json:"site"`
	PayloadMass     float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"`
	BoosterCategory string  `json:"booster_version_category"`
}

// Success reports whether the launch outcome class is a success
func (r Record) Success() bool {
	return r.Class == ClassSuccess
}

// Table is the read-only set of launch records loaded at startup.
// Records keep file order.
type Table struct {
	source  string
	records []Record
}

// NewTable builds a table over a private copy of records
func NewTable(source string, records []Record) *Table {
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Table{source: source, records: owned}
}

// Source returns the path the table was loaded from
func (t *Table) Source() string {
	return t.source
}

// Len returns the number of records
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the i-th record by value
func (t *Table) At(i int) Record {
	return t.records[i]
}

// Each calls fn for every record in file order until fn returns false
func (t *Table) Each(fn func(Record) bool) {
	if t == nil {
		return
	}
	for _, r := range t.records {
		if !fn(r) {
			return
		}
	}
}

// Filter returns the records matching keep, in file order
func (t *Table) Filter(keep func(Record) bool) []Record {
	var out []Record
	t.Each(func(r Record) bool {
		if keep(r) {
			out = append(out, r)
		}
		return true
	})
	return out
}

// Payloads returns the payload column
func (t *Table) Payloads() []float64 {
	out := make([]float64, 0, t.Len())
	t.Each(func(r Record) bool {
		out = append(out, r.PayloadMass)
		return true
	})
	return out
}

// SiteOption is one dropdown entry
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IsAllSites reports whether the option is the "no site filter" sentinel
func (o SiteOption) IsAllSites() bool {
	return o.Value == AllSitesValue
}

// SiteLabel resolves a selected site value to its display label
func SiteLabel(site string) string {
	if site == AllSitesValue {
		return AllSitesLabel
	}
	return site
}

// MatchesSite reports whether r passes the site filter
func MatchesSite(r Record, site string) bool {
	return site == AllSitesValue || r.Site == site
}

// PayloadBounds is the payload extent of the loaded table
type PayloadBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Range converts the bounds into the slider's initial selection
func (b PayloadBounds) Range() PayloadRange {
	return PayloadRange{Low: b.Min, High: b.Max}
}

// PayloadRange is the inclusive payload selection. It travels as [low, high].
type PayloadRange struct {
	Low  float64
	High float64
}

// Valid reports whether Low <= High
func (r PayloadRange) Valid() bool {
	return r.Low <= r.High
}

// Contains reports whether mass lies within [Low, High]
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r.Low && mass <= r.High
}

func (r PayloadRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Low, r.High)
}

// MarshalJSON encodes the range as a two element array
func (r PayloadRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Low, r.High})
}

// UnmarshalJSON decodes a two element array
func (r *PayloadRange) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("payload range must be [low, high]: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("payload range must have 2 values, got %d", len(pair))
	}
	r.Low, r.High = pair[0], pair[1]
	return nil
}
