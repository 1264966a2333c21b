package tabular

// RawRow is one data row keyed by trimmed header name
type RawRow map[string]string

// Data is a header row plus its data rows in file order
type Data struct {
	Headers []string
	Rows    []RawRow
}

// HasColumn reports whether the header row contains name
func (d *Data) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the names in required that the header row lacks
func (d *Data) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !d.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
