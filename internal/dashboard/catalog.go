package dashboard

import "launchdash/domain/launch"

// BuildSiteCatalog lists every distinct launch site in first-occurrence order,
// followed by the "All Sites" sentinel.
func BuildSiteCatalog(table *launch.Table) []launch.SiteOption {
	seen := make(map[string]bool)
	options := make([]launch.SiteOption, 0, 8)

	table.Each(func(r launch.Record) bool {
		if !seen[r.Site] {
			seen[r.Site] = true
			options = append(options, launch.SiteOption{Label: r.Site, Value: r.Site})
		}
		return true
	})

	return append(options, launch.SiteOption{Label: launch.AllSitesLabel, Value: launch.AllSitesValue})
}
