package dashboard

import (
	"math"
	"sort"

	"launchdash/domain/launch"
	"launchdash/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// SiteSummary aggregates the launches of one site
type SiteSummary struct {
	Site          string  `json:"site"`
	Launches      int     `json:"launches"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"`
	RateLow       float64 `json:"success_rate_low"`
	RateHigh      float64 `json:"success_rate_high"`
	PayloadMean   float64 `json:"payload_mean_kg"`
	PayloadMedian float64 `json:"payload_median_kg"`
}

// Summarize returns one summary per site in ascending site order. The success
// rate interval is the Wilson score interval at the given confidence.
func Summarize(table *launch.Table, confidence float64) ([]SiteSummary, error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, errors.InvalidInput("confidence must be between 0 and 1")
	}
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)

	type acc struct {
		successes int
		payloads  []float64
	}
	bySite := make(map[string]*acc)
	table.Each(func(r launch.Record) bool {
		a, ok := bySite[r.Site]
		if !ok {
			a = &acc{}
			bySite[r.Site] = a
		}
		if r.Success() {
			a.successes++
		}
		a.payloads = append(a.payloads, r.PayloadMass)
		return true
	})

	sites := make([]string, 0, len(bySite))
	for site := range bySite {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	summaries := make([]SiteSummary, 0, len(sites))
	for _, site := range sites {
		a := bySite[site]
		n := len(a.payloads)

		mean, err := stats.Mean(a.payloads)
		if err != nil {
			return nil, errors.Wrapf(err, "payload mean for %s", site)
		}
		median, err := stats.Median(a.payloads)
		if err != nil {
			return nil, errors.Wrapf(err, "payload median for %s", site)
		}

		low, high := wilsonInterval(a.successes, n, z)
		summaries = append(summaries, SiteSummary{
			Site:          site,
			Launches:      n,
			Successes:     a.successes,
			SuccessRate:   float64(a.successes) / float64(n),
			RateLow:       low,
			RateHigh:      high,
			PayloadMean:   mean,
			PayloadMedian: median,
		})
	}
	return summaries, nil
}

func wilsonInterval(successes, n int, z float64) (float64, float64) {
	if n == 0 {
		return 0, 0
	}
	nf := float64(n)
	p := float64(successes) / nf
	z2 := z * z

	denom := 1 + z2/nf
	center := (p + z2/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf)) / denom

	return math.Max(0, center-half), math.Min(1, center+half)
}
