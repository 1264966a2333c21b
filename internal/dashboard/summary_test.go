package dashboard

import (
	"testing"

	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	summaries, err := Summarize(fixtureTable(t), 0.95)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	a := summaries[0]
	assert.Equal(t, "A", a.Site)
	assert.Equal(t, 5, a.Launches)
	assert.Equal(t, 3, a.Successes)
	assert.InDelta(t, 0.6, a.SuccessRate, 1e-9)
	assert.InDelta(t, 0.2307, a.RateLow, 1e-3)
	assert.InDelta(t, 0.8824, a.RateHigh, 1e-3)
	assert.InDelta(t, 4420, a.PayloadMean, 1e-9)
	assert.InDelta(t, 4000, a.PayloadMedian, 1e-9)

	b := summaries[1]
	assert.Equal(t, "B", b.Site)
	assert.InDelta(t, 0.2, b.SuccessRate, 1e-9)
	assert.LessOrEqual(t, b.RateLow, b.SuccessRate)
	assert.GreaterOrEqual(t, b.RateHigh, b.SuccessRate)
}

func TestSummarizeWiderAtHigherConfidence(t *testing.T) {
	narrow, err := Summarize(fixtureTable(t), 0.80)
	require.NoError(t, err)
	wide, err := Summarize(fixtureTable(t), 0.99)
	require.NoError(t, err)

	for i := range narrow {
		assert.Less(t, wide[i].RateLow, narrow[i].RateLow)
		assert.Greater(t, wide[i].RateHigh, narrow[i].RateHigh)
	}
}

func TestSummarizeInvalidConfidence(t *testing.T) {
	for _, c := range []float64{0, 1, -0.5, 2} {
		_, err := Summarize(fixtureTable(t), c)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err), "confidence %v", c)
	}
}

func TestWilsonIntervalBounds(t *testing.T) {
	low, high := wilsonInterval(0, 4, 1.96)
	assert.InDelta(t, 0.0, low, 1e-12)
	assert.Greater(t, high, 0.0)

	low, high = wilsonInterval(4, 4, 1.96)
	assert.Less(t, low, 1.0)
	assert.LessOrEqual(t, high, 1.0)

	low, high = wilsonInterval(0, 0, 1.96)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 0.0, high)
}
