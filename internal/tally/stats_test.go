package tally

import (
	"context"
	"math"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handclass/poker"
)

func TestStdError(t *testing.T) {
	report := &Report{Hands: 100}
	report.Counts[poker.Pair] = 50

	assert.InDelta(t, 0.05, report.StdError(poker.Pair), 1e-9)
	assert.Zero(t, report.StdError(poker.RoyalFlush))
	assert.Zero(t, (&Report{}).StdError(poker.Pair))
}

func TestMargin95(t *testing.T) {
	report := &Report{Hands: 100}
	report.Counts[poker.Pair] = 50

	assert.InDelta(t, 1.96*0.05, report.Margin95(poker.Pair), 1e-9)
	assert.Zero(t, report.Margin95(poker.RoyalFlush))
}

func TestTallyAgreesWithExactFrequencies(t *testing.T) {
	report, err := Run(context.Background(), Options{Hands: 50000, Workers: 4, Seed: 11}, quietLogger(), quartz.NewReal())
	require.NoError(t, err)

	// Exact counts over all 2,598,960 hands with aces high only.
	exact := map[poker.Category]float64{
		poker.HighCard:     1303560,
		poker.Pair:         1098240,
		poker.TwoPair:      123552,
		poker.ThreeOfAKind: 54912,
	}
	for cat, count := range exact {
		p := count / 2598960
		se := math.Sqrt(p * (1 - p) / float64(report.Hands))
		assert.InDelta(t, p, report.Frequency(cat), 5*se, "frequency of %s", cat)
	}
}
