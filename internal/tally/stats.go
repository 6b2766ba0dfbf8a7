package tally

import (
	"math"

	"github.com/lox/handclass/poker"
)

// z95 is the two-sided 95% normal quantile
const z95 = 1.96

// StdError returns the standard error of the observed frequency of category c,
// treating each dealt hand as an independent Bernoulli trial
func (r *Report) StdError(c poker.Category) float64 {
	if r.Hands == 0 {
		return 0
	}
	p := r.Frequency(c)
	return math.Sqrt(p * (1 - p) / float64(r.Hands))
}

// Margin95 returns the half-width of the 95% confidence interval for the frequency of c
func (r *Report) Margin95(c poker.Category) float64 {
	return z95 * r.StdError(c)
}
