package scoring

import "github.com/brightpath-labs/pathfinder/internal/catalog"

// Answer is one learner submission joined with its question, the selected
// option and the question's resolved classification tag. The aggregator builds
// these; scorers only read them.
type Answer struct {
	Question catalog.Question
	Option   catalog.Option
	Tag      catalog.Tag
}

// likertTotals accumulates 1-5 point scores per category for one domain.
func likertTotals(answers []Answer, d catalog.Domain, scale map[string]float64) map[string]float64 {
	totals := map[string]float64{}
	for _, a := range answers {
		if a.Tag.Domain != d {
			continue
		}
		totals[a.Tag.Category] += likertScore(a.Option, scale)
	}
	return totals
}

// clampScore enforces the invariant that a raw score never exceeds the
// category's theoretical maximum.
func clampScore(score, max float64) float64 {
	if score > max {
		return max
	}
	return score
}
