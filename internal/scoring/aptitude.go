package scoring

import "github.com/brightpath-labs/pathfinder/internal/catalog"

// ScoreAptitude applies binary correctness scoring: one point when the
// selected option carries positive marks. Percentages always use the
// category's canonical question count as denominator so partially answered
// sections cannot inflate results.
func ScoreAptitude(tax *catalog.Taxonomy, in *Interpretations, answers []Answer) DomainResult {
	totals := map[string]float64{}
	for _, a := range answers {
		if a.Tag.Domain != catalog.DomainAptitude {
			continue
		}
		if a.Option.Marks > 0 {
			totals[a.Tag.Category]++
		}
	}

	cats := map[string]CategoryScore{}
	bestKey, bestPct := "", -1.0
	for _, c := range tax.Categories(catalog.DomainAptitude) {
		score := clampScore(totals[c.Key], c.MaxScore())
		pct := round2(score / c.MaxScore() * 100)
		lvl := aptitudeLevel(pct)
		cats[c.Key] = CategoryScore{
			Score:          score,
			Percentage:     pct,
			Level:          lvl,
			Display:        c.Display,
			Interpretation: in.Resolve(catalog.DomainAptitude, c.Key, lvl),
		}
		if pct > bestPct {
			bestKey, bestPct = c.Key, pct
		}
	}

	interp := ""
	if c, ok := tax.Category(catalog.DomainAptitude, bestKey); ok {
		interp = "Your strongest aptitude area is " + c.Display + "."
	}
	return DomainResult{Categories: cats, Interpretation: interp}
}
