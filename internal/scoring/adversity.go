package scoring

import "github.com/brightpath-labs/pathfinder/internal/catalog"

// ScoreAdversity scores the four CORE categories on the 1-5 frequency scale.
// Individual categories report only score and percentage; the level and
// interpretation belong to the aggregate adversity quotient, which is twice
// the sum of the category raw scores.
func ScoreAdversity(tax *catalog.Taxonomy, in *Interpretations, answers []Answer) DomainResult {
	totals := likertTotals(answers, catalog.DomainAdversity, adversityLikert)

	cats := map[string]CategoryScore{}
	sum := 0.0
	for _, c := range tax.Categories(catalog.DomainAdversity) {
		score := clampScore(totals[c.Key], c.MaxScore())
		sum += score
		cats[c.Key] = CategoryScore{
			Score:      score,
			Percentage: round2(score / c.MaxScore() * 100),
			Display:    c.Display,
		}
	}

	aq := 2 * sum
	lvl := aqLevel(aq)
	return DomainResult{
		Categories:     cats,
		Interpretation: in.Resolve(catalog.DomainAdversity, "aq", lvl),
		AQScore:        aq,
		AQLevel:        lvl,
	}
}
