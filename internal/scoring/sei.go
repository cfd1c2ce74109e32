package scoring

import "github.com/brightpath-labs/pathfinder/internal/catalog"

// ScoreSEI scores the socio-emotional section on the 1-5 intensity scale.
// The raw category score is doubled and passed through the step normalization
// table to a 1-10 value, which drives the level.
func ScoreSEI(tax *catalog.Taxonomy, in *Interpretations, answers []Answer) DomainResult {
	totals := likertTotals(answers, catalog.DomainSEI, seiLikert)

	cats := map[string]CategoryScore{}
	bestKey, bestNorm := "", -1
	for _, c := range tax.Categories(catalog.DomainSEI) {
		score := clampScore(totals[c.Key], c.MaxScore())
		norm := seiNormalize(score * 2)
		lvl := seiLevel(norm)
		cats[c.Key] = CategoryScore{
			Score:          score,
			Percentage:     round2(score / c.MaxScore() * 100),
			Level:          lvl,
			Display:        c.Display,
			Interpretation: in.Resolve(catalog.DomainSEI, c.Key, lvl),
		}
		if norm > bestNorm {
			bestKey, bestNorm = c.Key, norm
		}
	}

	interp := ""
	if c, ok := tax.Category(catalog.DomainSEI, bestKey); ok {
		interp = "Your strongest socio-emotional skill is " + c.Display + "."
	}
	return DomainResult{Categories: cats, Interpretation: interp}
}
