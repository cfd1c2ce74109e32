package scoring

import "github.com/brightpath-labs/pathfinder/internal/catalog"

// ScorePsychometric scores the Big Five section on the 1-5 likelihood scale.
// The level split is binary at 17.5 of a 25-point category maximum, inclusive
// on the high side.
func ScorePsychometric(tax *catalog.Taxonomy, in *Interpretations, answers []Answer) DomainResult {
	totals := likertTotals(answers, catalog.DomainPsychometric, psychometricLikert)

	cats := map[string]CategoryScore{}
	bestKey, bestScore := "", -1.0
	for _, c := range tax.Categories(catalog.DomainPsychometric) {
		score := clampScore(totals[c.Key], c.MaxScore())
		lvl := psychometricLevel(score)
		cats[c.Key] = CategoryScore{
			Score:          score,
			Percentage:     round2(score / c.MaxScore() * 100),
			Level:          lvl,
			Display:        c.Display,
			Interpretation: in.Resolve(catalog.DomainPsychometric, c.Key, lvl),
		}
		if score > bestScore {
			bestKey, bestScore = c.Key, score
		}
	}

	interp := ""
	if c, ok := tax.Category(catalog.DomainPsychometric, bestKey); ok {
		interp = "Your most pronounced personality trait is " + c.Display + "."
	}
	return DomainResult{Categories: cats, Interpretation: interp}
}

// topPsychometricTrait returns the highest-scoring Big Five category key,
// breaking exact ties by the taxonomy's canonical order.
func topPsychometricTrait(tax *catalog.Taxonomy, r DomainResult) string {
	bestKey, bestScore := "", -1.0
	for _, c := range tax.Categories(catalog.DomainPsychometric) {
		if cs, ok := r.Categories[c.Key]; ok && cs.Score > bestScore {
			bestKey, bestScore = c.Key, cs.Score
		}
	}
	return bestKey
}
