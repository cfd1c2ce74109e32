package scoring

import "github.com/brightpath-labs/pathfinder/internal/catalog"

func (lc *LetterCounts) add(letter string) {
	switch letter {
	case "R":
		lc.R++
	case "I":
		lc.I++
	case "A":
		lc.A++
	case "S":
		lc.S++
	case "E":
		lc.E++
	case "C":
		lc.C++
	}
}

func (lc *LetterCounts) get(letter string) int {
	switch letter {
	case "R":
		return lc.R
	case "I":
		return lc.I
	case "A":
		return lc.A
	case "S":
		return lc.S
	case "E":
		return lc.E
	case "C":
		return lc.C
	}
	return 0
}

// ScoreInterests scores the 15 pairwise interest categories and tallies the
// six RIASEC letter totals. The selected option's letter increments both the
// global total and the letter-win count inside its pairwise category; the
// option marks (agree=1, disagree=0) feed the category score.
func ScoreInterests(tax *catalog.Taxonomy, in *Interpretations, answers []Answer) (DomainResult, RiasecResult) {
	totals := map[string]int{}
	scores := map[string]float64{}
	wins := map[string]*LetterCounts{}
	for _, c := range tax.Categories(catalog.DomainInterests) {
		wins[c.Key] = &LetterCounts{}
	}

	for _, a := range answers {
		if a.Tag.Domain != catalog.DomainInterests {
			continue
		}
		scores[a.Tag.Category] += a.Option.Marks
		if a.Option.Type != "" {
			if _, ok := tax.InterestType(a.Option.Type); ok {
				totals[a.Option.Type]++
				if lc := wins[a.Tag.Category]; lc != nil {
					lc.add(a.Option.Type)
				}
			}
		}
	}

	cats := map[string]CategoryScore{}
	for _, c := range tax.Categories(catalog.DomainInterests) {
		score := clampScore(scores[c.Key], c.MaxScore())
		pct := round2(score / c.MaxScore() * 100)
		cats[c.Key] = CategoryScore{
			Score:        score,
			Percentage:   pct,
			Level:        interestLevel(pct),
			Display:      c.Display,
			LetterCounts: wins[c.Key],
		}
	}

	return DomainResult{Categories: cats}, rankInterests(tax, totals)
}
