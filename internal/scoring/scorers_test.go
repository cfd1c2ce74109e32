package scoring

import (
	"testing"

	"github.com/brightpath-labs/pathfinder/internal/catalog"
)

func ans(d catalog.Domain, cat string, o catalog.Option) Answer {
	return Answer{Option: o, Tag: catalog.Tag{Domain: d, Category: cat}}
}

func repeatAns(d catalog.Domain, cat string, o catalog.Option, n int) []Answer {
	out := make([]Answer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ans(d, cat, o))
	}
	return out
}

func checkPercentBounds(t *testing.T, r DomainResult) {
	t.Helper()
	for key, cs := range r.Categories {
		if cs.Percentage < 0 || cs.Percentage > 100 {
			t.Fatalf("category %s: percentage %v out of bounds", key, cs.Percentage)
		}
	}
}

func TestLikertScore(t *testing.T) {
	tests := []struct {
		name  string
		opt   catalog.Option
		scale map[string]float64
		want  float64
	}{
		{"explicit marks win", catalog.Option{Marks: 4, Text: "never"}, adversityLikert, 4},
		{"text lookup", catalog.Option{Text: "Often"}, adversityLikert, 4},
		{"case and whitespace insensitive", catalog.Option{Text: "  ALWAYS "}, adversityLikert, 5},
		{"zero marks fall back to text", catalog.Option{Marks: 0, Text: "never"}, adversityLikert, 1},
		{"unknown text degrades to neutral", catalog.Option{Text: "whenever"}, adversityLikert, likertNeutral},
		{"psychometric scale", catalog.Option{Text: "extremely likely"}, psychometricLikert, 5},
		{"sei scale", catalog.Option{Text: "not at all"}, seiLikert, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := likertScore(tc.opt, tc.scale); got != tc.want {
				t.Fatalf("likertScore=%v want %v", got, tc.want)
			}
		})
	}
}

func TestLevelBoundaries(t *testing.T) {
	if got := aptitudeLevel(77); got != LevelHigh {
		t.Fatalf("aptitudeLevel(77)=%s", got)
	}
	if got := aptitudeLevel(76.99); got != LevelModerate {
		t.Fatalf("aptitudeLevel(76.99)=%s", got)
	}
	if got := aptitudeLevel(24); got != LevelModerate {
		t.Fatalf("aptitudeLevel(24)=%s", got)
	}
	if got := aptitudeLevel(23.99); got != LevelLow {
		t.Fatalf("aptitudeLevel(23.99)=%s", got)
	}

	if got := psychometricLevel(17.5); got != LevelHigh {
		t.Fatalf("psychometricLevel(17.5)=%s, boundary must be inclusive", got)
	}
	if got := psychometricLevel(17); got != LevelLow {
		t.Fatalf("psychometricLevel(17)=%s", got)
	}

	aqCases := []struct {
		aq   float64
		want string
	}{
		{200, LevelHigh}, {178, LevelHigh}, {177, LevelModeratelyHigh},
		{161, LevelModeratelyHigh}, {160, LevelModerate}, {135, LevelModerate},
		{134, LevelModeratelyLow}, {118, LevelModeratelyLow}, {117, LevelLow},
	}
	for _, tc := range aqCases {
		if got := aqLevel(tc.aq); got != tc.want {
			t.Fatalf("aqLevel(%v)=%s want %s", tc.aq, got, tc.want)
		}
	}

	normCases := []struct {
		doubled float64
		want    int
	}{
		{50, 10}, {46, 10}, {45, 9}, {34, 7}, {30, 6}, {22, 4}, {10, 1}, {9, 0},
	}
	for _, tc := range normCases {
		if got := seiNormalize(tc.doubled); got != tc.want {
			t.Fatalf("seiNormalize(%v)=%d want %d", tc.doubled, got, tc.want)
		}
	}
	if got := seiLevel(8); got != LevelHigh {
		t.Fatalf("seiLevel(8)=%s", got)
	}
	if got := seiLevel(5); got != LevelModerate {
		t.Fatalf("seiLevel(5)=%s", got)
	}
	if got := seiLevel(4); got != LevelLow {
		t.Fatalf("seiLevel(4)=%s", got)
	}
}

func TestScoreAptitude(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	in := DefaultInterpretations()
	correct := catalog.Option{Marks: 1}
	wrong := catalog.Option{Marks: 0}

	var answers []Answer
	answers = append(answers, repeatAns(catalog.DomainAptitude, "verbal", correct, 9)...)
	answers = append(answers, repeatAns(catalog.DomainAptitude, "numerical", correct, 4)...)
	answers = append(answers, repeatAns(catalog.DomainAptitude, "numerical", wrong, 5)...)
	// logical: only 2 of 9 answered, both correct. Canonical denominator.
	answers = append(answers, repeatAns(catalog.DomainAptitude, "logical", correct, 2)...)

	r := ScoreAptitude(tax, in, answers)
	checkPercentBounds(t, r)

	if got := r.Categories["verbal"]; got.Score != 9 || got.Percentage != 100 || got.Level != LevelHigh {
		t.Fatalf("verbal=%+v", got)
	}
	if got := r.Categories["numerical"]; got.Score != 4 || got.Percentage != 44.44 || got.Level != LevelModerate {
		t.Fatalf("numerical=%+v", got)
	}
	if got := r.Categories["logical"]; got.Score != 2 || got.Percentage != 22.22 || got.Level != LevelLow {
		t.Fatalf("logical: unanswered questions must count against the canonical 9, got %+v", got)
	}
	if got := r.Categories["spatial"]; got.Score != 0 || got.Percentage != 0 || got.Level != LevelLow {
		t.Fatalf("spatial=%+v", got)
	}
	if r.Interpretation != "Your strongest aptitude area is Verbal Ability." {
		t.Fatalf("interpretation=%q", r.Interpretation)
	}
	if r.Categories["verbal"].Interpretation == "" || r.Categories["verbal"].Interpretation == NoInterpretation {
		t.Fatalf("verbal interpretation missing: %q", r.Categories["verbal"].Interpretation)
	}
}

func TestScoreAptitudeClampsAtCanonicalMax(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	in := DefaultInterpretations()
	answers := repeatAns(catalog.DomainAptitude, "verbal", catalog.Option{Marks: 1}, 12)
	r := ScoreAptitude(tax, in, answers)
	if got := r.Categories["verbal"]; got.Score != 9 || got.Percentage != 100 {
		t.Fatalf("verbal=%+v, want clamp at 9/100%%", got)
	}
}

func TestScorePsychometric(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	in := DefaultInterpretations()

	var answers []Answer
	answers = append(answers, repeatAns(catalog.DomainPsychometric, "openness", catalog.Option{Text: "extremely likely"}, 5)...)
	answers = append(answers, repeatAns(catalog.DomainPsychometric, "conscientiousness", catalog.Option{Text: "neutral"}, 5)...)
	// 4+4+4+3+3 = 18, just above the binary boundary.
	answers = append(answers, ans(catalog.DomainPsychometric, "extraversion", catalog.Option{Marks: 4}))
	answers = append(answers, ans(catalog.DomainPsychometric, "extraversion", catalog.Option{Marks: 4}))
	answers = append(answers, ans(catalog.DomainPsychometric, "extraversion", catalog.Option{Marks: 4}))
	answers = append(answers, ans(catalog.DomainPsychometric, "extraversion", catalog.Option{Marks: 3}))
	answers = append(answers, ans(catalog.DomainPsychometric, "extraversion", catalog.Option{Marks: 3}))

	r := ScorePsychometric(tax, in, answers)
	checkPercentBounds(t, r)

	if got := r.Categories["openness"]; got.Score != 25 || got.Level != LevelHigh || got.Percentage != 100 {
		t.Fatalf("openness=%+v", got)
	}
	if got := r.Categories["conscientiousness"]; got.Score != 15 || got.Level != LevelLow {
		t.Fatalf("conscientiousness=%+v", got)
	}
	if got := r.Categories["extraversion"]; got.Score != 18 || got.Level != LevelHigh {
		t.Fatalf("extraversion=%+v", got)
	}
	if r.Interpretation != "Your most pronounced personality trait is Openness." {
		t.Fatalf("interpretation=%q", r.Interpretation)
	}
}

func TestTopPsychometricTraitCanonicalTieBreak(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	r := DomainResult{Categories: map[string]CategoryScore{
		"openness":          {Score: 20},
		"conscientiousness": {Score: 20},
		"extraversion":      {Score: 12},
	}}
	if got := topPsychometricTrait(tax, r); got != "openness" {
		t.Fatalf("topPsychometricTrait=%q want openness", got)
	}
}

func TestScoreAdversity(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	in := DefaultInterpretations()

	// 16 questions, 4 per category, all answered "always": AQ = 2*(4*20) = 160.
	always := catalog.Option{Text: "always"}
	var answers []Answer
	for _, cat := range []string{"control", "ownership", "reach", "endurance"} {
		answers = append(answers, repeatAns(catalog.DomainAdversity, cat, always, 4)...)
	}

	r := ScoreAdversity(tax, in, answers)
	checkPercentBounds(t, r)

	if r.AQScore != 160 {
		t.Fatalf("aqScore=%v want 160", r.AQScore)
	}
	if r.AQLevel != LevelModerate {
		t.Fatalf("aqLevel=%s want Moderate", r.AQLevel)
	}
	if int(r.AQScore)%2 != 0 {
		t.Fatalf("aqScore=%v must be even (doubled sum)", r.AQScore)
	}
	if got := r.Categories["control"]; got.Score != 20 || got.Percentage != 80 {
		t.Fatalf("control=%+v", got)
	}
	// Category entries carry no individual level; that belongs to the AQ.
	if got := r.Categories["control"]; got.Level != "" || got.Interpretation != "" {
		t.Fatalf("control should have no per-category level/interpretation: %+v", got)
	}
	if r.Interpretation == "" || r.Interpretation == NoInterpretation {
		t.Fatalf("aq interpretation missing: %q", r.Interpretation)
	}
}

func TestScoreAdversityHighBand(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	in := DefaultInterpretations()

	// Sum 25+25+25+14 = 89, AQ 178, the lowest High.
	max := catalog.Option{Marks: 5}
	var answers []Answer
	answers = append(answers, repeatAns(catalog.DomainAdversity, "control", max, 5)...)
	answers = append(answers, repeatAns(catalog.DomainAdversity, "ownership", max, 5)...)
	answers = append(answers, repeatAns(catalog.DomainAdversity, "reach", max, 5)...)
	answers = append(answers, repeatAns(catalog.DomainAdversity, "endurance", max, 2)...)
	answers = append(answers, ans(catalog.DomainAdversity, "endurance", catalog.Option{Marks: 4}))

	r := ScoreAdversity(tax, in, answers)
	if r.AQScore != 178 || r.AQLevel != LevelHigh {
		t.Fatalf("aq=%v/%s want 178/High", r.AQScore, r.AQLevel)
	}
}

func TestScoreSEI(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	in := DefaultInterpretations()

	var answers []Answer
	// 25 raw -> doubled 50 -> 10 -> High.
	answers = append(answers, repeatAns(catalog.DomainSEI, "self-awareness", catalog.Option{Text: "extremely"}, 5)...)
	// 5 raw -> doubled 10 -> 1 -> Low.
	answers = append(answers, ans(catalog.DomainSEI, "self-management", catalog.Option{Marks: 5}))
	// 15 raw -> doubled 30 -> 6 -> Moderate.
	answers = append(answers, repeatAns(catalog.DomainSEI, "social-awareness", catalog.Option{Text: "somewhat"}, 5)...)

	r := ScoreSEI(tax, in, answers)
	checkPercentBounds(t, r)

	if got := r.Categories["self-awareness"]; got.Score != 25 || got.Level != LevelHigh {
		t.Fatalf("self-awareness=%+v", got)
	}
	if got := r.Categories["self-management"]; got.Score != 5 || got.Level != LevelLow {
		t.Fatalf("self-management=%+v", got)
	}
	if got := r.Categories["social-awareness"]; got.Score != 15 || got.Level != LevelModerate {
		t.Fatalf("social-awareness=%+v", got)
	}
	if r.Interpretation != "Your strongest socio-emotional skill is Self Awareness." {
		t.Fatalf("interpretation=%q", r.Interpretation)
	}
}

func TestScoreInterests(t *testing.T) {
	tax := catalog.DefaultTaxonomy()
	in := DefaultInterpretations()

	answers := []Answer{
		ans(catalog.DomainInterests, "r-i", catalog.Option{Marks: 1, Type: "R"}),
		ans(catalog.DomainInterests, "r-i", catalog.Option{Marks: 1, Type: "R"}),
		ans(catalog.DomainInterests, "a-s", catalog.Option{Marks: 1, Type: "S"}),
		// invalid letter contributes to the pair score but no letter total
		ans(catalog.DomainInterests, "r-a", catalog.Option{Marks: 1, Type: "X"}),
	}

	r, riasec := ScoreInterests(tax, in, answers)
	checkPercentBounds(t, r)

	ri := r.Categories["r-i"]
	if ri.Score != 2 || ri.Percentage != 100 || ri.Level != LevelHigh {
		t.Fatalf("r-i=%+v", ri)
	}
	if ri.LetterCounts == nil || ri.R != 2 || ri.I != 0 {
		t.Fatalf("r-i letter counts=%+v", ri.LetterCounts)
	}
	as := r.Categories["a-s"]
	if as.Score != 1 || as.Percentage != 50 || as.Level != LevelModerate {
		t.Fatalf("a-s=%+v", as)
	}
	if as.LetterCounts == nil || as.S != 1 {
		t.Fatalf("a-s letter counts=%+v", as.LetterCounts)
	}
	if got := r.Categories["r-a"]; got.Score != 1 {
		t.Fatalf("r-a=%+v", got)
	}
	if got := r.Categories["e-c"]; got.Score != 0 || got.Level != LevelLow || got.LetterCounts == nil {
		t.Fatalf("unanswered pair e-c=%+v", got)
	}
	if len(r.Categories) != 15 {
		t.Fatalf("got %d pairwise categories, want 15", len(r.Categories))
	}

	if riasec.Scores["R"] != 2 || riasec.Scores["S"] != 1 || riasec.Scores["X"] != 0 {
		t.Fatalf("letter totals=%v", riasec.Scores)
	}
	// R and S place; the remaining four are level at zero for the last slot.
	if !riasec.NeedsTiebreaker {
		t.Fatal("four-way zero tie for the last slot must flag the tiebreaker")
	}
	if !equalStrings(riasec.Top3, []string{"realistic", "social"}) {
		t.Fatalf("top3=%v", riasec.Top3)
	}
	if !equalStrings(riasec.TiedCategories, []string{"investigative", "artistic", "enterprising", "conventional"}) {
		t.Fatalf("tied=%v", riasec.TiedCategories)
	}
}
