package scoring

import "github.com/brightpath-labs/pathfinder/internal/catalog"

// NoInterpretation is the sentinel returned when a (category, level) pair has
// no entry. Lookups never fail.
const NoInterpretation = "No interpretation available."

// Interpretations maps (domain, category, level) to canned explanatory text.
// Construct once via DefaultInterpretations and share by reference.
type Interpretations struct {
	entries map[string]string
}

func ikey(d catalog.Domain, category, level string) string {
	return string(d) + "|" + category + "|" + level
}

// Resolve returns the interpretation text for a (category, level) pair, or
// the NoInterpretation sentinel.
func (in *Interpretations) Resolve(d catalog.Domain, category, level string) string {
	if s, ok := in.entries[ikey(d, category, level)]; ok {
		return s
	}
	return NoInterpretation
}

func DefaultInterpretations() *Interpretations {
	in := &Interpretations{entries: map[string]string{}}
	add := func(d catalog.Domain, cat, level, text string) {
		in.entries[ikey(d, cat, level)] = text
	}

	// Aptitude
	add(catalog.DomainAptitude, "verbal", LevelHigh, "You grasp written material quickly and express ideas with precision. Roles centred on reading, writing and argumentation will come naturally.")
	add(catalog.DomainAptitude, "verbal", LevelModerate, "You handle everyday written communication comfortably, though dense or technical text may take a second pass.")
	add(catalog.DomainAptitude, "verbal", LevelLow, "Working with long or abstract text is currently effortful. Regular reading practice will lift this steadily.")
	add(catalog.DomainAptitude, "numerical", LevelHigh, "You work with numbers, ratios and data with ease and rarely miss a computational detail.")
	add(catalog.DomainAptitude, "numerical", LevelModerate, "You manage routine calculations well; multi-step quantitative problems need more deliberate effort.")
	add(catalog.DomainAptitude, "numerical", LevelLow, "Quantitative reasoning is an area to strengthen before pursuing data-heavy study paths.")
	add(catalog.DomainAptitude, "logical", LevelHigh, "You spot patterns and draw sound conclusions from incomplete information quickly.")
	add(catalog.DomainAptitude, "logical", LevelModerate, "Your deductive reasoning is dependable on familiar problems and slower on novel ones.")
	add(catalog.DomainAptitude, "logical", LevelLow, "Structured puzzle practice will help you build the stepwise reasoning this area measures.")
	add(catalog.DomainAptitude, "spatial", LevelHigh, "You mentally rotate and assemble shapes with ease, a strong signal for design and engineering work.")
	add(catalog.DomainAptitude, "spatial", LevelModerate, "You visualize straightforward spatial relationships well; complex 3-D manipulation takes effort.")
	add(catalog.DomainAptitude, "spatial", LevelLow, "Visual-spatial tasks are currently challenging; hands-on model building is the fastest way to improve.")
	add(catalog.DomainAptitude, "mechanical", LevelHigh, "You intuit how physical systems behave, from levers to circuits, with little instruction.")
	add(catalog.DomainAptitude, "mechanical", LevelModerate, "You follow mechanical principles when explained but are not yet fluent in applying them cold.")
	add(catalog.DomainAptitude, "mechanical", LevelLow, "Practical exposure to tools and mechanisms would build the grounding this area measures.")

	// Psychometric (Big Five, binary levels)
	add(catalog.DomainPsychometric, "openness", LevelHigh, "You seek out new ideas and unconventional approaches, and you are energized by learning for its own sake.")
	add(catalog.DomainPsychometric, "openness", LevelLow, "You prefer proven methods over experimentation and value predictability in your work.")
	add(catalog.DomainPsychometric, "conscientiousness", LevelHigh, "You plan ahead, finish what you start and hold yourself to high standards of reliability.")
	add(catalog.DomainPsychometric, "conscientiousness", LevelLow, "You work best with external structure; long self-directed projects can drift without it.")
	add(catalog.DomainPsychometric, "extraversion", LevelHigh, "You draw energy from people, speak up readily and are comfortable taking the lead in groups.")
	add(catalog.DomainPsychometric, "extraversion", LevelLow, "You do your best thinking in quiet settings and prefer a few deep relationships over broad networks.")
	add(catalog.DomainPsychometric, "agreeableness", LevelHigh, "You read others well, look for consensus and are often the one who keeps a team working smoothly.")
	add(catalog.DomainPsychometric, "agreeableness", LevelLow, "You are comfortable with disagreement and push for outcomes even when it costs short-term harmony.")
	add(catalog.DomainPsychometric, "neuroticism", LevelHigh, "You feel pressure keenly; building deliberate recovery habits will protect your performance under stress.")
	add(catalog.DomainPsychometric, "neuroticism", LevelLow, "You stay level under pressure and recover quickly from setbacks.")

	// Adversity quotient (aggregate only)
	add(catalog.DomainAdversity, "aq", LevelHigh, "You respond to setbacks with energy and treat obstacles as solvable problems. Adversity rarely dents your momentum.")
	add(catalog.DomainAdversity, "aq", LevelModeratelyHigh, "You usually recover quickly from difficulty, though severe or prolonged setbacks can slow you down.")
	add(catalog.DomainAdversity, "aq", LevelModerate, "You cope with everyday adversity adequately but larger setbacks can feel overwhelming before you regroup.")
	add(catalog.DomainAdversity, "aq", LevelModeratelyLow, "Setbacks tend to linger with you. Practising small, immediate responses to problems will build resilience.")
	add(catalog.DomainAdversity, "aq", LevelLow, "Adversity currently feels out of your control. Support structures and incremental wins are the place to start.")

	// SEI
	add(catalog.DomainSEI, "self-awareness", LevelHigh, "You name your emotions accurately and understand how they shape your decisions.")
	add(catalog.DomainSEI, "self-awareness", LevelModerate, "You recognize strong emotions but subtler states sometimes drive you unnoticed.")
	add(catalog.DomainSEI, "self-awareness", LevelLow, "Pausing to label what you feel before acting would sharpen this foundation skill.")
	add(catalog.DomainSEI, "self-management", LevelHigh, "You regulate impulses well and keep commitments even when motivation dips.")
	add(catalog.DomainSEI, "self-management", LevelModerate, "You hold steady in most situations, with occasional slips under sustained pressure.")
	add(catalog.DomainSEI, "self-management", LevelLow, "Simple routines for stress and time will give you more control than willpower alone.")
	add(catalog.DomainSEI, "social-awareness", LevelHigh, "You pick up unspoken cues quickly and adjust to the room with ease.")
	add(catalog.DomainSEI, "social-awareness", LevelModerate, "You read obvious social signals well; subtler dynamics can pass you by.")
	add(catalog.DomainSEI, "social-awareness", LevelLow, "Deliberately observing others' reactions will grow this skill faster than instinct will.")
	add(catalog.DomainSEI, "relationship-management", LevelHigh, "You build trust readily and handle friction without damaging the relationship.")
	add(catalog.DomainSEI, "relationship-management", LevelModerate, "You maintain relationships well day to day; conflict is where you have room to grow.")
	add(catalog.DomainSEI, "relationship-management", LevelLow, "Investing in direct, early conversations will prevent the friction you currently avoid.")
	add(catalog.DomainSEI, "decision-making", LevelHigh, "You weigh consequences for yourself and others before acting, even under time pressure.")
	add(catalog.DomainSEI, "decision-making", LevelModerate, "Your judgement is sound when you slow down; snap decisions are less consistent.")
	add(catalog.DomainSEI, "decision-making", LevelLow, "A short checklist before significant choices would measurably improve your outcomes.")

	// Interest types: one description per type, used in combined interpretations.
	add(catalog.DomainInterests, "realistic", "", "You enjoy practical, hands-on work with tools, machines and tangible results.")
	add(catalog.DomainInterests, "investigative", "", "You enjoy analysing problems, running experiments and understanding how things work.")
	add(catalog.DomainInterests, "artistic", "", "You enjoy open-ended creative work where originality matters more than routine.")
	add(catalog.DomainInterests, "social", "", "You enjoy teaching, helping and working closely with people.")
	add(catalog.DomainInterests, "enterprising", "", "You enjoy persuading, leading and taking calculated risks to reach goals.")
	add(catalog.DomainInterests, "conventional", "", "You enjoy organized, detail-oriented work with clear standards and order.")

	return in
}
