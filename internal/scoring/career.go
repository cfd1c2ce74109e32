package scoring

// CareerRule matches a top interest letter plus a set of Big Five trait keys
// to a fixed recommendation bundle.
type CareerRule struct {
	ID       string
	Interest string // RIASEC letter code
	Traits   []string
	Mapping  CareerMapping
}

// MapCareer picks the first rule matching the top interest letter and top
// psychometric trait. If no trait sub-rule matches, the first rule for the
// interest branch applies.
func MapCareer(rules []CareerRule, interestLetter, topTrait string) (CareerMapping, bool) {
	var fallback *CareerRule
	for i := range rules {
		r := &rules[i]
		if r.Interest != interestLetter {
			continue
		}
		if fallback == nil {
			fallback = r
		}
		for _, t := range r.Traits {
			if t == topTrait {
				m := r.Mapping
				m.RuleID = r.ID
				return m, true
			}
		}
	}
	if fallback != nil {
		m := fallback.Mapping
		m.RuleID = fallback.ID
		return m, true
	}
	return CareerMapping{}, false
}

// DefaultCareerRules is the twenty-entry decision table. The realistic branch
// carries one sub-rule per Big Five trait; every other branch groups traits
// into three sub-rules.
func DefaultCareerRules() []CareerRule {
	return []CareerRule{
		// Realistic: five trait sub-rules.
		{ID: "R1", Interest: "R", Traits: []string{"openness"},
			Mapping: CareerMapping{Careers: []string{"Mechanical Engineer", "Robotics Technologist", "Industrial Designer"},
				Club: "Makers Guild", Tagline: "Invent with your hands.",
				Audience: "Practical builders who like trying new techniques."}},
		{ID: "R2", Interest: "R", Traits: []string{"conscientiousness"},
			Mapping: CareerMapping{Careers: []string{"Civil Engineer", "Pilot", "Quality Inspector"},
				Club: "Precision Crew", Tagline: "Built right, every time.",
				Audience: "Disciplined doers who value exactness and safety."}},
		{ID: "R3", Interest: "R", Traits: []string{"extraversion"},
			Mapping: CareerMapping{Careers: []string{"Sports Coach", "Physiotherapist", "Field Service Lead"},
				Club: "Field Squad", Tagline: "Lead from the front line.",
				Audience: "Energetic, hands-on people who thrive around others."}},
		{ID: "R4", Interest: "R", Traits: []string{"agreeableness"},
			Mapping: CareerMapping{Careers: []string{"Agricultural Scientist", "Veterinary Technician", "Environmental Technician"},
				Club: "Fieldcraft Circle", Tagline: "Care for the living world.",
				Audience: "Practical helpers drawn to nature and animals."}},
		{ID: "R5", Interest: "R", Traits: []string{"neuroticism"},
			Mapping: CareerMapping{Careers: []string{"Electrician", "CNC Machinist", "Maintenance Specialist"},
				Club: "Steady Hands", Tagline: "Master a craft for life.",
				Audience: "Careful workers who prefer structured, tangible tasks."}},
		// Investigative.
		{ID: "I1", Interest: "I", Traits: []string{"openness", "neuroticism"},
			Mapping: CareerMapping{Careers: []string{"Research Scientist", "Mathematician", "Astrophysicist"},
				Club: "Curiosity Lab", Tagline: "Ask the question no one asked.",
				Audience: "Deep thinkers happiest at the edge of the unknown."}},
		{ID: "I2", Interest: "I", Traits: []string{"conscientiousness"},
			Mapping: CareerMapping{Careers: []string{"Physician", "Pharmacist", "Forensic Analyst"},
				Club: "Diagnosis Club", Tagline: "Evidence first.",
				Audience: "Methodical minds who want their rigor to help people."}},
		{ID: "I3", Interest: "I", Traits: []string{"extraversion", "agreeableness"},
			Mapping: CareerMapping{Careers: []string{"Data Scientist", "Software Engineer", "Product Researcher"},
				Club: "Insight Collective", Tagline: "Turn data into decisions.",
				Audience: "Analytical people who enjoy working in teams."}},
		// Artistic.
		{ID: "A1", Interest: "A", Traits: []string{"openness", "neuroticism"},
			Mapping: CareerMapping{Careers: []string{"Writer", "Fine Artist", "Composer"},
				Club: "Studio Seven", Tagline: "Make something only you could make.",
				Audience: "Original voices who need room to experiment."}},
		{ID: "A2", Interest: "A", Traits: []string{"conscientiousness"},
			Mapping: CareerMapping{Careers: []string{"Architect", "UX Designer", "Animator"},
				Club: "Design Works", Tagline: "Creativity with a deadline.",
				Audience: "Creatives who love craft, detail and polish."}},
		{ID: "A3", Interest: "A", Traits: []string{"extraversion", "agreeableness"},
			Mapping: CareerMapping{Careers: []string{"Actor", "Art Director", "Event Designer"},
				Club: "Stagecraft Society", Tagline: "Create out loud.",
				Audience: "Performers and collaborators energized by an audience."}},
		// Social.
		{ID: "S1", Interest: "S", Traits: []string{"openness", "neuroticism"},
			Mapping: CareerMapping{Careers: []string{"Psychologist", "Career Counselor", "Special Educator"},
				Club: "Listening Post", Tagline: "Understand people deeply.",
				Audience: "Empathetic observers who want to help one-on-one."}},
		{ID: "S2", Interest: "S", Traits: []string{"conscientiousness"},
			Mapping: CareerMapping{Careers: []string{"Teacher", "Nurse", "Public Health Officer"},
				Club: "Service Corps", Tagline: "Show up for people, every day.",
				Audience: "Reliable helpers who like structured care work."}},
		{ID: "S3", Interest: "S", Traits: []string{"extraversion", "agreeableness"},
			Mapping: CareerMapping{Careers: []string{"Social Worker", "HR Specialist", "Community Organizer"},
				Club: "Bridge Builders", Tagline: "Bring people together.",
				Audience: "Natural connectors who thrive on group energy."}},
		// Enterprising.
		{ID: "E1", Interest: "E", Traits: []string{"openness", "neuroticism"},
			Mapping: CareerMapping{Careers: []string{"Entrepreneur", "Brand Strategist", "Venture Analyst"},
				Club: "Founders Table", Tagline: "Bet on your own ideas.",
				Audience: "Risk-tolerant originals who want to build ventures."}},
		{ID: "E2", Interest: "E", Traits: []string{"conscientiousness"},
			Mapping: CareerMapping{Careers: []string{"Operations Manager", "Lawyer", "Project Director"},
				Club: "Command Room", Tagline: "Plans that actually happen.",
				Audience: "Organized leaders who deliver on commitments."}},
		{ID: "E3", Interest: "E", Traits: []string{"extraversion", "agreeableness"},
			Mapping: CareerMapping{Careers: []string{"Sales Leader", "Marketing Manager", "Diplomat"},
				Club: "Persuasion Club", Tagline: "Win people, win outcomes.",
				Audience: "Outgoing influencers who love the room."}},
		// Conventional.
		{ID: "C1", Interest: "C", Traits: []string{"openness", "neuroticism"},
			Mapping: CareerMapping{Careers: []string{"Data Analyst", "Actuary", "Archivist"},
				Club: "Order of Records", Tagline: "Find the signal in the system.",
				Audience: "Detail-lovers who enjoy quiet, careful analysis."}},
		{ID: "C2", Interest: "C", Traits: []string{"conscientiousness"},
			Mapping: CareerMapping{Careers: []string{"Accountant", "Auditor", "Compliance Officer"},
				Club: "Ledger League", Tagline: "Exactly right, provably so.",
				Audience: "Precise, dependable people who keep institutions honest."}},
		{ID: "C3", Interest: "C", Traits: []string{"extraversion", "agreeableness"},
			Mapping: CareerMapping{Careers: []string{"Banker", "Office Administrator", "Logistics Coordinator"},
				Club: "Operations Desk", Tagline: "Keep everything moving.",
				Audience: "Organized coordinators who like serving a busy team."}},
	}
}
