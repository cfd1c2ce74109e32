package catalog

// Category is a named sub-dimension within a domain. QuestionCount is the
// canonical number of questions for the category and is always used as the
// percentage denominator, independent of how many were actually answered.
type Category struct {
	Key           string
	Display       string
	Code          string // single-letter code where applicable (RIASEC types)
	QuestionCount int
	MaxMarks      float64 // max points a single question can contribute
}

// Taxonomy holds the static category tables for all five domains.
// Construct once via DefaultTaxonomy and pass by reference; never mutate.
type Taxonomy struct {
	byDomain map[Domain][]Category
	types    []Category // the six RIASEC interest types
}

// Letters is the canonical RIASEC letter order, used for deterministic
// ordering wherever letter totals tie without affecting top-3 membership.
var Letters = []string{"R", "I", "A", "S", "E", "C"}

func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		byDomain: map[Domain][]Category{
			DomainAptitude: {
				{Key: "verbal", Display: "Verbal Ability", QuestionCount: 9, MaxMarks: 1},
				{Key: "numerical", Display: "Numerical Ability", QuestionCount: 9, MaxMarks: 1},
				{Key: "logical", Display: "Logical Reasoning", QuestionCount: 9, MaxMarks: 1},
				{Key: "spatial", Display: "Spatial Ability", QuestionCount: 9, MaxMarks: 1},
				{Key: "mechanical", Display: "Mechanical Reasoning", QuestionCount: 9, MaxMarks: 1},
			},
			DomainPsychometric: {
				{Key: "openness", Display: "Openness", QuestionCount: 5, MaxMarks: 5},
				{Key: "conscientiousness", Display: "Conscientiousness", QuestionCount: 5, MaxMarks: 5},
				{Key: "extraversion", Display: "Extraversion", QuestionCount: 5, MaxMarks: 5},
				{Key: "agreeableness", Display: "Agreeableness", QuestionCount: 5, MaxMarks: 5},
				{Key: "neuroticism", Display: "Neuroticism", QuestionCount: 5, MaxMarks: 5},
			},
			DomainAdversity: {
				{Key: "control", Display: "Control", QuestionCount: 5, MaxMarks: 5},
				{Key: "ownership", Display: "Ownership", QuestionCount: 5, MaxMarks: 5},
				{Key: "reach", Display: "Reach", QuestionCount: 5, MaxMarks: 5},
				{Key: "endurance", Display: "Endurance", QuestionCount: 5, MaxMarks: 5},
			},
			DomainSEI: {
				{Key: "self-awareness", Display: "Self Awareness", QuestionCount: 5, MaxMarks: 5},
				{Key: "self-management", Display: "Self Management", QuestionCount: 5, MaxMarks: 5},
				{Key: "social-awareness", Display: "Social Awareness", QuestionCount: 5, MaxMarks: 5},
				{Key: "relationship-management", Display: "Relationship Management", QuestionCount: 5, MaxMarks: 5},
				{Key: "decision-making", Display: "Responsible Decision Making", QuestionCount: 5, MaxMarks: 5},
			},
			DomainInterests: interestPairs(),
		},
		types: []Category{
			{Key: "realistic", Display: "Realistic", Code: "R"},
			{Key: "investigative", Display: "Investigative", Code: "I"},
			{Key: "artistic", Display: "Artistic", Code: "A"},
			{Key: "social", Display: "Social", Code: "S"},
			{Key: "enterprising", Display: "Enterprising", Code: "E"},
			{Key: "conventional", Display: "Conventional", Code: "C"},
		},
	}
}

// interestPairs builds the 15 pairwise interest categories (r-i, r-a, ...),
// two questions each, in canonical letter order.
func interestPairs() []Category {
	names := map[string]string{
		"R": "Realistic", "I": "Investigative", "A": "Artistic",
		"S": "Social", "E": "Enterprising", "C": "Conventional",
	}
	var out []Category
	for i := 0; i < len(Letters); i++ {
		for j := i + 1; j < len(Letters); j++ {
			a, b := Letters[i], Letters[j]
			out = append(out, Category{
				Key:           pairKey(a, b),
				Display:       names[a] + " vs " + names[b],
				QuestionCount: 2,
				MaxMarks:      1,
			})
		}
	}
	return out
}

func pairKey(a, b string) string {
	// canonical order: R,I,A,S,E,C
	ia, ib := letterIndex(a), letterIndex(b)
	if ia > ib {
		a, b = b, a
	}
	return lower(a) + "-" + lower(b)
}

func letterIndex(l string) int {
	for i, c := range Letters {
		if c == l {
			return i
		}
	}
	return len(Letters)
}

func lower(s string) string {
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0] + 32)
	}
	return s
}

// Categories returns the ordered category table for a domain.
func (t *Taxonomy) Categories(d Domain) []Category {
	return t.byDomain[d]
}

// Category looks up a single category by key within a domain.
func (t *Taxonomy) Category(d Domain, key string) (Category, bool) {
	for _, c := range t.byDomain[d] {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// InterestTypes returns the six RIASEC types in canonical order.
func (t *Taxonomy) InterestTypes() []Category { return t.types }

// InterestType resolves a type by key or by letter code.
func (t *Taxonomy) InterestType(keyOrCode string) (Category, bool) {
	for _, c := range t.types {
		if c.Key == keyOrCode || c.Code == keyOrCode {
			return c, true
		}
	}
	return Category{}, false
}

// MaxScore is the theoretical maximum raw score for a category.
func (c Category) MaxScore() float64 {
	return float64(c.QuestionCount) * c.MaxMarks
}
