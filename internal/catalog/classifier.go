package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps sub-section keywords (case-insensitive substrings) to a category key.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Table is the explicit classification table resolving free-text section /
// sub-section names to a (domain, category) tag. It is constructed once,
// validated against the taxonomy, and passed by reference into the engine.
type Table struct {
	Version  string
	Sections map[Domain][]string
	Rules    map[Domain][]Rule
	Defaults map[Domain]string
}

// Match is a classification outcome. Defaulted marks a sub-section that missed
// every rule and fell back to the domain default: a defined behavior, but one
// worth surfacing in diagnostics.
type Match struct {
	Tag       Tag
	Defaulted bool
}

// DefaultTable returns the built-in classification table.
func DefaultTable() *Table {
	return &Table{
		Version: "v1",
		Sections: map[Domain][]string{
			DomainAptitude:     {"aptitude"},
			DomainPsychometric: {"psychometric", "personality", "big five"},
			DomainAdversity:    {"adversity"},
			DomainSEI:          {"socio", "emotional", "sei"},
			DomainInterests:    {"interest", "riasec"},
		},
		Rules: map[Domain][]Rule{
			DomainAptitude: {
				{Category: "verbal", Keywords: []string{"verbal", "language", "vocabulary"}},
				{Category: "numerical", Keywords: []string{"numerical", "math", "quantitative", "arithmetic"}},
				{Category: "logical", Keywords: []string{"logical", "reasoning", "analytical"}},
				{Category: "spatial", Keywords: []string{"spatial", "visual", "abstract"}},
				{Category: "mechanical", Keywords: []string{"mechanical", "technical"}},
			},
			DomainPsychometric: {
				{Category: "openness", Keywords: []string{"openness", "imagination", "creativ", "curiosity"}},
				{Category: "conscientiousness", Keywords: []string{"conscientious", "organi", "discipline", "diligence"}},
				{Category: "extraversion", Keywords: []string{"extraver", "leadership", "sociability", "assertive"}},
				{Category: "agreeableness", Keywords: []string{"agreeable", "team", "cooperat", "empathy"}},
				{Category: "neuroticism", Keywords: []string{"neurotic", "stress", "anxiety", "stability"}},
			},
			DomainAdversity: {
				{Category: "control", Keywords: []string{"control", "time management", "influence"}},
				{Category: "ownership", Keywords: []string{"ownership", "responsib", "accountab"}},
				{Category: "reach", Keywords: []string{"reach", "impact", "spillover"}},
				{Category: "endurance", Keywords: []string{"endurance", "persist", "perseverance"}},
			},
			DomainSEI: {
				{Category: "self-awareness", Keywords: []string{"self awareness", "self-awareness"}},
				{Category: "self-management", Keywords: []string{"self management", "self-management", "regulation"}},
				{Category: "social-awareness", Keywords: []string{"social awareness", "social-awareness", "empath"}},
				{Category: "relationship-management", Keywords: []string{"relationship", "interperson"}},
				{Category: "decision-making", Keywords: []string{"decision", "responsible"}},
			},
		},
		Defaults: map[Domain]string{
			DomainAptitude:     "verbal",
			DomainPsychometric: "openness",
			DomainAdversity:    "control",
			DomainSEI:          "self-awareness",
			DomainInterests:    "r-i",
		},
	}
}

// tableFile is the YAML override shape for LoadTable.
type tableFile struct {
	Version string `yaml:"version"`
	Domains map[string]struct {
		Sections []string `yaml:"sections"`
		Default  string   `yaml:"default"`
		Rules    []Rule   `yaml:"rules"`
	} `yaml:"domains"`
}

// LoadTable reads a classification table override from a YAML file.
// Domains absent from the file keep the built-in rules.
func LoadTable(path string) (*Table, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier table: %w", err)
	}
	var f tableFile
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("classifier table %s: %w", path, err)
	}
	t := DefaultTable()
	if f.Version != "" {
		t.Version = f.Version
	}
	for name, d := range f.Domains {
		dom := Domain(name)
		if len(d.Sections) > 0 {
			t.Sections[dom] = d.Sections
		}
		if len(d.Rules) > 0 {
			t.Rules[dom] = d.Rules
		}
		if d.Default != "" {
			t.Defaults[dom] = d.Default
		}
	}
	return t, nil
}

// Validate checks every rule and default against the taxonomy so that drift in
// an override file fails at load time, not at scoring time.
func (t *Table) Validate(tax *Taxonomy) error {
	for dom, rules := range t.Rules {
		for _, r := range rules {
			if _, ok := tax.Category(dom, r.Category); !ok {
				return fmt.Errorf("classifier table: unknown category %q in domain %s", r.Category, dom)
			}
			if len(r.Keywords) == 0 {
				return fmt.Errorf("classifier table: rule for %s/%s has no keywords", dom, r.Category)
			}
		}
	}
	for dom, def := range t.Defaults {
		if _, ok := tax.Category(dom, def); !ok {
			return fmt.Errorf("classifier table: unknown default category %q in domain %s", def, dom)
		}
	}
	return nil
}

// Classify resolves a question's section and sub-section names to a tag.
// The second return is false when the section cannot be mapped to any domain;
// such questions are dropped by the caller.
func (t *Table) Classify(section, subSection string) (Match, bool) {
	dom, ok := t.domainFor(section)
	if !ok {
		return Match{}, false
	}
	if dom == DomainInterests {
		return t.classifyInterest(subSection), true
	}
	sub := strings.ToLower(subSection)
	for _, r := range t.Rules[dom] {
		for _, kw := range r.Keywords {
			if strings.Contains(sub, strings.ToLower(kw)) {
				return Match{Tag: Tag{Domain: dom, Category: r.Category}}, true
			}
		}
	}
	return Match{Tag: Tag{Domain: dom, Category: t.Defaults[dom]}, Defaulted: true}, true
}

func (t *Table) domainFor(section string) (Domain, bool) {
	s := strings.ToLower(section)
	for dom, kws := range t.Sections {
		for _, kw := range kws {
			if strings.Contains(s, strings.ToLower(kw)) {
				return dom, true
			}
		}
	}
	return "", false
}

var letterWords = map[string]string{
	"realistic": "R", "investigative": "I", "artistic": "A",
	"social": "S", "enterprising": "E", "conventional": "C",
}

// classifyInterest parses the two RIASEC letters out of a pairwise sub-section
// name like "Realistic vs Investigative" or "R vs I".
func (t *Table) classifyInterest(subSection string) Match {
	sub := strings.ToLower(subSection)
	var found []string
	for word, letter := range letterWords {
		if strings.Contains(sub, word) {
			found = append(found, letter)
		}
	}
	if len(found) < 2 {
		// fall back to bare letter tokens ("r vs i", "a-c")
		found = found[:0]
		for _, tok := range strings.FieldsFunc(sub, func(r rune) bool {
			return !('a' <= r && r <= 'z')
		}) {
			if len(tok) == 1 {
				if l := strings.ToUpper(tok); letterIndex(l) < len(Letters) {
					found = append(found, l)
				}
			}
		}
	}
	uniq := dedupLetters(found)
	if len(uniq) != 2 {
		return Match{Tag: Tag{Domain: DomainInterests, Category: t.Defaults[DomainInterests]}, Defaulted: true}
	}
	return Match{Tag: Tag{Domain: DomainInterests, Category: pairKey(uniq[0], uniq[1])}}
}

func dedupLetters(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range in {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}
