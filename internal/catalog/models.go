package catalog

// Domain is one of the five assessment sections.
type Domain string

const (
	DomainAptitude     Domain = "aptitude"
	DomainPsychometric Domain = "psychometric"
	DomainAdversity    Domain = "adversity"
	DomainSEI          Domain = "sei"
	DomainInterests    Domain = "interests"
)

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text,omitempty"`
	// Marks meaning varies by domain: correctness flag for aptitude,
	// Likert intensity 1-5 for psychometric/adversity/sei, agree(1)/disagree(0)
	// for interests.
	Marks float64 `json:"marks"`
	// Type is the RIASEC letter (R/I/A/S/E/C) carried by interest options.
	Type string `json:"type,omitempty"`
}

type Question struct {
	ID         string   `json:"id"`
	Text       string   `json:"text,omitempty"`
	Section    string   `json:"section"`
	SubSection string   `json:"sub_section"`
	Options    []Option `json:"options"`
}

// Option returns the option with the given id, if present.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Submission is one learner answer: unique per question per attempt.
type Submission struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// Tag is the resolved (domain, category) classification of a question.
type Tag struct {
	Domain   Domain `json:"domain"`
	Category string `json:"category"`
}

type Catalog struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at,omitempty"`
}
