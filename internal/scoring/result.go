package scoring

import "time"

// Level labels. Adversity adds the two intermediate bands.
const (
	LevelHigh           = "High"
	LevelModeratelyHigh = "Moderately High"
	LevelModerate       = "Moderate"
	LevelModeratelyLow  = "Moderately Low"
	LevelLow            = "Low"
)

// LetterCounts are the six per-letter win counts recorded inside a pairwise
// interest category. Embedded as a pointer so the fields only appear on
// interest category scores.
type LetterCounts struct {
	R int `json:"categoryScoreR"`
	I int `json:"categoryScoreI"`
	A int `json:"categoryScoreA"`
	S int `json:"categoryScoreS"`
	E int `json:"categoryScoreE"`
	C int `json:"categoryScoreC"`
}

// CategoryScore is the scored outcome for one category. Field names are part
// of the wire contract with report renderers; do not rename.
type CategoryScore struct {
	Score          float64 `json:"categoryScore"`
	Percentage     float64 `json:"categoryPercentage"`
	Level          string  `json:"categoryScoreLevel,omitempty"`
	Display        string  `json:"categoryDisplayText"`
	Interpretation string  `json:"categoryInterpretation,omitempty"`
	Code           string  `json:"categoryCode,omitempty"`
	*LetterCounts
}

// DomainResult holds the category scores for one domain, keyed by lowercase
// category name. AQScore/AQLevel are populated for the adversity domain only.
type DomainResult struct {
	Categories     map[string]CategoryScore `json:"categories"`
	Interpretation string                   `json:"interpretation,omitempty"`
	AQScore        float64                  `json:"aqScore,omitempty"`
	AQLevel        string                   `json:"aqLevel,omitempty"`
}

// TiebreakOption is one side of a forced-choice tiebreaker question.
type TiebreakOption struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type TiebreakQuestion struct {
	ID      string           `json:"id"`
	Prompt  string           `json:"prompt"`
	Options []TiebreakOption `json:"options"`
}

// TiebreakAnswer is one forced-choice selection, keyed by question id.
type TiebreakAnswer struct {
	QuestionID string `json:"question_id"`
	Category   string `json:"category"`
}

// RiasecResult is the interest-ranking outcome consumed by the UI to decide
// whether to run the tiebreaker flow.
type RiasecResult struct {
	Scores              map[string]int     `json:"scores"` // letter -> total
	Top3                []string           `json:"top3"`
	Top3Letters         []string           `json:"top3Letters"`
	NeedsTiebreaker     bool               `json:"needsTiebreaker"`
	TiedCategories      []string           `json:"tiedCategories,omitempty"`
	TiebreakerQuestions []TiebreakQuestion `json:"tiebreakerQuestions,omitempty"`
}

// CareerMapping is the fixed recommendation bundle selected by the rule table.
type CareerMapping struct {
	RuleID   string   `json:"ruleId"`
	Careers  []string `json:"careers"`
	Club     string   `json:"club"`
	Tagline  string   `json:"tagline"`
	Audience string   `json:"audience"`
}

// AssessmentResult is the full interpreted report. The JSON shape is consumed
// by report rendering and PDF generation; field names must stay stable.
type AssessmentResult struct {
	Aptitude      DomainResult   `json:"aptitude"`
	Psychometric  DomainResult   `json:"psychometric"`
	Adversity     DomainResult   `json:"adversity"`
	SEI           DomainResult   `json:"sei"`
	Interests     DomainResult   `json:"interests"`
	Riasec        RiasecResult   `json:"riasec"`
	CareerMapping *CareerMapping `json:"careerMapping,omitempty"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}
