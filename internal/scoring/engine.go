package scoring

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/brightpath-labs/pathfinder/internal/catalog"
)

var (
	// ErrNoQuestions and ErrNoSubmissions are hard precondition failures:
	// a report computed from nothing would be misleading, so the call is
	// rejected outright.
	ErrNoQuestions   = errors.New("scoring: no questions provided")
	ErrNoSubmissions = errors.New("scoring: no submissions provided")
)

// Engine orchestrates the five domain scorers, the RIASEC ranking and the
// career mapper into one assessment result. All lookup tables are explicit
// immutable configuration, bound at construction.
type Engine struct {
	tax       *catalog.Taxonomy
	table     *catalog.Table
	interp    *Interpretations
	rules     []CareerRule
	maxRounds int
	logger    *log.Logger
	now       func() time.Time
}

type Option func(*Engine)

// WithClassifierTable overrides the built-in classification table, e.g. with
// one loaded from a YAML file.
func WithClassifierTable(t *catalog.Table) Option { return func(e *Engine) { e.table = t } }

// WithCareerRules overrides the career decision table.
func WithCareerRules(rules []CareerRule) Option { return func(e *Engine) { e.rules = rules } }

// WithMaxTiebreakRounds caps the interactive tiebreaker rounds.
func WithMaxTiebreakRounds(n int) Option { return func(e *Engine) { e.maxRounds = n } }

// WithLogger directs classification diagnostics somewhere other than the
// default logger.
func WithLogger(l *log.Logger) Option { return func(e *Engine) { e.logger = l } }

// WithClock fixes the timestamp source.
func WithClock(fn func() time.Time) Option { return func(e *Engine) { e.now = fn } }

func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		tax:       catalog.DefaultTaxonomy(),
		table:     catalog.DefaultTable(),
		interp:    DefaultInterpretations(),
		rules:     DefaultCareerRules(),
		maxRounds: DefaultTiebreakRounds,
		logger:    log.Default(),
		now:       time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	if err := e.table.Validate(e.tax); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// Score computes the full assessment result for one attempt. Questions that
// cannot be classified and submissions that reference unknown questions or
// options are dropped with a diagnostic, never silently mis-scored. Empty
// inputs are rejected.
func (e *Engine) Score(questions []catalog.Question, subs []catalog.Submission) (*AssessmentResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(subs) == 0 {
		return nil, ErrNoSubmissions
	}

	byID := make(map[string]catalog.Question, len(questions))
	tags := make(map[string]catalog.Tag, len(questions))
	for _, q := range questions {
		m, ok := e.table.Classify(q.Section, q.SubSection)
		if !ok {
			e.logf("scoring: dropping question %s: section %q maps to no domain", q.ID, q.Section)
			continue
		}
		if m.Defaulted {
			e.logf("scoring: question %s sub-section %q defaulted to %s/%s", q.ID, q.SubSection, m.Tag.Domain, m.Tag.Category)
		}
		byID[q.ID] = q
		tags[q.ID] = m.Tag
	}

	answers := make([]Answer, 0, len(subs))
	seen := make(map[string]bool, len(subs))
	for _, s := range subs {
		q, ok := byID[s.QuestionID]
		if !ok {
			e.logf("scoring: dropping submission for unknown or unclassified question %s", s.QuestionID)
			continue
		}
		if seen[s.QuestionID] {
			e.logf("scoring: dropping duplicate submission for question %s", s.QuestionID)
			continue
		}
		o, ok := q.Option(s.OptionID)
		if !ok {
			e.logf("scoring: dropping submission %s: option %s not on question", s.QuestionID, s.OptionID)
			continue
		}
		seen[s.QuestionID] = true
		answers = append(answers, Answer{Question: q, Option: o, Tag: tags[s.QuestionID]})
	}

	res := &AssessmentResult{GeneratedAt: e.now()}
	res.Aptitude = ScoreAptitude(e.tax, e.interp, answers)
	res.Psychometric = ScorePsychometric(e.tax, e.interp, answers)
	res.Adversity = ScoreAdversity(e.tax, e.interp, answers)
	res.SEI = ScoreSEI(e.tax, e.interp, answers)
	res.Interests, res.Riasec = ScoreInterests(e.tax, e.interp, answers)

	if res.Riasec.NeedsTiebreaker {
		if st := NewTiebreak(res.Riasec); st != nil {
			res.Riasec.TiebreakerQuestions = st.Questions
		}
	} else {
		e.applyInterestOutcome(res)
	}
	return res, nil
}

// NewTiebreak creates the round-1 tiebreaker state for a result that
// flagged a tie.
func (e *Engine) NewTiebreak(r RiasecResult) *TiebreakerState { return NewTiebreak(r) }

// AdvanceTiebreak runs one resolution round under the engine's round cap.
func (e *Engine) AdvanceTiebreak(st *TiebreakerState, answers []TiebreakAnswer) (*TiebreakerState, error) {
	return AdvanceTiebreak(st, answers, e.maxRounds)
}

// FinalizeInterests folds a resolved tiebreaker back into the result: the
// final top-3, its letters, the combined interests interpretation and the
// career mapping. Pending and unresolved states propagate as errors.
func (e *Engine) FinalizeInterests(res *AssessmentResult, st *TiebreakerState) error {
	if st == nil {
		return ErrTiebreakTerminal
	}
	switch st.Phase {
	case TiebreakPending:
		return ErrTiebreakPending
	case TiebreakUnresolved:
		return ErrTiebreakUnresolved
	case TiebreakResolved:
	default:
		return ErrTiebreakTerminal
	}
	res.Riasec.Top3 = append([]string(nil), st.FinalTop3...)
	res.Riasec.Top3Letters = lettersFor(e.tax, res.Riasec.Top3)
	res.Riasec.NeedsTiebreaker = false
	res.Riasec.TiedCategories = nil
	res.Riasec.TiebreakerQuestions = nil
	e.applyInterestOutcome(res)
	return nil
}

// applyInterestOutcome fills everything that depends on a settled top-3:
// letters, the interests interpretation and the career mapping.
func (e *Engine) applyInterestOutcome(res *AssessmentResult) {
	if len(res.Riasec.Top3) != 3 {
		return
	}
	if len(res.Riasec.Top3Letters) != 3 {
		res.Riasec.Top3Letters = lettersFor(e.tax, res.Riasec.Top3)
	}

	parts := make([]string, 0, 3)
	for _, name := range res.Riasec.Top3 {
		parts = append(parts, e.interp.Resolve(catalog.DomainInterests, name, ""))
	}
	if t, ok := e.tax.InterestType(res.Riasec.Top3[0]); ok {
		res.Interests.Interpretation = "Your leading interest type is " + t.Display + ". " + strings.Join(parts, " ")
	}

	topTrait := topPsychometricTrait(e.tax, res.Psychometric)
	if t, ok := e.tax.InterestType(res.Riasec.Top3[0]); ok {
		if m, ok := MapCareer(e.rules, t.Code, topTrait); ok {
			res.CareerMapping = &m
		}
	}
}
