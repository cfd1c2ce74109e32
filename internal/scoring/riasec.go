package scoring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/brightpath-labs/pathfinder/internal/catalog"
)

var (
	// ErrTiebreakTerminal is returned when advancing a state that is no
	// longer awaiting answers.
	ErrTiebreakTerminal = errors.New("scoring: tiebreaker state is terminal")
	// ErrTiebreakUnresolved marks a tiebreaker that exhausted its rounds
	// with a persistent exact tie. Callers must surface this, never guess.
	ErrTiebreakUnresolved = errors.New("scoring: tiebreaker could not resolve the tie")
	// ErrTiebreakPending is returned when a result is finalized before the
	// tiebreaker has run to completion.
	ErrTiebreakPending = errors.New("scoring: tiebreaker still awaiting answers")
)

const (
	questionsPerPair      = 3
	maxTiebreakQuestions  = 8
	DefaultTiebreakRounds = 3
)

type TiebreakPhase string

const (
	TiebreakPending    TiebreakPhase = "pending"
	TiebreakResolved   TiebreakPhase = "resolved"
	TiebreakUnresolved TiebreakPhase = "unresolved"
)

// TiebreakerState is the suspendable state of the interactive tie resolution
// protocol. It is created at first tie detection, passed back and forth across
// rounds (the caller persists it between rounds), and discarded once folded
// into the final top-3. Advance never mutates its input.
type TiebreakerState struct {
	Phase     TiebreakPhase      `json:"phase"`
	Round     int                `json:"round"`
	Tied      []string           `json:"tiedCategories"`
	Settled   []string           `json:"settled"`
	SlotsLeft int                `json:"slotsLeft"`
	Questions []TiebreakQuestion `json:"questions,omitempty"`
	Wins      map[string]int     `json:"wins,omitempty"`
	FinalTop3 []string           `json:"finalTop3,omitempty"`
}

// rankInterests sorts the six letter totals descending and walks the
// score-groups into the top-3. A multi-member group whose size reaches the
// remaining slots makes the final order ambiguous and triggers the
// tiebreaker; a multi-member group that fits strictly inside the remaining
// slots is admitted whole in canonical letter order.
func rankInterests(tax *catalog.Taxonomy, totals map[string]int) RiasecResult {
	types := tax.InterestTypes()
	scores := map[string]int{}
	for _, t := range types {
		scores[t.Code] = totals[t.Code]
	}
	r := RiasecResult{Scores: scores}

	for _, g := range scoreGroups(types, totals) {
		slots := 3 - len(r.Top3)
		if slots == 0 {
			break
		}
		if len(g) < slots || len(g) == 1 {
			for _, t := range g {
				r.Top3 = append(r.Top3, t.Key)
			}
			continue
		}
		r.NeedsTiebreaker = true
		for _, t := range g {
			r.TiedCategories = append(r.TiedCategories, t.Key)
		}
		break
	}
	if !r.NeedsTiebreaker {
		r.Top3Letters = lettersFor(tax, r.Top3)
	}
	return r
}

// scoreGroups returns the six types grouped by equal total, groups ordered by
// descending total, members in canonical letter order.
func scoreGroups(types []catalog.Category, totals map[string]int) [][]catalog.Category {
	byTotal := map[int][]catalog.Category{}
	var keys []int
	for _, t := range types {
		v := totals[t.Code]
		if _, ok := byTotal[v]; !ok {
			keys = append(keys, v)
		}
		byTotal[v] = append(byTotal[v], t)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	out := make([][]catalog.Category, 0, len(keys))
	for _, k := range keys {
		out = append(out, byTotal[k])
	}
	return out
}

func lettersFor(tax *catalog.Taxonomy, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if t, ok := tax.InterestType(n); ok {
			out = append(out, t.Code)
		}
	}
	return out
}

// Forced-choice statements per interest type, one per question slot of a pair.
var tiebreakStatements = map[string][]string{
	"realistic":     {"Build or repair something with my hands", "Operate machines, tools or vehicles", "Work outdoors on practical tasks"},
	"investigative": {"Investigate why something works the way it does", "Design and run an experiment", "Analyse data to settle a question"},
	"artistic":      {"Create an original piece of art, music or writing", "Design the look and feel of a product", "Perform or present creative work"},
	"social":        {"Teach or coach someone through a difficulty", "Volunteer for a cause that helps people", "Mediate a disagreement between friends"},
	"enterprising":  {"Pitch an idea and persuade people to back it", "Lead a team toward an ambitious target", "Start and grow a small venture"},
	"conventional":  {"Organize records so nothing is ever lost", "Plan a budget down to the last detail", "Set up a process others can follow exactly"},
}

// tiebreakQuestions builds a round's forced-choice questions: up to three per
// unordered pair of tied categories, capped at eight overall.
func tiebreakQuestions(tied []string, round int) []TiebreakQuestion {
	ordered := canonicalTypeOrder(tied)
	var out []TiebreakQuestion
	for i := 0; i < len(ordered) && len(out) < maxTiebreakQuestions; i++ {
		for j := i + 1; j < len(ordered) && len(out) < maxTiebreakQuestions; j++ {
			a, b := ordered[i], ordered[j]
			for n := 0; n < questionsPerPair && len(out) < maxTiebreakQuestions; n++ {
				out = append(out, TiebreakQuestion{
					ID:     fmt.Sprintf("tb-r%d-%s-%s-%d", round, a, b, n+1),
					Prompt: "Which would you rather do?",
					Options: []TiebreakOption{
						{Category: a, Text: tiebreakStatements[a][n]},
						{Category: b, Text: tiebreakStatements[b][n]},
					},
				})
			}
		}
	}
	return out
}

// canonicalTypeOrder sorts interest type names by RIASEC letter order.
func canonicalTypeOrder(names []string) []string {
	idx := map[string]int{
		"realistic": 0, "investigative": 1, "artistic": 2,
		"social": 3, "enterprising": 4, "conventional": 5,
	}
	out := append([]string(nil), names...)
	sort.Slice(out, func(i, j int) bool { return idx[out[i]] < idx[out[j]] })
	return out
}

// NewTiebreak creates round-1 state from a ranking that flagged a tie.
// Returns nil when no tiebreaker is needed.
func NewTiebreak(r RiasecResult) *TiebreakerState {
	if !r.NeedsTiebreaker {
		return nil
	}
	st := &TiebreakerState{
		Phase:     TiebreakPending,
		Round:     1,
		Tied:      canonicalTypeOrder(r.TiedCategories),
		Settled:   append([]string(nil), r.Top3...),
		SlotsLeft: 3 - len(r.Top3),
	}
	st.Questions = tiebreakQuestions(st.Tied, st.Round)
	return st
}

// AdvanceTiebreak tallies one round of forced-choice answers and returns the
// next state: resolved, a further restricted round, or — once maxRounds is
// exhausted with the tie intact — the terminal unresolved state. Each question
// is counted at most once, and only for a category that question actually
// offers. The input state is not mutated.
func AdvanceTiebreak(st *TiebreakerState, answers []TiebreakAnswer, maxRounds int) (*TiebreakerState, error) {
	if st == nil || st.Phase != TiebreakPending {
		return nil, ErrTiebreakTerminal
	}
	if maxRounds <= 0 {
		maxRounds = DefaultTiebreakRounds
	}

	offered := map[string]map[string]bool{}
	for _, q := range st.Questions {
		cats := map[string]bool{}
		for _, o := range q.Options {
			cats[o.Category] = true
		}
		offered[q.ID] = cats
	}
	wins := map[string]int{}
	for _, c := range st.Tied {
		wins[c] = 0
	}
	counted := map[string]bool{}
	for _, a := range answers {
		cats, ok := offered[a.QuestionID]
		if !ok || counted[a.QuestionID] || !cats[a.Category] {
			continue
		}
		counted[a.QuestionID] = true
		wins[a.Category]++
	}

	settled := append([]string(nil), st.Settled...)
	slots := st.SlotsLeft
	for _, g := range winGroups(st.Tied, wins) {
		if slots == 0 {
			break
		}
		if len(g) < slots || len(g) == 1 {
			settled = append(settled, g...)
			slots -= len(g)
			continue
		}
		// Still tied for the last slot(s).
		if st.Round >= maxRounds {
			return &TiebreakerState{
				Phase:     TiebreakUnresolved,
				Round:     st.Round,
				Tied:      g,
				Settled:   settled,
				SlotsLeft: slots,
				Wins:      wins,
			}, nil
		}
		next := &TiebreakerState{
			Phase:     TiebreakPending,
			Round:     st.Round + 1,
			Tied:      g,
			Settled:   settled,
			SlotsLeft: slots,
			Wins:      wins,
		}
		next.Questions = tiebreakQuestions(next.Tied, next.Round)
		return next, nil
	}
	if slots != 0 {
		return nil, fmt.Errorf("scoring: tiebreaker left %d top-3 slot(s) unfilled", slots)
	}
	return &TiebreakerState{
		Phase:     TiebreakResolved,
		Round:     st.Round,
		Settled:   settled,
		Wins:      wins,
		FinalTop3: settled[:3],
	}, nil
}

// winGroups groups the tied categories by equal round score, descending,
// members in canonical order.
func winGroups(tied []string, wins map[string]int) [][]string {
	ordered := canonicalTypeOrder(tied)
	byScore := map[int][]string{}
	var keys []int
	for _, c := range ordered {
		v := wins[c]
		if _, ok := byScore[v]; !ok {
			keys = append(keys, v)
		}
		byScore[v] = append(byScore[v], c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	out := make([][]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, byScore[k])
	}
	return out
}
