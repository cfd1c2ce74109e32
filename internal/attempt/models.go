package attempt

import (
	"sort"

	"github.com/brightpath-labs/pathfinder/internal/catalog"
)

const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

type Attempt struct {
	ID          string            `json:"id"`
	CatalogID   string            `json:"catalog_id"`
	UserID      string            `json:"user_id"`
	Status      string            `json:"status"` // in_progress|submitted
	Responses   map[string]string `json:"responses"` // questionID -> optionID
	StartedAt   int64             `json:"started_at"`
	SubmittedAt int64             `json:"submitted_at,omitempty"`
}

// Submissions converts the response map into the scoring input, ordered by
// question id so scoring stays byte-for-byte deterministic.
func (a Attempt) Submissions() []catalog.Submission {
	qids := make([]string, 0, len(a.Responses))
	for q := range a.Responses {
		qids = append(qids, q)
	}
	sort.Strings(qids)
	out := make([]catalog.Submission, 0, len(qids))
	for _, q := range qids {
		out = append(out, catalog.Submission{QuestionID: q, OptionID: a.Responses[q]})
	}
	return out
}
