package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightpath-labs/pathfinder/internal/attempt"
	auth "github.com/brightpath-labs/pathfinder/internal/auth/middleware"
	"github.com/brightpath-labs/pathfinder/internal/rbac"
	"github.com/brightpath-labs/pathfinder/internal/scoring"
	syncx "github.com/brightpath-labs/pathfinder/internal/sync"
)

var checker = rbac.NewChecker(nil)

// ownerOr reports whether the request's subject owns the attempt, or holds
// the privileged permission (empty perm means owner-only).
func ownerOr(r *http.Request, ownerID, perm string) bool {
	if auth.SubjectFromContext(r.Context()) == ownerID {
		return true
	}
	return perm != "" && checker.Has(rbac.RoleFromContext(r.Context()), perm)
}

func CreateAttemptHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CatalogID string `json:"catalog_id"`
			UserID    string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.UserID == "" {
			req.UserID = auth.SubjectFromContext(r.Context())
		}
		if req.CatalogID == "" || req.UserID == "" {
			http.Error(w, "catalog_id and user_id required", 400)
			return
		}
		a, err := store.NewAttempt(req.CatalogID, req.UserID)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func SaveResponsesHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		var resp map[string]string
		if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		a, err := store.GetAttempt(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		if !ownerOr(r, a.UserID, "") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		a, err = store.SaveResponses(id, resp)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func GetAttemptHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.GetAttempt(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		if !ownerOr(r, a.UserID, "attempt:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

// SubmitAttemptHandler marks the attempt submitted, runs the scoring engine
// over the catalog and the saved responses, persists the report and, when the
// interest ranking is ambiguous, the round-1 tiebreaker state.
func SubmitAttemptHandler(store attempt.Store, eng *scoring.Engine, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.GetAttempt(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		if !ownerOr(r, a.UserID, "") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		a, err = store.Submit(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		cat, err := store.GetCatalog(a.CatalogID)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		res, err := eng.Score(cat.Questions, a.Submissions())
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if err := store.SaveReport(id, res); err != nil {
			writeStoreErr(w, err)
			return
		}
		if res.Riasec.NeedsTiebreaker {
			if st := eng.NewTiebreak(res.Riasec); st != nil {
				if err := store.SaveTiebreak(id, st); err != nil {
					writeStoreErr(w, err)
					return
				}
			}
		}
		if events != nil {
			_ = events.Append(r.Context(), syncx.Event{
				Type: syncx.EventAttemptSubmitted,
				Key:  id,
				DataJSON: mustJSON(map[string]interface{}{
					"user_id":          a.UserID,
					"needs_tiebreaker": res.Riasec.NeedsTiebreaker,
				}),
			})
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

// GetReportHandler serves the stored report. Students can only read their own.
func GetReportHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.GetAttempt(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		if !ownerOr(r, a.UserID, "report:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		res, err := store.GetReport(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func mustJSON(v interface{}) string {
	buf, _ := json.Marshal(v)
	return string(buf)
}
