package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightpath-labs/pathfinder/internal/attempt"
	"github.com/brightpath-labs/pathfinder/internal/scoring"
	syncx "github.com/brightpath-labs/pathfinder/internal/sync"
)

// GetTiebreakHandler returns the suspended tiebreaker state, including the
// current round's forced-choice questions. Students can only read their own.
func GetTiebreakHandler(store attempt.Store) http.HandlerFunc {
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
		st, err := store.GetTiebreak(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}

// AdvanceTiebreakHandler runs one resolution round. On resolve it finalizes
// the stored report (top-3, letters, career mapping); when the round cap is
// hit with the tie intact, the terminal unresolved state is returned as-is
// for the caller to surface.
func AdvanceTiebreakHandler(store attempt.Store, eng *scoring.Engine, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		var req struct {
			Answers []scoring.TiebreakAnswer `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
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
		st, err := store.GetTiebreak(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		next, err := eng.AdvanceTiebreak(st, req.Answers)
		if err != nil {
			if errors.Is(err, scoring.ErrTiebreakTerminal) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if err := store.SaveTiebreak(id, next); err != nil {
			writeStoreErr(w, err)
			return
		}

		switch next.Phase {
		case scoring.TiebreakResolved:
			res, err := store.GetReport(id)
			if err != nil {
				writeStoreErr(w, err)
				return
			}
			if err := eng.FinalizeInterests(res, next); err != nil {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			if err := store.SaveReport(id, res); err != nil {
				writeStoreErr(w, err)
				return
			}
			if events != nil {
				_ = events.Append(r.Context(), syncx.Event{
					Type:     syncx.EventTiebreakResolved,
					Key:      id,
					DataJSON: mustJSON(map[string]interface{}{"final_top3": next.FinalTop3}),
				})
			}
		case scoring.TiebreakUnresolved:
			if events != nil {
				_ = events.Append(r.Context(), syncx.Event{
					Type:     syncx.EventTiebreakExhausted,
					Key:      id,
					DataJSON: mustJSON(map[string]interface{}{"tied": next.Tied, "round": next.Round}),
				})
			}
		}
		_ = json.NewEncoder(w).Encode(next)
	}
}
