package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightpath-labs/pathfinder/internal/attempt"
	"github.com/brightpath-labs/pathfinder/internal/catalog"
)

func writeStoreErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, attempt.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, attempt.ErrAlreadySubmitted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func UploadCatalogHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c catalog.Catalog
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if c.ID == "" || len(c.Questions) == 0 {
			http.Error(w, "id and questions required", 400)
			return
		}
		if err := store.PutCatalog(c); err != nil {
			writeStoreErr(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": c.ID})
	}
}

func GetCatalogHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "catalogID")
		c, err := store.GetCatalog(id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		// Hide marks and type letters when serving to test-takers. Sanitize
		// a copy; the store may hand back shared state.
		qs := make([]catalog.Question, len(c.Questions))
		for i, q := range c.Questions {
			q.Options = append([]catalog.Option(nil), q.Options...)
			for j := range q.Options {
				q.Options[j].Marks = 0
				q.Options[j].Type = ""
			}
			qs[i] = q
		}
		c.Questions = qs
		_ = json.NewEncoder(w).Encode(c)
	}
}
