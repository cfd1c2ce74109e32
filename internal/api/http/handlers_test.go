package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/brightpath-labs/pathfinder/internal/attempt"
	auth "github.com/brightpath-labs/pathfinder/internal/auth/middleware"
	"github.com/brightpath-labs/pathfinder/internal/catalog"
	"github.com/brightpath-labs/pathfinder/internal/rbac"
	"github.com/brightpath-labs/pathfinder/internal/scoring"
)

// testIdentity injects subject and role from test headers, standing in for the
// JWT middleware.
func testIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := auth.WithSubject(r.Context(), r.Header.Get("X-Test-Subject"))
		ctx = rbac.WithRole(ctx, r.Header.Get("X-Test-Role"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func testRouter(t *testing.T) (chi.Router, attempt.Store) {
	t.Helper()
	store := attempt.NewInMemoryStore()
	eng, err := scoring.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	r := chi.NewRouter()
	r.Use(testIdentity)
	r.Post("/catalogs", UploadCatalogHandler(store))
	r.Get("/catalogs/{catalogID}", GetCatalogHandler(store))
	r.Post("/attempts", CreateAttemptHandler(store))
	r.Post("/attempts/{attemptID}/responses", SaveResponsesHandler(store))
	r.Post("/attempts/{attemptID}/submit", SubmitAttemptHandler(store, eng, nil))
	r.Get("/attempts/{attemptID}", GetAttemptHandler(store))
	r.Get("/attempts/{attemptID}/report", GetReportHandler(store))
	r.Get("/attempts/{attemptID}/tiebreaker", GetTiebreakHandler(store))
	r.Post("/attempts/{attemptID}/tiebreaker", AdvanceTiebreakHandler(store, eng, nil))
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path, subject, role string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-Test-Subject", subject)
	req.Header.Set("X-Test-Role", role)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// tieCatalog pairs realistic, investigative and artistic so the submitted
// attempt ends in a three-way tie needing the interactive tiebreaker.
func tieCatalog() catalog.Catalog {
	c := catalog.Catalog{ID: "career-v1", Title: "Career Assessment"}
	c.Questions = append(c.Questions,
		catalog.Question{ID: "p1", Section: "Psychometric", SubSection: "Openness and curiosity",
			Options: []catalog.Option{{ID: "a", Text: "Extremely likely"}}},
	)
	pairs := []struct{ sub, a, b string }{
		{"Realistic vs Investigative", "R", "I"},
		{"Realistic vs Artistic", "R", "A"},
		{"Investigative vs Artistic", "I", "A"},
	}
	for i, p := range pairs {
		base := "int-" + string(rune('1'+i))
		c.Questions = append(c.Questions,
			catalog.Question{ID: base + "a", Section: "Interest Inventory", SubSection: p.sub,
				Options: []catalog.Option{{ID: "x", Marks: 1, Type: p.a}, {ID: "y", Marks: 1, Type: p.b}}},
			catalog.Question{ID: base + "b", Section: "Interest Inventory", SubSection: p.sub,
				Options: []catalog.Option{{ID: "x", Marks: 1, Type: p.a}, {ID: "y", Marks: 1, Type: p.b}}},
		)
	}
	return c
}

func TestAssessmentFlow(t *testing.T) {
	r, _ := testRouter(t)

	// Counselor uploads the catalog.
	w := doJSON(t, r, "POST", "/catalogs", "coach", "counselor", tieCatalog())
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}

	// Served catalogs hide marks and letters.
	w = doJSON(t, r, "GET", "/catalogs/career-v1", "stu1", "student", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get catalog: %d", w.Code)
	}
	var served catalog.Catalog
	decodeInto(t, w, &served)
	for _, q := range served.Questions {
		for _, o := range q.Options {
			if o.Marks != 0 || o.Type != "" {
				t.Fatalf("question %s leaks scoring data: %+v", q.ID, o)
			}
		}
	}

	// Student starts an attempt; user id comes from the auth subject.
	w = doJSON(t, r, "POST", "/attempts", "stu1", "student", map[string]string{"catalog_id": "career-v1"})
	if w.Code != http.StatusOK {
		t.Fatalf("create attempt: %d %s", w.Code, w.Body.String())
	}
	var a attempt.Attempt
	decodeInto(t, w, &a)
	if a.UserID != "stu1" || a.Status != attempt.StatusInProgress {
		t.Fatalf("attempt=%+v", a)
	}

	// One winner per pair question: x then y, a perfect three-way split.
	responses := map[string]string{"p1": "a"}
	for _, suffix := range []string{"1", "2", "3"} {
		responses["int-"+suffix+"a"] = "x"
		responses["int-"+suffix+"b"] = "y"
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/responses", "stu1", "student", responses)
	if w.Code != http.StatusOK {
		t.Fatalf("save responses: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/submit", "stu1", "student", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	var res scoring.AssessmentResult
	decodeInto(t, w, &res)
	if !res.Riasec.NeedsTiebreaker {
		t.Fatalf("expected tiebreaker, got %+v", res.Riasec)
	}

	// Tiebreaker round trip.
	w = doJSON(t, r, "GET", "/attempts/"+a.ID+"/tiebreaker", "stu1", "student", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get tiebreaker: %d %s", w.Code, w.Body.String())
	}
	var st scoring.TiebreakerState
	decodeInto(t, w, &st)
	if st.Phase != scoring.TiebreakPending || len(st.Questions) == 0 {
		t.Fatalf("tiebreak state=%+v", st)
	}

	var answers []scoring.TiebreakAnswer
	for _, q := range st.Questions {
		pick := q.Options[0]
		if q.Options[1].Category == "realistic" {
			pick = q.Options[1]
		}
		answers = append(answers, scoring.TiebreakAnswer{QuestionID: q.ID, Category: pick.Category})
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/tiebreaker", "stu1", "student",
		map[string]interface{}{"answers": answers})
	if w.Code != http.StatusOK {
		t.Fatalf("advance tiebreaker: %d %s", w.Code, w.Body.String())
	}
	var next scoring.TiebreakerState
	decodeInto(t, w, &next)
	if next.Phase != scoring.TiebreakResolved {
		t.Fatalf("phase=%s wins=%v", next.Phase, next.Wins)
	}

	// Finalized report carries the settled top-3 and the career mapping.
	w = doJSON(t, r, "GET", "/attempts/"+a.ID+"/report", "stu1", "student", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get report: %d %s", w.Code, w.Body.String())
	}
	var report scoring.AssessmentResult
	decodeInto(t, w, &report)
	if report.Riasec.NeedsTiebreaker || len(report.Riasec.Top3) != 3 {
		t.Fatalf("riasec=%+v", report.Riasec)
	}
	if report.Riasec.Top3[0] != "realistic" {
		t.Fatalf("top3=%v", report.Riasec.Top3)
	}
	if report.CareerMapping == nil || report.CareerMapping.RuleID == "" {
		t.Fatalf("careerMapping=%+v", report.CareerMapping)
	}

	// Another student cannot read it; a counselor can.
	w = doJSON(t, r, "GET", "/attempts/"+a.ID+"/report", "stu2", "student", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign report read: %d", w.Code)
	}
	w = doJSON(t, r, "GET", "/attempts/"+a.ID+"/report", "coach", "counselor", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("counselor report read: %d", w.Code)
	}

	// The tiebreaker is terminal now.
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/tiebreaker", "stu1", "student",
		map[string]interface{}{"answers": []scoring.TiebreakAnswer{}})
	if w.Code != http.StatusConflict {
		t.Fatalf("advance after resolve: %d %s", w.Code, w.Body.String())
	}
}

func TestAttemptOwnership(t *testing.T) {
	r, store := testRouter(t)
	if err := store.PutCatalog(tieCatalog()); err != nil {
		t.Fatal(err)
	}
	a, err := store.NewAttempt("career-v1", "stu1")
	if err != nil {
		t.Fatal(err)
	}

	// Another student can neither read nor write the attempt.
	w := doJSON(t, r, "GET", "/attempts/"+a.ID, "stu2", "student", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign attempt read: %d", w.Code)
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/responses", "stu2", "student",
		map[string]string{"p1": "a"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign responses write: %d", w.Code)
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/submit", "stu2", "student", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign submit: %d", w.Code)
	}
	// Counselors may view attempts but not act on them.
	w = doJSON(t, r, "GET", "/attempts/"+a.ID, "coach", "counselor", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("counselor attempt read: %d", w.Code)
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/responses", "coach", "counselor",
		map[string]string{"p1": "a"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("counselor responses write: %d", w.Code)
	}

	// Owner runs the attempt into a pending tiebreaker.
	responses := map[string]string{"p1": "a"}
	for _, suffix := range []string{"1", "2", "3"} {
		responses["int-"+suffix+"a"] = "x"
		responses["int-"+suffix+"b"] = "y"
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/responses", "stu1", "student", responses)
	if w.Code != http.StatusOK {
		t.Fatalf("save responses: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/submit", "stu1", "student", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}

	// The tiebreaker is readable by the owner and counselors, answerable
	// only by the owner.
	w = doJSON(t, r, "GET", "/attempts/"+a.ID+"/tiebreaker", "stu2", "student", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign tiebreak read: %d", w.Code)
	}
	w = doJSON(t, r, "GET", "/attempts/"+a.ID+"/tiebreaker", "coach", "counselor", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("counselor tiebreak read: %d", w.Code)
	}
	body := map[string]interface{}{"answers": []scoring.TiebreakAnswer{}}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/tiebreaker", "stu2", "student", body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign tiebreak advance: %d", w.Code)
	}
	w = doJSON(t, r, "POST", "/attempts/"+a.ID+"/tiebreaker", "coach", "counselor", body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("counselor tiebreak advance: %d", w.Code)
	}
}

func TestSubmitWithoutResponses(t *testing.T) {
	r, store := testRouter(t)
	if err := store.PutCatalog(tieCatalog()); err != nil {
		t.Fatal(err)
	}
	a, err := store.NewAttempt("career-v1", "stu1")
	if err != nil {
		t.Fatal(err)
	}
	w := doJSON(t, r, "POST", "/attempts/"+a.ID+"/submit", "stu1", "student", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty submit: %d %s", w.Code, w.Body.String())
	}
}

func TestUploadCatalogValidation(t *testing.T) {
	r, _ := testRouter(t)
	w := doJSON(t, r, "POST", "/catalogs", "coach", "counselor", catalog.Catalog{ID: "empty"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty catalog: %d", w.Code)
	}
	w = doJSON(t, r, "GET", "/catalogs/none", "coach", "counselor", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing catalog: %d", w.Code)
	}
}
