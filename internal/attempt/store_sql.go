package attempt

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath-labs/pathfinder/internal/catalog"
	"github.com/brightpath-labs/pathfinder/internal/scoring"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutCatalog(c catalog.Catalog) error {
	qj, err := json.Marshal(c.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO catalogs (id,title,questions_json,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, questions_json=EXCLUDED.questions_json`,
		c.ID, c.Title, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetCatalog(id string) (catalog.Catalog, error) {
	row := s.db.QueryRow(`SELECT id,title,questions_json,created_at FROM catalogs WHERE id=$1`, id)
	var c catalog.Catalog
	var qjson string
	if err := row.Scan(&c.ID, &c.Title, &qjson, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Catalog{}, ErrNotFound
		}
		return catalog.Catalog{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &c.Questions); err != nil {
		return catalog.Catalog{}, err
	}
	return c, nil
}

func (s *SQLStore) NewAttempt(catalogID, userID string) (Attempt, error) {
	var exist int
	if err := s.db.QueryRow(`SELECT 1 FROM catalogs WHERE id=$1`, catalogID).Scan(&exist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, ErrNotFound
		}
		return Attempt{}, err
	}
	a := Attempt{
		ID:        uuid.NewString(),
		CatalogID: catalogID,
		UserID:    userID,
		Status:    StatusInProgress,
		Responses: map[string]string{},
		StartedAt: time.Now().Unix(),
	}
	respJSON, _ := json.Marshal(a.Responses)
	_, err := s.db.Exec(`INSERT INTO attempts (id,catalog_id,user_id,status,responses_json,started_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.CatalogID, a.UserID, a.Status, string(respJSON), a.StartedAt)
	if err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) GetAttempt(id string) (Attempt, error) {
	row := s.db.QueryRow(`SELECT id,catalog_id,user_id,status,responses_json,started_at,COALESCE(submitted_at,0)
		FROM attempts WHERE id=$1`, id)
	var a Attempt
	var rjson string
	if err := row.Scan(&a.ID, &a.CatalogID, &a.UserID, &a.Status, &rjson, &a.StartedAt, &a.SubmittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, ErrNotFound
		}
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &a.Responses); err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) SaveResponses(attemptID string, resp map[string]string) (Attempt, error) {
	a, err := s.GetAttempt(attemptID)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status == StatusSubmitted {
		return Attempt{}, ErrAlreadySubmitted
	}
	if a.Responses == nil {
		a.Responses = map[string]string{}
	}
	for k, v := range resp {
		a.Responses[k] = v
	}
	buf, _ := json.Marshal(a.Responses)
	if _, err := s.db.Exec(`UPDATE attempts SET responses_json=$1 WHERE id=$2`, string(buf), attemptID); err != nil {
		return Attempt{}, err
	}
	return s.GetAttempt(attemptID)
}

func (s *SQLStore) Submit(attemptID string) (Attempt, error) {
	a, err := s.GetAttempt(attemptID)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status == StatusSubmitted {
		return a, nil
	}
	now := time.Now().Unix()
	if _, err := s.db.Exec(`UPDATE attempts SET status=$1, submitted_at=$2 WHERE id=$3`,
		StatusSubmitted, now, attemptID); err != nil {
		return Attempt{}, err
	}
	a.Status = StatusSubmitted
	a.SubmittedAt = now
	return a, nil
}

func (s *SQLStore) SaveReport(attemptID string, r *scoring.AssessmentResult) error {
	buf, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO reports (attempt_id,report_json,created_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (attempt_id) DO UPDATE SET report_json=EXCLUDED.report_json`,
		attemptID, string(buf), time.Now().Unix())
	return err
}

func (s *SQLStore) GetReport(attemptID string) (*scoring.AssessmentResult, error) {
	row := s.db.QueryRow(`SELECT report_json FROM reports WHERE attempt_id=$1`, attemptID)
	var buf string
	if err := row.Scan(&buf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var r scoring.AssessmentResult
	if err := json.Unmarshal([]byte(buf), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLStore) SaveTiebreak(attemptID string, st *scoring.TiebreakerState) error {
	buf, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO tiebreaks (attempt_id,state_json,updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (attempt_id) DO UPDATE SET state_json=EXCLUDED.state_json, updated_at=EXCLUDED.updated_at`,
		attemptID, string(buf), time.Now().Unix())
	return err
}

func (s *SQLStore) GetTiebreak(attemptID string) (*scoring.TiebreakerState, error) {
	row := s.db.QueryRow(`SELECT state_json FROM tiebreaks WHERE attempt_id=$1`, attemptID)
	var buf string
	if err := row.Scan(&buf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var st scoring.TiebreakerState
	if err := json.Unmarshal([]byte(buf), &st); err != nil {
		return nil, err
	}
	return &st, nil
}
