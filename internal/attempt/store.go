package attempt

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath-labs/pathfinder/internal/catalog"
	"github.com/brightpath-labs/pathfinder/internal/scoring"
)

var (
	ErrNotFound         = errors.New("attempt: not found")
	ErrAlreadySubmitted = errors.New("attempt: already submitted")
)

// Store persists catalogs, attempts, computed reports and suspended
// tiebreaker state. The scoring core never touches it.
type Store interface {
	PutCatalog(c catalog.Catalog) error
	GetCatalog(id string) (catalog.Catalog, error)

	NewAttempt(catalogID, userID string) (Attempt, error)
	GetAttempt(id string) (Attempt, error)
	SaveResponses(attemptID string, resp map[string]string) (Attempt, error)
	Submit(attemptID string) (Attempt, error)

	SaveReport(attemptID string, r *scoring.AssessmentResult) error
	GetReport(attemptID string) (*scoring.AssessmentResult, error)

	SaveTiebreak(attemptID string, st *scoring.TiebreakerState) error
	GetTiebreak(attemptID string) (*scoring.TiebreakerState, error)
}

type memoryStore struct {
	mu        sync.RWMutex
	catalogs  map[string]catalog.Catalog
	attempts  map[string]Attempt
	reports   map[string]*scoring.AssessmentResult
	tiebreaks map[string]*scoring.TiebreakerState
}

func NewInMemoryStore() Store {
	return &memoryStore{
		catalogs:  map[string]catalog.Catalog{},
		attempts:  map[string]Attempt{},
		reports:   map[string]*scoring.AssessmentResult{},
		tiebreaks: map[string]*scoring.TiebreakerState{},
	}
}

func (m *memoryStore) PutCatalog(c catalog.Catalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}
	m.catalogs[c.ID] = c
	return nil
}

func (m *memoryStore) GetCatalog(id string) (catalog.Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.catalogs[id]
	if !ok {
		return catalog.Catalog{}, ErrNotFound
	}
	return c, nil
}

func (m *memoryStore) NewAttempt(catalogID, userID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.catalogs[catalogID]; !ok {
		return Attempt{}, ErrNotFound
	}
	a := Attempt{
		ID:        uuid.NewString(),
		CatalogID: catalogID,
		UserID:    userID,
		Status:    StatusInProgress,
		Responses: map[string]string{},
		StartedAt: time.Now().Unix(),
	}
	m.attempts[a.ID] = a
	return a, nil
}

func (m *memoryStore) GetAttempt(id string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, ErrNotFound
	}
	return a, nil
}

func (m *memoryStore) SaveResponses(attemptID string, resp map[string]string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return Attempt{}, ErrNotFound
	}
	if a.Status == StatusSubmitted {
		return Attempt{}, ErrAlreadySubmitted
	}
	for k, v := range resp {
		a.Responses[k] = v
	}
	m.attempts[attemptID] = a
	return a, nil
}

func (m *memoryStore) Submit(attemptID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[attemptID]
	if !ok {
		return Attempt{}, ErrNotFound
	}
	if a.Status == StatusSubmitted {
		return a, nil
	}
	a.Status = StatusSubmitted
	a.SubmittedAt = time.Now().Unix()
	m.attempts[attemptID] = a
	return a, nil
}

func (m *memoryStore) SaveReport(attemptID string, r *scoring.AssessmentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attempts[attemptID]; !ok {
		return ErrNotFound
	}
	m.reports[attemptID] = r
	return nil
}

func (m *memoryStore) GetReport(attemptID string) (*scoring.AssessmentResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reports[attemptID]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (m *memoryStore) SaveTiebreak(attemptID string, st *scoring.TiebreakerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attempts[attemptID]; !ok {
		return ErrNotFound
	}
	m.tiebreaks[attemptID] = st
	return nil
}

func (m *memoryStore) GetTiebreak(attemptID string) (*scoring.TiebreakerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.tiebreaks[attemptID]
	if !ok {
		return nil, ErrNotFound
	}
	return st, nil
}
