package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"job_recommendation/internal/config"
	"job_recommendation/internal/logger"
	"job_recommendation/internal/matcher"
	"job_recommendation/internal/models"
	"job_recommendation/internal/store"
)

// memoryStore is an in-memory JobStore used by handler tests.
type memoryStore struct {
	mu   sync.Mutex
	jobs map[int64]models.JobPosting
	err  error
}

func newMemoryStore(jobs ...models.JobPosting) *memoryStore {
	s := &memoryStore{jobs: make(map[int64]models.JobPosting)}
	for _, j := range jobs {
		s.jobs[j.JobID] = j
	}
	return s
}

func (s *memoryStore) Insert(_ context.Context, job *models.JobPosting) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.jobs[job.JobID]; ok {
		return 0, fmt.Errorf("failed to insert job %d: %w", job.JobID, store.ErrDuplicateKey)
	}
	s.jobs[job.JobID] = *job
	return job.JobID, nil
}

func (s *memoryStore) List(_ context.Context) ([]models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.JobPosting, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].JobID < out[k].JobID })
	return out, nil
}

func (s *memoryStore) Get(_ context.Context, jobID int64) (*models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	j, ok := s.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", store.ErrNotFound, jobID)
	}
	return &j, nil
}

func (s *memoryStore) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func newTestRouter(t *testing.T, jobs *memoryStore) *gin.Engine {
	t.Helper()
	log := logger.Nop()
	cfg := &config.Config{LogLevel: "ERROR"}
	return NewRouter(cfg, jobs, matcher.NewService(jobs, log), log, "test")
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func fieldNames(resp models.ErrorResponse) []string {
	names := make([]string, len(resp.Fields))
	for i, f := range resp.Fields {
		names[i] = f.Field
	}
	return names
}

const dataScientistProfile = `{
	"name": "Ada",
	"skills": ["Python", "Machine Learning"],
	"experience_level": "Intermediate",
	"preferences": {
		"desired_roles": ["Data Scientist"],
		"locations": ["Remote"],
		"job_type": ["Full-Time"]
	}
}`

func doJSONWithHeader(t *testing.T, r http.Handler, key, value string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(key, value)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
