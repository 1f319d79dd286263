package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job_recommendation/internal/db"
)

// setupIntegrationStore connects to TEST_DATABASE_URL, migrates it and
// empties job_postings. The test is skipped when no database is available.
func setupIntegrationStore(t *testing.T) *Store {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := db.NewDB(ctx, db.DefaultPostgresConfig(dbURL))
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	migrator, err := db.NewMigrator(dbURL)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Close())

	_, err = conn.ExecContext(ctx, `TRUNCATE job_postings`)
	require.NoError(t, err)

	return NewStore(conn)
}

func TestStore_InsertThenList_Integration(t *testing.T) {
	s := setupIntegrationStore(t)
	ctx := context.Background()

	job := sampleJob(42)
	job.RequiredSkills = []string{"Machine Learning", "Python", "Data Analysis"}

	id, err := s.Insert(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	got := jobs[0]
	assert.Equal(t, job.JobID, got.JobID)
	assert.Equal(t, job.JobTitle, got.JobTitle)
	assert.Equal(t, job.Company, got.Company)
	assert.Equal(t, job.RequiredSkills, got.RequiredSkills)
	assert.Equal(t, job.Location, got.Location)
	assert.Equal(t, job.JobType, got.JobType)
	assert.Equal(t, job.ExperienceLevel, got.ExperienceLevel)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStore_InsertDuplicate_Integration(t *testing.T) {
	s := setupIntegrationStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, sampleJob(7))
	require.NoError(t, err)

	_, err = s.Insert(ctx, sampleJob(7))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestStore_ListOrderedByJobID_Integration(t *testing.T) {
	s := setupIntegrationStore(t)
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		_, err := s.Insert(ctx, sampleJob(id))
		require.NoError(t, err)
	}

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{jobs[0].JobID, jobs[1].JobID, jobs[2].JobID})
}

func TestStore_Get_Integration(t *testing.T) {
	s := setupIntegrationStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Insert(ctx, sampleJob(99))
	require.NoError(t, err)

	job, err := s.Get(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", job.JobTitle)
}

func TestStore_EmptySkills_Integration(t *testing.T) {
	s := setupIntegrationStore(t)
	ctx := context.Background()

	job := sampleJob(5)
	job.RequiredSkills = []string{}
	_, err := s.Insert(ctx, job)
	require.NoError(t, err)

	got, err := s.Get(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, got.RequiredSkills)
	assert.Empty(t, got.RequiredSkills)
}
