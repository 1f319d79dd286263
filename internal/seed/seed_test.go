package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job_recommendation/internal/models"
	"job_recommendation/internal/store"
)

type recordingInserter struct {
	existing map[int64]bool
	failOn   int64
	inserted []int64
}

func (r *recordingInserter) Insert(_ context.Context, job *models.JobPosting) (int64, error) {
	if job.JobID == r.failOn {
		return 0, fmt.Errorf("failed to insert job %d: %w", job.JobID, store.ErrStoreUnavailable)
	}
	if r.existing[job.JobID] {
		return 0, fmt.Errorf("failed to insert job %d: %w", job.JobID, store.ErrDuplicateKey)
	}
	r.inserted = append(r.inserted, job.JobID)
	return job.JobID, nil
}

func TestSampleJobs(t *testing.T) {
	jobs := SampleJobs()
	require.Len(t, jobs, 10)

	seen := map[int64]bool{}
	for i, j := range jobs {
		assert.Equal(t, int64(i+1), j.JobID)
		assert.False(t, seen[j.JobID])
		seen[j.JobID] = true
		assert.NotEmpty(t, j.RequiredSkills)
	}

	jobs[0].JobTitle = "changed"
	assert.Equal(t, "Software Engineer", SampleJobs()[0].JobTitle)
}

func TestRun_InsertsAll(t *testing.T) {
	dst := &recordingInserter{}

	res, err := Run(context.Background(), dst, nil)

	require.NoError(t, err)
	assert.Equal(t, 10, res.Inserted)
	assert.Zero(t, res.Skipped)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, dst.inserted)
}

func TestRun_SkipsExisting(t *testing.T) {
	dst := &recordingInserter{existing: map[int64]bool{2: true, 5: true}}

	res, err := Run(context.Background(), dst, nil)

	require.NoError(t, err)
	assert.Equal(t, 8, res.Inserted)
	assert.Equal(t, 2, res.Skipped)
}

func TestRun_StopsOnStoreError(t *testing.T) {
	dst := &recordingInserter{failOn: 4}

	res, err := Run(context.Background(), dst, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrStoreUnavailable))
	assert.Equal(t, 3, res.Inserted)
}
