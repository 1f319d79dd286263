package store

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"job_recommendation/internal/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// newClosedStore returns a store whose pool has been closed, so every
// connection acquisition fails without touching the network.
func newClosedStore(t *testing.T) *Store {
	t.Helper()

	db, err := sqlx.Open("pgx", "postgres://nobody@127.0.0.1:1/none?sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	return NewStore(db)
}

func sampleJob(id int64) *models.JobPosting {
	return &models.JobPosting{
		JobID:           id,
		JobTitle:        "Data Scientist",
		Company:         "Data Analytics Corp.",
		RequiredSkills:  []string{"Python", "Data Analysis", "Machine Learning"},
		Location:        "Remote",
		JobType:         "Full-Time",
		ExperienceLevel: "Intermediate",
	}
}
