package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"job_recommendation/internal/models"
)

var (
	// ErrDuplicateKey is returned when a posting with the same job_id exists.
	ErrDuplicateKey = errors.New("job already exists")
	// ErrStoreUnavailable is returned when the database cannot be reached.
	ErrStoreUnavailable = errors.New("job store unavailable")
	// ErrNotFound is returned when no posting has the requested job_id.
	ErrNotFound = errors.New("job not found")
)

const uniqueViolation = "23505"

// Store handles job posting persistence.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type jobRow struct {
	JobID           int64          `db:"job_id"`
	JobTitle        string         `db:"job_title"`
	Company         string         `db:"company"`
	RequiredSkills  pq.StringArray `db:"required_skills"`
	Location        string         `db:"location"`
	JobType         string         `db:"job_type"`
	ExperienceLevel string         `db:"experience_level"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r *jobRow) toModel() models.JobPosting {
	skills := []string(r.RequiredSkills)
	if skills == nil {
		skills = []string{}
	}
	return models.JobPosting{
		JobID:           r.JobID,
		JobTitle:        r.JobTitle,
		Company:         r.Company,
		RequiredSkills:  skills,
		Location:        r.Location,
		JobType:         r.JobType,
		ExperienceLevel: r.ExperienceLevel,
		CreatedAt:       r.CreatedAt,
	}
}

const selectColumns = `job_id, job_title, company, required_skills, location, job_type, experience_level, created_at`

// withConn runs fn on a dedicated connection and always returns it to the pool.
func (s *Store) withConn(ctx context.Context, fn func(conn *sqlx.Conn) error) error {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer conn.Close()

	return fn(conn)
}

// Insert persists a new posting and returns its job_id.
func (s *Store) Insert(ctx context.Context, job *models.JobPosting) (int64, error) {
	skills := job.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	var id int64
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &id, `
			INSERT INTO job_postings (
				job_id, job_title, company, required_skills,
				location, job_type, experience_level
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING job_id`,
			job.JobID,
			job.JobTitle,
			job.Company,
			skills,
			job.Location,
			job.JobType,
			job.ExperienceLevel,
		)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert job %d: %w", job.JobID, classify(err))
	}

	return id, nil
}

// List returns all postings ordered by job_id.
func (s *Store) List(ctx context.Context) ([]models.JobPosting, error) {
	var rows []jobRow
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &rows, `
			SELECT `+selectColumns+`
			FROM job_postings
			ORDER BY job_id ASC`)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", classify(err))
	}

	jobs := make([]models.JobPosting, len(rows))
	for i := range rows {
		jobs[i] = rows[i].toModel()
	}
	return jobs, nil
}

// Get returns the posting with the given job_id.
func (s *Store) Get(ctx context.Context, jobID int64) (*models.JobPosting, error) {
	var row jobRow
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &row, `
			SELECT `+selectColumns+`
			FROM job_postings
			WHERE job_id = $1`,
			jobID,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to get job %d: %w", jobID, classify(err))
	}

	job := row.toModel()
	return &job, nil
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// classify maps driver errors onto the store's sentinel errors.
func classify(err error) error {
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.Detail)
		case strings.HasPrefix(pgErr.Code, "08"), pgErr.Code == "57P01", pgErr.Code == "57P03":
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return err
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
