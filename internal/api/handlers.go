package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"job_recommendation/internal/logger"
	"job_recommendation/internal/models"
	"job_recommendation/internal/store"
)

const welcomeMessage = "Welcome to the Job Recommendation API!"

// JobStore is the persistence the handlers depend on.
type JobStore interface {
	Insert(ctx context.Context, job *models.JobPosting) (int64, error)
	List(ctx context.Context) ([]models.JobPosting, error)
	Get(ctx context.Context, jobID int64) (*models.JobPosting, error)
	Ping(ctx context.Context) error
}

// Recommender scores a profile against the stored postings.
type Recommender interface {
	Recommend(ctx context.Context, profile *models.UserProfile) ([]models.MatchResult, error)
}

// Handler holds API handler dependencies.
type Handler struct {
	jobs        JobStore
	recommender Recommender
	log         *logger.Logger
	version     string
}

// NewHandler creates a new Handler.
func NewHandler(jobs JobStore, recommender Recommender, log *logger.Logger, version string) *Handler {
	return &Handler{
		jobs:        jobs,
		recommender: recommender,
		log:         log.WithComponent("api"),
		version:     version,
	}
}

// Welcome handles GET /
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: welcomeMessage})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.jobs.Ping(ctx); err != nil {
		h.log.Warn("health check failed", "error", err)
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"service":   "job_recommendation",
		"version":   h.version,
		"timestamp": time.Now(),
	})
}

// AddJob handles POST /add_job
func (h *Handler) AddJob(c *gin.Context) {
	var req models.AddJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	job := req.ToJobPosting()
	id, err := h.jobs.Insert(c.Request.Context(), job)
	if err != nil {
		h.respondStoreError(c, "Failed to add job", err)
		return
	}

	h.log.WithRequestID(GetRequestID(c)).JobAdded(id, job.JobTitle)
	c.JSON(http.StatusOK, models.AddJobResponse{
		Message: "Job added successfully!",
		JobID:   id,
	})
}

// Recommend handles POST /recommend
func (h *Handler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	results, err := h.recommender.Recommend(c.Request.Context(), req.ToUserProfile())
	if err != nil {
		h.respondStoreError(c, "Failed to recommend jobs", err)
		return
	}
	if results == nil {
		results = []models.MatchResult{}
	}

	c.JSON(http.StatusOK, models.RecommendResponse{RecommendedJobs: results})
}

// ListJobs handles GET /jobs
func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, "Failed to list jobs", err)
		return
	}

	c.JSON(http.StatusOK, models.JobListResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

// GetJob handles GET /jobs/:job_id
func (h *Handler) GetJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Job ID must be an integer",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		h.respondStoreError(c, "Failed to get job", err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
		Error:  "Invalid request body",
		Code:   "VALIDATION_ERROR",
		Fields: fieldErrors(err),
	})
}

// respondStoreError maps store sentinel errors onto HTTP statuses.
func (h *Handler) respondStoreError(c *gin.Context, message string, err error) {
	status, code := http.StatusInternalServerError, "STORE_ERROR"
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		status, code = http.StatusConflict, "JOB_EXISTS"
	case errors.Is(err, store.ErrNotFound):
		status, code = http.StatusNotFound, "JOB_NOT_FOUND"
	case errors.Is(err, store.ErrStoreUnavailable):
		status, code = http.StatusServiceUnavailable, "STORE_UNAVAILABLE"
	}

	resp := models.ErrorResponse{Error: message, Code: code}
	if status >= http.StatusInternalServerError {
		// driver errors can carry host and user names
		h.log.Error(message, "request_id", GetRequestID(c), "error", err)
	} else {
		resp.Details = err.Error()
	}

	c.JSON(status, resp)
}
