package matcher

import (
	"context"
	"fmt"
	"time"

	"job_recommendation/internal/logger"
	"job_recommendation/internal/models"
)

// CandidateSource supplies the postings a profile is scored against.
type CandidateSource interface {
	List(ctx context.Context) ([]models.JobPosting, error)
}

// Service produces recommendations from a candidate source.
type Service struct {
	source CandidateSource
	log    *logger.Logger
}

// NewService creates a new recommendation service.
func NewService(source CandidateSource, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		source: source,
		log:    log.WithComponent("matcher"),
	}
}

// Recommend scores every stored posting against profile and returns the qualifying ones.
func (s *Service) Recommend(ctx context.Context, profile *models.UserProfile) ([]models.MatchResult, error) {
	start := time.Now()

	candidates, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	results := ScoreAndFilter(profile, candidates)

	s.log.RecommendationCompleted(profile.Name, len(candidates), len(results), time.Since(start))
	return results, nil
}
