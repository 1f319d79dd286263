package matcher

import "job_recommendation/internal/models"

// Scoring weights. A job qualifies when its total reaches Threshold.
const (
	TitleWeight          = 2
	LocationWeight       = 2
	SkillMatchWeight     = 1
	SkillBonusWeight     = 1
	SkillBonusMinOverlap = 2
	JobTypeWeight        = 1
	ExperienceWeight     = 1

	Threshold = 4
	MaxScore  = TitleWeight + LocationWeight + SkillMatchWeight + SkillBonusWeight + JobTypeWeight + ExperienceWeight
)

// ScoreBreakdown is the per-criterion contribution for one candidate.
type ScoreBreakdown struct {
	Title         int
	Location      int
	Skills        int
	JobType       int
	Experience    int
	Total         int
	MatchedSkills []string
}

// Qualifies reports whether the total reaches Threshold.
func (b ScoreBreakdown) Qualifies() bool {
	return b.Total >= Threshold
}

// Breakdown scores job against profile. String comparisons are exact and case-sensitive.
func Breakdown(profile *models.UserProfile, job *models.JobPosting) ScoreBreakdown {
	var b ScoreBreakdown

	if contains(profile.Preferences.DesiredRoles, job.JobTitle) {
		b.Title = TitleWeight
	}
	if contains(profile.Preferences.Locations, job.Location) {
		b.Location = LocationWeight
	}

	b.MatchedSkills = skillOverlap(profile.Skills, job.RequiredSkills)
	if n := len(b.MatchedSkills); n > 0 {
		b.Skills = SkillMatchWeight
		if n >= SkillBonusMinOverlap {
			b.Skills += SkillBonusWeight
		}
	}

	if contains(profile.Preferences.JobType, job.JobType) {
		b.JobType = JobTypeWeight
	}
	if job.ExperienceLevel == profile.ExperienceLevel {
		b.Experience = ExperienceWeight
	}

	b.Total = b.Title + b.Location + b.Skills + b.JobType + b.Experience
	return b
}

// Score returns the total score of job for profile.
func Score(profile *models.UserProfile, job *models.JobPosting) int {
	return Breakdown(profile, job).Total
}

// ScoreAndFilter returns the candidates scoring at least Threshold, in input order.
func ScoreAndFilter(profile *models.UserProfile, candidates []models.JobPosting) []models.MatchResult {
	results := make([]models.MatchResult, 0)
	for i := range candidates {
		if Breakdown(profile, &candidates[i]).Qualifies() {
			results = append(results, project(&candidates[i]))
		}
	}
	return results
}

func project(job *models.JobPosting) models.MatchResult {
	return models.MatchResult{
		JobTitle:        job.JobTitle,
		Company:         job.Company,
		Location:        job.Location,
		JobType:         job.JobType,
		RequiredSkills:  append([]string{}, job.RequiredSkills...),
		ExperienceLevel: job.ExperienceLevel,
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// skillOverlap returns the distinct required skills also held by the user,
// in the order they appear in required.
func skillOverlap(have, required []string) []string {
	owned := make(map[string]struct{}, len(have))
	for _, s := range have {
		owned[s] = struct{}{}
	}

	seen := make(map[string]struct{}, len(required))
	var matched []string
	for _, s := range required {
		if _, ok := owned[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		matched = append(matched, s)
	}
	return matched
}
