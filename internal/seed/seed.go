// Package seed loads the sample job postings used for demos and local development.
package seed

import (
	"context"
	"errors"
	"fmt"

	"job_recommendation/internal/logger"
	"job_recommendation/internal/models"
	"job_recommendation/internal/store"
)

// Inserter is the subset of the job store the seeder needs.
type Inserter interface {
	Insert(ctx context.Context, job *models.JobPosting) (int64, error)
}

// Result summarizes a seeding run.
type Result struct {
	Inserted int
	Skipped  int
}

// SampleJobs returns a fresh copy of the sample postings.
func SampleJobs() []models.JobPosting {
	return []models.JobPosting{
		{JobID: 1, JobTitle: "Software Engineer", Company: "Tech Solutions Inc.", RequiredSkills: []string{"JavaScript", "React", "Node.js"}, Location: "San Francisco", JobType: "Full-Time", ExperienceLevel: "Intermediate"},
		{JobID: 2, JobTitle: "Data Scientist", Company: "Data Analytics Corp.", RequiredSkills: []string{"Python", "Data Analysis", "Machine Learning"}, Location: "Remote", JobType: "Full-Time", ExperienceLevel: "Intermediate"},
		{JobID: 3, JobTitle: "Frontend Developer", Company: "Creative Designs LLC", RequiredSkills: []string{"HTML", "CSS", "JavaScript", "Vue.js"}, Location: "New York", JobType: "Part-Time", ExperienceLevel: "Junior"},
		{JobID: 4, JobTitle: "Backend Developer", Company: "Web Services Co.", RequiredSkills: []string{"Python", "Django", "REST APIs"}, Location: "Chicago", JobType: "Full-Time", ExperienceLevel: "Senior"},
		{JobID: 5, JobTitle: "Machine Learning Engineer", Company: "AI Innovations", RequiredSkills: []string{"Python", "Machine Learning", "TensorFlow"}, Location: "Boston", JobType: "Full-Time", ExperienceLevel: "Intermediate"},
		{JobID: 6, JobTitle: "DevOps Engineer", Company: "Cloud Networks", RequiredSkills: []string{"AWS", "Docker", "Kubernetes"}, Location: "Seattle", JobType: "Full-Time", ExperienceLevel: "Senior"},
		{JobID: 7, JobTitle: "Full Stack Developer", Company: "Startup Hub", RequiredSkills: []string{"JavaScript", "Node.js", "Angular", "MongoDB"}, Location: "Austin", JobType: "Full-Time", ExperienceLevel: "Intermediate"},
		{JobID: 8, JobTitle: "Data Analyst", Company: "Finance Analytics", RequiredSkills: []string{"SQL", "Python", "Tableau"}, Location: "New York", JobType: "Full-Time", ExperienceLevel: "Junior"},
		{JobID: 9, JobTitle: "Quality Assurance Engineer", Company: "Reliable Software", RequiredSkills: []string{"Selenium", "Java", "Testing"}, Location: "San Francisco", JobType: "Contract", ExperienceLevel: "Intermediate"},
		{JobID: 10, JobTitle: "Systems Administrator", Company: "Enterprise Solutions", RequiredSkills: []string{"Linux", "Networking", "Shell Scripting"}, Location: "Remote", JobType: "Full-Time", ExperienceLevel: "Senior"},
	}
}

// Run inserts the sample postings. Postings whose job_id already exists are skipped.
func Run(ctx context.Context, dst Inserter, log *logger.Logger) (*Result, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("seed")

	res := &Result{}
	jobs := SampleJobs()
	for i := range jobs {
		job := &jobs[i]
		if _, err := dst.Insert(ctx, job); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				log.Debug("sample job already present", "job_id", job.JobID)
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("failed to seed job %d: %w", job.JobID, err)
		}
		res.Inserted++
	}

	log.Info("seeding completed", "inserted", res.Inserted, "skipped", res.Skipped)
	return res, nil
}
