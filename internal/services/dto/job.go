package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// JobSummary is the public list representation of a job.
type JobSummary struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	JobType      string    `json:"job_type"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// JobDetail adds the full text fields and the poster's username.
type JobDetail struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary"`
	JobType      string    `json:"job_type"`
	CategoryName string    `json:"category_name"`
	PostedByName string    `json:"posted_by_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateJobRequest mirrors the job creation form.
type CreateJobRequest struct {
	Title        string `json:"title" form:"title" validate:"required,max=200"`
	Company      string `json:"company" form:"company" validate:"required,max=200"`
	Location     string `json:"location" form:"location" validate:"required,max=200"`
	Description  string `json:"description" form:"description" validate:"required"`
	Requirements string `json:"requirements" form:"requirements" validate:"required"`
	Salary       string `json:"salary" form:"salary" validate:"max=100"`
	JobType      string `json:"job_type" form:"job_type" validate:"required,job_type"`
	CategoryID   *uint  `json:"category_id" form:"category_id"`
	IsActive     *bool  `json:"is_active" form:"is_active"`
}

// DashboardData is what the owner dashboard renders.
type DashboardData struct {
	Jobs              []models.Job
	TotalApplications int64
}

func NewJobSummary(job *models.Job) JobSummary {
	s := JobSummary{
		ID:        job.ID,
		Title:     job.Title,
		Company:   job.Company,
		Location:  job.Location,
		Salary:    job.Salary,
		JobType:   string(job.JobType),
		CreatedAt: job.CreatedAt,
	}
	if job.Category != nil {
		s.CategoryName = job.Category.Name
	}
	return s
}

func NewJobDetail(job *models.Job) JobDetail {
	d := JobDetail{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary:       job.Salary,
		JobType:      string(job.JobType),
		PostedByName: job.PostedBy.Username,
		CreatedAt:    job.CreatedAt,
	}
	if job.Category != nil {
		d.CategoryName = job.Category.Name
	}
	return d
}
