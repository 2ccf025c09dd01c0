package dto

import (
	"io"
	"time"

	"jobboard_backend/internal/models"
)

// ResumeUpload carries an incoming resume file into the application service.
type ResumeUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// ApplicationResponse is one row of GET /api/my-applications/.
type ApplicationResponse struct {
	ID          uint      `json:"id"`
	Job         uint      `json:"job"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name"`
	CoverLetter string    `json:"cover_letter"`
	Resume      string    `json:"resume"`
	AppliedAt   time.Time `json:"applied_at"`
	Status      string    `json:"status"`
}

func NewApplicationResponse(app *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID,
		Job:         app.JobID,
		JobTitle:    app.Job.Title,
		CompanyName: app.Job.Company,
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		AppliedAt:   app.AppliedAt,
		Status:      string(app.Status),
	}
}
