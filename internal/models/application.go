package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is one user's submission against one job. The composite unique
// index is the race-safety guarantee for one-application-per-user-per-job.
type Application struct {
	ID uint `gorm:"primaryKey"`

	JobID uint `gorm:"not null;uniqueIndex:idx_job_applicant"`
	Job   Job  `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	ApplicantID uint `gorm:"not null;uniqueIndex:idx_job_applicant"`
	Applicant   User `gorm:"foreignKey:ApplicantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Resume      string            `gorm:"size:512;not null"` // storage path under resumes/
	CoverLetter string            `gorm:"type:text;not null"`
	AppliedAt   time.Time         `gorm:"autoCreateTime"`
	Status      ApplicationStatus `gorm:"size:20;default:pending"`
}
