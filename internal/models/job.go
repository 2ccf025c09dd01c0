package models

import "time"

type JobType string

const (
	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

// JobTypes lists the valid job types, in display order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote}

func ValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if string(jt) == t {
			return true
		}
	}
	return false
}

type Job struct {
	ID           uint    `gorm:"primaryKey"`
	Title        string  `gorm:"size:200;not null"`
	Company      string  `gorm:"size:200;not null"`
	Location     string  `gorm:"size:200;not null"`
	Description  string  `gorm:"type:text;not null"`
	Requirements string  `gorm:"type:text;not null"`
	Salary       string  `gorm:"size:100"`
	JobType      JobType `gorm:"size:20;not null"`

	// Category is optional; deleting the category clears the reference.
	CategoryID *uint     `gorm:"index"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// A job always has a poster; deleting the poster removes their jobs.
	PostedByID uint `gorm:"not null;index"`
	PostedBy   User `gorm:"foreignKey:PostedByID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time
	IsActive  bool `gorm:"default:true"`

	Applications []Application `gorm:"foreignKey:JobID"`
}
