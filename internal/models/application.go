package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is a student's candidacy for one internship. The pair
// (InternshipID, ApplicantID) is unique.
type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	InternshipID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_internship_applicant" json:"internshipId"`
	ApplicantID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_internship_applicant;index" json:"applicantId"`
	Message      string            `gorm:"type:text" json:"message"`
	Status       ApplicationStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`

	Internship Internship `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE" json:"-"`
	Applicant  User       `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`
}
