package dto

import (
	"time"

	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

type ApplyRequest struct {
	InternshipID string `json:"internshipId" validate:"required,uuid"`
	Message      string `json:"message" validate:"max=1000"`
}

type UpdateStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}

type UpdateMessageRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

type ApplicationCreated struct {
	ID          uuid.UUID                `json:"id"`
	Status      models.ApplicationStatus `json:"status"`
	SubmittedAt time.Time                `json:"submittedAt"`
}

type InternshipSummary struct {
	ID        uuid.UUID             `json:"id"`
	Title     string                `json:"title"`
	Location  string                `json:"location"`
	Country   string                `json:"country"`
	Field     string                `json:"field"`
	Type      models.InternshipType `json:"type"`
	StartDate *time.Time            `json:"startDate,omitempty"`
}

type ApplicantSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
}

type ApplicationView struct {
	ID         uuid.UUID                `json:"id"`
	Status     models.ApplicationStatus `json:"status"`
	Message    string                   `json:"message"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
	Internship InternshipSummary        `json:"internship"`
	Applicant  *ApplicantSummary        `json:"applicant,omitempty"`
}

// NewApplicationView projects a (preloaded) application into lang.
// The applicant block is only filled when withApplicant is set.
func NewApplicationView(a *models.Application, lang i18n.Lang, withApplicant bool) ApplicationView {
	text := a.Internship.Translations.Get(lang)
	v := ApplicationView{
		ID:        a.ID,
		Status:    a.Status,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Internship: InternshipSummary{
			ID:        a.Internship.ID,
			Title:     text.Title,
			Location:  text.Location,
			Country:   a.Internship.Country,
			Field:     a.Internship.Field,
			Type:      a.Internship.Type,
			StartDate: a.Internship.StartDate,
		},
	}
	if withApplicant {
		v.Applicant = &ApplicantSummary{
			ID:        a.Applicant.ID,
			FirstName: a.Applicant.FirstName,
			LastName:  a.Applicant.LastName,
			Email:     a.Applicant.Email,
			Country:   a.Applicant.Profile.Country,
		}
	}
	return v
}

type ApplicationStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}

type StudentApplications struct {
	Applications []ApplicationView `json:"applications"`
	Stats        ApplicationStats  `json:"stats"`
}

type ApplicationFilter struct {
	Status       models.ApplicationStatus
	InternshipID *uuid.UUID
	Search       string
}
