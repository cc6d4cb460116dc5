package dto

import (
	"time"

	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

type InternshipRequest struct {
	Translations i18n.Translations[models.InternshipText] `json:"translations"`
	Field        string                                   `json:"field" validate:"required,max=100"`
	Country      string                                   `json:"country" validate:"required,max=100"`
	Type         models.InternshipType                    `json:"type" validate:"required,oneof=remote on-site hybrid"`
	Duration     string                                   `json:"duration" validate:"required,max=100"`
	Salary       *float64                                 `json:"salary" validate:"omitempty,gte=0"`
	IsActive     *bool                                    `json:"isActive"`
	StartDate    *Date                                    `json:"startDate"`
	EndDate      *Date                                    `json:"endDate"`
}

type InternshipFilter struct {
	Country string
	Field   string
	Type    string
	Keyword string
	Lang    i18n.Lang
	Page    int
	Limit   int
}

// InternshipListItem is an internship projected into a single language.
type InternshipListItem struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	Field       string                `json:"field"`
	Country     string                `json:"country"`
	Type        models.InternshipType `json:"type"`
	Duration    string                `json:"duration"`
	Salary      *float64              `json:"salary,omitempty"`
	ImageURL    string                `json:"imageUrl"`
	StartDate   *time.Time            `json:"startDate,omitempty"`
	EndDate     *time.Time            `json:"endDate,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func NewInternshipListItem(in *models.Internship, lang i18n.Lang) InternshipListItem {
	text := in.Translations.Get(lang)
	return InternshipListItem{
		ID:          in.ID,
		Title:       text.Title,
		Description: text.Description,
		Location:    text.Location,
		Field:       in.Field,
		Country:     in.Country,
		Type:        in.Type,
		Duration:    in.Duration,
		Salary:      in.Salary,
		ImageURL:    in.ImageURL,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   in.CreatedAt,
	}
}

type InternshipPage struct {
	Internships []InternshipListItem `json:"internships"`
	TotalPages  int                  `json:"totalPages"`
	CurrentPage int                  `json:"currentPage"`
	Total       int64                `json:"total"`
}
