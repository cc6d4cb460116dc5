// Package partners handles partnership requests and the editable partner
// page.
package partners

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = apperr.NotFound("PARTNER_NOT_FOUND", "partner.not_found")

// pageKey is the primary key of the single partner page row.
const pageKey = "partners"

type Request struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName string    `gorm:"size:200;not null" json:"companyName"`
	ContactName string    `gorm:"size:200;not null" json:"contactName"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Message     string    `gorm:"type:text" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime;index" json:"submittedAt"`
}

func (Request) TableName() string { return "partner_requests" }

type PageContent struct {
	Slug         string            `gorm:"size:50;primaryKey" json:"-"`
	Translations content.PageTexts `gorm:"embedded" json:"translations"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func (PageContent) TableName() string { return "partner_page_contents" }

type RequestInput struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
	ContactName string `json:"contactName" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	Message     string `json:"message" validate:"omitempty,max=5000"`
}

type ContentInput struct {
	Translations content.PageTexts `json:"translations"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Submit(ctx context.Context, in *RequestInput) (*Request, error) {
	r := &Request{
		ID:          uuid.New(),
		CompanyName: strings.TrimSpace(in.CompanyName),
		ContactName: strings.TrimSpace(in.ContactName),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:       strings.TrimSpace(in.Phone),
		Message:     strings.TrimSpace(in.Message),
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, fmt.Errorf("failed to store partner request: %w", err)
	}
	return r, nil
}

func (s *Service) Requests(ctx context.Context) ([]Request, error) {
	var list []Request
	err := s.db.WithContext(ctx).Order("submitted_at DESC").Find(&list).Error
	return list, err
}

func (s *Service) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&Request{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Content returns the partner page in lang.
func (s *Service) Content(ctx context.Context, lang i18n.Lang) (*content.PageText, error) {
	var page PageContent
	if err := s.db.WithContext(ctx).First(&page, "slug = ?", pageKey).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	text := page.Translations.Get(lang)
	return &text, nil
}

// SaveContent creates or replaces the partner page.
func (s *Service) SaveContent(ctx context.Context, in *ContentInput) (*PageContent, error) {
	if err := in.Translations.Validate(); err != nil {
		return nil, err
	}
	page := &PageContent{Slug: pageKey, Translations: in.Translations}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(page).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save partner content: %w", err)
	}
	return page, nil
}
