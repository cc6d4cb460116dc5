package testimonials

import (
	"context"
	"fmt"
	"strings"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = apperr.NotFound("TESTIMONIAL_NOT_FOUND", "testimonial.not_found")

type SubmitRequest struct {
	Translations i18n.Translations[Text] `json:"translations"`
	Country      string                  `json:"country" validate:"omitempty,max=100"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Submit stores an unapproved testimonial. Name, role and avatar come from
// the author's account; country falls back to the profile.
func (s *Service) Submit(ctx context.Context, author *models.User, req *SubmitRequest) (*Testimonial, error) {
	if err := req.Translations.Validate(); err != nil {
		return nil, err
	}
	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = author.Profile.Country
	}

	t := &Testimonial{
		ID:           uuid.New(),
		UserID:       author.ID,
		Translations: req.Translations,
		AuthorName:   author.FullName(),
		Role:         author.Role,
		Country:      country,
		AvatarURL:    author.Profile.AvatarURL,
	}
	if err := s.db.WithContext(ctx).Omit("User").Create(t).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return t, nil
}

// Approved lists published testimonials, optionally for one country.
func (s *Service) Approved(ctx context.Context, country string) ([]Testimonial, error) {
	q := s.db.WithContext(ctx).Where("approved = ?", true)
	if country = strings.TrimSpace(country); country != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	var list []Testimonial
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

// GetApproved hides testimonials that are still waiting for review.
func (s *Service) GetApproved(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	var t Testimonial
	err := s.db.WithContext(ctx).Where("approved = ?", true).First(&t, "id = ?", id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) All(ctx context.Context) ([]Testimonial, error) {
	var list []Testimonial
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&Testimonial{}).Where("id = ?", id).Update("approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&Testimonial{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
