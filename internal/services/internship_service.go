package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInternshipNotFound = apperr.NotFound("INTERNSHIP_NOT_FOUND", "internship.not_found")
	ErrInvalidDates       = apperr.Validation("INVALID_DATES", "internship.invalid_dates")
)

const internshipImagePrefix = "internships"

type InternshipService struct {
	db    *gorm.DB
	files storage.FileStore
}

func NewInternshipService(db *gorm.DB, files storage.FileStore) *InternshipService {
	return &InternshipService{db: db, files: files}
}

func (s *InternshipService) Create(ctx context.Context, actor *models.User, req *dto.InternshipRequest) (*models.Internship, error) {
	in := &models.Internship{ID: uuid.New(), IsActive: true}
	if actor != nil {
		id := actor.ID
		in.CreatedByID = &id
	}
	if err := applyInternship(in, req); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(in).Error; err != nil {
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}
	return in, nil
}

// Update replaces every editable field. IsActive is left as is when omitted.
func (s *InternshipService) Update(ctx context.Context, id uuid.UUID, req *dto.InternshipRequest) (*models.Internship, error) {
	in, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyInternship(in, req); err != nil {
		return nil, err
	}
	// Select("*") so cleared dates and false flags are written too.
	if err := s.db.WithContext(ctx).Model(in).Select("*").Omit("created_at", "created_by_id").Updates(in).Error; err != nil {
		return nil, fmt.Errorf("failed to update internship: %w", err)
	}
	return in, nil
}

func applyInternship(in *models.Internship, req *dto.InternshipRequest) error {
	if err := req.Translations.Validate(); err != nil {
		return err
	}
	start, end := req.StartDate.Ptr(), req.EndDate.Ptr()
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidDates
	}

	in.Translations = trimInternshipText(req.Translations)
	in.Field = strings.TrimSpace(req.Field)
	in.Country = strings.TrimSpace(req.Country)
	in.Type = req.Type
	in.Duration = strings.TrimSpace(req.Duration)
	in.Salary = req.Salary
	in.StartDate = start
	in.EndDate = end
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}
	return nil
}

func trimInternshipText(t i18n.Translations[models.InternshipText]) i18n.Translations[models.InternshipText] {
	trim := func(x models.InternshipText) models.InternshipText {
		return models.InternshipText{
			Title:       strings.TrimSpace(x.Title),
			Description: strings.TrimSpace(x.Description),
			Location:    strings.TrimSpace(x.Location),
		}
	}
	return i18n.Translations[models.InternshipText]{FR: trim(t.FR), EN: trim(t.EN)}
}

func (s *InternshipService) Get(ctx context.Context, id uuid.UUID) (*models.Internship, error) {
	var in models.Internship
	if err := s.db.WithContext(ctx).First(&in, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &in, nil
}

// Delete removes the internship and, through the foreign key, its
// applications. The image file is removed best-effort.
func (s *InternshipService) Delete(ctx context.Context, id uuid.UUID) error {
	in, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("internship_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(in).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete internship: %w", err)
	}
	s.removeImage(ctx, in.ImageURL)
	return nil
}

// ListAll returns every internship, inactive ones included, newest first.
func (s *InternshipService) ListAll(ctx context.Context) ([]models.Internship, error) {
	var list []models.Internship
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListPublic returns active internships matching f, projected into f.Lang.
// The keyword matches titles and descriptions in both languages.
func (s *InternshipService) ListPublic(ctx context.Context, f dto.InternshipFilter) (*dto.InternshipPage, error) {
	q := s.db.WithContext(ctx).Model(&models.Internship{}).Where("is_active = ?", true)
	if v := strings.TrimSpace(f.Country); v != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(f.Field); v != "" {
		q = q.Where("LOWER(field) = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(f.Type); v != "" {
		q = q.Where("type = ?", v)
	}
	if v := strings.TrimSpace(f.Keyword); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(fr_title) LIKE ? OR LOWER(en_title) LIKE ? OR LOWER(fr_description) LIKE ? OR LOWER(en_description) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	var list []models.Internship
	if err := q.Order("created_at DESC").Scopes(database.Paginate(f.Page, f.Limit)).Find(&list).Error; err != nil {
		return nil, err
	}

	items := make([]dto.InternshipListItem, 0, len(list))
	for i := range list {
		items = append(items, dto.NewInternshipListItem(&list[i], f.Lang))
	}
	return &dto.InternshipPage{
		Internships: items,
		TotalPages:  database.TotalPages(total, f.Limit),
		CurrentPage: f.Page,
		Total:       total,
	}, nil
}

func (s *InternshipService) SetImage(ctx context.Context, id uuid.UUID, img *storage.Image) (*models.Internship, error) {
	in, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := storage.SaveImage(ctx, s.files, internshipImagePrefix, img)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	previous := in.ImageURL
	if err := s.db.WithContext(ctx).Model(in).Update("image_url", url).Error; err != nil {
		s.removeImage(ctx, url)
		return nil, err
	}
	s.removeImage(ctx, previous)
	in.ImageURL = url
	return in, nil
}

func (s *InternshipService) removeImage(ctx context.Context, url string) {
	if url == "" || s.files == nil {
		return
	}
	if err := s.files.Delete(ctx, url); err != nil {
		slog.Warn("failed to remove internship image", "url", url, "error", err)
	}
}
