package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/metrics"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EditWindow is how long before an internship starts the applicant may still
// change their message.
const EditWindow = 7 * 24 * time.Hour

var (
	ErrApplicationNotFound  = apperr.NotFound("APPLICATION_NOT_FOUND", "application.not_found")
	ErrDuplicateApplication = apperr.Conflict("DUPLICATE_APPLICATION", "application.duplicate")
	ErrInvalidStatus        = apperr.Validation("INVALID_STATUS", "application.invalid_status")
	ErrNotOwner             = apperr.Forbidden("NOT_OWNER", "application.not_owner")
	ErrEditWindowClosed     = apperr.Validation("EDIT_WINDOW_CLOSED", "application.edit_window_closed")
	ErrForbiddenAccess      = apperr.Forbidden("FORBIDDEN_ACCESS", "application.forbidden_access")
)

type ApplicationService struct {
	db       *gorm.DB
	notifier notify.Notifier
	now      func() time.Time
}

func NewApplicationService(db *gorm.DB, notifier notify.Notifier) *ApplicationService {
	return &ApplicationService{db: db, notifier: notifier, now: time.Now}
}

// WithClock replaces the time source; used by tests.
func (s *ApplicationService) WithClock(now func() time.Time) *ApplicationService {
	s.now = now
	return s
}

// Apply records a pending application of applicant to an internship. The
// unique index on (internship, applicant) settles concurrent attempts.
func (s *ApplicationService) Apply(ctx context.Context, applicant *models.User, internshipID uuid.UUID, message string, lang i18n.Lang) (*models.Application, error) {
	var internship models.Internship
	if err := s.db.WithContext(ctx).First(&internship, "id = ?", internshipID).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("internship_id = ? AND applicant_id = ?", internshipID, applicant.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateApplication
	}

	app := models.Application{
		ID:           uuid.New(),
		InternshipID: internshipID,
		ApplicantID:  applicant.ID,
		Message:      strings.TrimSpace(message),
		Status:       models.StatusPending,
	}
	if err := s.db.WithContext(ctx).Omit("Internship", "Applicant").Create(&app).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateApplication
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	metrics.ApplicationTransitions.WithLabelValues(string(models.StatusPending)).Inc()

	s.notifier.Notify(ctx, notify.Event{
		Kind:            notify.ApplicationSubmitted,
		To:              applicant.Email,
		Name:            applicant.FirstName,
		Lang:            lang,
		InternshipTitle: internship.Translations.Get(lang).Title,
		OccurredAt:      app.CreatedAt,
	})
	return &app, nil
}

// SetStatus moves an application to status. Any transition between the three
// statuses is allowed. Accepting or rejecting notifies the applicant.
func (s *ApplicationService) SetStatus(ctx context.Context, actor *models.User, id uuid.UUID, status models.ApplicationStatus, lang i18n.Lang) (*models.Application, error) {
	if actor == nil || !actor.Role.IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Application{ID: app.ID}).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	app.Status = status
	metrics.ApplicationTransitions.WithLabelValues(string(status)).Inc()

	var kind notify.Kind
	switch status {
	case models.StatusAccepted:
		kind = notify.ApplicationAccepted
	case models.StatusRejected:
		kind = notify.ApplicationRejected
	case models.StatusPending:
		return app, nil
	}
	s.notifier.Notify(ctx, notify.Event{
		Kind:            kind,
		To:              app.Applicant.Email,
		Name:            app.Applicant.FirstName,
		Lang:            lang,
		InternshipTitle: app.Internship.Translations.Get(lang).Title,
		OccurredAt:      s.now(),
	})
	return app, nil
}

// Delete withdraws an application. Only its owner may do so.
func (s *ApplicationService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	var app models.Application
	if err := s.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return ErrApplicationNotFound
		}
		return err
	}
	if app.ApplicantID != actor.ID {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Delete(&app).Error
}

// UpdateMessage changes the owner's message until EditWindow before the
// internship starts. Internships without a start date stay editable.
func (s *ApplicationService) UpdateMessage(ctx context.Context, actor *models.User, id uuid.UUID, message string) (*models.Application, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != actor.ID {
		return nil, ErrNotOwner
	}
	if start := app.Internship.StartDate; start != nil {
		if s.now().After(start.Add(-EditWindow)) {
			return nil, ErrEditWindowClosed
		}
	}

	msg := strings.TrimSpace(message)
	if err := s.db.WithContext(ctx).Model(&models.Application{ID: app.ID}).Update("message", msg).Error; err != nil {
		return nil, err
	}
	app.Message = msg
	return app, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, actor *models.User, lang i18n.Lang) ([]dto.ApplicationView, error) {
	apps, err := s.findByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return views(apps, lang, false), nil
}

// ListByStudent returns a student's applications with per-status counters.
// Students may only read their own list.
func (s *ApplicationService) ListByStudent(ctx context.Context, actor *models.User, studentID uuid.UUID, lang i18n.Lang) (*dto.StudentApplications, error) {
	if actor.ID != studentID && !actor.Role.IsAdmin() {
		return nil, ErrForbiddenAccess
	}
	apps, err := s.findByApplicant(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := &dto.StudentApplications{
		Applications: views(apps, lang, actor.Role.IsAdmin()),
	}
	for _, a := range apps {
		out.Stats.Total++
		switch a.Status {
		case models.StatusPending:
			out.Stats.Pending++
		case models.StatusAccepted:
			out.Stats.Accepted++
		case models.StatusRejected:
			out.Stats.Rejected++
		}
	}
	return out, nil
}

// ListAll returns every application matching f, newest first. Search matches
// the applicant's full name or email.
func (s *ApplicationService) ListAll(ctx context.Context, f dto.ApplicationFilter, lang i18n.Lang) ([]dto.ApplicationView, error) {
	q := s.db.WithContext(ctx).Model(&models.Application{}).
		Preload("Internship").Preload("Applicant")
	if f.Status != "" {
		if !f.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		q = q.Where("applications.status = ?", f.Status)
	}
	if f.InternshipID != nil {
		q = q.Where("applications.internship_id = ?", *f.InternshipID)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Joins("JOIN users ON users.id = applications.applicant_id").
			Where("LOWER(users.first_name || ' ' || users.last_name) LIKE ? OR LOWER(users.email) LIKE ?", like, like)
	}

	var apps []models.Application
	if err := q.Order("applications.created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return views(apps, lang, true), nil
}

// GetByID returns one application. Students can only read their own.
func (s *ApplicationService) GetByID(ctx context.Context, actor *models.User, id uuid.UUID, lang i18n.Lang) (*dto.ApplicationView, error) {
	app, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsAdmin() && app.ApplicantID != actor.ID {
		return nil, apperr.ErrForbidden
	}
	v := dto.NewApplicationView(app, lang, true)
	return &v, nil
}

func (s *ApplicationService) load(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).Preload("Internship").Preload("Applicant").First(&app, "id = ?", id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) findByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).Preload("Internship").Preload("Applicant").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func views(apps []models.Application, lang i18n.Lang, withApplicant bool) []dto.ApplicationView {
	out := make([]dto.ApplicationView, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewApplicationView(&apps[i], lang, withApplicant))
	}
	return out
}
