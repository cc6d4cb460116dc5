// Package offers collects internship offers submitted by companies.
package offers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = apperr.NotFound("OFFER_NOT_FOUND", "offer.not_found")

type Submission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName string    `gorm:"size:200;not null" json:"companyName"`
	ContactName string    `gorm:"size:200;not null" json:"contactName"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Position    string    `gorm:"size:200;not null" json:"position"`
	Description string    `gorm:"type:text" json:"description"`
	SubmittedAt time.Time `gorm:"autoCreateTime;index" json:"submittedAt"`
}

func (Submission) TableName() string { return "offer_submissions" }

type SubmitRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
	ContactName string `json:"contactName" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	Position    string `json:"position" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*Submission, error) {
	sub := &Submission{
		ID:          uuid.New(),
		CompanyName: strings.TrimSpace(req.CompanyName),
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Position:    strings.TrimSpace(req.Position),
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to store offer: %w", err)
	}
	return sub, nil
}

func (s *Service) All(ctx context.Context) ([]Submission, error) {
	var list []Submission
	err := s.db.WithContext(ctx).Order("submitted_at DESC").Find(&list).Error
	return list, err
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	var sub Submission
	if err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&Submission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() string { return "offers" }

func (m *Module) Models() []interface{} { return []interface{}{&Submission{}} }

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, g content.Guards) {
	svc := NewService(db)

	r := router.Group("/offers")
	r.Post("/submit", func(c *fiber.Ctx) error {
		var req SubmitRequest
		if err := respond.Bind(c, &req); err != nil {
			return respond.Error(c, err)
		}
		if _, err := svc.Submit(c.UserContext(), &req); err != nil {
			return respond.Error(c, err)
		}
		return respond.Message(c, fiber.StatusCreated, "offer.submitted")
	})

	admin := r.Group("/admin", g.Auth, g.Admin)
	admin.Get("/all", func(c *fiber.Ctx) error {
		list, err := svc.All(c.UserContext())
		if err != nil {
			return respond.Error(c, err)
		}
		return respond.OK(c, list)
	})
	admin.Get("/:id", func(c *fiber.Ctx) error {
		id, err := respond.ParamID(c, "id")
		if err != nil {
			return respond.Error(c, err)
		}
		sub, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respond.Error(c, err)
		}
		return respond.OK(c, sub)
	})
	admin.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := respond.ParamID(c, "id")
		if err != nil {
			return respond.Error(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respond.Error(c, err)
		}
		return respond.Message(c, fiber.StatusOK, "common.deleted")
	})
}
