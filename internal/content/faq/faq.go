// Package faq serves the bilingual frequently asked questions.
package faq

import (
	"context"
	"fmt"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = apperr.NotFound("FAQ_NOT_FOUND", "faq.not_found")

type Entry struct {
	Question string `gorm:"type:text" json:"question"`
	Answer   string `gorm:"type:text" json:"answer"`
}

func (e Entry) Missing() []string {
	var m []string
	if i18n.Blank(e.Question) {
		m = append(m, "question")
	}
	if i18n.Blank(e.Answer) {
		m = append(m, "answer")
	}
	return m
}

type Faq struct {
	ID           uuid.UUID                `gorm:"type:uuid;primaryKey" json:"id"`
	Translations i18n.Translations[Entry] `gorm:"embedded" json:"translations"`
	CreatedAt    time.Time                `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// Item is a FAQ entry in a single language.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}

type Request struct {
	Translations i18n.Translations[Entry] `json:"translations"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every entry in lang, oldest first.
func (s *Service) List(ctx context.Context, lang i18n.Lang) ([]Item, error) {
	var faqs []Faq
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&faqs).Error; err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(faqs))
	for _, f := range faqs {
		e := f.Translations.Get(lang)
		items = append(items, Item{ID: f.ID, Question: e.Question, Answer: e.Answer})
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, req *Request) (*Faq, error) {
	if err := req.Translations.Validate(); err != nil {
		return nil, err
	}
	f := &Faq{ID: uuid.New(), Translations: req.Translations}
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *Request) (*Faq, error) {
	if err := req.Translations.Validate(); err != nil {
		return nil, err
	}
	var f Faq
	if err := s.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	f.Translations = req.Translations
	if err := s.db.WithContext(ctx).Save(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&Faq{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type handler struct {
	service *Service
}

func (h *handler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext(), authctx.QueryLang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, items)
}

func (h *handler) create(c *fiber.Ctx) error {
	var req Request
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	f, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusCreated, "common.created", f)
}

func (h *handler) update(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req Request
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	f, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "common.updated", f)
}

func (h *handler) delete(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "common.deleted")
}

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() string { return "faq" }

func (m *Module) Models() []interface{} { return []interface{}{&Faq{}} }

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, g content.Guards) {
	h := &handler{service: NewService(db)}

	r := router.Group("/faq")
	r.Get("/", h.list)
	r.Post("/", g.Auth, g.Admin, h.create)
	r.Put("/:id", g.Auth, g.Admin, h.update)
	r.Delete("/:id", g.Auth, g.Admin, h.delete)
}
