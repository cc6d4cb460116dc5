package pages

import (
	"context"

	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() string { return "pages" }

func (m *Module) Models() []interface{} { return []interface{}{&Page{}} }

func (m *Module) Seed(ctx context.Context, db *gorm.DB) error {
	return NewService(db).Seed(ctx)
}

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, g content.Guards) {
	svc := NewService(db)
	for _, section := range []Section{About, Services} {
		h := &handler{service: svc, section: section}
		r := router.Group("/" + string(section))
		r.Get("/:slug", h.get)
		r.Put("/:slug", g.Auth, g.Admin, h.save)
	}
}

type handler struct {
	service *Service
	section Section
}

func (h *handler) get(c *fiber.Ctx) error {
	p, err := h.service.Get(c.UserContext(), h.section, c.Params("slug"))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, p.View(authctx.QueryLang(c)))
}

func (h *handler) save(c *fiber.Ctx) error {
	var in Input
	if err := respond.Bind(c, &in); err != nil {
		return respond.Error(c, err)
	}
	p, err := h.service.Save(c.UserContext(), h.section, c.Params("slug"), &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "common.updated", p)
}
