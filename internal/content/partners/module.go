package partners

import (
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() string { return "partners" }

func (m *Module) Models() []interface{} {
	return []interface{}{&Request{}, &PageContent{}}
}

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, g content.Guards) {
	h := &handler{service: NewService(db)}

	r := router.Group("/partners")
	r.Post("/request", h.submit)
	r.Get("/content", h.content)
	r.Put("/content", g.Auth, g.Admin, h.saveContent)
	r.Get("/admin/requests", g.Auth, g.Admin, h.requests)
	r.Delete("/admin/requests/:id", g.Auth, g.Admin, h.deleteRequest)
}

type handler struct {
	service *Service
}

func (h *handler) submit(c *fiber.Ctx) error {
	var in RequestInput
	if err := respond.Bind(c, &in); err != nil {
		return respond.Error(c, err)
	}
	if _, err := h.service.Submit(c.UserContext(), &in); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusCreated, "partner.request_sent")
}

func (h *handler) requests(c *fiber.Ctx) error {
	list, err := h.service.Requests(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, list)
}

func (h *handler) deleteRequest(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.service.DeleteRequest(c.UserContext(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "common.deleted")
}

func (h *handler) content(c *fiber.Ctx) error {
	text, err := h.service.Content(c.UserContext(), authctx.QueryLang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, text)
}

func (h *handler) saveContent(c *fiber.Ctx) error {
	var in ContentInput
	if err := respond.Bind(c, &in); err != nil {
		return respond.Error(c, err)
	}
	page, err := h.service.SaveContent(c.UserContext(), &in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "common.updated", page)
}
