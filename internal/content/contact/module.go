package contact

import (
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Module struct {
	notifier notify.Notifier
}

func New(notifier notify.Notifier) *Module {
	return &Module{notifier: notifier}
}

func (m *Module) ID() string { return "contact" }

func (m *Module) Models() []interface{} { return []interface{}{&Message{}} }

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, g content.Guards) {
	h := &handler{service: NewService(db, m.notifier)}

	r := router.Group("/contact")
	r.Post("/", h.send)

	admin := r.Group("/admin", g.Auth, g.Admin)
	admin.Get("/all", h.all)
	admin.Get("/:id", h.get)
	admin.Patch("/reply/:id", h.reply)
	admin.Delete("/:id", h.delete)
}

type handler struct {
	service *Service
}

func (h *handler) send(c *fiber.Ctx) error {
	var req SendRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	if _, err := h.service.Send(c.UserContext(), &req, authctx.Lang(c)); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusCreated, "contact.sent")
}

func (h *handler) all(c *fiber.Ctx) error {
	list, err := h.service.All(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, list)
}

func (h *handler) get(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	m, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, m)
}

func (h *handler) reply(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req ReplyRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	m, err := h.service.Reply(c.UserContext(), authctx.User(c), id, req.Reply)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "contact.replied", m)
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
