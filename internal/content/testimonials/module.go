package testimonials

import (
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() string { return "testimonials" }

func (m *Module) Models() []interface{} { return []interface{}{&Testimonial{}} }

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, g content.Guards) {
	h := &handler{service: NewService(db)}

	r := router.Group("/testimonials")
	r.Get("/", h.list)
	r.Get("/admin/all", g.Auth, g.Admin, h.all)
	r.Get("/:id", h.get)
	r.Post("/", g.Auth, h.submit)
	r.Patch("/:id/approve", g.Auth, g.Admin, h.approve)
	r.Delete("/:id", g.Auth, g.Admin, h.delete)
}

type handler struct {
	service *Service
}

func (h *handler) submit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	t, err := h.service.Submit(c.UserContext(), authctx.User(c), &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusCreated, "testimonial.created", fiber.Map{"id": t.ID})
}

func (h *handler) list(c *fiber.Ctx) error {
	list, err := h.service.Approved(c.UserContext(), c.Query("country"))
	if err != nil {
		return respond.Error(c, err)
	}
	lang := authctx.QueryLang(c)
	views := make([]View, 0, len(list))
	for i := range list {
		views = append(views, list[i].View(lang))
	}
	return respond.OK(c, views)
}

func (h *handler) get(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	t, err := h.service.GetApproved(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, t.View(authctx.QueryLang(c)))
}

func (h *handler) all(c *fiber.Ctx) error {
	list, err := h.service.All(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, list)
}

func (h *handler) approve(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.service.Approve(c.UserContext(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "testimonial.approved")
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
