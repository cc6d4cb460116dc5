package handlers

import (
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/Princeaman007/interships/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type InternshipHandler struct {
	internships *services.InternshipService
}

func NewInternshipHandler(internships *services.InternshipService) *InternshipHandler {
	return &InternshipHandler{internships: internships}
}

// ListPublic serves the public catalogue. ?lang= overrides Accept-Language.
func (h *InternshipHandler) ListPublic(c *fiber.Ctx) error {
	page, limit := respond.Pagination(c, 10, 50)
	out, err := h.internships.ListPublic(c.UserContext(), dto.InternshipFilter{
		Country: c.Query("country"),
		Field:   c.Query("field"),
		Type:    c.Query("type"),
		Keyword: c.Query("keyword"),
		Lang:    authctx.QueryLang(c),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, out)
}

func (h *InternshipHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.internships.ListAll(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, list)
}

func (h *InternshipHandler) Get(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	in, err := h.internships.Get(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, in)
}

func (h *InternshipHandler) Create(c *fiber.Ctx) error {
	var req dto.InternshipRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	in, err := h.internships.Create(c.UserContext(), authctx.User(c), &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusCreated, "internship.created", in)
}

func (h *InternshipHandler) Update(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req dto.InternshipRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	in, err := h.internships.Update(c.UserContext(), id, &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "internship.updated", in)
}

func (h *InternshipHandler) Delete(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.internships.Delete(c.UserContext(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "internship.deleted")
}

func (h *InternshipHandler) UploadImage(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	img, err := formImage(c, "image")
	if err != nil {
		return respond.Error(c, err)
	}
	in, err := h.internships.SetImage(c.UserContext(), id, img)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "internship.image_updated", in)
}

// formImage reads and validates an image from a multipart field.
func formImage(c *fiber.Ctx, field string) (*storage.Image, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, storage.ErrFileMissing
	}
	return storage.ReadImage(fh)
}
