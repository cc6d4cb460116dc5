package blog

import (
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, limit := respond.Pagination(c, 10, 50)
	posts, err := h.service.Published(c.UserContext(), authctx.QueryLang(c), page, limit)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, posts)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	post, err := h.service.Detail(c.UserContext(), c.Params("slug"), authctx.QueryLang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, post)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreatePostRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	post, err := h.service.Create(c.UserContext(), authctx.User(c), &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusCreated, "common.created", post)
}

func (h *Handler) AdminList(c *fiber.Ctx) error {
	page, limit := respond.Pagination(c, 10, 100)
	f := AdminFilter{Page: page, Limit: limit}

	if v := c.Query("authorId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return respond.Error(c, apperr.ErrInvalidID)
		}
		f.AuthorID = &id
	}
	var err error
	if f.From, err = queryDate(c, "fromDate"); err != nil {
		return respond.Error(c, err)
	}
	if f.To, err = queryDate(c, "toDate"); err != nil {
		return respond.Error(c, err)
	}

	posts, err := h.service.AdminList(c.UserContext(), f)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, posts)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req PostInput
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	post, err := h.service.Update(c.UserContext(), c.Params("slug"), &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "common.updated", post)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "common.deleted")
}

func queryDate(c *fiber.Ctx, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, v); err != nil {
			return nil, &apperr.FieldError{Fields: map[string]string{name: "date"}}
		}
	}
	return &t, nil
}
